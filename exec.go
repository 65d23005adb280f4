package launchericon

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/medistock/launchericon/utils"
)

// Ops drives a generation run.
type Ops struct {
	Config
	Renderer *Renderer
	// Spinner is optional. It is updated with the artifact being processed.
	Spinner *utils.Spinner
	// Logger receives one line per artifact. A nil Logger discards the output.
	Logger *log.Logger
	// Artifacts overrides the default plan derived from the config.
	Artifacts []Artifact
}

// result holds the outcome of a single artifact.
type result struct {
	artifact Artifact
	err      error
}

// Summary is the tally of a run.
type Summary struct {
	Attempted int
	Produced  int
	Failures  []error
}

// OK reports whether every attempted artifact has been produced.
func (s Summary) OK() bool {
	return s.Attempted > 0 && s.Produced == s.Attempted
}

func (s Summary) String() string {
	return fmt.Sprintf("%d/%d icons generated", s.Produced, s.Attempted)
}

// NewOps returns the operations for the given config with a renderer matching it.
func NewOps(cfg Config) *Ops {
	r := NewRenderer()
	r.Fade = cfg.Fade

	return &Ops{
		Config:   cfg,
		Renderer: r,
	}
}

// Execute renders and writes every artifact of the plan.
// A setup failure aborts the run before any artifact is attempted and is
// returned as an error wrapping ErrSetup. Failures of single artifacts are
// collected in the summary and never stop the remaining ones.
func (op *Ops) Execute(ctx context.Context) (Summary, error) {
	if err := op.checkSetup(); err != nil {
		return Summary{}, err
	}
	logger := op.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	plan := op.Artifacts
	if plan == nil {
		plan = Plan(op.Config)
	}
	if op.Spinner != nil {
		op.Spinner.Start()
		defer op.Spinner.Stop()
	}

	var wg sync.WaitGroup
	ch := make(chan result)
	done := make(chan struct{})
	defer close(done)

	jobs := produce(ctx, done, plan)

	wg.Add(op.Workers)
	for i := 0; i < op.Workers; i++ {
		go func() {
			defer wg.Done()
			op.consumer(ch, done, jobs)
		}()
	}

	// Close the channel after the values are consumed.
	go func() {
		defer close(ch)
		wg.Wait()
	}()

	seen := make(map[string]bool, len(plan))
	sum := Summary{Attempted: len(plan)}
	for res := range ch {
		seen[res.artifact.Path] = true
		if res.err != nil {
			sum.Failures = append(sum.Failures, res.err)
			logger.Printf("%s %s",
				utils.DecorateText("✘ "+res.artifact.Name, utils.ErrorMessage),
				utils.DecorateText(res.err.Error(), utils.DefaultMessage),
			)
			continue
		}
		sum.Produced++
		logger.Printf("%s %s",
			utils.DecorateText("✔", utils.SuccessMessage),
			utils.DecorateText(res.artifact.Path, utils.DefaultMessage),
		)
	}

	// Artifacts never handed to a worker because the context was cancelled.
	for _, a := range plan {
		if !seen[a.Path] {
			sum.Failures = append(sum.Failures, &ArtifactError{
				Stage: StageCancel,
				Path:  a.Path,
				Err:   context.Cause(ctx),
			})
		}
	}

	return sum, nil
}

// checkSetup verifies that the run can start at all.
func (op *Ops) checkSetup() error {
	if op.Renderer == nil {
		return fmt.Errorf("%w: no renderer", ErrSetup)
	}
	if err := op.Config.Validate(); err != nil {
		if errors.Is(err, ErrSetup) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrSetup, err)
	}
	return nil
}

// produce sends the artifacts of the plan to the returned channel.
// It stops early when the context is cancelled or the done channel is closed.
func produce(ctx context.Context, done <-chan struct{}, plan []Artifact) <-chan Artifact {
	jobs := make(chan Artifact)

	go func() {
		defer close(jobs)

		for _, a := range plan {
			if ctx.Err() != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case jobs <- a:
			}
		}
	}()
	return jobs
}

// consumer reads the artifacts from the jobs channel, generates them
// and sends the results on the res channel.
func (op *Ops) consumer(
	res chan<- result,
	done <-chan struct{},
	jobs <-chan Artifact,
) {
	for a := range jobs {
		err := op.process(a)

		select {
		case <-done:
			return
		case res <- result{
			artifact: a,
			err:      err,
		}:
		}
	}
}

// process renders a single artifact and writes it to its destination.
func (op *Ops) process(a Artifact) error {
	if op.Spinner != nil {
		op.Spinner.SetMessage(fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ LAUNCHER ICONS", utils.StatusMessage),
			utils.DecorateText("⇢ "+a.Name, utils.DefaultMessage),
		))
	}

	img, err := op.Renderer.Render(a.Size)
	if err != nil {
		return &ArtifactError{Stage: StageRender, Path: a.Path, Err: err}
	}

	if a.Intermediate {
		err = WriteWithIntermediate(img, a.Path, op.EncodeOptions(), op.KeepIntermediate)
	} else {
		err = WriteImage(img, a.Path, op.EncodeOptions())
	}
	if err != nil {
		return &ArtifactError{Stage: StageEncode, Path: a.Path, Err: err}
	}
	return nil
}
