package launchericon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when an icon is requested with a non positive size.
	ErrInvalidSize = errors.New("invalid icon size")
	// ErrSetup is returned when the run cannot start at all, e.g. no encoder
	// is available for the requested output format.
	ErrSetup = errors.New("setup failed")
	// ErrUnsupportedFormat is returned for output paths with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// Stage identifies the step at which an artifact failed.
type Stage string

const (
	StageRender Stage = "render"
	StageEncode Stage = "encode"
	StageCancel Stage = "cancel"
)

// ArtifactError reports the failure of a single artifact.
// It never stops the processing of the remaining artifacts.
type ArtifactError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error { return e.Err }
