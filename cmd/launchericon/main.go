package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medistock/launchericon"
	"github.com/medistock/launchericon/utils"
)

const HelpBanner = `
┬  ┌─┐┬ ┬┌┐┌┌─┐┬ ┬┌─┐┬─┐  ┬┌─┐┌─┐┌┐┌┌─┐
│  ├─┤│ │││││  ├─┤├┤ ├┬┘  ││  │ ││││└─┐
┴─┘┴ ┴└─┘┘└┘└─┘┴ ┴└─┘┴└─  ┴└─┘└─┘┘└┘└─┘

Medistock launcher icon generator.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	configPath = flag.String("config", "", "TOML configuration file")
	resDir     = flag.String("out", "", "Android resource directory")
	storePath  = flag.String("store", "", "Store listing icon path")
	quality    = flag.Int("quality", 0, "Encoding quality (1-100)")
	lossless   = flag.Bool("lossless", false, "Use lossless WebP encoding")
	keep       = flag.Bool("keep", false, "Keep the intermediate PNG files")
	fade       = flag.Bool("fade", false, "Fade the background opacity from top to bottom")
	workers    = flag.Int("conc", 0, "Number of icons to generate concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := launchericon.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = launchericon.LoadConfig(*configPath); err != nil {
			log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
		}
	}
	applyFlags(&cfg)

	ops := launchericon.NewOps(cfg)
	ops.Logger = log.New(os.Stderr, "", 0)
	utils.Colored = utils.IsTerminal(os.Stderr)
	if utils.Colored {
		ops.Spinner = utils.NewSpinner("", time.Millisecond*80)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	now := time.Now()
	sum, err := ops.Execute(ctx)
	if err != nil {
		if ops.Spinner != nil {
			ops.Spinner.RestoreCursor()
		}
		if errors.Is(err, launchericon.ErrSetup) {
			log.Fatalf("%s\n\t%s",
				utils.DecorateText("Unable to start the icon generation:", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}

	msgType := utils.SuccessMessage
	if !sum.OK() {
		msgType = utils.ErrorMessage
	}
	fmt.Fprintf(os.Stderr, "\n=== %s ===\n", utils.DecorateText(sum.String(), msgType))
	fmt.Fprintf(os.Stderr, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	if !sum.OK() {
		os.Exit(1)
	}
}

// applyFlags overrides the config with the flags set on the command line.
func applyFlags(cfg *launchericon.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.ResDir = *resDir
		case "store":
			cfg.StoreListingPath = *storePath
		case "quality":
			cfg.Quality = *quality
		case "lossless":
			cfg.Lossless = *lossless
		case "keep":
			cfg.KeepIntermediate = *keep
		case "fade":
			cfg.Fade = *fade
		case "conc":
			cfg.Workers = *workers
		}
	})
}
