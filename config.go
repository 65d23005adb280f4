package launchericon

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/medistock/launchericon/utils"
	"github.com/pelletier/go-toml/v2"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

const defaultQuality = 95

// Config holds the settings of a generation run.
type Config struct {
	ResDir           string `toml:"res_dir"`
	StoreListingPath string `toml:"store_listing_path"`
	Format           Format `toml:"format"`
	Quality          int    `toml:"quality"`
	Lossless         bool   `toml:"lossless"`
	KeepIntermediate bool   `toml:"keep_intermediate"`
	Workers          int    `toml:"workers"`
	Fade             bool   `toml:"fade"`
}

// DefaultConfig returns the settings of the Android app layout.
func DefaultConfig() Config {
	return Config{
		ResDir:           filepath.Join("app", "src", "main", "res"),
		StoreListingPath: filepath.Join("app", "src", "main", "ic_launcher-playstore.png"),
		Format:           WebP,
		Quality:          defaultQuality,
		Workers:          runtime.NumCPU(),
	}
}

// LoadConfig reads a TOML file on top of the default settings.
// Keys missing from the file keep their default value; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read the config file: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to decode the config file %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings and normalizes the worker count.
func (c *Config) Validate() error {
	if c.ResDir == "" {
		return fmt.Errorf("%w: empty resource directory", ErrSetup)
	}
	if c.StoreListingPath == "" {
		return fmt.Errorf("%w: empty store listing path", ErrSetup)
	}
	if _, err := FormatFromExt(c.StoreListingPath); err != nil {
		return fmt.Errorf("%w: store listing: %v", ErrSetup, err)
	}
	c.Format = ParseFormat(string(c.Format))
	if !c.Format.Supported() {
		return fmt.Errorf("%w: %w %q", ErrSetup, ErrUnsupportedFormat, c.Format)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality %d out of the [1, 100] range", ErrSetup, c.Quality)
	}
	// Limit the concurrently running workers to maxWorkers.
	if c.Workers <= 0 || c.Workers > maxWorkers {
		c.Workers = utils.Min(runtime.NumCPU(), maxWorkers)
	}
	return nil
}

// EncodeOptions returns the encoder settings of the config.
func (c Config) EncodeOptions() EncodeOptions {
	return EncodeOptions{
		Quality:  c.Quality,
		Lossless: c.Lossless,
	}
}
