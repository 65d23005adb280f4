package launchericon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "icons.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfig_Default(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	assert.Equal(filepath.Join("app", "src", "main", "res"), cfg.ResDir)
	assert.Equal(WebP, cfg.Format)
	assert.Equal(95, cfg.Quality)
	assert.False(cfg.Fade)
	assert.NoError(cfg.Validate())
}

func TestConfig_Load(t *testing.T) {
	assert := assert.New(t)

	path := writeConfig(t, `
res_dir = "out/res"
quality = 80
lossless = true
fade = true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal("out/res", cfg.ResDir)
	assert.Equal(80, cfg.Quality)
	assert.True(cfg.Lossless)
	assert.True(cfg.Fade)
	// Keys missing from the file keep their default value.
	assert.Equal(WebP, cfg.Format)
	assert.Equal(DefaultConfig().StoreListingPath, cfg.StoreListingPath)
}

func TestConfig_LoadErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `unknown_key = 1`))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, `format = "gif"`))
	assert.ErrorIs(t, err, ErrSetup)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadConfig(writeConfig(t, `quality = 0`))
	assert.ErrorIs(t, err, ErrSetup)
}

func TestConfig_ValidateWorkers(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Workers = -3
	require.NoError(t, cfg.Validate())
	assert.Greater(t, cfg.Workers, 0)
	assert.LessOrEqual(t, cfg.Workers, maxWorkers)

	cfg.Workers = 1000
	require.NoError(t, cfg.Validate())
	assert.LessOrEqual(t, cfg.Workers, maxWorkers)
}

func TestConfig_ValidateStoreListing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StoreListingPath = "store.gif"
	assert.ErrorIs(t, cfg.Validate(), ErrSetup)

	cfg.StoreListingPath = ""
	assert.ErrorIs(t, cfg.Validate(), ErrSetup)
}

func TestConfig_FormatNames(t *testing.T) {
	testCases := []struct {
		name   string
		format Format
	}{
		{name: "WEBP", format: WebP},
		{name: "jpg", format: JPEG},
		{name: "Png", format: PNG},
	}
	for _, tc := range testCases {
		cfg, err := LoadConfig(writeConfig(t, `format = "`+tc.name+`"`))
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.format, cfg.Format, tc.name)
	}

	cfg := DefaultConfig()
	cfg.Format = Format("JPG")
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".jpeg", filepath.Ext(Plan(cfg)[0].Path))
}
