package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/config"
)

type toastConfig struct {
	Duration     time.Duration `env:"DEFAULT_DURATION" envDefault:"0s"`
	ConfirmLabel string        `env:"CONFIRM_LABEL" envDefault:"Confirm"`
	Buffer       int           `env:"BUFFER" envDefault:"8"`
}

type requiredConfig struct {
	Addr string `env:"REQUIRED_ADDR,required"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg toastConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGTEST_DEFAULTS_")))

	assert.Equal(t, time.Duration(0), cfg.Duration)
	assert.Equal(t, "Confirm", cfg.ConfirmLabel)
	assert.Equal(t, 8, cfg.Buffer)
}

func TestLoad_Prefix(t *testing.T) {
	t.Setenv("TOAST_DEFAULT_DURATION", "3s")
	t.Setenv("TOAST_CONFIRM_LABEL", "Yes, delete")

	var cfg toastConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("TOAST_")))

	assert.Equal(t, 3*time.Second, cfg.Duration)
	assert.Equal(t, "Yes, delete", cfg.ConfirmLabel)
}

func TestLoad_EnvFiles(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "toast.env")
	require.NoError(t, os.WriteFile(file, []byte("CFGTEST_FILE_BUFFER=32\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CFGTEST_FILE_BUFFER") })

	var cfg toastConfig
	err := config.Load(&cfg,
		config.WithPrefix("CFGTEST_FILE_"),
		config.WithEnvFiles(filepath.Join(dir, "missing.env"), file),
	)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Buffer)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *toastConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("required variable missing", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg, config.WithPrefix("CFGTEST_MISSING_"))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("malformed value", func(t *testing.T) {
		t.Setenv("CFGTEST_BAD_DEFAULT_DURATION", "soon")
		var cfg toastConfig
		err := config.Load(&cfg, config.WithPrefix("CFGTEST_BAD_"))
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("must load panics", func(t *testing.T) {
		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg, config.WithPrefix("CFGTEST_PANIC_")) })
	})
}
