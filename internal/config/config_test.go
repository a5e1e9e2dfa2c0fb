package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/command-menu/internal/menu"
	"github.com/atomicstack/command-menu/internal/theme"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, menu.DefaultActive, cfg.App.Active)
	assert.Equal(t, theme.Dark, cfg.App.Theme)
	assert.True(t, cfg.App.StartOpen)
	assert.False(t, cfg.App.Watch)
	assert.False(t, cfg.Logging.Trace)
	assert.Empty(t, cfg.App.MenuPath)
	assert.NoError(t, Validate(cfg))
}

func TestEnvironmentSuppliesDefaults(t *testing.T) {
	environ := []string{
		"COMMAND_MENU_WIDTH=90",
		"COMMAND_MENU_THEME=light",
		"COMMAND_MENU_TRACE=true",
		"COMMAND_MENU_OPEN=false",
		"COMMAND_MENU_HEIGHT=not-a-number",
		"malformed",
	}
	cfg, err := LoadArgs(nil, environ)
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.App.Width)
	assert.Equal(t, 0, cfg.App.Height)
	assert.Equal(t, theme.Light, cfg.App.Theme)
	assert.False(t, cfg.App.StartOpen)
	assert.True(t, cfg.Logging.Trace)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs(
		[]string{"--width", "40", "--theme=Dark", "--active", "About Me", "--trace=false", "extra"},
		[]string{"COMMAND_MENU_WIDTH=90", "COMMAND_MENU_TRACE=1"},
	)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.App.Width)
	assert.Equal(t, theme.Dark, cfg.App.Theme)
	assert.Equal(t, "About Me", cfg.App.Active)
	assert.False(t, cfg.Logging.Trace)
	assert.Equal(t, "40", cfg.Flags["width"])
	assert.Equal(t, []string{"extra"}, cfg.Args)
}

func TestLoadArgsRejectsNegativeSizes(t *testing.T) {
	_, err := LoadArgs([]string{"--width", "-1"}, nil)
	assert.Error(t, err)
	_, err = LoadArgs([]string{"--height", "-3"}, nil)
	assert.Error(t, err)
	_, err = LoadArgs([]string{"--bogus"}, nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := LoadArgs([]string{"--theme", "sepia"}, nil)
	require.NoError(t, err)
	assert.ErrorContains(t, Validate(cfg), "unknown theme")

	cfg, err = LoadArgs([]string{"--watch"}, nil)
	require.NoError(t, err)
	assert.ErrorContains(t, Validate(cfg), "--watch requires --menu")

	dir := t.TempDir()
	cfg, err = LoadArgs([]string{"--menu", dir}, nil)
	require.NoError(t, err)
	assert.ErrorContains(t, Validate(cfg), "is a directory")

	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - label: Home\n"), 0o644))
	cfg, err = LoadArgs([]string{"--menu", path, "--watch"}, nil)
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg))
}
