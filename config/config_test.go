package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	writeEnv(t, dir, "tagtree.env", `TAGTREE_MAX_DEPTH=64
TAGTREE_LOG_LEVEL=debug
TAGTREE_FORMAT=markup
TAGTREE_PRETTY=true
TAGTREE_WIDTH=120
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 64, cfg.MaxDepth)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, FormatMarkup, cfg.Format)
	require.True(t, cfg.Pretty)
	require.False(t, cfg.EscapeText)
	require.Equal(t, 120, cfg.Width)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeEnv(t, dir, "tagtree.env", "TAGTREE_MAX_DEPTH=64\n")
	t.Setenv("TAGTREE_MAX_DEPTH", "7")
	t.Setenv("TAGTREE_ESCAPE_TEXT", "true")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.MaxDepth)
	require.True(t, cfg.EscapeText)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeEnv(t, dir, "custom.env", "TAGTREE_FORMAT=markup\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, FormatMarkup, cfg.Format)
	require.Equal(t, 512, cfg.MaxDepth)

	noExt := writeEnv(t, dir, "settings", "TAGTREE_WIDTH=40\n")
	cfg, err = LoadFile(noExt)
	require.NoError(t, err)
	require.Equal(t, 40, cfg.Width)

	_, err = LoadFile(filepath.Join(dir, "missing.env"))
	require.Error(t, err)
}

func TestLoad_DecodeError(t *testing.T) {
	dir := t.TempDir()
	writeEnv(t, dir, "tagtree.env", "TAGTREE_MAX_DEPTH=deep\n")

	_, err := Load(dir)
	require.ErrorContains(t, err, "cannot decode config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"unbounded depth", func(c *Config) { c.MaxDepth = 0 }, ""},
		{"uppercase format", func(c *Config) { c.Format = "MARKUP" }, ""},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, "TAGTREE_MAX_DEPTH"},
		{"negative width", func(c *Config) { c.Width = -5 }, "TAGTREE_WIDTH"},
		{"unknown format", func(c *Config) { c.Format = "json" }, `unknown format "json"`},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, `unknown log level "loud"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "DEBUG"
	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)
}
