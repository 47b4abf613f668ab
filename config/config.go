// Package config loads settings for the tagtree command from an env file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Output formats understood by the command.
const (
	FormatTree   = "tree"
	FormatMarkup = "markup"
)

// Config holds the command settings. Keys are read from tagtree.env and can
// be overridden by environment variables of the same name.
type Config struct {
	MaxDepth   int    `mapstructure:"TAGTREE_MAX_DEPTH"`
	LogLevel   string `mapstructure:"TAGTREE_LOG_LEVEL"`
	Format     string `mapstructure:"TAGTREE_FORMAT"`
	Pretty     bool   `mapstructure:"TAGTREE_PRETTY"`
	EscapeText bool   `mapstructure:"TAGTREE_ESCAPE_TEXT"`
	Width      int    `mapstructure:"TAGTREE_WIDTH"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		MaxDepth: 512,
		LogLevel: "warn",
		Format:   FormatTree,
	}
}

// Load reads tagtree.env from the directory path. A missing file is not an
// error; defaults and environment variables still apply.
func Load(path string) (Config, error) {
	v := newViper()
	v.AddConfigPath(path)
	v.SetConfigName("tagtree")
	v.SetConfigType("env")
	return read(v, true)
}

// LoadFile reads settings from the env file at file, which must exist.
func LoadFile(file string) (Config, error) {
	v := newViper()
	v.SetConfigFile(file)
	if filepath.Ext(file) == "" {
		v.SetConfigType("env")
	}
	return read(v, false)
}

func newViper() *viper.Viper {
	v := viper.New()
	def := Default()
	v.SetDefault("TAGTREE_MAX_DEPTH", def.MaxDepth)
	v.SetDefault("TAGTREE_LOG_LEVEL", def.LogLevel)
	v.SetDefault("TAGTREE_FORMAT", def.Format)
	v.SetDefault("TAGTREE_PRETTY", def.Pretty)
	v.SetDefault("TAGTREE_ESCAPE_TEXT", def.EscapeText)
	v.SetDefault("TAGTREE_WIDTH", def.Width)
	v.AutomaticEnv()
	return v
}

func read(v *viper.Viper, optional bool) (config Config, err error) {
	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !optional || !errors.As(err, &notFound) {
			err = fmt.Errorf("cannot read config: %w", err)
			return
		}
	}

	err = v.Unmarshal(&config)
	if err != nil {
		err = fmt.Errorf("cannot decode config: %w", err)
	}
	return
}

// Validate checks that limits are not negative and that names are known.
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("TAGTREE_MAX_DEPTH must be >= 0, got %d", c.MaxDepth)
	}
	if c.Width < 0 {
		return fmt.Errorf("TAGTREE_WIDTH must be >= 0, got %d", c.Width)
	}
	switch strings.ToLower(c.Format) {
	case FormatTree, FormatMarkup:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured zerolog level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
