package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	// DefaultModePrompt asks which operation to run.
	DefaultModePrompt = "Enter 'r' to read file, or 'w' to write to file: "
	// DefaultTextPrompt asks for the line to append.
	DefaultTextPrompt = "Enter text to write to file: "

	envConfigPath = "RWFILE_CONFIG"
)

// Config captures the user editable settings stored in config.toml.
type Config struct {
	Prompt PromptBlock `toml:"prompt"`
	Output OutputBlock `toml:"output"`
	Log    LogBlock    `toml:"log"`
}

// PromptBlock overrides the interactive prompt text.
type PromptBlock struct {
	Mode string `toml:"mode"`
	Text string `toml:"text"`
}

// OutputBlock controls terminal styling.
type OutputBlock struct {
	Color ColorMode `toml:"color"`
}

// LogBlock controls diagnostic logging on stderr.
type LogBlock struct {
	Level string `toml:"level"`
}

// ColorMode selects when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var (
	// ErrInvalidColor indicates the color mode is not recognized.
	ErrInvalidColor = errors.New("output.color must be auto, always, or never")
	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("log.level must be debug, info, warn, or error")
)

// ParseColorMode validates a color mode string. Matching is case-insensitive.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", ErrInvalidColor
	}
}

// ParseLogLevel converts a level name into a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, ErrInvalidLogLevel
	}
}

// Default returns the settings used when no config file exists.
func Default() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Prompt.Mode == "" {
		c.Prompt.Mode = DefaultModePrompt
	}
	if c.Prompt.Text == "" {
		c.Prompt.Text = DefaultTextPrompt
	}
	if c.Output.Color == "" {
		c.Output.Color = ColorAuto
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Validate reports whether the settings are usable.
func (c Config) Validate() error {
	if _, err := ParseColorMode(string(c.Output.Color)); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level. Validate must have passed.
func (c Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.Log.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

// DefaultPath locates the settings file: $RWFILE_CONFIG when set, otherwise
// rwfile/config.toml under the user config directory. An empty result means
// no location could be determined.
func DefaultPath() string {
	if p := os.Getenv(envConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "rwfile", "config.toml")
}

// Load reads configuration from disk. Missing files return a default config.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	if mode, err := ParseColorMode(string(cfg.Output.Color)); err == nil {
		cfg.Output.Color = mode
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
