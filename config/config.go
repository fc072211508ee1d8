package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/xbam/core"
	"github.com/hupe1980/xbam/logging"
)

// Config is the universe configuration file.
type Config struct {
	Universe    string             `toml:"universe"`
	Log         LogConfig          `toml:"log"`
	AutoBuilder []AutoBuilderEntry `toml:"auto_builder"`
}

// LogConfig selects the diagnostic logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // json, text, console or default
}

// AutoBuilderEntry lists the auto-builder steps of one archetype.
type AutoBuilderEntry struct {
	Archetype string   `toml:"archetype"`
	Steps     []string `toml:"steps"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{Universe: "default", Log: LogConfig{Level: "info", Format: "json"}}
}

// Load reads and validates a TOML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML, applies defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.Universe == "" {
		cfg.Universe = "default"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks levels, formats and auto-builder entries.
func Validate(cfg Config) error {
	if _, err := logging.ParseLogLevel(cfg.Log.Level); err != nil {
		return err
	}
	switch cfg.Log.Format {
	case "json", "text", "console", "default":
	default:
		return fmt.Errorf("config: unknown log format %q", cfg.Log.Format)
	}
	seen := make(map[string]struct{}, len(cfg.AutoBuilder))
	for i, e := range cfg.AutoBuilder {
		if e.Archetype == "" {
			return fmt.Errorf("config: auto_builder[%d]: archetype is required", i)
		}
		if _, dup := seen[e.Archetype]; dup {
			return fmt.Errorf("config: auto_builder: duplicate archetype %q", e.Archetype)
		}
		seen[e.Archetype] = struct{}{}
	}
	return nil
}

// Logger builds the diagnostic logger described by c.
func (c LogConfig) Logger() logging.Logger {
	level, err := logging.ParseLogLevel(c.Level)
	if err != nil {
		level = logging.LogLevelInfo
	}
	switch c.Format {
	case "console":
		return logging.NewConsoleLogger(level, os.Stderr)
	case "default":
		// slog.Default() carries its own level.
		return logging.NewDefaultSlogLogger()
	}
	return logging.NewSlogLogger(level, c.Format, false)
}

// AutoBuilder indexes auto-builder steps by archetype key. It implements
// core.AutoBuilderConfig and is read-only after construction.
type AutoBuilder struct {
	steps map[string][]string
}

// NewAutoBuilder indexes entries.
func NewAutoBuilder(entries []AutoBuilderEntry) *AutoBuilder {
	ab := &AutoBuilder{steps: make(map[string][]string, len(entries))}
	for _, e := range entries {
		ab.steps[e.Archetype] = append([]string(nil), e.Steps...)
	}
	return ab
}

// AutoBuilderConfig returns the auto-builder index of c.
func (c Config) AutoBuilderConfig() *AutoBuilder { return NewAutoBuilder(c.AutoBuilder) }

// Steps returns the steps configured for an archetype key.
func (ab *AutoBuilder) Steps(archetype string) []string {
	return append([]string(nil), ab.steps[archetype]...)
}

// HasAutoBuilderSteps reports whether a has at least one step.
func (ab *AutoBuilder) HasAutoBuilderSteps(a core.Archetype) bool {
	if ab == nil || a == nil {
		return false
	}
	return len(ab.steps[a.Key()]) > 0
}
