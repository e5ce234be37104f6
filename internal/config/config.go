package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/keybridge/internal/config/loader"
	"github.com/dshills/keybridge/internal/logging"
)

// Config is the application configuration.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Keymap KeymapConfig `toml:"keymap"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level: trace, debug, info, warn, error or disabled.
	Level string `toml:"level"`
	// Format is "console", "json" or empty for automatic selection.
	Format string `toml:"format"`
	// File, when set, receives logs instead of stderr.
	File string `toml:"file"`
}

// KeymapConfig configures the shortcut keymap.
type KeymapConfig struct {
	// Path is a TOML or YAML keymap file. Empty uses the built-in keymap.
	Path string `toml:"path"`
	// Watch reloads the keymap when the file changes.
	Watch bool `toml:"watch"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatAuto,
		},
	}
}

// Load reads the config file at path, applies environment overrides and
// validates the result. A missing file yields the defaults.
func Load(path string) (Config, error) {
	return LoadWithFS(loader.DefaultFS(), loader.NewEnvLoader(), path)
}

// LoadWithFS is Load with an explicit file system and environment source.
func LoadWithFS(fsys loader.FileSystem, env loader.Loader, path string) (Config, error) {
	merged, err := toMap(Default())
	if err != nil {
		return Config{}, err
	}

	sources := []loader.Loader{loader.NewTOMLLoaderWithFS(fsys, path)}
	if env != nil {
		sources = append(sources, env)
	}
	for _, src := range sources {
		layer, err := src.Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, layer)
	}

	cfg, err := fromMap(path, merged)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func toMap(cfg Config) (map[string]any, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding defaults: %w", err)
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding defaults: %w", err)
	}
	return m, nil
}

func fromMap(path string, m map[string]any) (Config, error) {
	data, err := toml.Marshal(m)
	if err != nil {
		return Config{}, fmt.Errorf("encoding merged config: %w", err)
	}

	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			keys := make([]string, 0, len(strict.Errors))
			for _, e := range strict.Errors {
				keys = append(keys, strings.Join(e.Key(), "."))
			}
			return Config{}, loader.NewParseError(path, fmt.Errorf("unknown settings: %s", strings.Join(keys, ", ")))
		}
		// Positions refer to the re-encoded merged document, not the file.
		return Config{}, &loader.ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if !logging.ValidLevel(c.Log.Level) {
		return &ValidationError{Path: "log.level", Message: "unknown log level", Value: c.Log.Level}
	}
	if !logging.ValidFormat(c.Log.Format) {
		return &ValidationError{Path: "log.format", Message: `must be "console" or "json"`, Value: c.Log.Format}
	}
	if c.Keymap.Watch && c.Keymap.Path == "" {
		return &ValidationError{Path: "keymap.watch", Message: "requires keymap.path", Value: c.Keymap.Watch}
	}
	return nil
}
