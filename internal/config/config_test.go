package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/dshills/keybridge/internal/config/loader"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m[path]; !ok {
		return nil, fs.ErrNotExist
	}
	return fileInfo(path), nil
}

type fileInfo string

func (f fileInfo) Name() string       { return string(f) }
func (f fileInfo) Size() int64        { return 0 }
func (f fileInfo) Mode() fs.FileMode  { return 0644 }
func (f fileInfo) ModTime() time.Time { return time.Time{} }
func (f fileInfo) IsDir() bool        { return false }
func (f fileInfo) Sys() any           { return nil }

// envLayer is a fixed environment layer.
type envLayer map[string]any

func (e envLayer) Load() (map[string]any, error) { return e, nil }

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Keymap.Path != "" || cfg.Keymap.Watch {
		t.Errorf("Keymap = %+v, want zero", cfg.Keymap)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadWithFS(memFS{}, nil, "/missing.toml")
	if err != nil {
		t.Fatalf("LoadWithFS error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	fsys := memFS{"/keybridge.toml": `
[log]
level = "debug"
format = "json"

[keymap]
path = "keymap.yaml"
watch = true
`}

	cfg, err := LoadWithFS(fsys, nil, "/keybridge.toml")
	if err != nil {
		t.Fatalf("LoadWithFS error: %v", err)
	}
	want := Config{
		Log:    LogConfig{Level: "debug", Format: "json"},
		Keymap: KeymapConfig{Path: "keymap.yaml", Watch: true},
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	fsys := memFS{"/keybridge.toml": "[keymap]\npath = \"km.toml\"\n"}

	cfg, err := LoadWithFS(fsys, nil, "/keybridge.toml")
	if err != nil {
		t.Fatalf("LoadWithFS error: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want default info", cfg.Log.Level)
	}
	if cfg.Keymap.Path != "km.toml" {
		t.Errorf("Keymap.Path = %q", cfg.Keymap.Path)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	fsys := memFS{"/keybridge.toml": "[log]\nlevel = \"debug\"\n"}
	env := envLayer{
		"log":    map[string]any{"level": "warn"},
		"keymap": map[string]any{"path": "/env/keymap.toml", "watch": true},
	}

	cfg, err := LoadWithFS(fsys, env, "/keybridge.toml")
	if err != nil {
		t.Fatalf("LoadWithFS error: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Keymap.Path != "/env/keymap.toml" || !cfg.Keymap.Watch {
		t.Errorf("Keymap = %+v", cfg.Keymap)
	}
}

func TestLoadEnvVariables(t *testing.T) {
	t.Setenv("KEYBRIDGE_LOG_LEVEL", "error")
	t.Setenv("KEYBRIDGE_KEYMAP", "/tmp/keymap.yaml")

	cfg, err := LoadWithFS(memFS{}, loader.NewEnvLoader(), "/none.toml")
	if err != nil {
		t.Fatalf("LoadWithFS error: %v", err)
	}
	if cfg.Log.Level != "error" || cfg.Keymap.Path != "/tmp/keymap.yaml" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvValuesFollowFieldTypes(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(Config) bool
	}{
		{
			"level off stays a level",
			map[string]string{"KEYBRIDGE_LOG_LEVEL": "off"},
			func(c Config) bool { return c.Log.Level == "off" },
		},
		{
			"numeric keymap path",
			map[string]string{"KEYBRIDGE_KEYMAP": "2024"},
			func(c Config) bool { return c.Keymap.Path == "2024" },
		},
		{
			"watch on",
			map[string]string{"KEYBRIDGE_KEYMAP": "k.toml", "KEYBRIDGE_KEYMAP_WATCH": "on"},
			func(c Config) bool { return c.Keymap.Watch },
		},
		{
			"watch 0",
			map[string]string{"KEYBRIDGE_KEYMAP_WATCH": "0"},
			func(c Config) bool { return !c.Keymap.Watch },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadWithFS(memFS{}, loader.NewEnvLoader(), "/missing.toml")
			if err != nil {
				t.Fatalf("LoadWithFS error: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("cfg = %+v", cfg)
			}
		})
	}
}

func TestLoadEnvInvalidBool(t *testing.T) {
	t.Setenv("KEYBRIDGE_KEYMAP_WATCH", "maybe")

	_, err := LoadWithFS(memFS{}, loader.NewEnvLoader(), "/missing.toml")
	var perr *loader.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want ParseError", err)
	}
	if perr.Line != 0 {
		t.Errorf("merged settings error should carry no line, got %d", perr.Line)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	fsys := memFS{"/keybridge.toml": "[log]\nlevle = \"debug\"\n"}

	_, err := LoadWithFS(fsys, nil, "/keybridge.toml")
	var perr *loader.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want ParseError", err)
	}
	if !strings.Contains(err.Error(), "levle") {
		t.Errorf("error %q should name the unknown key", err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	fsys := memFS{"/keybridge.toml": "[log\nlevel = 1"}

	_, err := LoadWithFS(fsys, nil, "/keybridge.toml")
	var perr *loader.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error = %v, want ParseError", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
		path string
	}{
		{"valid", func(*Config) {}, ""},
		{"level case", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"watch without path", func(c *Config) { c.Keymap.Watch = true }, "keymap.watch"},
		{"watch with path", func(c *Config) { c.Keymap = KeymapConfig{Path: "k.toml", Watch: true} }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mod(&cfg)
			err := cfg.Validate()
			if tt.path == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			}
			if verr.Path != tt.path {
				t.Errorf("Path = %q, want %q", verr.Path, tt.path)
			}
			if !errors.Is(err, ErrValidationFailed) {
				t.Error("error should match ErrValidationFailed")
			}
		})
	}
}

func TestLoadValidates(t *testing.T) {
	fsys := memFS{"/keybridge.toml": "[keymap]\nwatch = true\n"}
	if _, err := LoadWithFS(fsys, nil, "/keybridge.toml"); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("error = %v, want ErrValidationFailed", err)
	}
}
