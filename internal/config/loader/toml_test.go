package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/keybridge.toml", `
[log]
level = "debug"
format = "json"

[keymap]
path = "/etc/keybridge/keymap.yaml"
watch = true
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/keybridge.toml").Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	log, ok := config["log"].(map[string]any)
	if !ok {
		t.Fatalf("log section missing: %v", config)
	}
	if log["level"] != "debug" || log["format"] != "json" {
		t.Errorf("log = %v", log)
	}
	keymap := config["keymap"].(map[string]any)
	if keymap["watch"] != true {
		t.Errorf("keymap.watch = %v", keymap["watch"])
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/missing.toml").Load()
	if err != nil {
		t.Errorf("missing file should not be an error: %v", err)
	}
	if config != nil {
		t.Errorf("config = %v, want nil", config)
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[log]\nlevel = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want ParseError", err)
	}
	if pe.Path != "/bad.toml" || pe.Line == 0 {
		t.Errorf("ParseError = %+v", pe)
	}
	if !strings.Contains(pe.Error(), "/bad.toml at line") {
		t.Errorf("Error() = %q", pe.Error())
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader(`title = "x"`))
	if err != nil {
		t.Fatalf("LoadFromReader error: %v", err)
	}
	if config["title"] != "x" {
		t.Errorf("title = %v", config["title"])
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"log":    map[string]any{"level": "info", "format": "console"},
		"keymap": map[string]any{"path": "a.toml"},
	}
	src := map[string]any{
		"log":   map[string]any{"level": "debug"},
		"extra": 1,
	}

	got := DeepMerge(dst, src)
	log := got["log"].(map[string]any)
	if log["level"] != "debug" || log["format"] != "console" {
		t.Errorf("log = %v", log)
	}
	if got["extra"] != 1 || got["keymap"].(map[string]any)["path"] != "a.toml" {
		t.Errorf("merged = %v", got)
	}

	if m := DeepMerge(nil, src); m["extra"] != 1 {
		t.Errorf("DeepMerge(nil) = %v", m)
	}
}
