package keymap

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dshills/keybridge/internal/component"
	"github.com/dshills/keybridge/internal/dom"
)

type reloadResult struct {
	km  *Keymap
	err error
}

func waitReload(t *testing.T, ch <-chan reloadResult, match func(reloadResult) bool) reloadResult {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case r := <-ch:
			if match(r) {
				return r
			}
		case <-timeout:
			t.Fatal("timed out waiting for reload")
			return reloadResult{}
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestWatcherReloads(t *testing.T) {
	n := newNested(t)
	rec := &recorder{}
	b := NewBinder(n.targets(), rec.actions())

	path := filepath.Join(t.TempDir(), "keymap.toml")
	writeFile(t, path, "[[shortcuts]]\nkeys = \"Ctrl+G\"\ntarget = \"inner\"\naction = \"report\"\n")

	results := make(chan reloadResult, 16)
	w, err := NewWatcher(path, b,
		WithDebounce(20*time.Millisecond),
		OnReload(func(km *Keymap, err error) { results <- reloadResult{km, err} }))
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	defer w.Close()

	if err := w.Reload(); err != nil {
		t.Fatalf("Reload error: %v", err)
	}
	<-results

	writeFile(t, path, "[[shortcuts]]\nkeys = \"Ctrl+H\"\ntarget = \"outer\"\naction = \"report\"\n")
	r := waitReload(t, results, func(r reloadResult) bool {
		return r.err == nil && len(r.km.Shortcuts) == 1 && r.km.Shortcuts[0].Keys == "Ctrl+H"
	})
	if r.km.Source != w.Path() {
		t.Errorf("Source = %q, want %q", r.km.Source, w.Path())
	}
	if got := component.ListenerCount(n.inner, dom.EventKeyDown); got != 0 {
		t.Errorf("old binding still registered: %d", got)
	}

	writeFile(t, path, "[[shortcuts]]\nkeys = \"Ctrl+Shift\"\ntarget = \"outer\"\naction = \"report\"\n")
	waitReload(t, results, func(r reloadResult) bool { return r.err != nil })

	bound := b.Bound()
	if len(bound) != 1 || bound[0].Keys != "Ctrl+H" {
		t.Errorf("failed reload replaced bindings: %+v", bound)
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keymap.yaml")
	writeFile(t, path, "shortcuts: []\n")

	w, err := NewWatcher(path, NewBinder(Targets{}, Actions{}))
	if err != nil {
		t.Fatalf("NewWatcher error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error: %v", err)
	}
	if err := w.Reload(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Reload after Close = %v", err)
	}
}

func TestNewWatcherErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewWatcher(filepath.Join(dir, "keymap.json"), nil); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("json error = %v", err)
	}
	if _, err := NewWatcher(filepath.Join(dir, "missing", "keymap.toml"), nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
