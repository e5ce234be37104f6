package keymap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/keybridge/internal/config/loader"
)

// Format is a keymap file format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatForPath returns the format implied by path's extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Loader loads keymaps from files.
type Loader struct {
	fs loader.FileSystem
}

// NewLoader creates a loader reading from the OS file system.
func NewLoader() *Loader {
	return NewLoaderWithFS(loader.DefaultFS())
}

// NewLoaderWithFS creates a loader with a custom file system.
func NewLoaderWithFS(fsys loader.FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// LoadFile loads and validates the keymap at path. The keymap's Source
// defaults to path.
func (l *Loader) LoadFile(path string) (*Keymap, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading keymap file: %w", err)
	}

	km, err := decode(path, data, format)
	if err != nil {
		return nil, err
	}
	if km.Source == "" {
		km.Source = path
	}
	if err := km.Validate(); err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return km, nil
}

// LoadReader loads and validates a keymap from r.
func (l *Loader) LoadReader(r io.Reader, format Format) (*Keymap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}
	km, err := decode("<reader>", data, format)
	if err != nil {
		return nil, err
	}
	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}

func decode(source string, data []byte, format Format) (*Keymap, error) {
	km := &Keymap{}
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(km); err != nil {
			return nil, loader.NewParseError(source, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(km); err != nil && !errors.Is(err, io.EOF) {
			return nil, yamlParseError(source, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return km, nil
}

// yamlParseError converts a yaml.v3 error, whose messages look like
// "yaml: line 3: ...", into a ParseError carrying the line.
func yamlParseError(source string, err error) *loader.ParseError {
	pe := &loader.ParseError{Path: source, Message: err.Error(), Err: err}

	var typeErr *yaml.TypeError
	msg := err.Error()
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}
	msg = strings.TrimPrefix(msg, "yaml: ")
	if rest, ok := strings.CutPrefix(msg, "line "); ok {
		if num, text, ok := strings.Cut(rest, ":"); ok {
			if line, convErr := strconv.Atoi(num); convErr == nil {
				pe.Line = line
				pe.Message = strings.TrimSpace(text)
			}
		}
	}
	return pe
}

// Marshal encodes km in the given format.
func Marshal(km *Keymap, format Format) ([]byte, error) {
	if km == nil {
		return nil, ErrNilKeymap
	}
	switch format {
	case FormatTOML:
		return toml.Marshal(km)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(km); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
