package loader

import (
	"os"
	"strings"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	mapping map[string]string // Env var -> config path
	bools   map[string]bool   // Config paths holding booleans
	lookup  func(string) (string, bool)
}

// NewEnvLoader creates a loader for the default KEYBRIDGE_* variables.
func NewEnvLoader() *EnvLoader {
	l := NewEnvLoaderWithMapping(defaultEnvMapping())
	l.bools = defaultBoolPaths()
	return l
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		mapping: mapping,
		lookup:  os.LookupEnv,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"KEYBRIDGE_LOG_LEVEL":    "log.level",
		"KEYBRIDGE_LOG_FORMAT":   "log.format",
		"KEYBRIDGE_LOG_FILE":     "log.file",
		"KEYBRIDGE_KEYMAP":       "keymap.path",
		"KEYBRIDGE_KEYMAP_WATCH": "keymap.watch",
	}
}

// defaultBoolPaths returns the config paths whose values are booleans.
func defaultBoolPaths() map[string]bool {
	return map[string]bool{
		"keymap.watch": true,
	}
}

// Load reads the mapped environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for env, path := range l.mapping {
		if val, ok := l.lookup(env); ok {
			setByPath(config, path, l.parseValue(path, val))
		}
	}
	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// AddBoolMapping adds a mapping whose value is parsed as a boolean.
func (l *EnvLoader) AddBoolMapping(envVar, configPath string) {
	l.AddMapping(envVar, configPath)
	if l.bools == nil {
		l.bools = make(map[string]bool)
	}
	l.bools[configPath] = true
}

// parseValue converts the value for a boolean path; every other value stays
// a string. Unrecognized booleans are kept as strings so decoding reports
// them against the field.
func (l *EnvLoader) parseValue(path, s string) any {
	if !l.bools[path] {
		return s
	}
	if b, ok := parseBool(s); ok {
		return b
	}
	return s
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
