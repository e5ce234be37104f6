package loader

import "testing"

func TestEnvLoader_Load(t *testing.T) {
	env := map[string]string{
		"KEYBRIDGE_LOG_LEVEL":    "warn",
		"KEYBRIDGE_KEYMAP":       "/tmp/keys.toml",
		"KEYBRIDGE_KEYMAP_WATCH": "yes",
	}
	l := NewEnvLoader()
	l.lookup = func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	log := config["log"].(map[string]any)
	if log["level"] != "warn" {
		t.Errorf("log.level = %v", log["level"])
	}
	if _, ok := log["format"]; ok {
		t.Error("unset variables should not appear")
	}
	keymap := config["keymap"].(map[string]any)
	if keymap["path"] != "/tmp/keys.toml" || keymap["watch"] != true {
		t.Errorf("keymap = %v", keymap)
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	t.Setenv("KEYBRIDGE_TEST_DEPTH", "3")

	l := NewEnvLoaderWithMapping(nil)
	l.AddMapping("KEYBRIDGE_TEST_DEPTH", "test.nested.depth")

	config, _ := l.Load()
	depth := config["test"].(map[string]any)["nested"].(map[string]any)["depth"]
	if depth != "3" {
		t.Errorf("depth = %v (%T)", depth, depth)
	}
}

func TestEnvLoader_ParseValue(t *testing.T) {
	l := NewEnvLoader()

	tests := []struct {
		path string
		in   string
		want any
	}{
		{"keymap.watch", "true", true},
		{"keymap.watch", "Off", false},
		{"keymap.watch", "1", true},
		{"keymap.watch", "maybe", "maybe"},
		{"log.level", "off", "off"},
		{"log.level", "info", "info"},
		{"keymap.path", "2024", "2024"},
		{"keymap.path", "", ""},
	}

	for _, tt := range tests {
		if got := l.parseValue(tt.path, tt.in); got != tt.want {
			t.Errorf("parseValue(%q, %q) = %v (%T), want %v", tt.path, tt.in, got, got, tt.want)
		}
	}
}

func TestEnvLoader_AddBoolMapping(t *testing.T) {
	t.Setenv("KEYBRIDGE_TEST_FLAG", "yes")

	l := NewEnvLoaderWithMapping(nil)
	l.AddBoolMapping("KEYBRIDGE_TEST_FLAG", "test.flag")

	config, _ := l.Load()
	if flag := config["test"].(map[string]any)["flag"]; flag != true {
		t.Errorf("flag = %v (%T), want true", flag, flag)
	}
}
