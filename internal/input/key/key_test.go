package key

import (
	"reflect"
	"testing"
)

func TestOfReturnsPredefinedKeys(t *testing.T) {
	tests := []struct {
		alias string
		want  Key
	}{
		{"Control", Control},
		{"Meta", Meta},
		{"Shift", Shift},
		{"Escape", Escape},
		{"Esc", Escape},
		{"Spacebar", Space},
		{"Up", ArrowUp},
		{"F5", F5},
	}

	for _, tt := range tests {
		if got := Of(tt.alias); got != tt.want {
			t.Errorf("Of(%q) = %v, want %v", tt.alias, got, tt.want)
		}
	}
}

func TestOfCreatesEqualKeysForEqualAliases(t *testing.T) {
	a := Of("f")
	b := Of("f")
	if a != b {
		t.Errorf("Of(\"f\") should be equal to itself, got %#v and %#v", a, b)
	}
	if Of("f") == Of("F") {
		t.Error("Of should preserve case")
	}
	if Of("x", "y") == Of("x") {
		t.Error("keys with different alias sets should differ")
	}

	m := map[Key]int{Of("q"): 1}
	if m[Of("q")] != 1 {
		t.Error("equal keys should hash to the same map entry")
	}
}

func TestOfEmptyAlias(t *testing.T) {
	k := Of("")
	if !k.IsZero() {
		t.Errorf("Of(\"\") should be the zero key, got %v", k)
	}
	if k.Aliases() != nil {
		t.Errorf("zero key aliases = %v, want nil", k.Aliases())
	}
}

func TestIsModifier(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{Shift, true},
		{Control, true},
		{Alt, true},
		{AltGraph, true},
		{Meta, true},
		{Enter, false},
		{Of("a"), false},
		{Of("Control"), true},
	}

	for _, tt := range tests {
		if got := IsModifier(tt.key); got != tt.want {
			t.Errorf("IsModifier(%v) = %v, want %v", tt.key, got, tt.want)
		}
		if got := tt.key.IsModifier(); got != tt.want {
			t.Errorf("%v.IsModifier() = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyAliases(t *testing.T) {
	if got, want := Escape.Aliases(), []string{"Escape", "Esc"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Escape.Aliases() = %v, want %v", got, want)
	}
	if got := Escape.Primary(); got != "Escape" {
		t.Errorf("Escape.Primary() = %q, want %q", got, "Escape")
	}
	if got := Of("k").Primary(); got != "k" {
		t.Errorf("Of(\"k\").Primary() = %q, want %q", got, "k")
	}

	custom := Of("Launch", "LaunchApp1", "")
	if got, want := custom.Aliases(), []string{"Launch", "LaunchApp1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("custom.Aliases() = %v, want %v", got, want)
	}

	aliases := custom.Aliases()
	aliases[0] = "changed"
	if custom.Primary() != "Launch" {
		t.Error("Aliases should return a copy")
	}
}

func TestKeyModifier(t *testing.T) {
	tests := []struct {
		key  Key
		want Modifier
	}{
		{Shift, ModShift},
		{Control, ModCtrl},
		{Alt, ModAlt},
		{Meta, ModMeta},
		{AltGraph, ModAltGraph},
		{Enter, ModNone},
		{Of("s"), ModNone},
	}

	for _, tt := range tests {
		if got := tt.key.Modifier(); got != tt.want {
			t.Errorf("%v.Modifier() = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{Key{}, "None"},
		{Space, "Space"},
		{Control, "Ctrl"},
		{Meta, "Meta"},
		{Escape, "Escape"},
		{Of("f"), "f"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key.String() = %q, want %q", got, tt.want)
		}
	}
}
