package shortcut

import (
	"errors"
	"testing"

	"github.com/dshills/keybridge/internal/component"
	"github.com/dshills/keybridge/internal/input/key"
)

func TestKeyIdentifierCanonical(t *testing.T) {
	base := Of(key.Of("f"), key.Meta, key.Shift).Configuration().ID()

	tests := []struct {
		name string
		s    Shortcut
	}{
		{"reordered", Of(key.Shift, key.Of("f"), key.Meta)},
		{"modifiers first", Of(key.Meta, key.Shift, key.Of("f"))},
		{"upper case alias", Of(key.Of("F"), key.Shift, key.Meta)},
		{"of char", OfChar('F', key.Meta, key.Shift)},
		{"built fluently", OfChar('f').WithKey(key.Shift).WithKey(key.Meta)},
		{"duplicates", Of(key.Meta, key.Of("f"), key.Meta, key.Shift, key.Shift)},
		{"parsed", mustParse(t, "Meta+Shift+F")},
		{"parsed vim", mustParse(t, "<S-M-f>")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Configuration().ID(); got != base {
				t.Errorf("ID = %q, want %q", got, base)
			}
			if !tt.s.Configuration().Equal(Of(key.Meta, key.Shift, key.Of("f")).Configuration()) {
				t.Error("configurations should be equal")
			}
		})
	}
}

func TestKeyIdentifierDistinct(t *testing.T) {
	tests := []struct {
		a, b Shortcut
	}{
		{OfChar('f', key.Meta), OfChar('f', key.Control)},
		{OfChar('f', key.Meta), OfChar('g', key.Meta)},
		{OfChar('f', key.Meta), OfChar('f', key.Meta, key.Shift)},
		{OfChar('f'), OfChar('f', key.Shift)},
	}

	for _, tt := range tests {
		if tt.a.Configuration().Equal(tt.b.Configuration()) {
			t.Errorf("%s and %s should differ", tt.a, tt.b)
		}
	}
}

func TestKeyIdentifierDedup(t *testing.T) {
	seen := make(map[string]Shortcut)
	for _, s := range []Shortcut{
		OfChar('s', key.Control),
		Of(key.Control, key.Of("S")),
		OfChar('s', key.Control, key.Alt),
		Of(key.Alt, key.Of("s"), key.Control),
	} {
		seen[s.Configuration().ID()] = s
	}
	if len(seen) != 2 {
		t.Errorf("got %d distinct shortcuts, want 2", len(seen))
	}
}

func TestShortcutImmutable(t *testing.T) {
	base := OfChar('f', key.Meta)
	withShift := base.WithKey(key.Shift)
	allow := base.WithAllowDefault().WithAllowPropagation()
	sourced := base.WithSources(component.NewDiv())

	if len(base.Configuration().Modifiers()) != 1 {
		t.Error("WithKey mutated the receiver")
	}
	if len(withShift.Configuration().Modifiers()) != 2 {
		t.Error("WithKey did not add the modifier")
	}
	if !base.PreventDefault() || !base.StopPropagation() {
		t.Error("WithAllow* mutated the receiver")
	}
	if allow.PreventDefault() || allow.StopPropagation() {
		t.Error("WithAllow* did not apply")
	}
	if len(base.Sources()) != 0 || len(sourced.Sources()) != 1 {
		t.Error("WithSources mutated the receiver")
	}
	if !OfChar('x').WithAllowBubbling().PreventDefault() || OfChar('x').WithAllowBubbling().StopPropagation() {
		t.Error("WithAllowBubbling should only allow propagation")
	}
}

func TestWithSourcesReplaces(t *testing.T) {
	a, b, c := component.NewDiv(), component.NewDiv(), component.NewDiv()
	s := OfChar('f').WithSources(a, b).WithSources(c)

	sources := s.Sources()
	if len(sources) != 1 || sources[0] != component.Component(c) {
		t.Fatalf("Sources = %v, want [c]", sources)
	}

	sources[0] = a
	if s.Sources()[0] != component.Component(c) {
		t.Error("Sources should return a copy")
	}

	input := []component.Component{a}
	s = s.WithSources(input...)
	input[0] = b
	if s.Sources()[0] != component.Component(a) {
		t.Error("WithSources should copy its argument")
	}
}

func TestWithSourcesDeduplicates(t *testing.T) {
	a, b := component.NewDiv(), component.NewDiv()

	tests := []struct {
		name  string
		input []component.Component
		want  []component.Component
	}{
		{"same twice", []component.Component{a, a}, []component.Component{a}},
		{"first seen order", []component.Component{b, a, b, a}, []component.Component{b, a}},
		{"distinct", []component.Component{a, b}, []component.Component{a, b}},
		{"none", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OfChar('f').WithSources(tt.input...).Sources()
			if len(got) != len(tt.want) {
				t.Fatalf("Sources = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Sources[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		s    Shortcut
		want error
	}{
		{"key and modifier", OfChar('f', key.Meta), nil},
		{"named key", Of(key.Enter), nil},
		{"zero value", Shortcut{}, errNoKey},
		{"modifiers only", Of(key.Control, key.Shift), errNoKey},
		{"zero rune", OfChar(0, key.Control), errNoKey},
		{"control rune", OfChar('\x01'), errNoKey},
		{"two keys", OfChar('f').WithChar('g'), errMultipleKeys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if err != tt.want {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
			if tt.want != nil && !errors.Is(err, ErrInvalidShortcut) {
				t.Error("error should match ErrInvalidShortcut")
			}
		})
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("Ctrl+S")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if s.String() != "Ctrl+S" {
		t.Errorf("String() = %q, want Ctrl+S", s.String())
	}

	if _, err := Parse("Ctrl+Shift"); !errors.Is(err, ErrInvalidShortcut) {
		t.Errorf("modifier-only Parse error = %v, want ErrInvalidShortcut", err)
	}
	if _, err := Parse(""); !errors.Is(err, key.ErrEmptySpec) {
		t.Errorf("empty Parse error = %v, want ErrEmptySpec", err)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		s    Shortcut
		want string
	}{
		{OfChar('f', key.Meta), "Meta+F"},
		{OfChar('s', key.Shift, key.Control), "Ctrl+Shift+S"},
		{Of(key.Enter), "Enter"},
		{Of(key.Alt, key.F4), "Alt+F4"},
	}

	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFilterExpression(t *testing.T) {
	tests := []struct {
		name string
		s    Shortcut
		want string
	}{
		{
			"meta f",
			OfChar('F', key.Meta),
			"event.key.toLowerCase() == 'f' && event.getModifierState('Meta')",
		},
		{
			"no modifiers",
			Of(key.Enter),
			"event.key.toLowerCase() == 'enter' && true",
		},
		{
			"sorted modifiers",
			OfChar('s', key.Shift, key.Meta, key.Control, key.Alt),
			"event.key.toLowerCase() == 's' && event.getModifierState('Alt') && " +
				"event.getModifierState('Control') && event.getModifierState('Meta') && " +
				"event.getModifierState('Shift')",
		},
		{
			"quote",
			OfChar('\'', key.Control),
			`event.key.toLowerCase() == '\'' && event.getModifierState('Control')`,
		},
		{
			"backslash",
			OfChar('\\'),
			`event.key.toLowerCase() == '\\' && true`,
		},
		{
			"space",
			Of(key.Space),
			"event.key.toLowerCase() == ' ' && true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := tt.s.Configuration().Filter()
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			if f.Expression() != tt.want {
				t.Errorf("Expression() =\n%s\nwant\n%s", f.Expression(), tt.want)
			}
		})
	}
}

func TestFilterDeterministic(t *testing.T) {
	a, _ := Of(key.Shift, key.Control, key.Of("k")).Configuration().Filter()
	b, _ := Of(key.Of("K"), key.Control, key.Shift).Configuration().Filter()
	if a.Expression() != b.Expression() {
		t.Errorf("expressions differ:\n%s\n%s", a.Expression(), b.Expression())
	}
	if got := a.Modifiers(); len(got) != 2 || got[0] != "Control" || got[1] != "Shift" {
		t.Errorf("Modifiers() = %v", got)
	}
	if a.Key() != "k" {
		t.Errorf("Key() = %q", a.Key())
	}
}

func TestFilterInvalid(t *testing.T) {
	if _, err := Of(key.Meta).Configuration().Filter(); !errors.Is(err, ErrInvalidShortcut) {
		t.Errorf("modifier-only Filter error = %v", err)
	}
	if _, err := OfChar('a').WithChar('b').Configuration().Filter(); !errors.Is(err, ErrInvalidShortcut) {
		t.Errorf("two-key Filter error = %v", err)
	}
}

func TestFilterMatches(t *testing.T) {
	f, err := OfChar('F', key.Meta).Configuration().Filter()
	if err != nil {
		t.Fatalf("Filter error: %v", err)
	}

	tests := []struct {
		name string
		key  string
		mods key.Modifier
		want bool
	}{
		{"f with meta", "f", key.ModMeta, true},
		{"F with meta and shift", "F", key.ModMeta | key.ModShift, true},
		{"f without meta", "f", key.ModNone, false},
		{"g with meta", "g", key.ModMeta, false},
		{"f with ctrl", "f", key.ModCtrl, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Matches(tt.key, tt.mods); got != tt.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.key, tt.mods, got, tt.want)
			}
		})
	}

	if (Filter{}).Matches("", key.ModNone) {
		t.Error("zero Filter should match nothing")
	}
}

func mustParse(t *testing.T, spec string) Shortcut {
	t.Helper()
	s, err := Parse(spec)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", spec, err)
	}
	return s
}
