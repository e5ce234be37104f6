package keymap

// Target and action names used by DefaultKeymap.
const (
	TargetOuter  = "outer"
	TargetMiddle = "middle"
	TargetInner  = "inner"

	ActionReport = "report"
)

// DefaultKeymap returns the playground keymap: three nested containers
// bound to the same keys. The middle container stops propagation, so a
// press in the inner container reaches inner and middle but not outer.
//
// Each binding is given for Meta+F and Ctrl+F because most terminals do
// not report the Meta modifier.
func DefaultKeymap() *Keymap {
	km := NewKeymap("playground").WithSource("default")
	for _, keys := range []string{"Meta+F", "Ctrl+F"} {
		km.AddDefinition(NewDefinition(keys, TargetOuter, ActionReport).
			WithName("outer " + keys).
			WithAllowPropagation().
			WithDescription("Report in the outer container"))
		km.AddDefinition(NewDefinition(keys, TargetMiddle, ActionReport).
			WithName("middle " + keys).
			WithDescription("Report in the middle container and stop"))
		km.AddDefinition(NewDefinition(keys, TargetInner, ActionReport).
			WithName("inner " + keys).
			WithAllowPropagation().
			WithDescription("Report in the inner container"))
	}
	return km
}
