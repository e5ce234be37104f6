package playground

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/dshills/keybridge/internal/component"
	"github.com/dshills/keybridge/internal/dom"
	"github.com/dshills/keybridge/internal/input/key"
	"github.com/dshills/keybridge/internal/input/keymap"
	"github.com/dshills/keybridge/internal/logging"
	"github.com/dshills/keybridge/internal/shortcut"
)

// Container is one nesting level of the view.
type Container struct {
	Name  string
	Div   *component.Div
	Input *component.Input
	Label *component.Label
}

// View is the playground component tree.
type View struct {
	ui         *component.UI
	containers []*Container
	binder     *keymap.Binder
	logger     zerolog.Logger

	mu     sync.Mutex
	focus  int
	status string
	last   dom.DispatchResult
}

// New builds the nested containers. Bind a keymap with Bind before use.
func New() (*View, error) {
	v := &View{
		ui:     component.NewUI(),
		logger: logging.For("playground"),
		status: "Tab: next input  Shift+Tab: previous  Esc: quit",
	}

	var parent *Container
	for _, name := range []string{keymap.TargetOuter, keymap.TargetMiddle, keymap.TargetInner} {
		c := &Container{
			Name:  name,
			Div:   component.NewDiv(),
			Input: component.NewInput(),
			Label: component.NewLabel(""),
		}
		c.Div.SetID(name)
		c.Input.SetID(name + "-input")
		c.Input.SetPlaceholder(name)
		if err := c.Div.Add(c.Input, c.Label); err != nil {
			return nil, err
		}

		var err error
		if parent == nil {
			err = v.ui.Add(c.Div)
		} else {
			err = parent.Div.Add(c.Div)
		}
		if err != nil {
			return nil, fmt.Errorf("adding %s container: %w", name, err)
		}
		v.containers = append(v.containers, c)
		parent = c
	}

	targets := keymap.Targets{}
	for _, c := range v.containers {
		targets[c.Name] = c.Div
		targets[c.Name+"-input"] = c.Input
	}
	v.binder = keymap.NewBinder(targets, keymap.Actions{
		keymap.ActionReport: v.report,
	})
	return v, nil
}

// Bind replaces the view's shortcuts with km.
func (v *View) Bind(km *keymap.Keymap) error {
	return v.binder.Bind(km)
}

// Binder returns the binder used for the view's shortcuts.
func (v *View) Binder() *keymap.Binder {
	return v.binder
}

// UI returns the root of the component tree.
func (v *View) UI() *component.UI {
	return v.ui
}

// Containers returns the containers from outermost to innermost.
func (v *View) Containers() []*Container {
	return v.containers
}

// Focused returns the container whose input has focus.
func (v *View) Focused() *Container {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.containers[v.focus]
}

// FocusNext moves focus to the next input, wrapping around.
func (v *View) FocusNext() {
	v.moveFocus(1)
}

// FocusPrev moves focus to the previous input, wrapping around.
func (v *View) FocusPrev() {
	v.moveFocus(len(v.containers) - 1)
}

func (v *View) moveFocus(step int) {
	v.mu.Lock()
	v.focus = (v.focus + step) % len(v.containers)
	v.mu.Unlock()
}

// SetStatus sets the status line.
func (v *View) SetStatus(s string) {
	v.mu.Lock()
	v.status = s
	v.mu.Unlock()
}

// Status returns the status line.
func (v *View) Status() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status
}

// LastResult returns the result of the last Press.
func (v *View) LastResult() dom.DispatchResult {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.last
}

// Press dispatches ev at the focused input. Printable keys the shortcuts
// did not prevent are typed into the input.
func (v *View) Press(ev dom.BrowserEvent) dom.DispatchResult {
	focused := v.Focused()
	result := v.ui.Dispatch(focused.Input, ev)

	v.mu.Lock()
	v.last = result
	v.mu.Unlock()

	if !result.DefaultPrevented && isTypable(ev) {
		focused.Input.SetValue(focused.Input.Value() + ev.Key)
	} else if !result.DefaultPrevented && ev.Key == key.Backspace.Primary() {
		value := focused.Input.Value()
		_, size := utf8.DecodeLastRuneInString(value)
		focused.Input.SetValue(value[:len(value)-size])
	}

	v.logger.Debug().
		Str("target", focused.Name).
		Str("key", ev.Key).
		Str("modifiers", ev.Modifiers.String()).
		Int("delivered", result.Delivered).
		Bool("defaultPrevented", result.DefaultPrevented).
		Bool("propagationStopped", result.PropagationStopped).
		Msg("key dispatched")
	return result
}

// report writes the shortcut's key and modifiers into the label of the
// container that handled it.
func (v *View) report(e shortcut.Event) {
	for _, c := range v.containers {
		if e.Source() == component.Component(c.Div) || e.Source() == component.Component(c.Input) {
			c.Label.SetText(ReportText(e))
			return
		}
	}
}

// ReportText formats a shortcut event as "<key>, [<modifiers>]" using the
// key and modifiers that were pressed. Events without a keydown fall back to
// the shortcut's own key.
func ReportText(e shortcut.Event) string {
	pressed := e.BrowserKey()
	if pressed == "" {
		pressed = e.Key().String()
	}
	mods := e.BrowserModifiers().Keys()
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.String()
	}
	return fmt.Sprintf("%s, [%s]", pressed, strings.Join(names, ", "))
}

// Close releases the shortcuts and the component tree.
func (v *View) Close() {
	v.binder.Unbind()
	v.ui.Close()
}

func isTypable(ev dom.BrowserEvent) bool {
	if ev.Modifiers.HasCtrl() || ev.Modifiers.HasMeta() || ev.Modifiers.HasAlt() {
		return false
	}
	return utf8.RuneCountInString(ev.Key) == 1
}
