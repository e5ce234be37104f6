package shortcut

import (
	"github.com/dshills/keybridge/internal/component"
	"github.com/dshills/keybridge/internal/dom"
)

// AddClickListener registers listener for clicks on c and for s pressed in
// any of s's sources. A shortcut press delivers a server-side ClickEvent for
// c to listener only. The shortcut must have sources.
func AddClickListener(c component.Clickable, listener func(*component.ClickEvent), s Shortcut) (Registration, error) {
	if component.IsNil(c) {
		return nil, nilArgument("component")
	}
	if listener == nil {
		return nil, nilArgument("listener")
	}
	if len(s.sources) == 0 {
		return nil, errNoSources
	}

	binding, err := NewBinding(s)
	if err != nil {
		return nil, err
	}

	clickReg, err := c.AddClickListener(listener)
	if err != nil {
		return nil, err
	}
	shortcutReg, err := binding.AddCallback(func() {
		listener(component.NewClickEvent(c))
	})
	if err != nil {
		clickReg.Remove()
		return nil, err
	}

	return newRegistration(dom.Combine(clickReg, shortcutReg), binding.logger), nil
}
