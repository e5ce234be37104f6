package playground

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Run draws the view and handles terminal events until Esc or Ctrl+C is
// pressed or ctx is cancelled. The screen must already be initialized.
//
// Posting a tcell.EventInterrupt whose data is a string sets the status
// line, which lets other goroutines report keymap reloads.
func (v *View) Run(ctx context.Context, screen tcell.Screen) error {
	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(ctx))
	})
	defer stop()

	v.Draw(screen)
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil

		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if msg, ok := ev.Data().(string); ok {
				v.SetStatus(msg)
			}

		case *tcell.EventKey:
			if quit := v.handleKey(ev); quit {
				return nil
			}
		}
		v.Draw(screen)
	}
}

// handleKey applies one key event and reports whether the loop should end.
func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab:
		v.FocusNext()
		return false
	case tcell.KeyBacktab:
		v.FocusPrev()
		return false
	}

	if bev, ok := TranslateKey(ev); ok {
		v.Press(bev)
	}
	return false
}
