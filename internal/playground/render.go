package playground

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleFocus   = tcell.StyleDefault.Reverse(true)
	styleLabel   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Draw renders the view onto screen.
func (v *View) Draw(screen tcell.Screen) {
	screen.Clear()
	drawText(screen, 0, 0, styleTitle, "keybridge playground")

	focused := v.Focused()
	y := 2
	for depth, c := range v.containers {
		x := depth * 2
		drawText(screen, x, y, styleTitle, "["+c.Name+"]")
		y++

		inputStyle := styleDefault
		if c == focused {
			inputStyle = styleFocus
		}
		value := c.Input.Value()
		if value == "" {
			value = c.Input.Placeholder()
		}
		drawText(screen, x+2, y, inputStyle, "> "+value)
		y++
		drawText(screen, x+2, y, styleLabel, c.Label.Text())
		y += 2
	}

	last := v.LastResult()
	drawText(screen, 0, y, styleStatus, fmt.Sprintf("delivered %d  defaultPrevented %t  propagationStopped %t",
		last.Delivered, last.DefaultPrevented, last.PropagationStopped))
	drawText(screen, 0, y+1, styleStatus, v.Status())
	screen.Show()
}

// drawText writes text starting at (x, y) and returns the column after it.
// Grapheme clusters are kept together so combining marks and wide runes
// occupy the right number of cells.
func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) int {
	width, _ := screen.Size()
	gr := uniseg.NewGraphemes(text)
	for gr.Next() && x < width {
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += max(gr.Width(), 1)
	}
	return x
}
