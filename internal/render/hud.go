package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawStatus writes a one-line hint below the map when the screen has room for it.
func (r *Renderer) DrawStatus(title string, x, y int) {
	_, screenH := r.screen.Size()
	row := r.camera.MapHeight
	if screenH <= row {
		return
	}
	line := fmt.Sprintf("%s  (%d,%d)  arrows move, esc quits", title, x, y)
	r.drawText(0, row, line, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
