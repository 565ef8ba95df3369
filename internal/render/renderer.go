// Package render provides the drawing surfaces the frame driver paints on.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Renderer draws map cells onto a tcell screen through a Camera.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for a mapW x mapH map on screen.
func NewRenderer(screen tcell.Screen, mapW, mapH int) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(mapW, mapH, w, h),
	}
}

// Clear blanks the back buffer.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// SetCell draws glyph at map position (x, y). Cells outside the view are skipped.
func (r *Renderer) SetCell(x, y int, fg, bg tcell.Color, glyph rune) {
	sx, sy, onScreen := r.camera.WorldToScreen(x, y)
	if !onScreen {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	r.screen.SetContent(sx, sy, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(sx+1, sy, ' ', nil, style)
	}
}

// CenterOn scrolls the view toward map position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// Resize picks up a new screen size after a resize event.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, h)
	r.screen.Sync()
}

// Show flushes the back buffer to the terminal.
func (r *Renderer) Show() {
	r.screen.Show()
}
