package render

import "github.com/gdamore/tcell/v2"

// Cell is one character cell of a Buffer.
type Cell struct {
	Glyph rune
	FG    tcell.Color
	BG    tcell.Color
}

var blank = Cell{Glyph: ' ', FG: tcell.ColorWhite, BG: tcell.ColorBlack}

// Buffer is an in-memory grid of cells, used by frontends that paint a whole
// frame at once (the desktop window) and by tests.
type Buffer struct {
	Width, Height int
	cells         []Cell
	writes        int
}

// NewBuffer returns a blank width x height buffer.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{Width: width, Height: height, cells: make([]Cell, width*height)}
	b.Clear()
	return b
}

// Clear resets every cell to a blank and zeroes the write counter.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
	b.writes = 0
}

// SetCell stores a cell. Writes outside the buffer are counted but dropped.
func (b *Buffer) SetCell(x, y int, fg, bg tcell.Color, glyph rune) {
	b.writes++
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.cells[y*b.Width+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
}

// Cell returns the cell at (x, y), or a blank outside the buffer.
func (b *Buffer) Cell(x, y int) Cell {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return blank
	}
	return b.cells[y*b.Width+x]
}

// Writes returns the number of SetCell calls since the last Clear.
func (b *Buffer) Writes() int {
	return b.writes
}

// Each calls fn for every cell in row-major order.
func (b *Buffer) Each(fn func(x, y int, c Cell)) {
	for i, c := range b.cells {
		fn(i%b.Width, i/b.Width, c)
	}
}
