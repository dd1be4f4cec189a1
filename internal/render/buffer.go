package render

import "strings"

// Cell represents a single character cell on screen.
type Cell struct {
	Glyph byte  // CP437 code (0-255)
	FG    uint8 // Foreground color index (0-15)
	BG    uint8 // Background color index (0-15)
}

// CellBuffer is a 2D grid of character cells. Every front end draws from one.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// Fill paints a rectangle with one glyph.
func (b *CellBuffer) Fill(x, y, w, h int, glyph byte, fg, bg uint8) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, glyph, fg, bg)
		}
	}
}

// WriteString writes s starting at (x, y), one cell per rune, and returns
// the number of cells used. Runes outside CP437 become '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	n := 0
	for _, ch := range s {
		b.Set(x+n, y, ToCP437(ch), fg, bg)
		n++
	}
	return n
}

// WriteClipped is WriteString cut to at most width cells.
func (b *CellBuffer) WriteClipped(x, y, width int, s string, fg, bg uint8) int {
	n := 0
	for _, ch := range s {
		if n >= width {
			break
		}
		b.Set(x+n, y, ToCP437(ch), fg, bg)
		n++
	}
	return n
}

// WriteCentered writes s centred within [x, x+width).
func (b *CellBuffer) WriteCentered(x, y, width int, s string, fg, bg uint8) {
	n := len([]rune(s))
	b.WriteClipped(x+max((width-n)/2, 0), y, width, s, fg, bg)
}

// BoxStyle selects the line weight of a frame.
type BoxStyle uint8

const (
	BoxSingle BoxStyle = iota
	BoxDouble
)

// corners, in order: top-left, top-right, bottom-left, bottom-right,
// horizontal, vertical.
var boxGlyphs = [...][6]byte{
	BoxSingle: {218, 191, 192, 217, 196, 179},
	BoxDouble: {201, 187, 200, 188, 205, 186},
}

// DrawBox frames a w x h rectangle and writes title into the top edge.
// The interior is left untouched.
func (b *CellBuffer) DrawBox(x, y, w, h int, style BoxStyle, title string, fg, bg uint8) {
	if w < 2 || h < 2 {
		return
	}
	g := boxGlyphs[style]
	b.Set(x, y, g[0], fg, bg)
	b.Set(x+w-1, y, g[1], fg, bg)
	b.Set(x, y+h-1, g[2], fg, bg)
	b.Set(x+w-1, y+h-1, g[3], fg, bg)
	for col := x + 1; col < x+w-1; col++ {
		b.Set(col, y, g[4], fg, bg)
		b.Set(col, y+h-1, g[4], fg, bg)
	}
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, g[5], fg, bg)
		b.Set(x+w-1, row, g[5], fg, bg)
	}
	if title != "" {
		b.WriteClipped(x+2, y, w-4, " "+title+" ", ColorYellow, bg)
	}
}

// Line returns row y as text, mapped back through CP437, with trailing
// blanks trimmed.
func (b *CellBuffer) Line(y int) string {
	if y < 0 || y >= b.Rows {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.Cells[y*b.Cols : (y+1)*b.Cols] {
		r := CP437ToUnicode[c.Glyph]
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}
