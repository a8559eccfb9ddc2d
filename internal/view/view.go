// Package view implements View, the window-over-FileBuf projection
// described in spec.md §3 and §4.6.
package view

import (
	"fmt"

	"github.com/kylelemons/vis/internal/buffer"
	"github.com/kylelemons/vis/internal/linebuf"
	"github.com/kylelemons/vis/internal/screen"
)

// Tile names one of the fixed split positions a View may occupy on screen
// (spec.md §3 glossary "Tile").
type Tile int

const (
	TileFull Tile = iota
	TileTopHalf
	TileBottomHalf
	TileLeftHalf
	TileRightHalf
	TileTopLeftQuarter
	TileTopRightQuarter
	TileBottomLeftQuarter
	TileBottomRightQuarter
	TileEighth1
	TileEighth2
	TileEighth3
	TileEighth4
	TileEighth5
	TileEighth6
	TileEighth7
	TileEighth8
)

// Geometry is a tile's position and size in screen cells.
type Geometry struct {
	X, Y, Rows, Cols int
}

// Bounds computes (x, y, rows, cols) for tile within a console of size
// consoleRows × consoleCols (spec.md §4.6 "each tile's geometry is
// computed from the global console size and the tile code").
func Bounds(tile Tile, consoleRows, consoleCols int) Geometry {
	halfR, halfC := consoleRows/2, consoleCols/2
	switch tile {
	case TileFull:
		return Geometry{0, 0, consoleRows, consoleCols}
	case TileTopHalf:
		return Geometry{0, 0, halfR, consoleCols}
	case TileBottomHalf:
		return Geometry{0, halfR, consoleRows - halfR, consoleCols}
	case TileLeftHalf:
		return Geometry{0, 0, consoleRows, halfC}
	case TileRightHalf:
		return Geometry{halfC, 0, consoleRows, consoleCols - halfC}
	case TileTopLeftQuarter:
		return Geometry{0, 0, halfR, halfC}
	case TileTopRightQuarter:
		return Geometry{halfC, 0, halfR, consoleCols - halfC}
	case TileBottomLeftQuarter:
		return Geometry{0, halfR, consoleRows - halfR, halfC}
	case TileBottomRightQuarter:
		return Geometry{halfC, halfR, consoleRows - halfR, consoleCols - halfC}
	default:
		return eighthBounds(tile, consoleRows, consoleCols)
	}
}

func eighthBounds(tile Tile, consoleRows, consoleCols int) Geometry {
	halfR, halfC := consoleRows/2, consoleCols/2
	quarterR := halfR / 2
	n := int(tile - TileEighth1)
	col := 0
	if n%2 == 1 {
		col = halfC
	}
	row := (n / 2) * quarterR
	rows := quarterR
	if n/2 == 3 {
		rows = consoleRows - row
	}
	width := halfC
	if n%2 == 1 {
		width = consoleCols - halfC
	}
	return Geometry{col, row, rows, width}
}

// WorkingArea returns the interior rows/cols available for file content
// inside g, after a one-cell border and the status/filename/command-line
// rows (spec.md §4.6: `working_rows = rows-3-borders`, `working_cols =
// cols-2`).
func WorkingArea(g Geometry) (rows, cols int) {
	rows = g.Rows - 3 - 2 // top+bottom border, plus status+filename+cmd lines
	if rows < 0 {
		rows = 0
	}
	cols = g.Cols - 2
	if cols < 0 {
		cols = 0
	}
	return rows, cols
}

// VisualKind distinguishes the two visual-mode selection shapes (spec.md
// §4.6).
type VisualKind int

const (
	VisualNone VisualKind = iota
	VisualChar
	VisualBlock
)

// VisualState is the active visual-mode selection, if any.
type VisualState struct {
	Kind                         VisualKind
	StartLine, StartCol          int
	EndLine, EndCol              int
}

// Active reports whether a visual selection is in progress.
func (v VisualState) Active() bool { return v.Kind != VisualNone }

// Canonical returns the selection with Start <= End in reading order
// (spec.md §4.6 "after canonicalisation so start <= end").
func (v VisualState) Canonical() VisualState {
	if v.StartLine > v.EndLine || (v.StartLine == v.EndLine && v.StartCol > v.EndCol) {
		v.StartLine, v.EndLine = v.EndLine, v.StartLine
		v.StartCol, v.EndCol = v.EndCol, v.StartCol
	}
	return v
}

// View is a window-over-FileBuf projection: top/left scroll position,
// window-relative cursor, tile geometry, and visual-mode state (spec.md
// §3).
type View struct {
	FB *buffer.FileBuf

	TopLine, LeftCol     int
	CursorRow, CursorCol int

	Tile     Tile
	Geometry Geometry

	Visual VisualState

	comp *screen.Compositor
}

// New returns a View over fb, rendering into comp.
func New(fb *buffer.FileBuf, comp *screen.Compositor) *View {
	return &View{FB: fb, comp: comp}
}

// FileLine and FileCol convert the window-relative cursor to file-relative
// coordinates (spec.md §3).
func (v *View) FileLine() int { return v.TopLine + v.CursorRow }
func (v *View) FileCol() int  { return v.LeftCol + v.CursorCol }

// WorkingRows/WorkingCols report the content area size for this View's
// tile.
func (v *View) WorkingRows() int { r, _ := WorkingArea(v.Geometry); return r }
func (v *View) WorkingCols() int { _, c := WorkingArea(v.Geometry); return c }

// SetTile assigns tile within a consoleRows × consoleCols screen and
// recomputes Geometry.
func (v *View) SetTile(tile Tile, consoleRows, consoleCols int) {
	v.Tile = tile
	v.Geometry = Bounds(tile, consoleRows, consoleCols)
}

// moveTo sets the cursor to file-relative (fl, fc), scrolling the window
// if necessary so the cursor lands inside it, and reports whether a scroll
// happened (spec.md §4.6 motion contract step 1). It draws nothing and
// marks nothing dirty; the screen changes only on the next Redraw.
func (v *View) moveTo(fl, fc int) (scrolled bool) {
	wr, wc := v.WorkingRows(), v.WorkingCols()

	switch {
	case fl < v.TopLine:
		v.TopLine = fl
		scrolled = true
	case wr > 0 && fl >= v.TopLine+wr:
		v.TopLine = fl - wr + 1
		scrolled = true
	}
	switch {
	case fc < v.LeftCol:
		v.LeftCol = fc
		scrolled = true
	case wc > 0 && fc >= v.LeftCol+wc:
		v.LeftCol = fc - wc + 1
		scrolled = true
	}

	v.CursorRow = fl - v.TopLine
	v.CursorCol = fc - v.LeftCol

	if v.Visual.Active() {
		v.Visual.EndLine, v.Visual.EndCol = fl, fc
	}
	return scrolled
}

// Redraw draws the working area, borders, and cursor into the Compositor
// (spec.md §4.6 "a full update() draws borders, working area, status
// line, ... then positions the cursor"). It always performs a full repaint
// of the working area; there is no cell-by-cell redraw path for motions.
func (v *View) Redraw() {
	if v.comp == nil {
		return
	}
	screen.DrawBorder(v.comp, v.Geometry.X, v.Geometry.Y, v.Geometry.Cols, v.Geometry.Rows, screen.SimpleBorder)

	wr, wc := v.WorkingRows(), v.WorkingCols()
	x0, y0 := v.Geometry.X+1, v.Geometry.Y+1 // inside the one-cell border

	sel := v.Visual.Canonical()

	for r := 0; r < wr; r++ {
		fl := v.TopLine + r
		for c := 0; c < wc; c++ {
			fc := v.LeftCol + c
			var b byte = ' '
			var style linebuf.Style = linebuf.StyleEmpty
			if fl < v.FB.NumLines() {
				if fc < v.FB.LineLen(fl) {
					b = v.FB.Get(fl, fc)
					style = v.FB.GetStyle(fl, fc)
				}
			} else {
				b = '~'
			}
			if v.Visual.Active() && inSelection(sel, fl, fc) {
				style = linebuf.StyleVisual
			}
			v.comp.Set(y0+r, x0+c, b, style)
		}
	}

	v.drawInfoLines(x0, y0+wr, wc)
	v.comp.Set(y0+v.CursorRow, x0+v.CursorCol, cursorByte(v), linebuf.StyleNormal)
}

// drawInfoLines paints the three rows below the working area: status,
// file-name, and command line (spec.md §4.6).
func (v *View) drawInfoLines(x0, y0, wc int) {
	v.drawTextRow(x0, y0, wc, v.StatusLine())
	v.drawTextRow(x0, y0+1, wc, v.FB.FilePath)
	v.drawTextRow(x0, y0+2, wc, "")
}

func (v *View) drawTextRow(x0, y0, wc int, text string) {
	for c := 0; c < wc; c++ {
		b := byte(' ')
		if c < len(text) {
			b = text[c]
		}
		v.comp.Set(y0, x0+c, b, linebuf.StyleNormal)
	}
}

func cursorByte(v *View) byte {
	fl, fc := v.FileLine(), v.FileCol()
	if fl < v.FB.NumLines() && fc < v.FB.LineLen(fl) {
		return v.FB.Get(fl, fc)
	}
	return ' '
}

func inSelection(sel VisualState, line, col int) bool {
	if sel.Kind == VisualBlock {
		lo, hi := sel.StartCol, sel.EndCol
		if lo > hi {
			lo, hi = hi, lo
		}
		return line >= sel.StartLine && line <= sel.EndLine && col >= lo && col <= hi
	}
	if line < sel.StartLine || line > sel.EndLine {
		return false
	}
	if line == sel.StartLine && col < sel.StartCol {
		return false
	}
	if line == sel.EndLine && col > sel.EndCol {
		return false
	}
	return true
}

// StatusLine renders the status text shown below the working area:
// cursor position, file byte offset, percent through file, and the byte
// value under the cursor (spec.md §4.6).
func (v *View) StatusLine() string {
	fl, fc := v.FileLine(), v.FileCol()
	size := v.FB.GetSize()
	off := v.FB.GetCursorByte(fl, fc)
	pct := 0
	if size > 0 {
		pct = off * 100 / size
	}
	var under byte
	if fl < v.FB.NumLines() && fc < v.FB.LineLen(fl) {
		under = v.FB.Get(fl, fc)
	}
	return formatStatus(fl, fc, off, pct, under)
}

func formatStatus(line, col, byteOff, pct int, under byte) string {
	return fmt.Sprintf("%d,%d  byte %d  %d%%  0x%02x", line+1, col+1, byteOff, pct, under)
}
