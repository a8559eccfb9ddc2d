// Package screen implements Compositor, the double-buffered terminal cell
// grid described in spec.md §3 and §4.5.
package screen

import (
	"io"

	"github.com/kylelemons/vis/internal/codes"
	"github.com/kylelemons/vis/internal/linebuf"
	"github.com/kylelemons/vis/internal/rawterm"
)

// styleUnknown is a sentinel style_written value meaning "never painted",
// distinct from any real linebuf.Style, forcing the first update() to
// repaint every touched cell.
const styleUnknown = linebuf.Style(0xFF)

// Cell is one character-cell's content.
type Cell struct {
	Char  byte
	Style linebuf.Style
}

// Compositor is the (chars_pending, styles_pending) vs (chars_written,
// styles_written) double buffer from spec.md §3/§4.5.
type Compositor struct {
	rows, cols int

	pending []Cell
	written []Cell

	rowTouched []bool

	out io.Writer

	scheme Scheme

	curStyle    linebuf.Style
	curStyleSet bool
	curRow      int
	curCol      int
	curPosSet   bool

	outBuf []byte
}

// New returns a Compositor writing to out, sized rows × cols.
func New(out io.Writer, rows, cols int) *Compositor {
	c := &Compositor{out: out, scheme: Normal}
	c.Resize(rows, cols)
	return c
}

// SetScheme installs the colour scheme used for every cell (spec.md §4.5).
// The Compositor holds a single scheme; it does not colour one diff pane
// differently from the other.
func (c *Compositor) SetScheme(s Scheme) { c.scheme = s }

func (c *Compositor) idx(row, col int) int { return row*c.cols + col }

// Resize reallocates the grids for a new terminal size and invalidates,
// forcing a full repaint (spec.md §4.5 "get_window_size").
func (c *Compositor) Resize(rows, cols int) {
	c.rows, c.cols = rows, cols
	n := rows * cols
	c.pending = make([]Cell, n)
	c.written = make([]Cell, n)
	c.rowTouched = make([]bool, rows)
	c.Invalidate()
}

// Rows and Cols report the current grid size.
func (c *Compositor) Rows() int { return c.rows }
func (c *Compositor) Cols() int { return c.cols }

// Set writes one pending cell. It never touches the bottom-right cell,
// which some terminals scroll on write (spec.md §4.5).
func (c *Compositor) Set(row, col int, b byte, style linebuf.Style) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return
	}
	if row == c.rows-1 && col == c.cols-1 {
		return
	}
	c.pending[c.idx(row, col)] = Cell{Char: b, Style: style}
	c.rowTouched[row] = true
}

// Invalidate marks every cell's written-style Unknown and every row
// touched, forcing Update to repaint the full screen next time.
func (c *Compositor) Invalidate() {
	for i := range c.written {
		c.written[i].Style = styleUnknown
	}
	for r := range c.rowTouched {
		c.rowTouched[r] = true
	}
	c.curPosSet = false
	c.curStyleSet = false
}

// Update scans touched rows and enqueues minimal output for cells whose
// pending content differs from what's already written, or whose written
// style is Unknown (spec.md §4.5). Returns true if anything was enqueued.
func (c *Compositor) Update() bool {
	any := false
	for row := 0; row < c.rows; row++ {
		if !c.rowTouched[row] {
			continue
		}
		for col := 0; col < c.cols; col++ {
			if row == c.rows-1 && col == c.cols-1 {
				continue
			}
			i := c.idx(row, col)
			p, w := c.pending[i], c.written[i]
			if p == w && w.Style != styleUnknown {
				continue
			}
			c.emitCell(row, col, p)
			c.written[i] = p
			any = true
		}
		c.rowTouched[row] = false
	}
	return any
}

func (c *Compositor) emitCell(row, col int, cell Cell) {
	if !c.curPosSet || c.curRow != row || c.curCol != col {
		c.outBuf = append(c.outBuf, codes.CursorPos(row+1, col+1)...)
		c.curPosSet = true
	}
	if !c.curStyleSet || c.curStyle != cell.Style {
		attr := c.scheme.Attr(cell.Style)
		c.outBuf = append(c.outBuf, sgrFor(attr)...)
		c.curStyle = cell.Style
		c.curStyleSet = true
	}
	c.outBuf = append(c.outBuf, cell.Char)
	c.curCol = col + 1
	c.curRow = row
	if c.curCol >= c.cols {
		c.curPosSet = false // next write must reposition explicitly
	}
}

func sgrFor(a Attr) string {
	params := []int{0}
	if a.Bold {
		params = append(params, 1)
	}
	if a.FG != ColorDefault {
		params = append(params, 30+int(a.FG)-1)
	}
	if a.BG != ColorDefault {
		params = append(params, 40+int(a.BG)-1)
	}
	return codes.SGR(params...)
}

// Flush writes the accumulated output buffer to the terminal in a single
// I/O call and clears it (spec.md §4.5).
func (c *Compositor) Flush() error {
	if len(c.outBuf) == 0 {
		return nil
	}
	_, err := c.out.Write(c.outBuf)
	c.outBuf = c.outBuf[:0]
	return err
}

// GetWindowSize queries fd's terminal size (spec.md §4.5 "get_window_size").
// On a size change it reallocates the grids and invalidates; WindowSize
// query failures (spec.md §7) are returned for the caller to retry next
// tick, leaving the existing grids untouched.
func (c *Compositor) GetWindowSize(fd int) error {
	w, h, err := rawterm.GetSize(fd)
	if err != nil {
		return err
	}
	if w != c.cols || h != c.rows {
		c.Resize(h, w)
	}
	return nil
}

// Snapshot returns copies of the pending and written grids, for tests
// asserting P4 (Compositor minimality): after Update, pending == written
// for every cell of a touched row except the bottom-right cell, which
// Update never writes.
func (c *Compositor) Snapshot() (pending, writtenCells []Cell) {
	pending = append([]Cell(nil), c.pending...)
	writtenCells = append([]Cell(nil), c.written...)
	return
}
