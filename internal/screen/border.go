package screen

import "github.com/kylelemons/vis/internal/linebuf"

// Border is the six glyphs a tile's one-cell frame is drawn from,
// adapted from the teacher's borderStyle byte table (term/term_frame.go)
// down to the single fixed one-cell border spec.md §4.6 requires (the
// teacher's tee/center glyphs, used for nested regions, have no
// counterpart here since tiles never nest).
type Border struct {
	Horizontal  byte
	Vertical    byte
	TopLeft     byte
	TopRight    byte
	BottomLeft  byte
	BottomRight byte
}

// SimpleBorder is the ASCII border glyph set, the default for terminals
// without extended character support.
var SimpleBorder = Border{
	Horizontal: '-', Vertical: '|',
	TopLeft: ',', TopRight: '.',
	BottomLeft: '`', BottomRight: '\'',
}

// DrawBorder paints a one-cell frame around the rectangle (x,y)-(x+w-1,
// y+h-1) using comp.Set, always in StyleNormal (spec.md §4.6 "a full
// update() draws borders").
func DrawBorder(comp *Compositor, x, y, w, h int, b Border) {
	if w < 2 || h < 2 {
		return
	}
	for c := x + 1; c < x+w-1; c++ {
		comp.Set(y, c, b.Horizontal, linebuf.StyleNormal)
		comp.Set(y+h-1, c, b.Horizontal, linebuf.StyleNormal)
	}
	for r := y + 1; r < y+h-1; r++ {
		comp.Set(r, x, b.Vertical, linebuf.StyleNormal)
		comp.Set(r, x+w-1, b.Vertical, linebuf.StyleNormal)
	}
	comp.Set(y, x, b.TopLeft, linebuf.StyleNormal)
	comp.Set(y, x+w-1, b.TopRight, linebuf.StyleNormal)
	comp.Set(y+h-1, x, b.BottomLeft, linebuf.StyleNormal)
	comp.Set(y+h-1, x+w-1, b.BottomRight, linebuf.StyleNormal)
}
