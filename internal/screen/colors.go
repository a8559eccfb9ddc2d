package screen

import "github.com/kylelemons/vis/internal/linebuf"

// RGB is a terminal colour in the basic 8/16-colour ANSI palette (spec.md
// §4.5 "swappable colour scheme table"); the core only ever needs a small
// fixed set, so a named palette index is enough.
type RGB int

const (
	ColorDefault RGB = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Attr names one (fg, bg, bold) triple a Style maps to.
type Attr struct {
	FG   RGB
	BG   RGB
	Bold bool
}

// Scheme maps every linebuf.Style class to an Attr. Two Schemes exist:
// Normal (used for ordinary file views) and DiffLong (used for the
// longer-background side of a diff view, per spec.md §4.5).
type Scheme [linebuf.StyleEmpty + 1]Attr

// Normal is the default colour scheme.
var Normal = Scheme{
	linebuf.StyleNormal:       {FG: ColorWhite, BG: ColorDefault},
	linebuf.StyleComment:      {FG: ColorCyan, BG: ColorDefault},
	linebuf.StyleDefine:       {FG: ColorMagenta, BG: ColorDefault},
	linebuf.StyleConst:        {FG: ColorRed, BG: ColorDefault},
	linebuf.StyleControl:      {FG: ColorYellow, BG: ColorDefault, Bold: true},
	linebuf.StyleVarType:      {FG: ColorGreen, BG: ColorDefault},
	linebuf.StyleNonASCII:     {FG: ColorBlack, BG: ColorRed},
	linebuf.StyleVisual:       {FG: ColorBlack, BG: ColorWhite},
	linebuf.StyleDiffSame:     {FG: ColorWhite, BG: ColorDefault},
	linebuf.StyleDiffChanged:  {FG: ColorBlack, BG: ColorYellow},
	linebuf.StyleDiffInserted: {FG: ColorBlack, BG: ColorGreen},
	linebuf.StyleDiffDeleted:  {FG: ColorBlack, BG: ColorRed},
	linebuf.StyleEmpty:        {FG: ColorBlue, BG: ColorDefault},
}

// DiffLong is Normal with a black background for Normal and DiffSame text
// (spec.md §4.5). A Compositor applies one scheme to the whole screen, so
// installing DiffLong, as cmd/vis does in diff mode, recolours both panes;
// the long side is not coloured differently from the short side.
var DiffLong = func() Scheme {
	s := Normal
	s[linebuf.StyleNormal] = Attr{FG: ColorWhite, BG: ColorBlack}
	s[linebuf.StyleDiffSame] = Attr{FG: ColorWhite, BG: ColorBlack}
	return s
}()

// Attr looks up the Attr for a style's class, ignoring the star bit (the
// star bit is rendered as a distinct overlay by the caller, not folded
// into the scheme table).
func (s Scheme) Attr(style linebuf.Style) Attr { return s[style.Class()] }
