package linebuf

// Style is a small integer naming a per-byte style class (spec.md §3). The
// high bit (StarBit) is an independent flag set by the star scanner, not by
// the Highlighter, so it survives re-highlighting until the next edit
// clears it.
type Style uint8

// Style classes. Highlighter writes the low bits; FileBuf's star scanner
// ORs in StarBit independently.
const (
	StyleNormal Style = iota
	StyleComment
	StyleDefine
	StyleConst
	StyleControl
	StyleVarType
	StyleNonASCII
	StyleVisual
	StyleDiffSame
	StyleDiffChanged
	StyleDiffInserted
	StyleDiffDeleted
	StyleEmpty

	styleClassBits = 5
	styleClassMask = Style(1<<styleClassBits) - 1

	// StarBit marks a byte as part of the current search-pattern match.
	StarBit = Style(1 << 7)
)

// Class strips the star bit, returning the underlying style class.
func (s Style) Class() Style { return s & styleClassMask }

// Star reports whether the star bit is set.
func (s Style) Star() bool { return s&StarBit != 0 }

// WithStar returns s with the star bit set.
func (s Style) WithStar() Style { return s | StarBit }

// WithoutStar returns s with the star bit cleared.
func (s Style) WithoutStar() Style { return s &^ StarBit }

// StyleLine is a parallel byte-ish sequence to a Line: same length, one
// Style per source byte (spec.md §3).
type StyleLine struct {
	s []Style
}

// NewStyle returns an empty StyleLine.
func NewStyle() *StyleLine { return &StyleLine{} }

// Len returns the number of styled positions.
func (s *StyleLine) Len() int { return len(s.s) }

// Get returns the style at i.
func (s *StyleLine) Get(i int) Style {
	mustIndex(i, len(s.s))
	return s.s[i]
}

// Set overwrites the style at i.
func (s *StyleLine) Set(i int, v Style) {
	mustIndex(i, len(s.s))
	s.s[i] = v
}

// Push appends a style.
func (s *StyleLine) Push(v Style) { s.s = append(s.s, v) }

// Pop removes and returns the last style.
func (s *StyleLine) Pop() Style {
	mustIndex(0, len(s.s))
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v
}

// Insert inserts v at position i.
func (s *StyleLine) Insert(i int, v Style) {
	mustIndex(i, len(s.s)+1)
	s.s = append(s.s, StyleNormal)
	copy(s.s[i+1:], s.s[i:])
	s.s[i] = v
}

// Remove removes and returns the style at i.
func (s *StyleLine) Remove(i int) Style {
	mustIndex(i, len(s.s))
	v := s.s[i]
	s.s = append(s.s[:i], s.s[i+1:]...)
	return v
}

// Clear empties the style line in place.
func (s *StyleLine) Clear() { s.s = s.s[:0] }

// Resize grows or shrinks the style line to exactly n elements, padding new
// positions with StyleNormal. Used by FileBuf to realign styles with lines
// before Highlighter runs (spec.md §3 invariant: transient misalignment
// must be fixed before render).
func (s *StyleLine) Resize(n int) {
	switch {
	case n < len(s.s):
		s.s = s.s[:n]
	case n > len(s.s):
		for len(s.s) < n {
			s.s = append(s.s, StyleNormal)
		}
	}
}

// ClearRange resets positions [lo,hi) to StyleNormal, used when FileBuf
// needs to wipe stale syntax styles without touching the star bit state of
// positions outside the edited region.
func (s *StyleLine) ClearRange(lo, hi int) {
	for i := lo; i < hi && i < len(s.s); i++ {
		if i >= 0 {
			s.s[i] = StyleNormal
		}
	}
}
