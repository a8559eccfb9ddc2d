package view

// IsWordIdent reports whether b can appear inside a word-class token
// (letters, digits, underscore), grounded in the original's
// IsWord_Ident/IsSpace/NotSpace three-way byte classification used to
// drive word motions (SPEC_FULL.md §C).
func IsWordIdent(b byte) bool {
	return b == '_' || ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z') || ('0' <= b && b <= '9')
}

// IsSpace reports whether b is blank (space or tab).
func IsSpace(b byte) bool { return b == ' ' || b == '\t' }

// NotSpace is the third class: punctuation that is neither whitespace nor
// word-class, e.g. "+", "(", ";".
func NotSpace(b byte) bool { return !IsSpace(b) && !IsWordIdent(b) }

func classOf(b byte) int {
	switch {
	case IsWordIdent(b):
		return 2
	case IsSpace(b):
		return 0
	default:
		return 1
	}
}

// GoRight moves the cursor one column right, clamped to the current
// line's length, wrapping to the next line's start only via GoDown/w
// (spec.md §4.6 "one-character ... motions").
func (v *View) GoRight() {
	fl, fc := v.FileLine(), v.FileCol()
	if fc < v.FB.LineLen(fl) {
		v.moveTo(fl, fc+1)
	}
}

// GoLeft moves the cursor one column left.
func (v *View) GoLeft() {
	fl, fc := v.FileLine(), v.FileCol()
	if fc > 0 {
		v.moveTo(fl, fc-1)
	}
}

// GoDown moves the cursor one line down, clamping column to the new
// line's length.
func (v *View) GoDown() {
	fl, fc := v.FileLine(), v.FileCol()
	if fl+1 < v.FB.NumLines() {
		nc := fc
		if ll := v.FB.LineLen(fl + 1); nc > ll {
			nc = maxInt(0, ll-1)
		}
		v.moveTo(fl+1, nc)
	}
}

// GoUp moves the cursor one line up, clamping column to the new line's
// length.
func (v *View) GoUp() {
	fl, fc := v.FileLine(), v.FileCol()
	if fl > 0 {
		nc := fc
		if ll := v.FB.LineLen(fl - 1); nc > ll {
			nc = maxInt(0, ll-1)
		}
		v.moveTo(fl-1, nc)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// GoToWordEnd finds the end of the current or next word, per the
// original's word/WORD motion family (spec.md §4.6, §9.1).
func (v *View) GoToWordEnd() {
	fl, fc := v.FileLine(), v.FileCol()
	fl, fc = nextWordBoundary(v.FB, fl, fc, true)
	v.moveTo(fl, fc)
}

// GoToNextWord moves to the start of the next word.
func (v *View) GoToNextWord() {
	fl, fc := v.FileLine(), v.FileCol()
	fl, fc = nextWordBoundary(v.FB, fl, fc, false)
	v.moveTo(fl, fc)
}

// GoToPrevWord moves to the start of the previous word.
func (v *View) GoToPrevWord() {
	fl, fc := v.FileLine(), v.FileCol()
	fl, fc = prevWordBoundary(v.FB, fl, fc)
	v.moveTo(fl, fc)
}

// lineBytes is the minimal FileBuf surface word motions need.
type lineBytes interface {
	NumLines() int
	LineLen(int) int
	Get(int, int) byte
}

func nextWordBoundary(fb lineBytes, line, col int, endOfWord bool) (int, int) {
	n := fb.NumLines()
	if line >= n {
		return line, col
	}
	ll := fb.LineLen(line)
	if col >= ll {
		if line+1 < n {
			return nextWordBoundary(fb, line+1, 0, endOfWord)
		}
		return line, col
	}
	startClass := classOf(fb.Get(line, col))

	c := col
	if endOfWord {
		c++
	}
	sawBlank := false
	for {
		if c >= fb.LineLen(line) {
			if line+1 >= n {
				return line, maxInt(0, fb.LineLen(line)-1)
			}
			line++
			c = 0
			sawBlank = true
			if fb.LineLen(line) == 0 {
				return line, 0
			}
			continue
		}
		cls := classOf(fb.Get(line, c))
		if endOfWord {
			if cls != 0 && (c+1 >= fb.LineLen(line) || classOf(fb.Get(line, c+1)) != cls) {
				return line, c
			}
		} else {
			if cls != 0 && (cls != startClass || sawBlank) {
				return line, c
			}
			if cls == 0 {
				sawBlank = true
			}
		}
		c++
	}
}

func prevWordBoundary(fb lineBytes, line, col int) (int, int) {
	c := col - 1
	for {
		if c < 0 {
			if line == 0 {
				return 0, 0
			}
			line--
			c = fb.LineLen(line) - 1
			if c < 0 {
				return line, 0
			}
			continue
		}
		cls := classOf(fb.Get(line, c))
		if cls != 0 && (c == 0 || classOf(fb.Get(line, c-1)) != cls) {
			return line, c
		}
		c--
	}
}

var bracketPairs = map[byte]byte{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
}

// GoToOppositeBracket scans forward (for an opening bracket) or backward
// (for a closing one) for the matching bracket, tracking nesting depth
// (spec.md §4.6 "bracket-match motions"; SPEC_FULL.md §C "%").
func (v *View) GoToOppositeBracket() bool {
	fl, fc := v.FileLine(), v.FileCol()
	if fc >= v.FB.LineLen(fl) {
		return false
	}
	b := v.FB.Get(fl, fc)
	match, ok := bracketPairs[b]
	if !ok {
		return false
	}
	forward := b == '(' || b == '[' || b == '{'

	depth := 1
	line, col := fl, fc
	for {
		if forward {
			col++
			if col >= v.FB.LineLen(line) {
				line++
				col = 0
				if line >= v.FB.NumLines() {
					return false
				}
				continue
			}
		} else {
			col--
			if col < 0 {
				line--
				if line < 0 {
					return false
				}
				col = v.FB.LineLen(line) - 1
				if col < 0 {
					continue
				}
			}
		}
		cb := v.FB.Get(line, col)
		switch {
		case cb == b:
			depth++
		case cb == match:
			depth--
			if depth == 0 {
				v.moveTo(line, col)
				return true
			}
		}
	}
}

// GoToFileTop/GoToFileBottom implement `gg`/`G` (file motions).
func (v *View) GoToFileTop()    { v.moveTo(0, 0) }
func (v *View) GoToFileBottom() { v.moveTo(maxInt(0, v.FB.NumLines()-1), 0) }

// GoPageDown/GoPageUp implement screen-page motions, scrolling by the
// working area's row count.
func (v *View) GoPageDown() {
	fl := v.FileLine()
	n := v.FB.NumLines()
	target := fl + maxInt(1, v.WorkingRows())
	if target >= n {
		target = n - 1
	}
	v.moveTo(target, v.FileCol())
}

func (v *View) GoPageUp() {
	fl := v.FileLine()
	target := fl - maxInt(1, v.WorkingRows())
	if target < 0 {
		target = 0
	}
	v.moveTo(target, v.FileCol())
}

// FindForward searches forward from just after the cursor for pattern,
// wrapping at EOF, implementing the `n`/search-next motion (spec.md
// §4.7 "pattern search forwards/backwards ... with wrap").
func (v *View) FindForward(pattern []byte) bool {
	line, col := v.FileLine(), v.FileCol()+1
	n := v.FB.NumLines()
	for i := 0; i <= n; i++ {
		l := (line + i) % n
		start := 0
		if i == 0 {
			start = col
		}
		if at, ok := findInLine(v.FB, l, start, pattern); ok {
			v.moveTo(l, at)
			return true
		}
	}
	return false
}

// FindBackward mirrors FindForward searching backward.
func (v *View) FindBackward(pattern []byte) bool {
	line, col := v.FileLine(), v.FileCol()-1
	n := v.FB.NumLines()
	for i := 0; i <= n; i++ {
		l := ((line-i)%n + n) % n
		end := v.FB.LineLen(l)
		if i == 0 {
			end = col + 1
			if end < 0 {
				end = 0
			}
		}
		if at, ok := findInLineBackward(v.FB, l, end, pattern); ok {
			v.moveTo(l, at)
			return true
		}
	}
	return false
}

func findInLine(fb lineBytes, line, from int, pattern []byte) (int, bool) {
	ll := fb.LineLen(line)
	if len(pattern) == 0 {
		return 0, false
	}
	for c := from; c+len(pattern) <= ll; c++ {
		if matchAt(fb, line, c, pattern) {
			return c, true
		}
	}
	return 0, false
}

func findInLineBackward(fb lineBytes, line, upTo int, pattern []byte) (int, bool) {
	if len(pattern) == 0 {
		return 0, false
	}
	for c := upTo - len(pattern); c >= 0; c-- {
		if matchAt(fb, line, c, pattern) {
			return c, true
		}
	}
	return 0, false
}

func matchAt(fb lineBytes, line, col int, pattern []byte) bool {
	for i, b := range pattern {
		if fb.Get(line, col+i) != b {
			return false
		}
	}
	return true
}
