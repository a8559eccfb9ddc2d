package view

import (
	"github.com/kylelemons/vis/internal/history"
	"github.com/kylelemons/vis/internal/registers"
)

// StartVisual begins a visual-mode selection of the given kind anchored
// at the current cursor position (spec.md §4.6).
func (v *View) StartVisual(kind VisualKind) {
	fl, fc := v.FileLine(), v.FileCol()
	v.Visual = VisualState{Kind: kind, StartLine: fl, StartCol: fc, EndLine: fl, EndCol: fc}
}

// StopVisual exits visual mode without acting on the selection (e.g. on
// Esc). Per spec.md P6, this must never touch FileBuf content or open a
// checkpoint — and it doesn't, since it only clears View state.
func (v *View) StopVisual() { v.Visual = VisualState{} }

// VisualYank copies the canonicalised selection into register name and
// exits visual mode without modifying the FileBuf (spec.md §4.6 "yank
// stores content into a register").
func (v *View) VisualYank(regs *registers.Set, name byte) {
	sel := v.Visual.Canonical()
	content := v.collectSelection(sel)
	regs.Put(name, content)
	v.StopVisual()
}

// VisualDelete removes the canonicalised selection via FileBuf ops
// grouped in one checkpoint, yanks it first, and exits visual mode
// (spec.md §4.6 "delete removes via FileBuf ops grouped in one
// checkpoint").
func (v *View) VisualDelete(regs *registers.Set, name byte) {
	sel := v.Visual.Canonical()
	content := v.collectSelection(sel)
	regs.Put(name, content)

	v.FB.OpenCheckpoint(history.Cursor{Line: sel.StartLine, Col: sel.StartCol})
	if sel.Kind == VisualBlock {
		v.deleteBlock(sel)
	} else {
		v.deleteCharRange(sel)
	}
	v.FB.CloseCheckpoint()

	v.moveTo(sel.StartLine, sel.StartCol)
	v.StopVisual()
}

// VisualTilde toggles the case of every letter in the selection, grouped
// in one checkpoint (spec.md "~").
func (v *View) VisualTilde() {
	sel := v.Visual.Canonical()
	v.FB.OpenCheckpoint(history.Cursor{Line: sel.StartLine, Col: sel.StartCol})
	v.forEachSelectedByte(sel, func(l, c int) {
		b := v.FB.Get(l, c)
		v.FB.Set(l, c, toggleCase(b), true)
	})
	v.FB.CloseCheckpoint()
	v.StopVisual()
}

func toggleCase(b byte) byte {
	switch {
	case 'a' <= b && b <= 'z':
		return b - ('a' - 'A')
	case 'A' <= b && b <= 'Z':
		return b + ('a' - 'A')
	default:
		return b
	}
}

func (v *View) forEachSelectedByte(sel VisualState, f func(line, col int)) {
	if sel.Kind == VisualBlock {
		lo, hi := sel.StartCol, sel.EndCol
		if lo > hi {
			lo, hi = hi, lo
		}
		for l := sel.StartLine; l <= sel.EndLine; l++ {
			for c := lo; c <= hi && c < v.FB.LineLen(l); c++ {
				f(l, c)
			}
		}
		return
	}
	for l := sel.StartLine; l <= sel.EndLine; l++ {
		lo, hi := 0, v.FB.LineLen(l)-1
		if l == sel.StartLine {
			lo = sel.StartCol
		}
		if l == sel.EndLine {
			hi = sel.EndCol
		}
		for c := lo; c <= hi; c++ {
			f(l, c)
		}
	}
}

func (v *View) collectSelection(sel VisualState) registers.Content {
	var lines [][]byte
	if sel.Kind == VisualBlock {
		lo, hi := sel.StartCol, sel.EndCol
		if lo > hi {
			lo, hi = hi, lo
		}
		for l := sel.StartLine; l <= sel.EndLine; l++ {
			var buf []byte
			for c := lo; c <= hi && c < v.FB.LineLen(l); c++ {
				buf = append(buf, v.FB.Get(l, c))
			}
			lines = append(lines, buf)
		}
		return registers.Content{Lines: lines, Linewise: false}
	}
	for l := sel.StartLine; l <= sel.EndLine; l++ {
		lo, hi := 0, v.FB.LineLen(l)-1
		if l == sel.StartLine {
			lo = sel.StartCol
		}
		if l == sel.EndLine {
			hi = sel.EndCol
		}
		var buf []byte
		for c := lo; c <= hi; c++ {
			buf = append(buf, v.FB.Get(l, c))
		}
		lines = append(lines, buf)
	}
	return registers.Content{Lines: lines, Linewise: false}
}

func (v *View) deleteCharRange(sel VisualState) {
	if sel.StartLine == sel.EndLine {
		for c := sel.EndCol; c >= sel.StartCol; c-- {
			v.FB.RemoveChar(sel.StartLine, c)
		}
		return
	}
	// Remove the selected head of the last line, the whole of the interior
	// lines, then the selected tail of the first line, then join what
	// remains.
	for c := sel.EndCol; c >= 0; c-- {
		if c < v.FB.LineLen(sel.EndLine) {
			v.FB.RemoveChar(sel.EndLine, c)
		}
	}
	for l := sel.EndLine - 1; l > sel.StartLine; l-- {
		v.FB.RemoveLine(l)
	}
	tail := v.FB.RemoveLine(sel.StartLine + 1)
	for c := sel.StartCol; c < v.FB.LineLen(sel.StartLine); {
		v.FB.RemoveChar(sel.StartLine, c)
	}
	v.FB.AppendLineToLine(sel.StartLine, tail)
}

func (v *View) deleteBlock(sel VisualState) {
	lo, hi := sel.StartCol, sel.EndCol
	if lo > hi {
		lo, hi = hi, lo
	}
	for l := sel.StartLine; l <= sel.EndLine; l++ {
		for c := hi; c >= lo && c < v.FB.LineLen(l); c-- {
			v.FB.RemoveChar(l, c)
		}
	}
}

// VisualLowercaseX deletes the selection without yanking into a named
// register beyond the default (spec.md "x" on a visual selection behaves
// like VisualDelete into the unnamed register).
func (v *View) VisualLowercaseX(regs *registers.Set) { v.VisualDelete(regs, registers.Default[0]) }
