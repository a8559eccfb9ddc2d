// Package history implements ChangeHist: an ordered journal of reversible
// edit records, grouped into undo checkpoints (spec.md §3, §4.4).
package history

// EntryKind enumerates the low-level reversible edit records.
type EntryKind int

const (
	InsertChar EntryKind = iota
	RemoveChar
	InsertLine
	RemoveLine
	SetChar
)

// Entry is one reversible low-level edit. Which fields are meaningful
// depends on Kind, mirroring spec.md §3's ChangeHist entry union.
type Entry struct {
	Kind EntryKind

	Line int
	Col  int

	// OldByte: RemoveChar, SetChar. NewByte: InsertChar, SetChar.
	OldByte byte
	NewByte byte

	// RemoveLine: the full content of the removed line, so it can be
	// reinserted verbatim by Invert.
	LineContent []byte
}

// Invert returns the entry that undoes e, per the inversion rules in
// spec.md §4.4:
//
//	InsertChar(l,c)      <-> RemoveChar(l,c,b)
//	InsertLine(l)         <-> RemoveLine(l, content)
//	SetChar(l,c,old,new) <-> SetChar(l,c,new,old)
func (e Entry) Invert() Entry {
	switch e.Kind {
	case InsertChar:
		return Entry{Kind: RemoveChar, Line: e.Line, Col: e.Col, OldByte: e.NewByte}
	case RemoveChar:
		return Entry{Kind: InsertChar, Line: e.Line, Col: e.Col, NewByte: e.OldByte}
	case InsertLine:
		return Entry{Kind: RemoveLine, Line: e.Line, LineContent: e.LineContent}
	case RemoveLine:
		return Entry{Kind: InsertLine, Line: e.Line, LineContent: e.LineContent}
	case SetChar:
		return Entry{Kind: SetChar, Line: e.Line, Col: e.Col, OldByte: e.NewByte, NewByte: e.OldByte}
	}
	panic("history: invalid entry kind")
}

// Cursor is the cursor position recorded when a checkpoint was opened, so
// Undo can restore it (spec.md §4.4).
type Cursor struct {
	Line, Col int
}

// Checkpoint is one undo-visible group of entries, plus the cursor position
// at the time it was opened.
type Checkpoint struct {
	Entries []Entry
	Open    Cursor
	closed  bool
}

// Applier is the subset of FileBuf's mutating primitives ChangeHist needs
// in order to apply an entry's inverse during Undo, with history recording
// disabled (spec.md §4.4 "applying to FileBuf with save_history disabled").
type Applier interface {
	ApplyInverse(Entry)
	SetCursor(Cursor)
}

// Hist is the checkpoint stack for one FileBuf.
type Hist struct {
	stack   []*Checkpoint
	current *Checkpoint
	// Enabled mirrors FileBuf's save_history flag: Append is a no-op while
	// false (used while an undo is itself being applied).
	Enabled bool
}

// New returns an empty, enabled Hist.
func New() *Hist {
	return &Hist{Enabled: true}
}

// Open starts a new checkpoint recording cur as its open position. Calling
// Open while one is already open is a no-op (spec.md §4.4 "idempotent while
// one is open").
func (h *Hist) Open(cur Cursor) {
	if h.current != nil {
		return
	}
	h.current = &Checkpoint{Open: cur}
}

// Append adds entry to the current checkpoint, implicitly opening one at
// cur if none is open and history is enabled. If history is disabled, the
// entry is dropped (this is how ChangeHist avoids recording the edits it
// makes while applying an Undo).
func (h *Hist) Append(entry Entry, cur Cursor) {
	if !h.Enabled {
		return
	}
	if h.current == nil {
		h.Open(cur)
	}
	h.current.Entries = append(h.current.Entries, entry)
}

// Close marks the current checkpoint complete and pushes it onto the undo
// stack. Closing with no entries recorded still pushes an empty checkpoint
// (callers that never mutated anything should not call Close).
func (h *Hist) Close() {
	if h.current == nil {
		return
	}
	h.current.closed = true
	h.stack = append(h.stack, h.current)
	h.current = nil
}

// Discard abandons the currently-open checkpoint without pushing it (used
// when a keystroke starts an edit group but ends up being a no-op).
func (h *Hist) Discard() {
	h.current = nil
}

// IsOpen reports whether a checkpoint is currently open.
func (h *Hist) IsOpen() bool { return h.current != nil }

// Len reports how many closed checkpoints are on the stack.
func (h *Hist) Len() int { return len(h.stack) }

// Undo closes any open checkpoint, then pops the most recent closed one and
// applies each entry's inverse to a in reverse order, with history
// recording disabled for the duration. Returns false if there was nothing
// to undo (spec.md §4.4 "no-op if history empty").
func (h *Hist) Undo(a Applier) bool {
	if h.current != nil {
		h.Close()
	}
	if len(h.stack) == 0 {
		return false
	}
	cp := h.stack[len(h.stack)-1]
	h.stack = h.stack[:len(h.stack)-1]

	prevEnabled := h.Enabled
	h.Enabled = false
	for i := len(cp.Entries) - 1; i >= 0; i-- {
		a.ApplyInverse(cp.Entries[i].Invert())
	}
	h.Enabled = prevEnabled

	a.SetCursor(cp.Open)
	return true
}

// UndoAll repeats Undo until the checkpoint stack is empty.
func (h *Hist) UndoAll(a Applier) {
	for h.Undo(a) {
	}
}
