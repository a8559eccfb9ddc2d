package history

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntryInvert(t *testing.T) {
	tests := []struct {
		desc string
		in   Entry
		want Entry
	}{
		{
			"InsertChar",
			Entry{Kind: InsertChar, Line: 1, Col: 2, NewByte: 'x'},
			Entry{Kind: RemoveChar, Line: 1, Col: 2, OldByte: 'x'},
		},
		{
			"RemoveChar",
			Entry{Kind: RemoveChar, Line: 1, Col: 2, OldByte: 'x'},
			Entry{Kind: InsertChar, Line: 1, Col: 2, NewByte: 'x'},
		},
		{
			"InsertLine",
			Entry{Kind: InsertLine, Line: 3, LineContent: []byte("abc")},
			Entry{Kind: RemoveLine, Line: 3, LineContent: []byte("abc")},
		},
		{
			"SetChar",
			Entry{Kind: SetChar, Line: 0, Col: 0, OldByte: 'a', NewByte: 'b'},
			Entry{Kind: SetChar, Line: 0, Col: 0, OldByte: 'b', NewByte: 'a'},
		},
	}
	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.want, tc.in.Invert())
		})
	}
}

// fakeApplier records ApplyInverse calls and the last SetCursor, enough to
// assert Undo drives them in the right order.
type fakeApplier struct {
	applied []Entry
	cursor  Cursor
}

func (f *fakeApplier) ApplyInverse(e Entry) { f.applied = append(f.applied, e) }
func (f *fakeApplier) SetCursor(c Cursor)   { f.cursor = c }

func TestUndoAppliesInReverseOrder(t *testing.T) {
	h := New()
	h.Open(Cursor{Line: 0, Col: 0})
	h.Append(Entry{Kind: InsertChar, Line: 0, Col: 0, NewByte: 'a'}, Cursor{})
	h.Append(Entry{Kind: InsertChar, Line: 0, Col: 1, NewByte: 'b'}, Cursor{})
	h.Close()

	f := &fakeApplier{}
	ok := h.Undo(f)
	require.True(t, ok)
	require.Len(t, f.applied, 2)
	// Last-applied entry must be the inverse of the first-inserted char.
	require.Equal(t, EntryKind(RemoveChar), f.applied[0].Kind)
	require.Equal(t, 1, f.applied[0].Col)
	require.Equal(t, 0, f.applied[1].Col)
	require.Equal(t, Cursor{Line: 0, Col: 0}, f.cursor)
}

func TestUndoEmptyIsNoOp(t *testing.T) {
	h := New()
	f := &fakeApplier{}
	require.False(t, h.Undo(f))
}

func TestUndoAllDrainsStack(t *testing.T) {
	h := New()
	for i := 0; i < 3; i++ {
		h.Open(Cursor{})
		h.Append(Entry{Kind: InsertChar, Line: 0, Col: i, NewByte: 'x'}, Cursor{})
		h.Close()
	}
	require.Equal(t, 3, h.Len())
	f := &fakeApplier{}
	h.UndoAll(f)
	require.Equal(t, 0, h.Len())
	require.False(t, h.Undo(f))
}

func TestAppendWhileDisabledIsDropped(t *testing.T) {
	h := New()
	h.Enabled = false
	h.Append(Entry{Kind: InsertChar}, Cursor{})
	require.False(t, h.IsOpen())
}

func TestOpenIsIdempotent(t *testing.T) {
	h := New()
	h.Open(Cursor{Line: 1, Col: 1})
	h.Open(Cursor{Line: 9, Col: 9})
	h.Append(Entry{Kind: InsertChar}, Cursor{})
	h.Close()
	require.Equal(t, Cursor{Line: 1, Col: 1}, h.stack[0].Open)
}
