package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kylelemons/vis/internal/history"
	"github.com/kylelemons/vis/internal/linebuf"
)

func newTestBuf() *FileBuf {
	return New(linebuf.NewPool())
}

func bufLines(fb *FileBuf) []string {
	out := make([]string, fb.NumLines())
	for i := range out {
		b := make([]byte, fb.LineLen(i))
		for c := range b {
			b[c] = fb.Get(i, c)
		}
		out[i] = string(b)
	}
	return out
}

// TestBasicInsertUndo covers spec scenario 1: iabc<ESC>u on an empty file.
func TestBasicInsertUndo(t *testing.T) {
	fb := newTestBuf()
	fb.OpenCheckpoint(history.Cursor{})
	for i, b := range []byte("abc") {
		fb.InsertChar(0, i, b)
	}
	fb.CloseCheckpoint()
	require.Equal(t, []string{"abc"}, bufLines(fb))

	require.True(t, fb.Undo())
	require.Equal(t, []string{""}, bufLines(fb))
}

// TestLineJoin covers spec scenario 2: J on ["foo","bar"] from (0,0).
func TestLineJoin(t *testing.T) {
	fb := newTestBuf()
	fb.RemoveLine(0)
	fb.InsertLine(0, []byte("foo"))
	fb.InsertLine(1, []byte("bar"))

	fb.OpenCheckpoint(history.Cursor{Line: 0, Col: 0})
	other := append([]byte{' '}, fb.lines[1].Bytes()...)
	fb.AppendLineToLine(0, other)
	fb.RemoveLine(1)
	fb.CloseCheckpoint()

	require.Equal(t, []string{"foo bar"}, bufLines(fb))
}

// TestYankPutLine covers spec scenario 3: yyp on ["a","b","c"] from (0,0).
func TestYankPutLine(t *testing.T) {
	fb := newTestBuf()
	fb.RemoveLine(0)
	fb.InsertLine(0, []byte("a"))
	fb.InsertLine(1, []byte("b"))
	fb.InsertLine(2, []byte("c"))

	yanked := append([]byte(nil), fb.lines[0].Bytes()...)

	fb.OpenCheckpoint(history.Cursor{Line: 0, Col: 0})
	fb.InsertLine(1, yanked)
	fb.CloseCheckpoint()

	require.Equal(t, []string{"a", "a", "b", "c"}, bufLines(fb))
}

func TestUndoAllRestoresEmptyBuffer(t *testing.T) {
	fb := newTestBuf()
	for i := 0; i < 3; i++ {
		fb.OpenCheckpoint(history.Cursor{})
		fb.PushChar(0, byte('a'+i))
		fb.CloseCheckpoint()
	}
	require.Equal(t, []string{"abc"}, bufLines(fb))
	fb.UndoAll()
	require.Equal(t, []string{""}, bufLines(fb))
	// R2: undo after undo_all is a no-op.
	require.False(t, fb.Undo())
}

func TestHiTouchedClampsOnEdit(t *testing.T) {
	fb := newTestBuf()
	fb.InsertLine(1, []byte("x"))
	fb.InsertLine(2, []byte("y"))
	fb.hiTouched = 5
	fb.InsertChar(1, 0, 'z')
	require.Equal(t, 1, fb.hiTouched)
}

type countingWatcher struct{ touches []int }

func (c *countingWatcher) Touched(line int) { c.touches = append(c.touches, line) }

func TestAddViewNotifiesOnEdit(t *testing.T) {
	fb := newTestBuf()
	w := &countingWatcher{}
	fb.AddView(w)
	fb.InsertChar(0, 0, 'x')
	require.Equal(t, []int{0}, w.touches)
}

func TestReadWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644))

	fb, err := ReadFile(path, linebuf.NewPool())
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two", "three"}, bufLines(fb))
	require.True(t, fb.TrailingNewline)

	out := filepath.Join(dir, "out.txt")
	fb.FilePath = out
	require.NoError(t, fb.Write())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestReadFileNoTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	fb, err := ReadFile(path, linebuf.NewPool())
	require.NoError(t, err)
	require.False(t, fb.TrailingNewline)
	require.Equal(t, []string{"abc"}, bufLines(fb))
}

func TestReadDirListing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	fb, err := ReadFile(dir, linebuf.NewPool())
	require.NoError(t, err)
	require.True(t, fb.IsDirectory)
	require.Equal(t, []string{"a.txt", "b.txt", "sub/"}, bufLines(fb))
}

func TestFindFileTypeByExtension(t *testing.T) {
	lang, ok := FindFileType("main.go")
	require.True(t, ok)
	require.Equal(t, "go", lang.Name)

	_, ok = FindFileType("README")
	require.False(t, ok)
}

func TestSetCoalescesIntoOpenCheckpoint(t *testing.T) {
	fb := newTestBuf()
	fb.InsertLine(0, []byte("ab"))
	fb.RemoveLine(1)
	fb.CloseCheckpoint()

	fb.OpenCheckpoint(history.Cursor{})
	fb.Set(0, 0, 'X', true)
	fb.Set(0, 1, 'Y', true)
	fb.CloseCheckpoint()

	require.Equal(t, []string{"XY"}, bufLines(fb))
	require.True(t, fb.Undo())
	require.Equal(t, []string{"ab"}, bufLines(fb))
}

func TestStarScanSetsStarBit(t *testing.T) {
	fb := newTestBuf()
	fb.RemoveLine(0)
	fb.InsertLine(0, []byte("foo bar foo"))
	fb.SetStarPattern([]byte("foo"), false)
	fb.Update(fb.NumLines())

	require.True(t, fb.GetStyle(0, 0).Star())
	require.False(t, fb.GetStyle(0, 4).Star())
	require.True(t, fb.GetStyle(0, 8).Star())
}

func TestEditAfterStarScanRestoresStars(t *testing.T) {
	fb := newTestBuf()
	fb.RemoveLine(0)
	fb.InsertLine(0, []byte("foo bar foo"))
	fb.SetStarPattern([]byte("foo"), false)
	fb.Update(fb.NumLines())
	require.True(t, fb.GetStyle(0, 8).Star())

	// Editing the line clears its style bits, including the star bit, and
	// must re-arm a star rescan rather than leaving it permanently dark.
	fb.InsertChar(0, 0, 'X')
	require.False(t, fb.GetStyle(0, 9).Star())

	fb.Update(fb.NumLines())
	require.True(t, fb.GetStyle(0, 9).Star())
}
