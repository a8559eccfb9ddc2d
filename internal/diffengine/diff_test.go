package diffengine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kylelemons/vis/internal/buffer"
	"github.com/kylelemons/vis/internal/linebuf"
)

func bufOf(lines ...string) *buffer.FileBuf {
	fb := buffer.New(linebuf.NewPool())
	for i, l := range lines {
		fb.InsertLine(i, []byte(l))
	}
	fb.RemoveLine(len(lines)) // drop the initial empty line New() creates
	return fb
}

// TestDiffEqualFiles covers spec scenario 4: two identical-content
// FileBufs diff to two Same entries.
func TestDiffEqualFiles(t *testing.T) {
	a := bufOf("x", "y")
	b := bufOf("x", "y")
	e := New(a, b)
	e.Run()

	require.Len(t, e.DIShort, 2)
	require.Len(t, e.DILong, 2)
	for i := 0; i < 2; i++ {
		require.Equal(t, Same, e.DIShort[i].Type)
		require.Equal(t, Same, e.DILong[i].Type)
		require.Equal(t, i, e.DIShort[i].ViewLine)
		require.Equal(t, i, e.DILong[i].ViewLine)
	}
}

// TestDiffInsertion covers spec scenario 5:
// short=["a","c"], long=["a","b","c"] ->
// DI_S = [Same(0), Deleted(0), Same(1)], DI_L = [Same(0), Inserted(1), Same(2)].
func TestDiffInsertion(t *testing.T) {
	short := bufOf("a", "c")
	long := bufOf("a", "b", "c")
	e := New(short, long)
	e.Run()

	require.Len(t, e.DIShort, 3)
	require.Len(t, e.DILong, 3)

	require.Equal(t, Same, e.DIShort[0].Type)
	require.Equal(t, 0, e.DIShort[0].ViewLine)
	require.Equal(t, Deleted, e.DIShort[1].Type)
	require.Equal(t, Same, e.DIShort[2].Type)
	require.Equal(t, 1, e.DIShort[2].ViewLine)

	require.Equal(t, Same, e.DILong[0].Type)
	require.Equal(t, 0, e.DILong[0].ViewLine)
	require.Equal(t, Inserted, e.DILong[1].Type)
	require.Equal(t, 1, e.DILong[1].ViewLine)
	require.Equal(t, Same, e.DILong[2].Type)
	require.Equal(t, 2, e.DILong[2].ViewLine)
}

// TestDiffConsistencyP5 checks property P5 from spec.md §8 on a less
// trivial pair.
func TestDiffConsistencyP5(t *testing.T) {
	short := bufOf("one", "two", "four")
	long := bufOf("one", "two", "three", "four")
	e := New(short, long)
	e.Run()

	m := len(e.DIShort)
	require.Equal(t, m, len(e.DILong))
	for k := 0; k < m; k++ {
		if e.DIShort[k].Type == Deleted {
			require.Equal(t, Inserted, e.DILong[k].Type, "k=%d", k)
		}
		if e.DILong[k].Type == Deleted {
			require.Equal(t, Inserted, e.DIShort[k].Type, "k=%d", k)
		}
	}

	wantLine := 0
	for k := 0; k < m; k++ {
		if e.DIShort[k].Type != Deleted {
			require.Equal(t, wantLine, e.DIShort[k].ViewLine, "k=%d", k)
			wantLine++
		}
	}
	require.Equal(t, short.NumLines(), wantLine)
}

func TestCompareLinesCountsSamePrefix(t *testing.T) {
	a := bufOf("hello world")
	b := bufOf("hello there")
	e := New(a, b)
	same, intra := e.compareLines(0, 0)
	require.Equal(t, len("hello "), same)
	require.Equal(t, TagSame, intra.Short[0])
	require.Equal(t, TagChanged, intra.Short[len("hello ")])
}

func TestNextDiffWrapsAndSkipsSame(t *testing.T) {
	short := bufOf("a", "c")
	long := bufOf("a", "b", "c")
	e := New(short, long)
	e.Run()

	next, ok := e.NextDiff(0)
	require.True(t, ok)
	require.NotEqual(t, Same, e.DIShort[next].Type)

	// From the last (Same) diff-line the search wraps past diff-line 0
	// (Same) to the only diff at 1.
	next, ok = e.NextDiff(2)
	require.True(t, ok)
	require.Equal(t, 1, next)
}

func TestRediffAfterInsertStaysConsistent(t *testing.T) {
	short := bufOf("x", "y")
	long := bufOf("x", "y")
	e := New(short, long)
	e.Run()

	long.InsertLine(1, []byte("z"))
	e.Rediff(0)

	for k := range e.DIShort {
		if e.DIShort[k].Type == Deleted {
			require.Equal(t, Inserted, e.DILong[k].Type)
		}
	}
}
