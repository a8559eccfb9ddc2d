package linebuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var insertTests = []struct {
	Desc   string
	Start  string
	Pos    int
	Byte   byte
	Expect string
}{
	{"at start", "bc", 0, 'a', "abc"},
	{"at end", "ab", 2, 'c', "abc"},
	{"middle", "ac", 1, 'b', "abc"},
}

func TestLineInsert(t *testing.T) {
	for _, test := range insertTests {
		l := FromBytes([]byte(test.Start))
		l.Insert(test.Pos, test.Byte)
		if got, want := string(l.Bytes()), test.Expect; got != want {
			t.Errorf("%s: Insert(%d,%q) = %q, want %q", test.Desc, test.Pos, test.Byte, got, want)
		}
	}
}

func TestLineRemove(t *testing.T) {
	l := FromBytes([]byte("abc"))
	got := l.Remove(1)
	require.Equal(t, byte('b'), got)
	require.Equal(t, "ac", string(l.Bytes()))
}

func TestLineEqualUsesChecksum(t *testing.T) {
	a := FromBytes([]byte("hello"))
	b := FromBytes([]byte("hello"))
	c := FromBytes([]byte("world"))

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	// Mutating one must invalidate its cached checksum.
	b.Set(0, 'H')
	require.False(t, a.Equal(b))
}

func TestLinePushPop(t *testing.T) {
	l := New()
	l.Push('x')
	l.Push('y')
	require.Equal(t, 2, l.Len())
	require.Equal(t, byte('y'), l.Pop())
	require.Equal(t, 1, l.Len())
}

func TestLineAppend(t *testing.T) {
	a := FromBytes([]byte("foo"))
	b := FromBytes([]byte(" bar"))
	a.Append(b)
	require.Equal(t, "foo bar", string(a.Bytes()))
}

func TestLineOutOfRangePanics(t *testing.T) {
	l := FromBytes([]byte("ab"))
	require.Panics(t, func() { l.Get(5) })
	require.Panics(t, func() { New().Pop() })
}
