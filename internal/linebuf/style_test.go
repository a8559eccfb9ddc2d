package linebuf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleStarBitIndependentOfClass(t *testing.T) {
	s := StyleComment.WithStar()
	require.Equal(t, StyleComment, s.Class())
	require.True(t, s.Star())

	cleared := s.WithoutStar()
	require.Equal(t, StyleComment, cleared.Class())
	require.False(t, cleared.Star())
}

func TestStyleLineResize(t *testing.T) {
	sl := NewStyle()
	sl.Resize(3)
	require.Equal(t, 3, sl.Len())
	for i := 0; i < 3; i++ {
		require.Equal(t, StyleNormal, sl.Get(i))
	}
	sl.Set(1, StyleControl)
	sl.Resize(1)
	require.Equal(t, 1, sl.Len())
}

func TestStyleLineClearRange(t *testing.T) {
	sl := NewStyle()
	sl.Resize(5)
	for i := range [5]int{} {
		sl.Set(i, StyleComment)
	}
	sl.ClearRange(1, 3)
	require.Equal(t, StyleComment, sl.Get(0))
	require.Equal(t, StyleNormal, sl.Get(1))
	require.Equal(t, StyleNormal, sl.Get(2))
	require.Equal(t, StyleComment, sl.Get(3))
}

func TestPoolBorrowReturn(t *testing.T) {
	p := NewPool()
	l := p.Borrow()
	l.Push('a')
	p.Return(l)
	require.Equal(t, 1, p.Len())

	l2 := p.Borrow()
	require.Equal(t, 0, l2.Len(), "borrowed line must come back cleared")
	require.Equal(t, 0, p.Len())
}
