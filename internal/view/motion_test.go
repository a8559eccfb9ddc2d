package view

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindForwardWrapsAtEOF(t *testing.T) {
	fb := bufOf("needle here", "nothing")
	v := New(fb, nil)
	v.SetTile(TileFull, 24, 80)
	v.moveTo(1, 5) // past the only match

	ok := v.FindForward([]byte("needle"))
	require.True(t, ok)
	require.Equal(t, 0, v.FileLine())
	require.Equal(t, 0, v.FileCol())
}

func TestFindBackwardWraps(t *testing.T) {
	fb := bufOf("needle here", "nothing")
	v := New(fb, nil)
	v.SetTile(TileFull, 24, 80)
	v.moveTo(0, 1)

	ok := v.FindBackward([]byte("needle"))
	require.True(t, ok)
	require.Equal(t, 0, v.FileLine())
	require.Equal(t, 0, v.FileCol())
}

func TestGoToWordEndStopsAtLastByte(t *testing.T) {
	fb := bufOf("abc def")
	v := New(fb, nil)
	v.SetTile(TileFull, 24, 80)

	v.GoToWordEnd()
	require.Equal(t, 2, v.FileCol())
}

func TestIsWordIdentClassification(t *testing.T) {
	require.True(t, IsWordIdent('a'))
	require.True(t, IsWordIdent('_'))
	require.True(t, IsWordIdent('9'))
	require.False(t, IsWordIdent(' '))
	require.True(t, IsSpace(' '))
	require.True(t, NotSpace('+'))
	require.False(t, NotSpace('a'))
}

func TestGoToFileTopBottom(t *testing.T) {
	fb := bufOf("a", "b", "c")
	v := New(fb, nil)
	v.SetTile(TileFull, 24, 80)
	v.moveTo(1, 0)

	v.GoToFileTop()
	require.Equal(t, 0, v.FileLine())
	v.GoToFileBottom()
	require.Equal(t, 2, v.FileLine())
}
