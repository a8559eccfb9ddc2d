package screen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kylelemons/vis/internal/linebuf"
)

func TestUpdateIsIdempotentWithNoIntervention(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 3, 3)
	c.Set(0, 0, 'x', linebuf.StyleNormal)

	require.True(t, c.Update())
	require.False(t, c.Update(), "second update with no intervening Set must emit nothing")
}

func TestUpdateMatchesPendingToWritten(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 2, 2)
	c.Set(0, 0, 'a', linebuf.StyleNormal)
	c.Update()

	pending, written := c.Snapshot()
	require.Equal(t, pending[0], written[0])
}

func TestBottomRightCellNeverWritten(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 2, 2)
	c.Set(1, 1, 'z', linebuf.StyleNormal)
	c.Update()

	pending, _ := c.Snapshot()
	require.Equal(t, Cell{}, pending[c.idx(1, 1)])
}

func TestInvalidateForcesFullRepaint(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 2, 2)
	c.Set(0, 0, 'a', linebuf.StyleNormal)
	c.Update()
	require.False(t, c.Update())

	c.Invalidate()
	c.Set(0, 0, 'a', linebuf.StyleNormal)
	require.True(t, c.Update(), "after invalidate, same content must still repaint")
}

func TestFlushWritesAndClearsBuffer(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 2, 2)
	c.Set(0, 0, 'q', linebuf.StyleNormal)
	c.Update()
	require.NoError(t, c.Flush())
	require.NotEmpty(t, buf.Bytes())

	buf.Reset()
	require.NoError(t, c.Flush())
	require.Empty(t, buf.Bytes())
}

func TestResizeInvalidates(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, 2, 2)
	c.Set(0, 0, 'a', linebuf.StyleNormal)
	c.Update()
	require.False(t, c.Update())

	c.Resize(3, 3)
	require.Equal(t, 3, c.Rows())
	require.Equal(t, 3, c.Cols())
}
