package registers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPutGetDefault(t *testing.T) {
	s := New()
	s.Put('"', Content{Lines: [][]byte{[]byte("a")}})
	got := s.Get('"')
	require.Equal(t, [][]byte{[]byte("a")}, got.Lines)
}

func TestPutNamedMirrorsToDefault(t *testing.T) {
	s := New()
	s.Put('a', Content{Lines: [][]byte{[]byte("x")}})

	require.Equal(t, [][]byte{[]byte("x")}, s.Get('a').Lines)
	require.Equal(t, [][]byte{[]byte("x")}, s.Get('"').Lines)
}

func TestInvalidNameFallsBackToDefault(t *testing.T) {
	s := New()
	s.Put('9', Content{Lines: [][]byte{[]byte("z")}})
	require.Equal(t, [][]byte{[]byte("z")}, s.Get('"').Lines)
}

func TestGetUnsetRegisterIsEmpty(t *testing.T) {
	s := New()
	got := s.Get('z')
	require.Nil(t, got.Lines)
}
