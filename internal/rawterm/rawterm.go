// Package rawterm puts a terminal file descriptor into raw mode and queries
// its size. It plays the role the teacher's cgo termios package plays
// (NewTermSettings/Raw/Reset/GetSize) but is built on golang.org/x/term and
// golang.org/x/sys/unix instead of cgo — see SPEC_FULL.md §B for why.
package rawterm

import (
	"golang.org/x/term"
)

// Settings holds the terminal state captured when it was put in raw mode,
// so it can later be restored.
type Settings struct {
	fd    int
	state *term.State
}

// Open captures the current state of fd without changing it.
func Open(fd int) (*Settings, error) {
	if !term.IsTerminal(fd) {
		return &Settings{fd: fd}, nil
	}
	state, err := term.GetState(fd)
	if err != nil {
		return nil, err
	}
	return &Settings{fd: fd, state: state}, nil
}

// Raw puts fd into raw mode (no echo, no canonical processing) and returns
// a Settings that can later Reset it. Mirrors the teacher's
// TermSettings.Raw, which recommends calling this early in main with a
// deferred Reset.
func Raw(fd int) (*Settings, error) {
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Settings{fd: fd, state: state}, nil
}

// Reset restores the terminal to the state captured by Raw.
func (s *Settings) Reset() error {
	if s == nil || s.state == nil {
		return nil
	}
	return term.Restore(s.fd, s.state)
}

// GetSize returns the terminal's (width, height) in character cells.
func GetSize(fd int) (width, height int, err error) {
	return term.GetSize(fd)
}
