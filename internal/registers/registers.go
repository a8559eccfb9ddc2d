// Package registers implements the process-wide yank-register pool
// (spec.md §5 "Registers (yank buffers): process-wide, owned by the
// Dispatcher; Views and DiffEngine push/pull Lines through a shared
// pool").
package registers

// Content is what one register holds: a sequence of lines (a "yy" yanks
// one line; a visual-line-range yank yanks several), plus whether the
// yank was linewise (paste inserts whole lines) or charwise (paste
// inserts inline).
type Content struct {
	Lines    [][]byte
	Linewise bool
}

// Default is the register name used when the dispatcher doesn't specify
// one explicitly (the unnamed `"` register).
const Default = `"`

// Set is the named pool of registers, `"` plus `a`-`z` (SPEC_FULL.md §C).
type Set struct {
	regs map[byte]Content
}

// New returns an empty register Set.
func New() *Set { return &Set{regs: make(map[byte]Content)} }

// validName reports whether name is a register this Set recognizes: the
// default `"` or a lowercase letter a-z.
func validName(name byte) bool {
	return name == '"' || ('a' <= name && name <= 'z')
}

// Put stores content under name, and also mirrors it into the default
// register unless name already is the default (so a named yank is still
// available via unnamed paste, matching vi-family convention).
func (s *Set) Put(name byte, content Content) {
	if !validName(name) {
		name = '"'
	}
	s.regs[name] = content
	if name != '"' {
		s.regs['"'] = content
	}
}

// Get returns the content stored under name, or a zero Content if it has
// never been set.
func (s *Set) Get(name byte) Content {
	if !validName(name) {
		name = '"'
	}
	return s.regs[name]
}
