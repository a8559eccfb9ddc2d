// Package linebuf implements Line and StyleLine, the byte-vector storage
// unit of a FileBuf (spec.md §3, §4.1), plus a pool that recycles them.
package linebuf

import (
	"github.com/cespare/xxhash/v2"

	"github.com/kylelemons/vis/internal/assert"
)

// Line is an ordered, mutable sequence of bytes with a lazily-recomputed
// content hash. It does not store a line terminator; terminators are a
// property of the file, not the line (spec.md §3).
type Line struct {
	b        []byte
	sum      uint64
	sumValid bool
}

// New returns an empty Line.
func New() *Line { return &Line{} }

// FromBytes returns a Line that owns a copy of b.
func FromBytes(b []byte) *Line {
	l := &Line{b: append([]byte(nil), b...)}
	return l
}

// Len returns the number of bytes in the line.
func (l *Line) Len() int { return len(l.b) }

// Get returns the byte at i.
func (l *Line) Get(i int) byte {
	mustIndex(i, len(l.b))
	return l.b[i]
}

// Set overwrites the byte at i.
func (l *Line) Set(i int, b byte) {
	mustIndex(i, len(l.b))
	l.b[i] = b
	l.invalidate()
}

// Push appends a byte to the end of the line.
func (l *Line) Push(b byte) {
	l.b = append(l.b, b)
	l.invalidate()
}

// Pop removes and returns the last byte of the line.
func (l *Line) Pop() byte {
	mustIndex(0, len(l.b))
	b := l.b[len(l.b)-1]
	l.b = l.b[:len(l.b)-1]
	l.invalidate()
	return b
}

// Insert inserts b at position i, shifting bytes at and after i right by one.
func (l *Line) Insert(i int, b byte) {
	mustIndex(i, len(l.b)+1)
	l.b = append(l.b, 0)
	copy(l.b[i+1:], l.b[i:])
	l.b[i] = b
	l.invalidate()
}

// Remove removes and returns the byte at i, shifting later bytes left.
func (l *Line) Remove(i int) byte {
	mustIndex(i, len(l.b))
	b := l.b[i]
	l.b = append(l.b[:i], l.b[i+1:]...)
	l.invalidate()
	return b
}

// Clear empties the line in place, keeping its backing array.
func (l *Line) Clear() {
	l.b = l.b[:0]
	l.invalidate()
}

// Bytes returns the line's content. Callers must not mutate the result.
func (l *Line) Bytes() []byte { return l.b }

// Append appends another line's bytes to l's end (FileBuf.AppendLineToLine).
func (l *Line) Append(other *Line) {
	l.b = append(l.b, other.b...)
	l.invalidate()
}

// AppendBytes appends raw bytes to l's end.
func (l *Line) AppendBytes(b []byte) {
	l.b = append(l.b, b...)
	l.invalidate()
}

func (l *Line) invalidate() { l.sumValid = false }

// Checksum returns a stable 64-bit hash of the line's current content,
// recomputing it lazily if it was invalidated by a mutation since the last
// call (spec.md §3, §8 P3). xxhash is used rather than stdlib hash/crc32.
func (l *Line) Checksum() uint64 {
	if !l.sumValid {
		l.sum = xxhash.Sum64(l.b)
		l.sumValid = true
	}
	return l.sum
}

// Equal reports whether l and other have identical content. Per spec.md
// §4.1/§8 P3, this compares checksums first and only falls back to a byte
// compare when they agree, so that equal lines are detected in O(1)
// amortised once checksums are warm.
func (l *Line) Equal(other *Line) bool {
	if l == other {
		return true
	}
	if l.Len() != other.Len() {
		return false
	}
	if l.Checksum() != other.Checksum() {
		return false
	}
	return bytesEqual(l.b, other.b)
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mustIndex(i, n int) {
	assert.Indexf(i >= 0 && i < n, "linebuf: %d not in [0,%d)", i, n)
}
