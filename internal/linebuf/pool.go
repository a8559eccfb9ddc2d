package linebuf

import "sync"

// Pool is a process-wide free list of Lines, recycled to bound allocation
// (spec.md §3 "Lines are pooled"). Unlike the teacher's raw borrow/return
// pointers (spec.md §9 Design Notes), Pool hands out an owned *Line and the
// caller returns it explicitly; there is no hidden aliasing.
type Pool struct {
	mu   sync.Mutex
	free []*Line
}

// NewPool returns an empty Pool.
func NewPool() *Pool { return &Pool{} }

// Borrow returns a cleared Line, reusing one from the free list when
// available. Per spec.md §5, ownership transfers to the caller: the caller
// must not retain any reference after calling Return.
func (p *Pool) Borrow() *Line {
	p.mu.Lock()
	defer p.mu.Unlock()
	if n := len(p.free); n > 0 {
		l := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		l.Clear()
		return l
	}
	return New()
}

// Return pushes a Line back onto the free list for later reuse.
func (p *Pool) Return(l *Line) {
	if l == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.free = append(p.free, l)
}

// Len reports how many Lines currently sit in the free list (test/debug use).
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
