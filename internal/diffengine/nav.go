package diffengine

// NextDiff searches forward from diffLine for the next non-Same entry
// (if currently on a Same run) or the next Same run followed by a
// non-Same entry (if currently on a diff), wrapping at the end of the DI
// arrays (spec.md §4.7 "next_diff"). Lines that differ only in trailing
// whitespace are tagged Changed by the diff and are stopped at like any
// other diff; there is no separate whitespace check.
func (e *Engine) NextDiff(diffLine int) (int, bool) {
	n := len(e.DIShort)
	if n == 0 {
		return diffLine, false
	}
	onDiff := e.isDiffLine(diffLine % n)
	i := diffLine
	for steps := 0; steps < n; steps++ {
		i = (i + 1) % n
		if onDiff {
			if !e.isDiffLine(i) {
				onDiff = false
			}
			continue
		}
		if e.isDiffLine(i) {
			return i, true
		}
	}
	return diffLine, false
}

// PrevDiff mirrors NextDiff searching backwards.
func (e *Engine) PrevDiff(diffLine int) (int, bool) {
	n := len(e.DIShort)
	if n == 0 {
		return diffLine, false
	}
	onDiff := e.isDiffLine(diffLine % n)
	i := diffLine
	for steps := 0; steps < n; steps++ {
		i = (i - 1 + n) % n
		if onDiff {
			if !e.isDiffLine(i) {
				onDiff = false
			}
			continue
		}
		if e.isDiffLine(i) {
			return i, true
		}
	}
	return diffLine, false
}

func (e *Engine) isDiffLine(i int) bool {
	t := e.DIShort[i].Type
	if t != Same {
		return true
	}
	if e.DILong[i].Type != Same {
		return true
	}
	// A Same/Same pair is never a diff: lines that differ only in trailing
	// whitespace have unequal lengths and so are already tagged Changed.
	return false
}

// rediffWindow computes the ±sideBand diff-line range around cursor,
// expanded outward to the nearest enclosing Same-run boundaries on each
// side, per spec.md §4.7 "incremental re-diff after edit".
func (e *Engine) rediffWindow(cursor int) (lo, hi int) {
	n := len(e.DIShort)
	lo = cursor - sideBand
	if lo < 0 {
		lo = 0
	}
	hi = cursor + sideBand
	if hi > n-1 {
		hi = n - 1
	}
	for lo > 0 && e.DIShort[lo].Type == Same && e.DIShort[lo-1].Type == Same {
		lo--
	}
	for hi < n-1 && e.DIShort[hi].Type == Same && e.DIShort[hi+1].Type == Same {
		hi++
	}
	return lo, hi
}

// Rediff re-runs the base algorithm on a window of diff-lines around
// cursor and splices the result back in, instead of rediffing the whole
// file (spec.md §4.7 "rediff()").
func (e *Engine) Rediff(cursor int) {
	n := len(e.DIShort)
	if n == 0 {
		e.Run()
		return
	}
	lo, hi := e.rediffWindow(cursor)

	lnS := firstNonDeletedViewLine(e.DIShort[lo:])
	lnL := firstNonDeletedViewLine(e.DILong[lo:])
	endS := lastViewLineExclusive(e.DIShort[lo : hi+1])
	endL := lastViewLineExclusive(e.DILong[lo : hi+1])
	// A window touching either end of the DI arrays extends to that end of
	// both files, so lines added before the first or after the last known
	// diff-line are included.
	if lo == 0 {
		lnS, lnL = 0, 0
	}
	if hi == n-1 {
		endS, endL = e.Short.NumLines(), e.Long.NumLines()
	}

	area := compareArea{lnS, endS - lnS, lnL, endL - lnL}
	sames := e.populateSame(area)
	sortByLong(sames)
	diS, diL := e.populateDiff(sames, area)

	newS := append([]Info{}, e.DIShort[:lo]...)
	newS = append(newS, diS...)
	newS = append(newS, e.DIShort[hi+1:]...)

	newL := append([]Info{}, e.DILong[:lo]...)
	newL = append(newL, diL...)
	newL = append(newL, e.DILong[hi+1:]...)

	e.DIShort, e.DILong = newS, newL
}

func sortByLong(sames []sameArea) {
	for i := 1; i < len(sames); i++ {
		for j := i; j > 0 && sames[j].lnL < sames[j-1].lnL; j-- {
			sames[j], sames[j-1] = sames[j-1], sames[j]
		}
	}
}

func firstNonDeletedViewLine(infos []Info) int {
	for _, in := range infos {
		if in.Type != Deleted {
			return in.ViewLine
		}
	}
	if len(infos) > 0 {
		return infos[0].ViewLine
	}
	return 0
}

func lastViewLineExclusive(infos []Info) int {
	for i := len(infos) - 1; i >= 0; i-- {
		if infos[i].Type != Deleted {
			return infos[i].ViewLine + 1
		}
	}
	return 0
}

// PatchInserted updates the DI arrays after a line insertion at fileLine
// on the given side: it shifts that side's view lines at or after fileLine
// down by one, then calls Rediff around the diff-line of the line next to
// the new one. Entries are not patched one by one; the windowed rediff
// recomputes them.
func (e *Engine) PatchInserted(short bool, fileLine int) {
	di, other := e.sideArrays(short)
	for i := range di {
		if di[i].ViewLine >= fileLine {
			di[i].ViewLine++
		}
	}
	_ = other
	// The new line has no DI entry yet; locate the window by a neighbour.
	n := e.Long.NumLines()
	if short {
		n = e.Short.NumLines()
	}
	near := fileLine + 1
	if near >= n {
		near = fileLine - 1
	}
	e.Rediff(e.diffLineForFileLine(short, near))
}

// PatchDeleted updates the DI arrays after a line deletion at fileLine on
// the given side.
func (e *Engine) PatchDeleted(short bool, fileLine int) {
	di, _ := e.sideArrays(short)
	for i := range di {
		if di[i].ViewLine > fileLine {
			di[i].ViewLine--
		}
	}
	e.Rediff(e.diffLineForFileLine(short, fileLine))
}

// PatchChanged re-runs CompareLines for the diff-line holding fileLine on
// the given side after a content change.
func (e *Engine) PatchChanged(short bool, fileLine int) {
	e.Rediff(e.diffLineForFileLine(short, fileLine))
}

func (e *Engine) sideArrays(short bool) (this, other []Info) {
	if short {
		return e.DIShort, e.DILong
	}
	return e.DILong, e.DIShort
}

func (e *Engine) diffLineForFileLine(short bool, fileLine int) int {
	di, _ := e.sideArrays(short)
	for i, in := range di {
		if in.Type != Deleted && in.ViewLine == fileLine {
			return i
		}
	}
	return 0
}

// ClearDiff drops the computed DI arrays, e.g. when a diff view is closed.
func (e *Engine) ClearDiff() {
	e.DIShort = nil
	e.DILong = nil
}
