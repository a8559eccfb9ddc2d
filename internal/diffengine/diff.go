// Package diffengine implements DiffEngine: the line-granularity diff
// described in spec.md §4.7, computed directly over two FileBufs.
package diffengine

import (
	"sort"

	"github.com/kylelemons/vis/internal/buffer"
)

// DiffType tags one display line in a diff view (spec.md §3 "DiffInfo").
type DiffType int

const (
	Unknown DiffType = iota
	Same
	Changed
	Inserted
	Deleted
	DiffFiles
)

// ByteTag classifies one byte within a Changed line's intra-line diff
// (spec.md §4.7 "CompareLines").
type ByteTag int

const (
	TagSame ByteTag = iota
	TagChanged
	TagInserted
	TagDeleted
)

// IntraLine holds the per-byte tag arrays for one Changed pair.
type IntraLine struct {
	Short []ByteTag
	Long  []ByteTag
}

// Info is one DiffInfo record (spec.md §3).
type Info struct {
	Type       DiffType
	ViewLine   int
	Intra      *IntraLine
}

// sideBand is the default half-width of the incremental rediff window, in
// diff-lines either side of the cursor, grounded in the original's
// `const unsigned SIDE_BAND = 50;` (View.cc).
const sideBand = 50

// maxAutoLoad caps how many child files a directory diff will read from
// disk in one invocation, grounded in the original's
// `const unsigned max_files_added_per_diff = 10;` (Diff.cc).
const maxAutoLoad = 10

// compareArea is a rectangular region in (short-lines x long-lines) space
// still needing comparison (spec.md glossary "DiffArea").
type compareArea struct {
	lnS, nS int
	lnL, nL int
}

// sameArea is a contiguous run of matching lines across both files
// (spec.md glossary "SameArea").
type sameArea struct {
	lnS, lnL, nLines int
}

// Engine holds the two FileBufs being diffed and the last computed DI
// arrays.
type Engine struct {
	Short, Long *buffer.FileBuf
	// swapped records whether Short/Long were swapped relative to the
	// (fb0, fb1) arguments to New, so navigation/patch callers can map back.
	swapped bool

	DIShort, DILong []Info
}

// New designates short/long by line count, ties broken by argument order
// (spec.md §4.7 "the engine internally designates short and long").
func New(fb0, fb1 *buffer.FileBuf) *Engine {
	e := &Engine{}
	if fb1.NumLines() < fb0.NumLines() {
		e.Short, e.Long = fb1, fb0
		e.swapped = true
	} else {
		e.Short, e.Long = fb0, fb1
	}
	return e
}

// Run computes DIShort/DILong from scratch (spec.md §4.7 steps 1-7).
func (e *Engine) Run() {
	area := compareArea{0, e.Short.NumLines(), 0, e.Long.NumLines()}
	sames := e.populateSame(area)
	sort.SliceStable(sames, func(i, j int) bool { return sames[i].lnL < sames[j].lnL })
	e.DIShort, e.DILong = e.populateDiff(sames, area)
}

// populateSame recursively partitions area around its largest same-run,
// pushing the areas before/after it, until no more same-runs are found
// (spec.md §4.7 steps 1-2).
func (e *Engine) populateSame(area compareArea) []sameArea {
	var out []sameArea
	stack := []compareArea{area}
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if a.nS == 0 || a.nL == 0 {
			continue
		}
		same, ok := e.findMaxSame(a)
		if !ok {
			continue
		}
		out = append(out, same)

		before := compareArea{a.lnS, same.lnS - a.lnS, a.lnL, same.lnL - a.lnL}
		after := compareArea{
			same.lnS + same.nLines, a.lnS + a.nS - (same.lnS + same.nLines),
			same.lnL + same.nLines, a.lnL + a.nL - (same.lnL + same.nLines),
		}
		stack = append(stack, before, after)
	}
	return out
}

// findMaxSame is FindMaxSame from spec.md §4.7 step 1: the largest run of
// consecutive matching lines, "largest" measured in total byte count, ties
// broken by line count. Lines are compared by length and then byte by
// byte; Line checksums are not consulted.
func (e *Engine) findMaxSame(a compareArea) (sameArea, bool) {
	var best sameArea
	bestBytes, bestLines := -1, -1
	found := false

	for ls := a.lnS; ls < a.lnS+a.nS; ls++ {
		for ll := a.lnL; ll < a.lnL+a.nL; ll++ {
			if !e.linesEqual(ls, ll) {
				continue
			}
			run := 0
			bytes := 0
			for (ls+run) < a.lnS+a.nS && (ll+run) < a.lnL+a.nL && e.linesEqual(ls+run, ll+run) {
				bytes += minInt(e.Short.LineLen(ls+run), e.Long.LineLen(ll+run)) + 1
				run++
			}
			if bytes > bestBytes || (bytes == bestBytes && run > bestLines) {
				bestBytes, bestLines = bytes, run
				best = sameArea{ls, ll, run}
				found = true
			}
		}
	}
	return best, found
}

func (e *Engine) linesEqual(ls, ll int) bool {
	if e.Short.LineLen(ls) != e.Long.LineLen(ll) {
		return false
	}
	for c := 0; c < e.Short.LineLen(ls); c++ {
		if e.Short.Get(ls, c) != e.Long.Get(ll, c) {
			return false
		}
	}
	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// populateDiff fills gaps between sames with DiffAreas and interleaves
// everything into DIShort/DILong (spec.md §4.7 steps 4-7).
func (e *Engine) populateDiff(sames []sameArea, area compareArea) (diS, diL []Info) {
	s, l := area.lnS, area.lnL
	emit := func(upTo sameArea, hasUpTo bool) {
		var endS, endL int
		if hasUpTo {
			endS, endL = upTo.lnS, upTo.lnL
		} else {
			endS, endL = area.lnS+area.nS, area.lnL+area.nL
		}
		if endS > s || endL > l {
			ds, dl := e.diffArea(s, endS-s, l, endL-l)
			diS = append(diS, ds...)
			diL = append(diL, dl...)
		}
		if hasUpTo {
			for i := 0; i < upTo.nLines; i++ {
				diS = append(diS, Info{Type: Same, ViewLine: upTo.lnS + i})
				diL = append(diL, Info{Type: Same, ViewLine: upTo.lnL + i})
			}
			s, l = upTo.lnS+upTo.nLines, upTo.lnL+upTo.nLines
		}
	}
	for _, sm := range sames {
		emit(sm, true)
	}
	emit(sameArea{}, false)
	return diS, diL
}

// diffArea handles a DiffArea where the two sides may have different line
// counts (spec.md §4.7 step 5-6): pair lines via FindLinesMostSame when
// counts differ, or 1-1 when they match, running CompareLines on each
// pair and emitting Inserted/Deleted for unmatched lines.
func (e *Engine) diffArea(lnS, nS, lnL, nL int) (diS, diL []Info) {
	if nS == 0 && nL == 0 {
		return nil, nil
	}
	if nS == nL {
		for i := 0; i < nS; i++ {
			bytesSame, intra := e.compareLines(lnS+i, lnL+i)
			_ = bytesSame
			diS = append(diS, Info{Type: Changed, ViewLine: lnS + i, Intra: intra})
			diL = append(diL, Info{Type: Changed, ViewLine: lnL + i, Intra: intra})
		}
		return diS, diL
	}

	pairS, pairL := e.findLinesMostSame(lnS, nS, lnL, nL)
	usedS := make([]bool, nS)
	usedL := make([]bool, nL)
	pairOf := make(map[int]int)
	for i, j := range pairS {
		if j >= 0 {
			pairOf[i] = j
			usedS[i] = true
			usedL[j] = true
		}
	}
	_ = pairL

	for i := 0; i < nS; i++ {
		if j, ok := pairOf[i]; ok {
			_, intra := e.compareLines(lnS+i, lnL+j)
			diS = append(diS, Info{Type: Changed, ViewLine: lnS + i, Intra: intra})
			diL = append(diL, Info{Type: Changed, ViewLine: lnL + j, Intra: intra})
			continue
		}
		diS = append(diS, Info{Type: Inserted, ViewLine: lnS + i})
		diL = append(diL, Info{Type: Deleted, ViewLine: maxInt0(lnL - 1)})
	}
	for j := 0; j < nL; j++ {
		if usedL[j] {
			continue
		}
		diS = append(diS, Info{Type: Deleted, ViewLine: maxInt0(lnS - 1)})
		diL = append(diL, Info{Type: Inserted, ViewLine: lnL + j})
	}
	return diS, diL
}

func maxInt0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// findLinesMostSame pairs each short-side line with the long-side line (no
// further than the area's length difference away) that shares the most
// matching bytes, per CompareLines (spec.md §4.7 step 5).
func (e *Engine) findLinesMostSame(lnS, nS, lnL, nL int) (pairS, pairL []int) {
	pairS = make([]int, nS)
	pairL = make([]int, nL)
	for i := range pairS {
		pairS[i] = -1
	}
	for j := range pairL {
		pairL[j] = -1
	}
	lengthDiff := absInt(nS - nL)

	type cand struct{ i, j, score int }
	var cands []cand
	for i := 0; i < nS; i++ {
		for j := 0; j < nL; j++ {
			if absInt(j-i) > lengthDiff {
				continue
			}
			score, _ := e.compareLinesRaw(lnS+i, lnL+j)
			cands = append(cands, cand{i, j, score})
		}
	}
	sort.SliceStable(cands, func(a, b int) bool { return cands[a].score > cands[b].score })
	for _, c := range cands {
		if pairS[c.i] == -1 && pairL[c.j] == -1 {
			pairS[c.i] = c.j
			pairL[c.j] = c.i
		}
	}
	return pairS, pairL
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// compareLines runs CompareLines (spec.md §4.7) between short line ls and
// long line ll, returning the Same-byte count and the per-byte tag pair.
func (e *Engine) compareLines(ls, ll int) (int, *IntraLine) {
	bytesSame, intra := e.compareLinesRaw(ls, ll)
	return bytesSame, intra
}

// compareLinesRaw is the scored half of CompareLines, shared by
// findLinesMostSame (which only needs the score) and compareLines (which
// also wants the tag arrays).
func (e *Engine) compareLinesRaw(ls, ll int) (int, *IntraLine) {
	sLen, lLen := e.Short.LineLen(ls), e.Long.LineLen(ll)
	tagsS := make([]ByteTag, sLen)
	tagsL := make([]ByteTag, lLen)

	same := 0
	i := 0
	for i < sLen && i < lLen && e.Short.Get(ls, i) == e.Long.Get(ll, i) {
		tagsS[i] = TagSame
		tagsL[i] = TagSame
		same++
		i++
	}
	// Remaining region: greedy heuristic per spec.md §4.7/§9 open question
	// — the longer side's extra bytes are Inserted, else both Changed.
	remS, remL := sLen-i, lLen-i
	if remS == remL {
		for j := i; j < sLen; j++ {
			tagsS[j] = TagChanged
			tagsL[j] = TagChanged
		}
	} else if remS > remL {
		for j := i; j < i+remL; j++ {
			tagsS[j] = TagChanged
			tagsL[j] = TagChanged
		}
		for j := i + remL; j < sLen; j++ {
			tagsS[j] = TagInserted
		}
	} else {
		for j := i; j < i+remS; j++ {
			tagsS[j] = TagChanged
			tagsL[j] = TagChanged
		}
		for j := i + remS; j < lLen; j++ {
			tagsL[j] = TagInserted
		}
	}
	return same, &IntraLine{Short: tagsS, Long: tagsL}
}
