// Package buffer implements FileBuf, the owner of a file's Lines,
// StyleLines and undo journal (spec.md §3, §4.2).
package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/kylelemons/vis/internal/assert"
	"github.com/kylelemons/vis/internal/highlight"
	"github.com/kylelemons/vis/internal/history"
	"github.com/kylelemons/vis/internal/linebuf"
)

// Watcher is notified of mutating operations so a render loop can decide
// what to redraw; it mirrors the "registered View" relationship in
// spec.md §4.2 without FileBuf holding a pointer back into View. Each
// mutating FileBuf method calls Touched synchronously on every registered
// Watcher.
type Watcher interface {
	// Touched is called with the lowest line index that changed.
	Touched(line int)
}

// FileBuf owns one file or directory's content: Lines, parallel
// StyleLines, and a ChangeHist undo journal (spec.md §3).
type FileBuf struct {
	ID uuid.UUID

	FilePath        string
	IsDirectory     bool
	FileType        string
	TrailingNewline bool
	lastModTime     time.Time

	lines  []*linebuf.Line
	styles []*linebuf.StyleLine

	hist *history.Hist

	hi          *highlight.Highlighter
	hiTouched   int // hi_touched_line: lines >= this may have stale styles
	needStars   bool
	starPattern []byte
	starCaseFold bool

	changed  bool
	watchers []Watcher

	pool *linebuf.Pool

	cursor history.Cursor
}

// New returns an empty, in-memory FileBuf (no backing path), e.g. a
// scratch buffer used as the target of a yank-put round trip in tests.
func New(pool *linebuf.Pool) *FileBuf {
	fb := &FileBuf{
		ID:   uuid.New(),
		hist: history.New(),
		pool: pool,
	}
	fb.appendLineRaw(nil)
	return fb
}

// SetHighlighter installs the per-file-type Highlighter to run on update.
func (fb *FileBuf) SetHighlighter(h *highlight.Highlighter) { fb.hi = h }

// AddView registers w to be notified of future changes (spec.md §4.2
// "AddView").
func (fb *FileBuf) AddView(w Watcher) { fb.watchers = append(fb.watchers, w) }

// NumLines returns the number of lines.
func (fb *FileBuf) NumLines() int { return len(fb.lines) }

// LineLen returns the byte length of line l.
func (fb *FileBuf) LineLen(l int) int {
	assert.Indexf(l >= 0 && l < len(fb.lines), "buffer: line %d not in [0,%d)", l, len(fb.lines))
	return fb.lines[l].Len()
}

// Get returns the byte at (l, c).
func (fb *FileBuf) Get(l, c int) byte {
	assert.Indexf(l >= 0 && l < len(fb.lines), "buffer: line %d not in [0,%d)", l, len(fb.lines))
	return fb.lines[l].Get(c)
}

// GetStyle returns the style at (l, c), or StyleNormal if styles have not
// yet been sized for that position.
func (fb *FileBuf) GetStyle(l, c int) linebuf.Style {
	assert.Indexf(l >= 0 && l < len(fb.lines), "buffer: line %d not in [0,%d)", l, len(fb.lines))
	sl := fb.styles[l]
	if c >= sl.Len() {
		return linebuf.StyleNormal
	}
	return sl.Get(c)
}

// SetStyle implements highlight.Source for fb's Highlighter to write into.
func (fb *FileBuf) SetStyle(l, c int, s linebuf.Style) {
	sl := fb.styles[l]
	if sl.Len() <= c {
		sl.Resize(c + 1)
	}
	// Preserve the star bit across re-highlighting; Highlighter only knows
	// about syntax classes.
	prevStar := sl.Get(c).Star()
	if prevStar {
		s = s.WithStar()
	}
	sl.Set(c, s)
}

func (fb *FileBuf) changedLine(l int) {
	if l < fb.hiTouched {
		fb.hiTouched = l
	}
	fb.styles[l].ClearRange(0, fb.styles[l].Len())
	// ClearRange wipes the star bit along with the syntax class, so the
	// next Update must rescan for stars (spec.md §4.2).
	fb.needStars = true
	fb.changed = true
	for _, w := range fb.watchers {
		w.Touched(l)
	}
}

// InsertChar inserts byte at (l,c), recording a ChangeHist entry.
func (fb *FileBuf) InsertChar(l, c int, b byte) {
	assert.Indexf(l >= 0 && l < len(fb.lines), "buffer: line %d not in [0,%d)", l, len(fb.lines))
	fb.lines[l].Insert(c, b)
	fb.hist.Append(history.Entry{Kind: history.InsertChar, Line: l, Col: c, NewByte: b}, fb.cursor)
	fb.changedLine(l)
}

// RemoveChar removes and returns the byte at (l,c).
func (fb *FileBuf) RemoveChar(l, c int) byte {
	assert.Indexf(l >= 0 && l < len(fb.lines), "buffer: line %d not in [0,%d)", l, len(fb.lines))
	b := fb.lines[l].Remove(c)
	fb.hist.Append(history.Entry{Kind: history.RemoveChar, Line: l, Col: c, OldByte: b}, fb.cursor)
	fb.changedLine(l)
	return b
}

// Set overwrites the byte at (l,c). continueLastUpdate, when true,
// coalesces the edit into the currently open checkpoint instead of
// forcing a new one (spec.md §4.2).
func (fb *FileBuf) Set(l, c int, b byte, continueLastUpdate bool) {
	assert.Indexf(l >= 0 && l < len(fb.lines), "buffer: line %d not in [0,%d)", l, len(fb.lines))
	old := fb.lines[l].Get(c)
	if old == b {
		return
	}
	fb.lines[l].Set(c, b)
	if !continueLastUpdate && fb.hist.IsOpen() {
		fb.hist.Close()
	}
	fb.hist.Append(history.Entry{Kind: history.SetChar, Line: l, Col: c, OldByte: old, NewByte: b}, fb.cursor)
	fb.changedLine(l)
}

// InsertLine inserts a new line at l, using content's bytes if non-nil, or
// an empty line otherwise.
func (fb *FileBuf) InsertLine(l int, content []byte) {
	assert.Indexf(l >= 0 && l <= len(fb.lines), "buffer: line %d not in [0,%d]", l, len(fb.lines))
	var ln *linebuf.Line
	if fb.pool != nil {
		ln = fb.pool.Borrow()
		if content != nil {
			ln.AppendBytes(content)
		}
	} else if content != nil {
		ln = linebuf.FromBytes(content)
	} else {
		ln = linebuf.New()
	}

	fb.lines = append(fb.lines, nil)
	copy(fb.lines[l+1:], fb.lines[l:])
	fb.lines[l] = ln

	fb.styles = append(fb.styles, nil)
	copy(fb.styles[l+1:], fb.styles[l:])
	fb.styles[l] = linebuf.NewStyle()

	fb.hist.Append(history.Entry{Kind: history.InsertLine, Line: l}, fb.cursor)
	fb.changedLine(l)
}

// RemoveLine removes line l and returns its content.
func (fb *FileBuf) RemoveLine(l int) []byte {
	assert.Indexf(l >= 0 && l < len(fb.lines), "buffer: line %d not in [0,%d)", l, len(fb.lines))
	ln := fb.lines[l]
	content := append([]byte(nil), ln.Bytes()...)

	copy(fb.lines[l:], fb.lines[l+1:])
	fb.lines = fb.lines[:len(fb.lines)-1]

	copy(fb.styles[l:], fb.styles[l+1:])
	fb.styles = fb.styles[:len(fb.styles)-1]

	if fb.pool != nil {
		fb.pool.Return(ln)
	}

	fb.hist.Append(history.Entry{Kind: history.RemoveLine, Line: l, LineContent: content}, fb.cursor)
	if l < fb.hiTouched {
		fb.hiTouched = l
	}
	fb.changed = true
	for _, w := range fb.watchers {
		w.Touched(l)
	}
	return content
}

// AppendLineToLine appends other's bytes onto the end of line l (used by
// `J`, spec.md scenario 2).
func (fb *FileBuf) AppendLineToLine(l int, other []byte) {
	assert.Indexf(l >= 0 && l < len(fb.lines), "buffer: line %d not in [0,%d)", l, len(fb.lines))
	start := fb.lines[l].Len()
	for i, b := range other {
		fb.lines[l].Insert(start+i, b)
		fb.hist.Append(history.Entry{Kind: history.InsertChar, Line: l, Col: start + i, NewByte: b}, fb.cursor)
	}
	fb.changedLine(l)
}

// PushLine appends content (or an empty line) to the end of the buffer.
func (fb *FileBuf) PushLine(content []byte) { fb.InsertLine(len(fb.lines), content) }

// PushChar appends b to the end of line l.
func (fb *FileBuf) PushChar(l int, b byte) { fb.InsertChar(l, fb.LineLen(l), b) }

// PopLine removes and returns the last line's content.
func (fb *FileBuf) PopLine() []byte { return fb.RemoveLine(len(fb.lines) - 1) }

// PopChar removes and returns the last byte of line l.
func (fb *FileBuf) PopChar(l int) byte { return fb.RemoveChar(l, fb.LineLen(l)-1) }

// GetSize returns the total byte count across all lines (excluding
// terminators).
func (fb *FileBuf) GetSize() int {
	n := 0
	for _, l := range fb.lines {
		n += l.Len()
	}
	return n
}

// GetCursorByte returns the absolute byte offset of (cl, cc) within the
// file, counting one byte per line terminator between lines.
func (fb *FileBuf) GetCursorByte(cl, cc int) int {
	n := 0
	for i := 0; i < cl && i < len(fb.lines); i++ {
		n += fb.lines[i].Len() + 1
	}
	return n + cc
}

// HasLFAtEOF reports whether the file had a trailing newline when read.
func (fb *FileBuf) HasLFAtEOF() bool { return fb.TrailingNewline }

// Changed reports whether any mutation has happened since the last
// ClearChanged.
func (fb *FileBuf) Changed() bool { return fb.changed }

// ClearChanged resets the changed flag (called after a successful write).
func (fb *FileBuf) ClearChanged() { fb.changed = false }

// SavingHist reports whether edits are currently being recorded (false
// while an undo is being applied).
func (fb *FileBuf) SavingHist() bool { return fb.hist.Enabled }

// Cursor returns the cursor position FileBuf last recorded, used as the
// checkpoint-open position.
func (fb *FileBuf) Cursor() history.Cursor { return fb.cursor }

// SetCursor updates the recorded cursor position, implementing
// history.Applier.
func (fb *FileBuf) SetCursor(c history.Cursor) { fb.cursor = c }

// OpenCheckpoint starts a new undo checkpoint at the given cursor position
// (a no-op if one is already open).
func (fb *FileBuf) OpenCheckpoint(cur history.Cursor) { fb.hist.Open(cur) }

// CloseCheckpoint closes the currently open undo checkpoint.
func (fb *FileBuf) CloseCheckpoint() { fb.hist.Close() }

// ApplyInverse applies one ChangeHist entry's already-inverted effect,
// implementing history.Applier. Called only by Hist.Undo, which disables
// recording for the duration.
func (fb *FileBuf) ApplyInverse(e history.Entry) {
	switch e.Kind {
	case history.InsertChar:
		fb.lines[e.Line].Insert(e.Col, e.NewByte)
		fb.stylesDirty(e.Line)
	case history.RemoveChar:
		fb.lines[e.Line].Remove(e.Col)
		fb.stylesDirty(e.Line)
	case history.InsertLine:
		fb.InsertLine(e.Line, e.LineContent)
	case history.RemoveLine:
		fb.RemoveLine(e.Line)
	case history.SetChar:
		fb.lines[e.Line].Set(e.Col, e.NewByte)
		fb.stylesDirty(e.Line)
	}
}

func (fb *FileBuf) stylesDirty(l int) {
	if l < fb.hiTouched {
		fb.hiTouched = l
	}
	// Same rule as changedLine: a line whose content changed (including
	// via undo) needs its star highlighting rescanned (spec.md §4.2).
	fb.needStars = true
	fb.changed = true
	for _, w := range fb.watchers {
		w.Touched(l)
	}
}

// Undo reverses the most recent closed checkpoint.
func (fb *FileBuf) Undo() bool { return fb.hist.Undo(fb) }

// UndoAll reverses every checkpoint.
func (fb *FileBuf) UndoAll() { fb.hist.UndoAll(fb) }

// Update runs the Highlighter over stale lines and rescans star
// highlighting if an edit or a new pattern requires it (spec.md §4.2). It
// does not notify watchers; the edit methods already did. throughLine is exclusive, normally the furthest visible
// line across all registered Views plus their window height.
func (fb *FileBuf) Update(throughLine int) {
	if fb.hi != nil && fb.hiTouched < throughLine {
		next := fb.hi.Run(fb, fb.hiTouched, throughLine)
		fb.hiTouched = next
	}
	if fb.needStars {
		fb.findStars(0, len(fb.lines))
		fb.needStars = false
	}
}

// SetStarPattern sets the active search pattern and schedules a star scan.
func (fb *FileBuf) SetStarPattern(pattern []byte, caseFold bool) {
	fb.starPattern = pattern
	fb.starCaseFold = caseFold
	fb.needStars = true
}

func (fb *FileBuf) findStars(from, to int) {
	if len(fb.starPattern) == 0 {
		return
	}
	for l := from; l < to && l < len(fb.lines); l++ {
		hay := fb.lines[l].Bytes()
		pat := fb.starPattern
		haySearch, patSearch := hay, pat
		if fb.starCaseFold {
			haySearch = bytes.ToLower(hay)
			patSearch = bytes.ToLower(pat)
		}
		start := 0
		for {
			idx := bytes.Index(haySearch[start:], patSearch)
			if idx < 0 {
				break
			}
			at := start + idx
			for c := at; c < at+len(pat); c++ {
				fb.SetStyle(l, c, fb.GetStyle(l, c).WithStar())
			}
			start = at + 1
			if start >= len(haySearch) {
				break
			}
		}
	}
}

// ClearStars clears every star bit in the buffer.
func (fb *FileBuf) ClearStars() {
	for _, sl := range fb.styles {
		for i := 0; i < sl.Len(); i++ {
			sl.Set(i, sl.Get(i).WithoutStar())
		}
	}
}

// FindFileType chooses a highlight.Lang from the file's extension,
// mirroring Find_File_Type_Suffix's suffix dispatch.
func FindFileType(path string) (highlight.Lang, bool) {
	ext := filepath.Ext(path)
	if len(ext) > 0 {
		ext = ext[1:]
	}
	lang, ok := highlight.ByExt[ext]
	return lang, ok
}

// ReadFile loads path into a new FileBuf: a directory listing if path is a
// directory, stdin if path is "-", or a plain file otherwise (spec.md §6).
func ReadFile(path string, pool *linebuf.Pool) (*FileBuf, error) {
	if path == "-" {
		return readReader(os.Stdin, "-", pool)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("buffer: cannot read %s: %w", path, err)
	}
	if info.IsDir() {
		return readDir(path, pool)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("buffer: cannot read %s: %w", path, err)
	}
	defer f.Close()

	fb, err := readReader(f, path, pool)
	if err != nil {
		return nil, err
	}
	fb.lastModTime = info.ModTime()
	if lang, ok := FindFileType(path); ok {
		fb.FileType = lang.Name
		fb.SetHighlighter(highlight.New(lang))
	}
	return fb, nil
}

func readReader(r *os.File, path string, pool *linebuf.Pool) (*FileBuf, error) {
	fb := &FileBuf{
		ID:       uuid.New(),
		FilePath: path,
		hist:     history.New(),
		pool:     pool,
	}

	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffer: read %s: %w", path, err)
	}

	if len(data) == 0 {
		fb.appendLineRaw(nil)
		fb.TrailingNewline = false
		return fb, nil
	}

	fb.TrailingNewline = data[len(data)-1] == '\n'
	if fb.TrailingNewline {
		data = data[:len(data)-1]
	}
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		fb.appendLineRaw(append([]byte(nil), line...))
	}
	return fb, nil
}

func readAll(r *os.File) ([]byte, error) {
	var buf bytes.Buffer
	chunk := make([]byte, 64*1024)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		if n == 0 {
			break
		}
	}
	return buf.Bytes(), nil
}

// appendLineRaw appends a line without going through ChangeHist, used
// while constructing a FileBuf from file content (the read itself is not
// undoable).
func (fb *FileBuf) appendLineRaw(content []byte) {
	var ln *linebuf.Line
	if fb.pool != nil {
		ln = fb.pool.Borrow()
		if content != nil {
			ln.AppendBytes(content)
		}
	} else {
		ln = linebuf.FromBytes(content)
	}
	fb.lines = append(fb.lines, ln)
	fb.styles = append(fb.styles, linebuf.NewStyle())
}

func readDir(path string, pool *linebuf.Pool) (*FileBuf, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("buffer: cannot list %s: %w", path, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)

	fb := &FileBuf{
		ID:          uuid.New(),
		FilePath:    path,
		IsDirectory: true,
		hist:        history.New(),
		pool:        pool,
	}
	for _, name := range names {
		fb.appendLineRaw([]byte(name))
	}
	if len(names) == 0 {
		fb.appendLineRaw(nil)
	}
	fb.TrailingNewline = true
	return fb, nil
}

// Write writes fb's content back to FilePath, a trailing newline iff
// TrailingNewline is set (spec.md §6, R1 round-trip).
func (fb *FileBuf) Write() error {
	if fb.FilePath == "" || fb.FilePath == "-" {
		return fmt.Errorf("buffer: no file path to write")
	}
	f, err := os.Create(fb.FilePath)
	if err != nil {
		return fmt.Errorf("buffer: cannot write %s: %w", fb.FilePath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i, l := range fb.lines {
		if _, err := w.Write(l.Bytes()); err != nil {
			return fmt.Errorf("buffer: write %s: %w", fb.FilePath, err)
		}
		last := i == len(fb.lines)-1
		if !last || fb.TrailingNewline {
			if err := w.WriteByte('\n'); err != nil {
				return fmt.Errorf("buffer: write %s: %w", fb.FilePath, err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("buffer: write %s: %w", fb.FilePath, err)
	}
	if info, err := os.Stat(fb.FilePath); err == nil {
		fb.lastModTime = info.ModTime()
	}
	fb.ClearChanged()
	return nil
}

// ModTime reports the file's modification time as of the last read/write.
func (fb *FileBuf) ModTime() time.Time { return fb.lastModTime }

// Refresh re-stats FilePath and reports whether it changed on disk since
// the last read/write (used by MTimeWatcher.Poll).
func (fb *FileBuf) Refresh() (changed bool, err error) {
	if fb.FilePath == "" || fb.FilePath == "-" || fb.IsDirectory {
		return false, nil
	}
	info, err := os.Stat(fb.FilePath)
	if err != nil {
		return false, err
	}
	changed = info.ModTime().After(fb.lastModTime)
	return changed, nil
}
