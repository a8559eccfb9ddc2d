package buffer

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// MTimeWatcher polls for on-disk changes to the files backing a set of
// FileBufs, implementing the "poll file mtimes" step of the event loop in
// spec.md §5. It augments FileBuf.Refresh's stat-based polling with an
// fsnotify watch on each file's parent directory, so a rename-over-write
// (common with editors and `git checkout`) is caught even when mtime
// granularity would otherwise miss it.
type MTimeWatcher struct {
	fsw   *fsnotify.Watcher
	bufs  map[string]*FileBuf
	dirs  map[string]bool
}

// NewWatcher returns an MTimeWatcher that watches nothing yet; Add starts
// watching the parent directory of each registered buf's FilePath.
func NewWatcher() (*MTimeWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &MTimeWatcher{fsw: fsw, bufs: make(map[string]*FileBuf), dirs: make(map[string]bool)}, nil
}

// Add registers fb for watching.
func (w *MTimeWatcher) Add(fb *FileBuf) error {
	if fb.FilePath == "" || fb.FilePath == "-" || fb.IsDirectory {
		return nil
	}
	w.bufs[fb.FilePath] = fb
	dir := filepath.Dir(fb.FilePath)
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	return nil
}

// Poll drains pending fsnotify events without blocking and returns the
// FileBufs whose backing file changed on disk, per each FileBuf's own
// Refresh (stat-based mtime comparison).
func (w *MTimeWatcher) Poll() []*FileBuf {
	var changed []*FileBuf
	for {
		select {
		case ev := <-w.fsw.Events:
			fb, ok := w.bufs[ev.Name]
			if !ok {
				continue
			}
			if did, err := fb.Refresh(); err == nil && did {
				changed = append(changed, fb)
			}
		case <-w.fsw.Errors:
			// Errors are non-fatal for a best-effort augmentation; the
			// stat-based Refresh path in the main loop still runs.
		default:
			return changed
		}
	}
}

// Close stops the underlying fsnotify watcher.
func (w *MTimeWatcher) Close() error { return w.fsw.Close() }
