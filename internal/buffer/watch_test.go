package buffer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kylelemons/vis/internal/linebuf"
)

func TestWatcherDetectsExternalWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\n"), 0o644))

	pool := linebuf.NewPool()
	fb, err := ReadFile(path, pool)
	require.NoError(t, err)

	w, err := NewWatcher()
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()
	require.NoError(t, w.Add(fb))

	// Ensure the new mtime differs from the original on coarse filesystems.
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("two\n"), 0o644))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if changed := w.Poll(); len(changed) > 0 {
			require.Equal(t, fb, changed[0])
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("watcher never observed the external write")
}

func TestWatcherAddIgnoresStdinAndDirectories(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	stdin := &FileBuf{FilePath: "-"}
	require.NoError(t, w.Add(stdin))

	dirBuf := &FileBuf{FilePath: t.TempDir(), IsDirectory: true}
	require.NoError(t, w.Add(dirBuf))

	require.Empty(t, w.Poll())
}
