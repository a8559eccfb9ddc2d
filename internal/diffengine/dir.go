package diffengine

import (
	"os"
	"path/filepath"
)

// DirCompareResult classifies one matched pair of directory entries.
type DirCompareResult struct {
	Name string
	Type DiffType // Same or DiffFiles
}

// CompareDirs compares two directory FileBufs entry-by-entry where
// filenames match, loading child file content from disk to decide Same vs
// DiffFiles, subject to maxAutoLoad child-file reads per invocation
// (spec.md §4.7 "Directory comparison"). Children are always read from
// disk; the content of an already-open FileBuf, including unsaved edits, is
// not consulted.
func CompareDirs(shortDir, longDir string, shortNames, longNames []string) []DirCompareResult {
	longSet := make(map[string]bool, len(longNames))
	for _, n := range longNames {
		longSet[n] = true
	}

	var out []DirCompareResult
	loaded := 0
	for _, name := range shortNames {
		if !longSet[name] {
			continue
		}
		if isDirEntry(name) {
			out = append(out, DirCompareResult{Name: name, Type: Same})
			continue
		}
		if loaded >= maxAutoLoad {
			// Rate limit reached; leave classification Unknown rather than
			// stat/read further files this invocation.
			out = append(out, DirCompareResult{Name: name, Type: Unknown})
			continue
		}
		loaded++
		same, err := filesEqual(filepath.Join(shortDir, name), filepath.Join(longDir, name))
		if err != nil {
			out = append(out, DirCompareResult{Name: name, Type: Unknown})
			continue
		}
		if same {
			out = append(out, DirCompareResult{Name: name, Type: Same})
		} else {
			out = append(out, DirCompareResult{Name: name, Type: DiffFiles})
		}
	}
	return out
}

func isDirEntry(name string) bool {
	return len(name) > 0 && name[len(name)-1] == '/'
}

func filesEqual(a, b string) (bool, error) {
	da, err := os.ReadFile(a)
	if err != nil {
		return false, err
	}
	db, err := os.ReadFile(b)
	if err != nil {
		return false, err
	}
	if len(da) != len(db) {
		return false, nil
	}
	for i := range da {
		if da[i] != db[i] {
			return false, nil
		}
	}
	return true, nil
}
