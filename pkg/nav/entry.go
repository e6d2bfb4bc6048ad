package nav

import (
	"os"
	"path/filepath"
	"time"
)

// Entry is one filesystem child of the current directory.
type Entry struct {
	Name  string
	Path  string
	IsDir bool

	// Size is meaningful only when HasSize is true. It is never set for
	// directories.
	Size    int64
	HasSize bool

	// ModTime is the zero time when the modification time is unknown.
	ModTime time.Time
}

// newEntry converts an os.DirEntry into an Entry. Metadata failures
// degrade to partial info: the child is still listed, just without size
// and modification time.
func newEntry(dir string, child os.DirEntry) Entry {
	entry := Entry{
		Name:  child.Name(),
		Path:  filepath.Join(dir, child.Name()),
		IsDir: child.IsDir(),
	}
	info, err := child.Info()
	if err != nil || info == nil {
		return entry
	}
	if info.Mode().IsRegular() {
		entry.Size = info.Size()
		entry.HasSize = true
	}
	entry.ModTime = info.ModTime()
	return entry
}
