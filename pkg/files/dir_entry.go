package files

import (
	"os"
	"path/filepath"
)

// NewDirEntry builds a synthetic os.DirEntry, mostly useful for stores
// that do not sit on a real filesystem and for tests.
func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	if len(o) > 0 {
		dirEntry.info = NewFileInfo(dirEntry, o...)
	}
	return dirEntry
}

// NewDirEntryWithInfoErr builds a synthetic entry whose Info() fails,
// modelling a child whose metadata cannot be read.
func NewDirEntryWithInfoErr(name string, isDir bool, err error) DirEntry {
	entry := NewDirEntry(name, isDir)
	entry.infoErr = err
	return entry
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name    string
	isDir   bool
	info    *FileInfo
	infoErr error
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }

func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}

func (d DirEntry) Info() (os.FileInfo, error) {
	if d.infoErr != nil {
		return nil, d.infoErr
	}
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}
