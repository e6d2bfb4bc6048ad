package files

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDirEntry(t *testing.T) {
	t.Parallel()

	t.Run("panics_on_name_with_path", func(t *testing.T) {
		assert.Panics(t, func() {
			NewDirEntry("a/b.txt", false)
		})
	})

	t.Run("plain_entry", func(t *testing.T) {
		entry := NewDirEntry("a.txt", false)
		assert.Equal(t, "a.txt", entry.Name())
		assert.False(t, entry.IsDir())
		assert.Equal(t, os.FileMode(0), entry.Type())
		info, err := entry.Info()
		assert.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("directory", func(t *testing.T) {
		entry := NewDirEntry("sub", true)
		assert.True(t, entry.IsDir())
		assert.Equal(t, os.ModeDir, entry.Type())
	})

	t.Run("with_info", func(t *testing.T) {
		modTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		entry := NewDirEntry("a.txt", false, Size(42), ModTime(modTime))
		info, err := entry.Info()
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, "a.txt", info.Name())
		assert.Equal(t, int64(42), info.Size())
		assert.Equal(t, modTime, info.ModTime())
		assert.False(t, info.IsDir())
		assert.Equal(t, os.FileMode(0), info.Mode())
		assert.Nil(t, info.Sys())
	})
}

func TestNewDirEntryWithInfoErr(t *testing.T) {
	t.Parallel()
	wantErr := errors.New("stat failed")
	entry := NewDirEntryWithInfoErr("broken", false, wantErr)
	assert.Equal(t, "broken", entry.Name())
	info, err := entry.Info()
	assert.Nil(t, info)
	assert.ErrorIs(t, err, wantErr)
}

func TestFileInfo_NilReceiver(t *testing.T) {
	t.Parallel()
	var info *FileInfo
	assert.Equal(t, "", info.Name())
	assert.Equal(t, int64(0), info.Size())
	assert.Equal(t, os.FileMode(0), info.Mode())
	assert.True(t, info.ModTime().IsZero())
	assert.False(t, info.IsDir())
	assert.Nil(t, info.Sys())
}
