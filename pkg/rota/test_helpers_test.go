package rota

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/datatug/rota/pkg/files"
	"github.com/gdamore/tcell/v2"
)

// stubStore serves a fixed listing, optionally with an error.
type stubStore struct {
	entries []os.DirEntry
	err     error
}

func (s stubStore) ReadDir(_ context.Context, _ string) ([]os.DirEntry, error) {
	return s.entries, s.err
}

func newTestBrowser(t *testing.T, store files.Store, dir string) *Browser {
	t.Helper()
	return NewBrowser(nil, store, dir)
}

// newSimScreen creates an initialized simulation screen for render tests.
func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

// screenText flattens the whole simulation screen into one string.
func screenText(screen tcell.SimulationScreen) string {
	width, height := screen.Size()
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			str, _, _ := screen.Get(x, y)
			if str == "" {
				// nothing drawn at this cell
				b.WriteRune(' ')
				continue
			}
			b.WriteString(str)
		}
		b.WriteRune('\n')
	}
	return b.String()
}

// mutableStore lets a test swap the listing between refreshes.
type mutableStore struct {
	entries []os.DirEntry
}

func (s *mutableStore) ReadDir(_ context.Context, _ string) ([]os.DirEntry, error) {
	return s.entries, nil
}

var _ files.Store = stubStore{}
var _ files.Store = (*mutableStore)(nil)
