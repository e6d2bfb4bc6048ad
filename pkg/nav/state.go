package nav

import (
	"context"
	"path/filepath"

	"github.com/datatug/rota/pkg/files"
)

// State is the complete observable state of a browsing session: the
// directory being browsed, its sorted listing, the selection and the most
// recent failure. Filesystem errors never escape State as error returns;
// they are converted to LastErr so the session keeps running.
type State struct {
	store files.Store

	CurrentDir string
	Entries    []Entry
	Selected   int
	LastErr    string
}

// NewState creates a session rooted at dir. The caller is expected to
// Refresh before the first render.
func NewState(store files.Store, dir string) *State {
	return &State{
		store:      store,
		CurrentDir: dir,
	}
}

// Refresh re-reads CurrentDir and fully replaces Entries.
//
// If the enumeration cannot start at all, LastErr is set, the listing is
// cleared and the session keeps running with an empty list. A partially
// read listing (some children plus an error) keeps the readable children
// and records the error — one bad child never aborts the whole listing.
func (s *State) Refresh(ctx context.Context) {
	s.LastErr = ""

	children, err := s.store.ReadDir(ctx, s.CurrentDir)
	if err != nil {
		s.LastErr = "read dir failed: " + err.Error()
		if len(children) == 0 {
			s.Entries = nil
			s.Selected = 0
			return
		}
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		entries = append(entries, newEntry(s.CurrentDir, child))
	}
	sortEntries(entries)

	s.Entries = entries
	s.ClampSelection()
}

// ClampSelection restores the selection invariant after any mutation that
// can shrink Entries. Idempotent.
func (s *State) ClampSelection() {
	if len(s.Entries) == 0 {
		s.Selected = 0
		return
	}
	if s.Selected >= len(s.Entries) {
		s.Selected = len(s.Entries) - 1
	}
}

// MoveSelection shifts the selection by delta, clamping at both ends.
func (s *State) MoveSelection(delta int) {
	if len(s.Entries) == 0 {
		return
	}
	next := s.Selected + delta
	if next < 0 {
		next = 0
	}
	if next > len(s.Entries)-1 {
		next = len(s.Entries) - 1
	}
	s.Selected = next
}

// EnterSelectedDir descends into the selected entry if it is a directory,
// otherwise does nothing.
func (s *State) EnterSelectedDir(ctx context.Context) {
	entry := s.SelectedEntry()
	if entry == nil || !entry.IsDir {
		return
	}
	s.CurrentDir = entry.Path
	s.Selected = 0
	s.Refresh(ctx)
}

// GoParent ascends to the parent of CurrentDir, or does nothing at a
// filesystem root.
func (s *State) GoParent(ctx context.Context) {
	parent := filepath.Dir(s.CurrentDir)
	if parent == s.CurrentDir {
		return
	}
	s.CurrentDir = parent
	s.Selected = 0
	s.Refresh(ctx)
}

// SelectedEntry returns the entry under the cursor, or nil when the
// listing is empty.
func (s *State) SelectedEntry() *Entry {
	if len(s.Entries) == 0 {
		return nil
	}
	return &s.Entries[s.Selected]
}
