package nav

import (
	"sort"

	"golang.org/x/text/cases"
)

// sortEntries orders directories before files and, within each group,
// case-insensitively by name. The order is total and does not depend on
// the enumeration order of the underlying filesystem.
func sortEntries(entries []Entry) {
	caser := cases.Fold()
	keyed := make([]struct {
		entry Entry
		key   string
	}, len(entries))
	for i, e := range entries {
		keyed[i].entry = e
		keyed[i].key = caser.String(e.Name)
	}
	sort.SliceStable(keyed, func(i, j int) bool {
		if keyed[i].entry.IsDir != keyed[j].entry.IsDir {
			return keyed[i].entry.IsDir
		}
		return keyed[i].key < keyed[j].key
	})
	for i := range keyed {
		entries[i] = keyed[i].entry
	}
}
