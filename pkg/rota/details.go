package rota

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/datatug/rota/pkg/fsutils"
	"github.com/datatug/rota/pkg/highlight"
	"github.com/datatug/rota/pkg/nav"
	"github.com/rivo/tview"
)

const previewMaxBytes = 4 * 1024

var readFileHead = fsutils.ReadFileHead

// detailsText builds the right hand panel from the selected entry.
func (b *Browser) detailsText() string {
	entry := b.state.SelectedEntry()
	if entry == nil {
		return "No entries"
	}

	kind := "File"
	if entry.IsDir {
		kind = "Directory"
	}
	size := "-"
	if entry.HasSize {
		size = fsutils.SizeText(entry.Size)
	}
	modified := "-"
	if !entry.ModTime.IsZero() {
		modified = "known (format later)"
	}

	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "Name: %s\nType: %s\nSize: %s\nModified: %s\n\nPath:\n%s\n",
		tview.Escape(entry.Name), kind, size, modified, tview.Escape(entry.Path))

	if preview := previewText(entry); preview != "" {
		sb.WriteString("\n")
		sb.WriteString(preview)
	}
	return sb.String()
}

// previewText returns a syntax highlighted head of the selected file, or
// an empty string when there is nothing sensible to show. Preview
// failures are not navigation errors and never touch the state.
func previewText(entry *nav.Entry) string {
	if entry.IsDir || !entry.HasSize {
		return ""
	}
	data, err := readFileHead(entry.Path, previewMaxBytes)
	if err != nil || len(data) == 0 {
		return ""
	}
	if bytes.ContainsRune(data, 0) {
		return "" // binary content
	}
	text, err := highlight.ForFileName(entry.Name, string(data))
	if err != nil {
		return ""
	}
	return text
}
