// Package rota wires the read-only directory browser UI.
package rota

import (
	"fmt"
	"os"

	"github.com/datatug/rota/pkg/files/osfile"
	"github.com/rivo/tview"
)

var osGetwd = os.Getwd

// SetupApp roots the application at a browser seeded with the process's
// working directory. A working directory that cannot be determined is the
// only fatal setup failure on this path.
func SetupApp(app *tview.Application) error {
	cwd, err := osGetwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}
	browser := NewBrowser(app, osfile.NewStore(), cwd)
	app.SetRoot(browser, true)
	return nil
}
