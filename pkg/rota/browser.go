package rota

import (
	"context"
	"fmt"

	"github.com/datatug/rota/pkg/files"
	"github.com/datatug/rota/pkg/nav"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = "j/k or ↑/↓ move ┊ Enter open dir ┊ Backspace up ┊ r refresh ┊ q quit"

const dirMarker = "📁 "
const fileMarker = "   "

// Browser renders a nav.State snapshot into a two column layout: header,
// entry list and status on the left, a details panel on the right. Key
// events are dispatched to the state and the widgets are rebuilt after
// every mutation.
type Browser struct {
	*tview.Flex
	app   *tview.Application
	state *nav.State
	stop  func()

	header  *tview.TextView
	list    *tview.List
	status  *tview.TextView
	details *tview.TextView
}

func NewBrowser(app *tview.Application, store files.Store, dir string) *Browser {
	b := &Browser{
		app:   app,
		state: nav.NewState(store, dir),
		stop:  func() {},
	}
	if app != nil {
		b.stop = app.Stop
	}

	b.header = tview.NewTextView().SetTextColor(Style.HeaderTextColor)
	b.header.SetBorder(true)

	b.list = tview.NewList().
		ShowSecondaryText(false).
		SetMainTextColor(Style.ListTextColor)
	b.list.SetBorder(true).SetTitle(" Entries ")

	b.status = tview.NewTextView()
	b.status.SetBorder(true).SetTitle(" Status ")

	b.details = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	b.details.SetBorder(true).SetTitle(" Details ")

	left := tview.NewFlex().SetDirection(tview.FlexRow)
	left.AddItem(b.header, 3, 0, false)
	left.AddItem(b.list, 0, 1, false)
	left.AddItem(b.status, 3, 0, false)

	b.Flex = tview.NewFlex()
	b.AddItem(left, 0, 3, false)
	b.AddItem(b.details, 0, 2, false)

	b.SetInputCapture(b.handleKey)

	b.state.Refresh(context.Background())
	b.update()

	return b
}

// handleKey maps one key event to a state mutation. Unrecognized keys are
// passed through untouched.
func (b *Browser) handleKey(event *tcell.EventKey) *tcell.EventKey {
	ctx := context.Background()
	switch event.Key() {
	case tcell.KeyDown:
		b.state.MoveSelection(1)
	case tcell.KeyUp:
		b.state.MoveSelection(-1)
	case tcell.KeyEnter:
		b.state.EnterSelectedDir(ctx)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		b.state.GoParent(ctx)
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			b.stop()
			return nil
		case 'j':
			b.state.MoveSelection(1)
		case 'k':
			b.state.MoveSelection(-1)
		case 'r':
			b.state.Refresh(ctx)
		default:
			return event
		}
	default:
		return event
	}
	b.update()
	return nil
}

// update rebuilds every widget from the current state snapshot.
func (b *Browser) update() {
	b.header.SetText("Rota File Browser (read-only)")
	b.header.SetTitle(" " + tview.Escape(b.state.CurrentDir) + " ")

	b.list.Clear()
	for _, entry := range b.state.Entries {
		marker := fileMarker
		if entry.IsDir {
			marker = dirMarker
		}
		b.list.AddItem(marker+tview.Escape(entry.Name), "", 0, nil)
	}
	if len(b.state.Entries) > 0 {
		b.list.SetCurrentItem(b.state.Selected)
	}

	if b.state.LastErr != "" {
		b.status.SetText(fmt.Sprintf("ERROR: %s", b.state.LastErr))
		b.status.SetTextColor(Style.ErrorTextColor)
	} else {
		b.status.SetText(helpText)
		b.status.SetTextColor(Style.StatusTextColor)
	}

	b.details.SetText(b.detailsText())
}
