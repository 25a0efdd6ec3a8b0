package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/park285/kifu-viewer/internal/presenter"
	"github.com/park285/kifu-viewer/internal/util"
	"github.com/park285/kifu-viewer/internal/viewer"
	"github.com/rivo/tview"
)

const toastTTL = 5 * time.Second

// ViewerView renders the review screen. Every mutation is queued onto the
// UI goroutine; fields below are only touched there.
type ViewerView struct {
	queue  func(func())
	format *presenter.Formatter
	ttl    time.Duration

	root       *tview.Flex
	header     *tview.TextView
	board      *tview.TextView
	moveNumber *tview.TextView
	turn       *tview.TextView
	captured   *tview.TextView
	commentary *tview.TextView
	status     *tview.TextView
	moves      *tview.List

	first, prev, next, last *tview.Button

	nav      viewer.NavState
	items    []listItem
	active   int
	toastSeq uint64
	hint     string

	onAction func(Action)
	onSelect func(index int)
}

type listItem struct {
	main      string
	secondary string
}

const activeMarker = "▶ "

func NewViewerView(queue func(func()), format *presenter.Formatter) *ViewerView {
	v := &ViewerView{queue: queue, format: format, ttl: toastTTL, active: -1}
	v.hint = format.Text("app.hint", nil, "")

	v.header = tview.NewTextView().SetDynamicColors(true)
	v.board = tview.NewTextView().SetDynamicColors(true)
	v.board.SetBorder(true)
	v.moveNumber = tview.NewTextView().SetDynamicColors(true)
	v.turn = tview.NewTextView().SetDynamicColors(true)
	v.captured = tview.NewTextView().SetDynamicColors(true)
	v.commentary = tview.NewTextView().SetDynamicColors(true).SetWordWrap(true)
	v.commentary.SetBorder(true)
	v.status = tview.NewTextView().SetDynamicColors(true).SetText(tview.Escape(v.hint))

	v.moves = tview.NewList().ShowSecondaryText(true).SetSelectedFunc(func(i int, _ string, _ string, _ rune) {
		if v.onSelect != nil {
			v.onSelect(i)
		}
	})
	v.moves.SetBorder(true)

	v.first = v.navButton("|<", ActionFirst)
	v.prev = v.navButton("<", ActionPrev)
	v.next = v.navButton(">", ActionNext)
	v.last = v.navButton(">|", ActionLast)
	v.applyNav(viewer.NavState{})

	buttons := tview.NewFlex().
		AddItem(v.first, 6, 0, false).
		AddItem(v.prev, 5, 0, false).
		AddItem(v.moveNumber, 0, 1, false).
		AddItem(v.next, 5, 0, false).
		AddItem(v.last, 6, 0, false)

	left := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.board, 0, 3, false).
		AddItem(v.turn, 1, 0, false).
		AddItem(v.captured, 2, 0, false).
		AddItem(buttons, 1, 0, false).
		AddItem(v.commentary, 0, 1, false)

	body := tview.NewFlex().
		AddItem(left, 0, 2, false).
		AddItem(v.moves, 0, 1, true)

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.header, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(v.status, 1, 0, false)
	return v
}

func (v *ViewerView) navButton(label string, act Action) *tview.Button {
	return tview.NewButton(label).SetSelectedFunc(func() {
		if v.Enabled(act) && v.onAction != nil {
			v.onAction(act)
		}
	})
}

func (v *ViewerView) Root() tview.Primitive { return v.root }

func (v *ViewerView) Focus() tview.Primitive { return v.moves }

// Enabled reports whether a navigation action is currently allowed.
// Non-navigation actions are always enabled.
func (v *ViewerView) Enabled(act Action) bool {
	switch act {
	case ActionFirst:
		return v.nav.First
	case ActionPrev:
		return v.nav.Prev
	case ActionNext:
		return v.nav.Next
	case ActionLast:
		return v.nav.Last
	}
	return true
}

func (v *ViewerView) applyNav(nav viewer.NavState) {
	v.nav = nav
	for _, b := range []struct {
		btn *tview.Button
		on  bool
	}{{v.first, nav.First}, {v.prev, nav.Prev}, {v.next, nav.Next}, {v.last, nav.Last}} {
		if b.on {
			b.btn.SetLabelColor(tcell.ColorWhite)
		} else {
			b.btn.SetLabelColor(tcell.ColorGray)
		}
	}
}

func (v *ViewerView) ShowGame(header string, entries []presenter.MoveEntry) {
	v.queue(func() {
		v.header.SetText(tview.Escape(header))
		v.moves.Clear()
		v.items = v.items[:0]
		v.active = -1
		for _, e := range entries {
			main := e.Notation
			if e.Index > 0 {
				main = fmt.Sprintf("%s. %s", e.Number, e.Notation)
			}
			it := listItem{main: tview.Escape(main), secondary: tview.Escape(e.Preview)}
			v.items = append(v.items, it)
			v.moves.AddItem(it.main, it.secondary, 0, nil)
		}
		v.board.Clear()
		v.commentary.Clear()
	})
}

func (v *ViewerView) ShowBoard(spans []presenter.Span) {
	text := util.TrimTrailingNewlines(presenter.RenderSpans(spans, presenter.TviewMarkup, tview.Escape))
	v.queue(func() { v.board.SetText(text) })
}

func (v *ViewerView) ShowBoardError(msg string) {
	v.queue(func() { v.board.SetText("[red]" + tview.Escape(msg) + "[-]") })
}

func (v *ViewerView) ShowMoveNumber(text string) {
	v.queue(func() { v.moveNumber.SetText(" " + tview.Escape(text)) })
}

func (v *ViewerView) ShowTurn(label string, side domain.Side) {
	color := "white"
	if side == domain.Gote {
		color = "red"
	}
	v.queue(func() { v.turn.SetText(fmt.Sprintf("[%s::b]%s[-:-:-]", color, tview.Escape(label))) })
}

func (v *ViewerView) ShowCaptured(sente, gote string) {
	text := fmt.Sprintf("%s: %s\n%s: [red]%s[-]",
		v.format.Text("viewer.captured_sente", nil, "先手の持ち駒"), tview.Escape(sente),
		v.format.Text("viewer.captured_gote", nil, "後手の持ち駒"), tview.Escape(gote))
	v.queue(func() { v.captured.SetText(text) })
}

// HighlightMove marks the cursor entry. The marker, not the list selection,
// is the source of truth: exactly one entry carries it.
func (v *ViewerView) HighlightMove(index int) {
	v.queue(func() {
		if index < 0 || index >= len(v.items) {
			return
		}
		if v.active >= 0 && v.active < len(v.items) {
			prev := v.items[v.active]
			v.moves.SetItemText(v.active, prev.main, prev.secondary)
		}
		it := v.items[index]
		v.moves.SetItemText(index, activeMarker+it.main, it.secondary)
		v.active = index
		v.moves.SetCurrentItem(index)
	})
}

func (v *ViewerView) SetNavigation(nav viewer.NavState) {
	v.queue(func() { v.applyNav(nav) })
}

func (v *ViewerView) ShowCommentary(text string) {
	v.queue(func() { v.commentary.SetText(tview.Escape(text)) })
}

func (v *ViewerView) ShowError(msg string) { v.toast("red", msg) }

func (v *ViewerView) ShowNotice(msg string) { v.toast("green", msg) }

// toast replaces the status line and restores the key hint after ttl
// unless a newer toast took its place.
func (v *ViewerView) toast(color, msg string) {
	v.queue(func() {
		v.toastSeq++
		seq := v.toastSeq
		v.status.SetText(fmt.Sprintf("[%s]%s[-]", color, tview.Escape(msg)))
		time.AfterFunc(v.ttl, func() {
			v.queue(func() {
				if v.toastSeq == seq {
					v.status.SetText(tview.Escape(v.hint))
				}
			})
		})
	})
}

var _ viewer.Display = (*ViewerView)(nil)
