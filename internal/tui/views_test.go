package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/park285/kifu-viewer/internal/msgcat"
	"github.com/park285/kifu-viewer/internal/presenter"
	"github.com/park285/kifu-viewer/internal/viewer"
	"github.com/rivo/tview"
)

func direct(f func()) { f() }

func press(b *tview.Button) {
	b.InputHandler()(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), func(tview.Primitive) {})
}

func markedEntries(v *ViewerView) []int {
	var out []int
	for i := 0; i < v.moves.GetItemCount(); i++ {
		if main, _ := v.moves.GetItemText(i); strings.HasPrefix(main, "▶") {
			out = append(out, i)
		}
	}
	return out
}

func testFormatter() *presenter.Formatter {
	return presenter.NewFormatter(msgcat.Default())
}

func TestViewerViewRendersRegions(t *testing.T) {
	v := NewViewerView(direct, testFormatter())
	entries := []presenter.MoveEntry{
		{Index: 0, Number: "0", Notation: "初期局面", Preview: "対局開始時の盤面です"},
		{Index: 1, Number: "1", Notation: "7g7f", Preview: "角道を開ける..."},
		{Index: 2, Number: "2", Notation: "3c3d", Preview: "..."},
	}
	v.ShowGame("対局ID: g1", entries)
	if n := v.moves.GetItemCount(); n != 3 {
		t.Fatalf("items = %d", n)
	}
	main, _ := v.moves.GetItemText(1)
	if main != "1. 7g7f" {
		t.Fatalf("entry = %q", main)
	}

	v.ShowBoard(presenter.SplitGote("◆歩◆ 香 [x]"))
	raw := v.board.GetText(false)
	if !strings.Contains(raw, "[red::b]歩[-:-:-]") {
		t.Fatalf("board markup: %q", raw)
	}
	if strings.Contains(raw, "◆") {
		t.Fatalf("marker left in board: %q", raw)
	}

	v.HighlightMove(2)
	if v.moves.GetCurrentItem() != 2 {
		t.Fatalf("highlight = %d", v.moves.GetCurrentItem())
	}
	v.HighlightMove(9)
	if v.moves.GetCurrentItem() != 2 {
		t.Fatalf("out of range highlight moved selection")
	}
	v.HighlightMove(1)
	if got := markedEntries(v); len(got) != 1 || got[0] != 1 {
		t.Fatalf("marked entries = %v", got)
	}
	if main, _ := v.moves.GetItemText(1); main != "▶ 1. 7g7f" {
		t.Fatalf("active entry = %q", main)
	}
	if main, _ := v.moves.GetItemText(2); main != "2. 3c3d" {
		t.Fatalf("previous active entry kept marker: %q", main)
	}
	// selection drifting away (PgDn, mouse) leaves the marker on the cursor
	v.moves.SetCurrentItem(0)
	if got := markedEntries(v); len(got) != 1 || got[0] != 1 {
		t.Fatalf("marked entries after drift = %v", got)
	}

	v.ShowTurn("後手", domain.Gote)
	if !strings.Contains(v.turn.GetText(false), "[red::b]後手") {
		t.Fatalf("turn: %q", v.turn.GetText(false))
	}
	v.ShowCaptured("歩×2", "なし")
	if got := v.captured.GetText(true); !strings.Contains(got, "歩×2") || !strings.Contains(got, "なし") {
		t.Fatalf("captured: %q", got)
	}
	v.ShowBoardError("エラー: 盤面を表示できません")
	if got := v.board.GetText(true); !strings.Contains(got, "盤面を表示できません") {
		t.Fatalf("board error: %q", got)
	}
}

func TestViewerViewNavigationGuard(t *testing.T) {
	v := NewViewerView(direct, testFormatter())
	var got []Action
	v.onAction = func(a Action) { got = append(got, a) }

	v.SetNavigation(viewer.Navigation(0, 3))
	press(v.first)
	press(v.prev)
	press(v.next)
	if len(got) != 1 || got[0] != ActionNext {
		t.Fatalf("actions = %v", got)
	}
	if v.Enabled(ActionFirst) || !v.Enabled(ActionLast) || !v.Enabled(ActionExport) {
		t.Fatalf("enabled mismatch: %+v", v.nav)
	}

	v.SetNavigation(viewer.Navigation(3, 3))
	press(v.last)
	press(v.first)
	if len(got) != 2 || got[1] != ActionFirst {
		t.Fatalf("actions = %v", got)
	}
}

func TestViewerViewToastExpires(t *testing.T) {
	updates := make(chan func(), 8)
	v := NewViewerView(func(f func()) { updates <- f }, testFormatter())
	v.ttl = 10 * time.Millisecond

	v.ShowError("boom")
	(<-updates)()
	if got := v.status.GetText(true); !strings.Contains(got, "boom") {
		t.Fatalf("status = %q", got)
	}
	select {
	case f := <-updates:
		f()
	case <-time.After(time.Second):
		t.Fatalf("toast never cleared")
	}
	if got := v.status.GetText(true); strings.Contains(got, "boom") {
		t.Fatalf("status still shows toast: %q", got)
	}
}

func TestViewerViewNewerToastWins(t *testing.T) {
	updates := make(chan func(), 8)
	v := NewViewerView(func(f func()) { updates <- f }, testFormatter())
	v.ttl = 10 * time.Millisecond

	v.ShowError("first")
	(<-updates)()
	v.ttl = time.Hour
	v.ShowNotice("second")
	(<-updates)()

	select {
	case f := <-updates:
		f()
	case <-time.After(time.Second):
		t.Fatalf("first toast timer did not fire")
	}
	if got := v.status.GetText(true); !strings.Contains(got, "second") {
		t.Fatalf("status = %q", got)
	}
}

func TestLauncherView(t *testing.T) {
	v := NewLauncherView(direct, testFormatter(), []int{10, 20, 30}, 2)
	if n, ok := v.SelectedMaxMoves(); !ok || n != 30 {
		t.Fatalf("default selection = %d %v", n, ok)
	}

	var started []int
	v.onStart = func(n int) { started = append(started, n) }
	press(v.start)
	v.SetStartEnabled(false)
	press(v.start)
	if len(started) != 1 || started[0] != 30 {
		t.Fatalf("started = %v", started)
	}

	v.ShowError("エラーが発生しました: X")
	if !v.HasError() || !strings.Contains(v.errText.GetText(true), "X") {
		t.Fatalf("error not shown")
	}
	v.Reset()
	if v.HasError() || !v.startEnabled {
		t.Fatalf("reset: error=%v start=%v", v.HasError(), v.startEnabled)
	}

	var routes []string
	v.onNavigate = func(r string) { routes = append(routes, r) }
	v.Navigate("/viewer")
	if len(routes) != 1 || routes[0] != "/viewer" {
		t.Fatalf("routes = %v", routes)
	}
}
