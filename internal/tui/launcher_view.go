package tui

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/park285/kifu-viewer/internal/launcher"
	"github.com/park285/kifu-viewer/internal/presenter"
	"github.com/rivo/tview"
)

// LauncherView is the start screen: a max-moves menu and a start button.
type LauncherView struct {
	queue  func(func())
	format *presenter.Formatter

	options      []int
	startEnabled bool
	hasError     bool

	root     *tview.Flex
	menu     *tview.DropDown
	selected *tview.TextView
	start    *tview.Button
	loading  *tview.TextView
	errText  *tview.TextView

	onSelect   func(maxMoves int)
	onStart    func(maxMoves int)
	onNavigate func(route string)
}

func NewLauncherView(queue func(func()), format *presenter.Formatter, options []int, defaultIndex int) *LauncherView {
	v := &LauncherView{queue: queue, format: format, options: append([]int(nil), options...), startEnabled: true}

	labels := make([]string, len(options))
	for i, n := range options {
		labels[i] = strconv.Itoa(n)
	}
	title := tview.NewTextView().SetTextAlign(tview.AlignCenter).
		SetText(format.Text("app.title", nil, "kifu viewer"))
	v.selected = tview.NewTextView()
	v.menu = tview.NewDropDown().
		SetLabel(format.Text("launcher.max_moves_label", nil, "max moves") + " ").
		SetOptions(labels, func(_ string, index int) {
			if index >= 0 && index < len(v.options) && v.onSelect != nil {
				v.onSelect(v.options[index])
			}
		})
	if defaultIndex >= 0 && defaultIndex < len(options) {
		v.menu.SetCurrentOption(defaultIndex)
	}
	v.start = tview.NewButton(format.Text("launcher.start_button", nil, "start")).SetSelectedFunc(func() {
		if !v.startEnabled || v.onStart == nil {
			return
		}
		if n, ok := v.SelectedMaxMoves(); ok {
			v.onStart(n)
		}
	})
	v.loading = tview.NewTextView().SetDynamicColors(true)
	v.errText = tview.NewTextView().SetDynamicColors(true).SetWordWrap(true)

	form := tview.NewFlex().
		AddItem(v.menu, 0, 2, true).
		AddItem(v.selected, 8, 0, false).
		AddItem(v.start, 12, 0, false)

	v.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(title, 2, 0, false).
		AddItem(form, 1, 0, true).
		AddItem(v.loading, 2, 0, false).
		AddItem(v.errText, 0, 1, false)
	v.root.SetBorder(true)
	return v
}

func (v *LauncherView) Root() tview.Primitive { return v.root }

func (v *LauncherView) Focus() tview.Primitive { return v.menu }

// Toggle returns the widget that should get focus after current.
func (v *LauncherView) Toggle(current tview.Primitive) tview.Primitive {
	if current == tview.Primitive(v.start) {
		return v.menu
	}
	return v.start
}

func (v *LauncherView) SelectedMaxMoves() (int, bool) {
	i, _ := v.menu.GetCurrentOption()
	if i < 0 || i >= len(v.options) {
		return 0, false
	}
	return v.options[i], true
}

func (v *LauncherView) HasError() bool { return v.hasError }

func (v *LauncherView) SetStartEnabled(enabled bool) {
	v.queue(func() {
		v.startEnabled = enabled
		if enabled {
			v.start.SetLabelColor(tcell.ColorWhite)
		} else {
			v.start.SetLabelColor(tcell.ColorGray)
		}
	})
}

func (v *LauncherView) ShowLoading(loading bool) {
	v.queue(func() {
		if loading {
			v.loading.SetText("[yellow]" + tview.Escape(v.format.Text("launcher.loading", nil, "...")) + "[-]")
			return
		}
		v.loading.Clear()
	})
}

func (v *LauncherView) ShowSelectedMoves(text string) {
	v.queue(func() { v.selected.SetText(" " + text) })
}

func (v *LauncherView) ShowError(msg string) {
	v.queue(func() {
		v.hasError = true
		v.errText.SetText(fmt.Sprintf("[red]%s[-]", tview.Escape(msg)))
	})
}

func (v *LauncherView) DismissError() {
	v.queue(func() {
		v.hasError = false
		v.errText.Clear()
	})
}

func (v *LauncherView) Navigate(route string) {
	if v.onNavigate != nil {
		v.onNavigate(route)
	}
}

// Reset restores the idle state when returning from the viewer.
func (v *LauncherView) Reset() {
	v.ShowLoading(false)
	v.SetStartEnabled(true)
	v.DismissError()
}

var _ launcher.View = (*LauncherView)(nil)
