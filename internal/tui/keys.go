package tui

import "github.com/gdamore/tcell/v2"

type Action int

const (
	ActionNone Action = iota
	ActionFirst
	ActionPrev
	ActionNext
	ActionLast
	ActionExport
	ActionBack
	ActionQuit
	ActionFocusNext
)

// Keybinding maps either a special key or a rune to an action.
type Keybinding struct {
	k tcell.Key
	r rune

	a Action
}

var viewerKeybindings = []*Keybinding{
	{k: tcell.KeyLeft, a: ActionPrev},
	{k: tcell.KeyRight, a: ActionNext},
	{k: tcell.KeyUp, a: ActionPrev},
	{k: tcell.KeyDown, a: ActionNext},
	{k: tcell.KeyHome, a: ActionFirst},
	{k: tcell.KeyEnd, a: ActionLast},
	{r: 'd', a: ActionExport},
	{r: 'D', a: ActionExport},
	{r: 'b', a: ActionBack},
	{k: tcell.KeyEscape, a: ActionBack},
	{r: 'q', a: ActionQuit},
}

var launcherKeybindings = []*Keybinding{
	{k: tcell.KeyTab, a: ActionFocusNext},
	{k: tcell.KeyEscape, a: ActionBack},
	{r: 'q', a: ActionQuit},
}

func actionFor(bindings []*Keybinding, ev *tcell.EventKey) Action {
	k := ev.Key()
	r := ev.Rune()
	for _, bind := range bindings {
		if bind.r != 0 {
			if k == tcell.KeyRune && r == bind.r {
				return bind.a
			}
			continue
		}
		if bind.k == k {
			return bind.a
		}
	}
	return ActionNone
}
