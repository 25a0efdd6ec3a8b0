package viewer

import (
	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/park285/kifu-viewer/internal/presenter"
)

// Display is the set of screen regions the viewer drives. Implementations
// must be safe to call from a goroutine other than the UI loop.
type Display interface {
	ShowGame(header string, entries []presenter.MoveEntry)
	ShowBoard(spans []presenter.Span)
	ShowBoardError(msg string)
	ShowMoveNumber(text string)
	ShowTurn(label string, side domain.Side)
	ShowCaptured(sente, gote string)
	HighlightMove(index int)
	SetNavigation(nav NavState)
	ShowCommentary(text string)
	ShowError(msg string)
	ShowNotice(msg string)
}
