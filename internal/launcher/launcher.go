package launcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/park285/kifu-viewer/internal/obslog"
	"github.com/park285/kifu-viewer/internal/presenter"
	"github.com/park285/kifu-viewer/internal/session"
	"github.com/park285/kifu-viewer/pkg/kifudto"
	"go.uber.org/zap"
)

const (
	RouteLauncher = "/"
	RouteViewer   = "/viewer"
)

var (
	ErrInvalidMaxMoves = errors.New("max moves not in menu")
	ErrInProgress      = errors.New("game generation already in progress")
)

// GameStarter generates a game on the remote service.
type GameStarter interface {
	StartGame(ctx context.Context, maxMoves int) (*domain.GameRecord, error)
}

// View is the launcher screen.
type View interface {
	SetStartEnabled(enabled bool)
	ShowLoading(loading bool)
	ShowSelectedMoves(text string)
	ShowError(msg string)
	DismissError()
	Navigate(route string)
}

type Controller struct {
	api       GameStarter
	store     session.Store
	sessionID string
	options   []int
	view      View
	format    *presenter.Formatter
	logger    *zap.Logger

	running atomic.Bool
}

func New(api GameStarter, store session.Store, sessionID string, options []int, view View, format *presenter.Formatter, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = obslog.L()
	}
	if format == nil {
		format = presenter.NewFormatter(nil)
	}
	return &Controller{
		api:       api,
		store:     store,
		sessionID: sessionID,
		options:   append([]int(nil), options...),
		view:      view,
		format:    format,
		logger:    logger,
	}
}

func (c *Controller) Options() []int { return append([]int(nil), c.options...) }

func (c *Controller) SessionID() string { return c.sessionID }

func (c *Controller) allowed(maxMoves int) bool {
	for _, o := range c.options {
		if o == maxMoves {
			return true
		}
	}
	return false
}

// Select updates the selected-moves label.
func (c *Controller) Select(maxMoves int) {
	c.view.ShowSelectedMoves(c.format.Text("launcher.selected_moves", map[string]any{"Moves": maxMoves}, fmt.Sprintf("%d手", maxMoves)))
}

// Start generates a game, hands it over through the session store and
// switches to the viewer. Exactly one request is made; failures re-enable
// the start control and are never retried.
func (c *Controller) Start(ctx context.Context, maxMoves int) (*domain.GameRecord, error) {
	if !c.allowed(maxMoves) {
		c.view.ShowError(c.format.Text("launcher.invalid_max_moves", map[string]any{"Moves": maxMoves}, "選択できない手数です"))
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxMoves, maxMoves)
	}
	if !c.running.CompareAndSwap(false, true) {
		return nil, ErrInProgress
	}
	defer c.running.Store(false)

	c.view.DismissError()
	c.view.SetStartEnabled(false)
	c.view.ShowLoading(true)

	rec, err := c.api.StartGame(ctx, maxMoves)
	if err == nil {
		if serr := c.store.Save(ctx, c.sessionID, rec); serr != nil {
			err = fmt.Errorf("store game data: %w", serr)
		}
	}
	if err != nil {
		c.logger.Warn("launch_error", zap.Int("max_moves", maxMoves), zap.Error(err))
		c.view.ShowLoading(false)
		c.view.SetStartEnabled(true)
		c.view.ShowError(c.errorMessage(err))
		return nil, err
	}

	c.logger.Info("launch_ok",
		zap.String("game_id", rec.GameID),
		zap.Int("moves", rec.MoveCount()),
		zap.Int("max_moves", maxMoves),
	)
	c.view.Navigate(RouteViewer)
	return rec, nil
}

func (c *Controller) errorMessage(err error) string {
	msg := err.Error()
	var de kifudto.DomainError
	if errors.As(err, &de) {
		msg = de.Message
	}
	if strings.TrimSpace(msg) == "" {
		msg = c.format.Text("launcher.start_failed", nil, "対局の生成に失敗しました")
	}
	return c.format.Text("launcher.error", map[string]any{"Message": msg}, "エラーが発生しました: "+msg)
}
