package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/park285/kifu-viewer/internal/kifu"
	"github.com/park285/kifu-viewer/internal/obslog"
	"github.com/park285/kifu-viewer/internal/presenter"
	"github.com/park285/kifu-viewer/internal/session"
	"go.uber.org/zap"
)

var (
	ErrBusy   = errors.New("viewer: navigation in progress")
	ErrNoGame = errors.New("viewer: no game loaded")
)

const defaultFetchTimeout = 10 * time.Second

// BoardService renders a position of a generated game.
type BoardService interface {
	FetchBoardState(ctx context.Context, gameID string, moveIndex int) (*domain.BoardState, error)
}

// RecordSource yields the record the launcher handed over.
type RecordSource interface {
	Load(ctx context.Context, sessionID string) (*domain.GameRecord, error)
}

type Options struct {
	FetchTimeout time.Duration
	ExportDir    string
	Now          func() time.Time
}

// Viewer owns the move cursor of one game. At most one board fetch runs at
// a time; navigation requested meanwhile is dropped with ErrBusy.
type Viewer struct {
	svc     BoardService
	display Display
	format  *presenter.Formatter
	logger  *zap.Logger
	opts    Options

	flight sync.Mutex // held for a whole transition

	mu  sync.RWMutex
	rec *domain.GameRecord
	pos int
}

func New(svc BoardService, display Display, format *presenter.Formatter, logger *zap.Logger, opts Options) *Viewer {
	if logger == nil {
		logger = obslog.L()
	}
	if format == nil {
		format = presenter.NewFormatter(nil)
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = defaultFetchTimeout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Viewer{svc: svc, display: display, format: format, logger: logger, opts: opts}
}

// Open reads the handed-over record for sessionID and shows position 0.
func (v *Viewer) Open(ctx context.Context, src RecordSource, sessionID string) error {
	rec, err := src.Load(ctx, sessionID)
	if err != nil {
		v.logger.Warn("viewer_load_error", zap.String("session_id", sessionID), zap.Error(err))
		v.flight.Lock()
		v.mu.Lock()
		v.rec, v.pos = nil, 0
		v.mu.Unlock()
		v.display.SetNavigation(NavState{})
		v.flight.Unlock()
		if errors.Is(err, session.ErrNotFound) {
			v.display.ShowError(v.format.Text("viewer.not_found", nil, "ゲームデータが見つかりません"))
		} else {
			v.display.ShowError(v.format.Text("viewer.load_failed", nil, "ゲームデータの読み込みに失敗しました"))
		}
		return fmt.Errorf("load game data: %w", err)
	}
	return v.Start(ctx, rec)
}

// Start installs rec, draws the move list and goes to the initial position.
// It waits for an in-flight fetch of the previous game so that fetch cannot
// draw over the new one.
func (v *Viewer) Start(ctx context.Context, rec *domain.GameRecord) error {
	if rec == nil {
		return ErrNoGame
	}
	v.flight.Lock()
	defer v.flight.Unlock()

	v.mu.Lock()
	v.rec = rec
	v.pos = 0
	v.mu.Unlock()

	v.logger.Info("viewer_open", zap.String("game_id", rec.GameID), zap.Int("moves", rec.MoveCount()))
	v.display.ShowGame(v.format.GameHeader(rec), v.format.MoveList(rec))
	return v.goToMove(ctx, 0)
}

func (v *Viewer) Position() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.pos
}

func (v *Viewer) Record() *domain.GameRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.rec
}

// Busy reports whether a transition is in flight.
func (v *Viewer) Busy() bool {
	if v.flight.TryLock() {
		v.flight.Unlock()
		return false
	}
	return true
}

func (v *Viewer) First(ctx context.Context) error { return v.GoToMove(ctx, 0) }

func (v *Viewer) Last(ctx context.Context) error {
	return v.GoToMove(ctx, v.Record().MoveCount())
}

// Prev is a no-op at the initial position.
func (v *Viewer) Prev(ctx context.Context) error {
	p := v.Position()
	if p <= 0 {
		return nil
	}
	return v.GoToMove(ctx, p-1)
}

// Next is a no-op at the last position.
func (v *Viewer) Next(ctx context.Context) error {
	p := v.Position()
	if p >= v.Record().MoveCount() {
		return nil
	}
	return v.GoToMove(ctx, p+1)
}

// GoToMove moves the cursor to clamp(k, 0, N) and refreshes every region.
// A failed fetch leaves an inline board error; the cursor still moves and
// the rest of the screen follows it.
func (v *Viewer) GoToMove(ctx context.Context, k int) error {
	if !v.flight.TryLock() {
		return ErrBusy
	}
	defer v.flight.Unlock()
	return v.goToMove(ctx, k)
}

// goToMove is the transition body; the caller holds flight.
func (v *Viewer) goToMove(ctx context.Context, k int) error {
	rec := v.Record()
	if rec == nil {
		return ErrNoGame
	}
	n := rec.MoveCount()
	p := Clamp(k, n)

	v.mu.Lock()
	v.pos = p
	v.mu.Unlock()

	fctx, cancel := context.WithTimeout(ctx, v.opts.FetchTimeout)
	bs, err := v.svc.FetchBoardState(fctx, rec.GameID, p)
	cancel()

	if err != nil {
		v.logger.Warn("board_fetch_error", zap.String("game_id", rec.GameID), zap.Int("move_index", p), zap.Error(err))
		v.display.ShowBoardError(v.format.BoardError())
		err = fmt.Errorf("board state %d: %w", p, err)
	} else {
		v.display.ShowBoard(presenter.SplitGote(bs.Board))
		v.display.ShowMoveNumber(v.format.MoveNumber(p))
		v.display.ShowTurn(bs.TurnLabel, bs.Turn)
		v.display.ShowCaptured(v.format.Captured(bs.Captured.For(domain.Sente)), v.format.Captured(bs.Captured.For(domain.Gote)))
	}

	v.display.HighlightMove(p)
	v.display.SetNavigation(Navigation(p, n))
	v.display.ShowCommentary(v.format.Commentary(rec, p))
	return err
}

// ExportKifu writes the transcript and reports the outcome on screen.
func (v *Viewer) ExportKifu() (string, error) {
	path, err := kifu.Save(v.opts.ExportDir, v.Record(), v.opts.Now())
	switch {
	case errors.Is(err, kifu.ErrNoGame):
		v.display.ShowError(v.format.Text("kifu.no_data", nil, "ダウンロードするデータがありません"))
		return "", err
	case err != nil:
		v.logger.Error("kifu_export_error", zap.Error(err))
		v.display.ShowError(v.format.Text("kifu.failed", nil, "棋譜のダウンロードに失敗しました"))
		return "", err
	}
	v.logger.Info("kifu_export", zap.String("path", path))
	v.display.ShowNotice(v.format.Text("kifu.saved", map[string]any{"Path": path}, path))
	return path, nil
}
