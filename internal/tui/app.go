package tui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/park285/kifu-viewer/internal/launcher"
	"github.com/park285/kifu-viewer/internal/obslog"
	"github.com/park285/kifu-viewer/internal/presenter"
	"github.com/park285/kifu-viewer/internal/session"
	"github.com/park285/kifu-viewer/internal/viewer"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// API is the remote service as seen by both screens.
type API interface {
	launcher.GameStarter
	viewer.BoardService
}

type Deps struct {
	API       API
	Store     session.Store
	Formatter *presenter.Formatter
	Logger    *zap.Logger
}

type Options struct {
	SessionID            string
	MaxMovesOptions      []int
	DefaultMaxMovesIndex int
	FetchTimeout         time.Duration
	ExportDir            string
}

// App hosts the two routes as pages of one tview application. Switching
// routes swaps the whole screen.
type App struct {
	app    *tview.Application
	pages  *tview.Pages
	logger *zap.Logger

	launcherView *LauncherView
	viewerView   *ViewerView
	launcher     *launcher.Controller
	viewer       *viewer.Viewer

	store     session.Store
	sessionID string

	ctx   context.Context
	route string // UI goroutine only
}

func New(deps Deps, opts Options) *App {
	logger := deps.Logger
	if logger == nil {
		logger = obslog.L()
	}
	format := deps.Formatter
	if format == nil {
		format = presenter.NewFormatter(nil)
	}
	sid := opts.SessionID
	if sid == "" {
		sid = session.NewID()
	}

	a := &App{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		logger:    logger,
		store:     deps.Store,
		sessionID: sid,
		ctx:       context.Background(),
	}
	queue := func(f func()) { a.app.QueueUpdateDraw(f) }

	a.launcherView = NewLauncherView(queue, format, opts.MaxMovesOptions, opts.DefaultMaxMovesIndex)
	a.viewerView = NewViewerView(queue, format)
	a.launcher = launcher.New(deps.API, deps.Store, sid, opts.MaxMovesOptions, a.launcherView, format, logger)
	a.viewer = viewer.New(deps.API, a.viewerView, format, logger, viewer.Options{
		FetchTimeout: opts.FetchTimeout,
		ExportDir:    opts.ExportDir,
	})

	a.launcherView.onSelect = a.launcher.Select
	a.launcherView.onStart = func(maxMoves int) {
		go func() { _, _ = a.launcher.Start(a.ctx, maxMoves) }()
	}
	a.launcherView.onNavigate = a.Navigate
	a.viewerView.onAction = a.dispatch
	a.viewerView.onSelect = func(index int) {
		go a.navigate(func(ctx context.Context) error { return a.viewer.GoToMove(ctx, index) })
	}

	a.pages.AddPage(launcher.RouteLauncher, a.launcherView.Root(), true, false)
	a.pages.AddPage(launcher.RouteViewer, a.viewerView.Root(), true, false)
	a.app.SetRoot(a.pages, true).SetInputCapture(a.handleKey)
	return a
}

func (a *App) SessionID() string { return a.sessionID }

// Run shows route and blocks until the user quits or ctx is done.
func (a *App) Run(ctx context.Context, route string) error {
	a.ctx = ctx
	if n, ok := a.launcherView.SelectedMaxMoves(); ok {
		a.launcher.Select(n)
	}
	a.showRoute(route)

	go func() {
		<-ctx.Done()
		a.app.Stop()
	}()
	return a.app.Run()
}

func (a *App) Stop() { a.app.Stop() }

// Navigate switches routes from any goroutine.
func (a *App) Navigate(route string) {
	a.app.QueueUpdateDraw(func() { a.showRoute(route) })
}

func (a *App) showRoute(route string) {
	if route != launcher.RouteViewer {
		route = launcher.RouteLauncher
	}
	a.route = route
	a.pages.SwitchToPage(route)
	a.logger.Debug("route", zap.String("route", route))

	switch route {
	case launcher.RouteViewer:
		a.app.SetFocus(a.viewerView.Focus())
		go a.openViewer()
	default:
		a.launcherView.Reset()
		a.app.SetFocus(a.launcherView.Focus())
	}
}

func (a *App) openViewer() {
	if err := a.viewer.Open(a.ctx, a.store, a.sessionID); err != nil {
		a.logger.Warn("viewer_open_error", zap.String("session_id", a.sessionID), zap.Error(err))
	}
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if a.route == launcher.RouteViewer {
		act := actionFor(viewerKeybindings, ev)
		if act == ActionNone {
			return ev
		}
		a.dispatch(act)
		return nil
	}

	switch actionFor(launcherKeybindings, ev) {
	case ActionFocusNext:
		a.app.SetFocus(a.launcherView.Toggle(a.app.GetFocus()))
		return nil
	case ActionBack:
		if a.launcherView.HasError() {
			a.launcherView.DismissError()
			return nil
		}
	case ActionQuit:
		a.app.Stop()
		return nil
	}
	return ev
}

// dispatch runs a viewer action. Called on the UI goroutine; fetches are
// moved off it.
func (a *App) dispatch(act Action) {
	if !a.viewerView.Enabled(act) {
		return
	}
	switch act {
	case ActionFirst:
		go a.navigate(a.viewer.First)
	case ActionPrev:
		go a.navigate(a.viewer.Prev)
	case ActionNext:
		go a.navigate(a.viewer.Next)
	case ActionLast:
		go a.navigate(a.viewer.Last)
	case ActionExport:
		go func() { _, _ = a.viewer.ExportKifu() }()
	case ActionBack:
		a.showRoute(launcher.RouteLauncher)
	case ActionQuit:
		a.app.Stop()
	}
}

// navigate drops ErrBusy; other failures are already on screen and logged.
func (a *App) navigate(step func(context.Context) error) {
	if err := step(a.ctx); err != nil && !errors.Is(err, viewer.ErrBusy) {
		a.logger.Debug("navigate", zap.Error(err))
	}
}
