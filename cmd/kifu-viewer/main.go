package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	appcfg "github.com/park285/kifu-viewer/internal/config"
	"github.com/park285/kifu-viewer/internal/kifubuilder"
	"github.com/park285/kifu-viewer/internal/launcher"
	"github.com/park285/kifu-viewer/internal/obslog"
	"github.com/park285/kifu-viewer/internal/tui"
	"go.uber.org/zap"
)

func main() {
	resume := flag.String("session", "", "open the viewer for an existing session id (requires REDIS_URL)")
	flag.Parse()

	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		// the terminal belongs to the UI; keep going without logs
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
	}
	logger := obslog.L()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := kifubuilder.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}
	defer func() { _ = deps.Close() }()

	route := launcher.RouteLauncher
	if *resume != "" {
		if !deps.Persistent() {
			log.Fatalf("-session needs REDIS_URL; the in-memory store starts empty")
		}
		route = launcher.RouteViewer
	}

	app := tui.New(tui.Deps{
		API:       deps.Client,
		Store:     deps.Store,
		Formatter: deps.Formatter,
		Logger:    logger,
	}, tui.Options{
		SessionID:            *resume,
		MaxMovesOptions:      cfg.MaxMovesOptions,
		DefaultMaxMovesIndex: cfg.DefaultMaxMovesIndex(),
		FetchTimeout:         cfg.RequestTimeout,
		ExportDir:            cfg.ExportDir,
	})
	logger.Info("start",
		zap.String("api", cfg.APIBaseURL),
		zap.String("session_id", app.SessionID()),
		zap.String("route", route),
	)

	if err := app.Run(ctx, route); err != nil {
		logger.Error("tui_error", zap.Error(err))
		log.Fatalf("tui error: %v", err)
	}
	logger.Info("exit", zap.String("session_id", app.SessionID()))
}
