package kifubuilder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/park285/kifu-viewer/internal/config"
	"github.com/park285/kifu-viewer/internal/kifuapi"
	"github.com/park285/kifu-viewer/internal/msgcat"
	"github.com/park285/kifu-viewer/internal/presenter"
	"github.com/park285/kifu-viewer/internal/session"
	"go.uber.org/zap"
)

const headerSessionID = "X-Session-Id"

type Deps struct {
	Client    *kifuapi.Client
	Store     session.Store
	Catalog   *msgcat.Catalog
	Formatter *presenter.Formatter

	redis *session.RedisStore
}

func New(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (*Deps, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	opts := []kifuapi.Option{kifuapi.WithTimeout(cfg.RequestTimeout)}
	if sid := strings.TrimSpace(cfg.XSessionID); sid != "" {
		opts = append(opts, kifuapi.WithHeaderProvider(func() map[string]string {
			return map[string]string{headerSessionID: sid}
		}))
	}
	client := kifuapi.NewClient(cfg.APIBaseURL, opts...)

	d := &Deps{Client: client, Catalog: cat, Formatter: presenter.NewFormatter(cat)}

	// Redis optional; without it the handoff only lives as long as the process
	if strings.TrimSpace(cfg.RedisURL) != "" {
		pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		rs, err := session.NewRedisStoreFromURL(pctx, cfg.RedisURL, cfg.SessionTTL())
		if err != nil {
			return nil, fmt.Errorf("init session store: %w", err)
		}
		d.Store, d.redis = rs, rs
		logger.Info("session_store", zap.String("backend", "redis"))
	} else {
		d.Store = session.NewMemoryStore(cfg.SessionTTL())
		logger.Info("session_store", zap.String("backend", "memory"))
	}
	return d, nil
}

// Persistent reports whether handoffs survive the process.
func (d *Deps) Persistent() bool { return d != nil && d.redis != nil }

func (d *Deps) Close() error {
	if d == nil || d.redis == nil {
		return nil
	}
	return d.redis.Close()
}
