package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	XSessionID     string

	MaxMovesOptions []int
	DefaultMaxMoves int

	RedisURL      string
	SessionTTLSec int

	ExportDir   string
	MessagesDir string
}

var defaultMaxMovesOptions = []int{10, 20, 30, 50, 100}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		RequestTimeout:  10 * time.Second,
		MaxMovesOptions: append([]int(nil), defaultMaxMovesOptions...),
		DefaultMaxMoves: 30,
		SessionTTLSec:   3600,
		ExportDir:       ".",
	}

	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("KIFU_API_BASE_URL")), "/")
	cfg.XSessionID = strings.TrimSpace(os.Getenv("KIFU_X_SESSION_ID"))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("KIFU_MESSAGES_DIR"))

	if v := strings.TrimSpace(os.Getenv("KIFU_REQUEST_TIMEOUT")); v != "" {
		// "15s" or plain seconds
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		} else if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestTimeout = time.Duration(n) * time.Second
		}
	}
	if v := strings.TrimSpace(os.Getenv("KIFU_MAX_MOVES_OPTIONS")); v != "" {
		opts, err := parseIntList(v)
		if err != nil {
			return nil, fmt.Errorf("KIFU_MAX_MOVES_OPTIONS: %w", err)
		}
		cfg.MaxMovesOptions = opts
	}
	if v := strings.TrimSpace(os.Getenv("KIFU_DEFAULT_MAX_MOVES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DefaultMaxMoves = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("KIFU_SESSION_TTL_SEC")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SessionTTLSec = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("KIFU_EXPORT_DIR")); v != "" {
		cfg.ExportDir = v
	}

	if cfg.APIBaseURL == "" {
		return nil, errors.New("KIFU_API_BASE_URL is required")
	}
	if !cfg.HasMaxMovesOption(cfg.DefaultMaxMoves) {
		cfg.DefaultMaxMoves = cfg.MaxMovesOptions[0]
	}
	return cfg, nil
}

// SessionTTL is the lifetime of a launcher → viewer handoff.
func (c *AppConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSec) * time.Second
}

func (c *AppConfig) HasMaxMovesOption(n int) bool {
	for _, o := range c.MaxMovesOptions {
		if o == n {
			return true
		}
	}
	return false
}

// DefaultMaxMovesIndex is the menu position of DefaultMaxMoves.
func (c *AppConfig) DefaultMaxMovesIndex() int {
	for i, o := range c.MaxMovesOptions {
		if o == c.DefaultMaxMoves {
			return i
		}
	}
	return 0
}

func parseIntList(v string) ([]int, error) {
	seen := make(map[int]struct{})
	var out []int
	for _, p := range strings.Split(v, ",") {
		s := strings.TrimSpace(p)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", s)
		}
		if n <= 0 {
			return nil, fmt.Errorf("value must be positive: %d", n)
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, errors.New("no values")
	}
	sort.Ints(out)
	return out, nil
}
