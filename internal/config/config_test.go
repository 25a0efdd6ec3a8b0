package config

import (
	"testing"
	"time"
)

func TestLoadRequiresBaseURL(t *testing.T) {
	t.Setenv("KIFU_API_BASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without KIFU_API_BASE_URL")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("KIFU_API_BASE_URL", "http://localhost:5000/")
	t.Setenv("KIFU_MAX_MOVES_OPTIONS", "")
	t.Setenv("KIFU_DEFAULT_MAX_MOVES", "")
	t.Setenv("KIFU_REQUEST_TIMEOUT", "")
	t.Setenv("REDIS_URL", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:5000" {
		t.Fatalf("trailing slash not trimmed: %q", cfg.APIBaseURL)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("timeout = %v", cfg.RequestTimeout)
	}
	if cfg.DefaultMaxMoves != 30 || cfg.DefaultMaxMovesIndex() != 2 {
		t.Fatalf("default max moves = %d (idx %d)", cfg.DefaultMaxMoves, cfg.DefaultMaxMovesIndex())
	}
	if cfg.SessionTTL() != time.Hour {
		t.Fatalf("session ttl = %v", cfg.SessionTTL())
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("KIFU_API_BASE_URL", "http://svc")
	t.Setenv("KIFU_MAX_MOVES_OPTIONS", "80, 40,40,120")
	t.Setenv("KIFU_DEFAULT_MAX_MOVES", "75")
	t.Setenv("KIFU_REQUEST_TIMEOUT", "3")
	t.Setenv("KIFU_SESSION_TTL_SEC", "60")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.MaxMovesOptions) != 3 || cfg.MaxMovesOptions[0] != 40 || cfg.MaxMovesOptions[2] != 120 {
		t.Fatalf("options = %v", cfg.MaxMovesOptions)
	}
	// 75 is not on the menu, falls back to the first option
	if cfg.DefaultMaxMoves != 40 {
		t.Fatalf("default = %d", cfg.DefaultMaxMoves)
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Fatalf("timeout = %v", cfg.RequestTimeout)
	}
	if cfg.SessionTTL() != time.Minute {
		t.Fatalf("ttl = %v", cfg.SessionTTL())
	}
}

func TestLoadRejectsBadOptions(t *testing.T) {
	t.Setenv("KIFU_API_BASE_URL", "http://svc")
	for _, v := range []string{"ten", "0,10", ",,"} {
		t.Setenv("KIFU_MAX_MOVES_OPTIONS", v)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for %q", v)
		}
	}
}
