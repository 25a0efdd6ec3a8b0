package kifu

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/park285/kifu-viewer/internal/domain"
	"github.com/park285/kifu-viewer/internal/util"
)

const timestampLayout = "2006/01/02 15:04:05"

var ErrNoGame = errors.New("no game record loaded")

// FileName is kifu_<gameId>.txt with path separators removed from the id.
func FileName(gameID string) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, strings.TrimSpace(gameID))
	return "kifu_" + safe + ".txt"
}

// Export renders rec as a plain-text transcript stamped with now.
func Export(rec *domain.GameRecord, now time.Time) (string, error) {
	if rec == nil {
		return "", ErrNoGame
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s vs %s\n", rec.Sente, rec.Gote))
	sb.WriteString(fmt.Sprintf("# 対局ID: %s\n", rec.GameID))
	sb.WriteString(fmt.Sprintf("# 生成日時: %s\n\n", util.FormatJST(now, timestampLayout)))
	for _, m := range rec.Moves {
		sb.WriteString(fmt.Sprintf("%d. %s\n", m.MoveNumber, m.MoveUSI))
		sb.WriteString(fmt.Sprintf("   %s\n\n", m.Commentary))
	}
	return sb.String(), nil
}

// Save writes the transcript into dir and returns the file path.
func Save(dir string, rec *domain.GameRecord, now time.Time) (string, error) {
	text, err := Export(rec, now)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(rec.GameID))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write kifu: %w", err)
	}
	return path, nil
}
