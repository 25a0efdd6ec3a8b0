package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/park285/kifu-viewer/internal/domain"
)

// GameDataKey is the handoff slot the launcher writes and the viewer reads.
const GameDataKey = "currentGameData"

var (
	ErrNotFound       = errf("game data not found")
	ErrCorrupt        = errf("game data corrupt")
	ErrInvalidSession = errf("invalid session id")
)

type staticErr string

func (e staticErr) Error() string { return string(e) }
func errf(s string) error         { return staticErr(s) }

// Store carries one GameRecord per session from the launcher to the viewer.
type Store interface {
	Save(ctx context.Context, sessionID string, rec *domain.GameRecord) error
	Load(ctx context.Context, sessionID string) (*domain.GameRecord, error)
}

// NewID returns a fresh session id.
func NewID() string { return uuid.NewString() }

func keyGameData(sessionID string) string {
	return "kifu:session:" + strings.TrimSpace(sessionID) + ":" + GameDataKey
}

func validID(sessionID string) bool {
	return strings.TrimSpace(sessionID) != ""
}

func encode(rec *domain.GameRecord) ([]byte, error) {
	if rec == nil {
		return nil, fmt.Errorf("encode game data: nil record")
	}
	return json.Marshal(rec)
}

func decode(raw []byte) (*domain.GameRecord, error) {
	var rec domain.GameRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if strings.TrimSpace(rec.GameID) == "" {
		return nil, fmt.Errorf("%w: empty gameId", ErrCorrupt)
	}
	return &rec, nil
}
