package session

import (
	"context"
	"sync"
	"time"

	"github.com/park285/kifu-viewer/internal/domain"
)

type memEntry struct {
	raw     []byte
	expires time.Time
}

// MemoryStore keeps handoffs in process; used when REDIS_URL is unset.
// Records are stored serialized so Load behaves like the Redis store.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryStore{ttl: ttl, now: time.Now, entries: make(map[string]memEntry)}
}

func (m *MemoryStore) Save(ctx context.Context, sessionID string, rec *domain.GameRecord) error {
	if !validID(sessionID) {
		return ErrInvalidSession
	}
	raw, err := encode(rec)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[keyGameData(sessionID)] = memEntry{raw: raw, expires: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Load(ctx context.Context, sessionID string) (*domain.GameRecord, error) {
	if !validID(sessionID) {
		return nil, ErrInvalidSession
	}
	key := keyGameData(sessionID)
	m.mu.Lock()
	e, ok := m.entries[key]
	if ok && !m.now().Before(e.expires) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decode(e.raw)
}

