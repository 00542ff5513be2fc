package session

import (
	"context"
	"sync"
	"time"
)

// Store is the backing key-value store for session state. A nil result from
// Load with a nil error means the session does not exist (or has expired).
type Store interface {
	Load(ctx context.Context, token string) ([]byte, error)
	Save(ctx context.Context, token string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, token string) error
}

// MemoryStore keeps sessions in process memory. Suitable for tests and
// single-instance development only.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (m *MemoryStore) Load(_ context.Context, token string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.sessions, token)
		return nil, nil
	}

	out := make([]byte, len(entry.data))
	copy(out, entry.data)
	return out, nil
}

func (m *MemoryStore) Save(_ context.Context, token string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	m.sessions[token] = memoryEntry{data: stored, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}
