package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Data is what the admin surface keeps per session.
type Data struct {
	Authenticated bool
	User          string
}

// Store holds sessions keyed by an opaque cookie token. It is an explicit
// dependency of the handlers that need identity, never ambient state.
type Store interface {
	Create(data Data) string
	Get(token string) (Data, bool)
	Delete(token string)
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// MemoryStore is a process-local store with a fixed TTL. Restarting the
// process invalidates every session.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
	}
	go s.cleanup()
	return s
}

func (s *MemoryStore) Create(data Data) string {
	token := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{data: data, expiresAt: time.Now().Add(s.ttl)}
	return token
}

func (s *MemoryStore) Get(token string) (Data, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[token]
	if !ok {
		return Data{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, token)
		return Data{}, false
	}
	return e.data, true
}

func (s *MemoryStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}

func (s *MemoryStore) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		for token, e := range s.entries {
			if now.After(e.expiresAt) {
				delete(s.entries, token)
			}
		}
		s.mu.Unlock()
	}
}
