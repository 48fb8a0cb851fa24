package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/mood-weather/internal/session"
)

var (
	// ErrNotFound is returned when no session exists for an ID.
	ErrNotFound = errors.New("session not found")
)

// MemoryStore is a concurrency-safe in-memory session store.
type MemoryStore struct {
	mu sync.RWMutex

	// key: session ID
	data map[string]*session.Session

	// retention configuration
	maxSessions int           // max number of live sessions (0 = unlimited)
	maxAge      time.Duration // idle time after which a session expires (0 = never)

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxSessions is <= 0, it is treated as unlimited.
func NewMemoryStore(maxSessions int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:        make(map[string]*session.Session),
		maxSessions: maxSessions,
		maxAge:      maxAge,
		now:         time.Now,
	}
}

// Save stores s and evicts the least recently seen sessions beyond the count limit.
func (m *MemoryStore) Save(s *session.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[s.ID()] = s

	for m.maxSessions > 0 && len(m.data) > m.maxSessions {
		var (
			oldestID string
			oldest   time.Time
		)
		for id, other := range m.data {
			if id == s.ID() {
				continue
			}
			seen := other.LastSeen()
			if oldestID == "" || seen.Before(oldest) {
				oldestID, oldest = id, seen
			}
		}
		if oldestID == "" {
			return
		}
		delete(m.data, oldestID)
	}
}

// Get returns the session for id unless it is missing or expired.
func (m *MemoryStore) Get(id string) (*session.Session, error) {
	m.mu.RLock()
	s, ok := m.data[id]
	m.mu.RUnlock()

	if !ok || m.expired(s, m.now()) {
		return nil, ErrNotFound
	}
	return s, nil
}

// Delete removes the session for id if present.
func (m *MemoryStore) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
}

// Prune drops expired sessions and returns how many were removed.
func (m *MemoryStore) Prune() int {
	if m.maxAge <= 0 {
		return 0
	}
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.data {
		if m.expired(s, now) {
			delete(m.data, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored sessions, expired ones included until pruned.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

func (m *MemoryStore) expired(s *session.Session, now time.Time) bool {
	if m.maxAge <= 0 {
		return false
	}
	return now.Sub(s.LastSeen()) > m.maxAge
}
