package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	session   Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Entries expire after ttl
// when it is positive. Expired entries are dropped when read and swept from
// Save at most once per ttl.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns a copy of the stored session.
func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	entry, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if m.expired(entry) {
		m.mu.Lock()
		if current, ok := m.sessions[id]; ok && m.expired(current) {
			delete(m.sessions, id)
		}
		m.mu.Unlock()
		return nil, ErrNotFound
	}
	s := entry.session
	s.Schedule = cloneRows(entry.session.Schedule)
	return &s, nil
}

// Save stores a copy of s, replacing any previous session with the same ID.
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	entry := memoryEntry{session: *s}
	entry.session.Schedule = cloneRows(s.Schedule)
	if m.ttl > 0 {
		entry.expiresAt = m.now().Add(m.ttl)
	}

	m.mu.Lock()
	m.sessions[s.ID] = entry
	m.sweepLocked()
	m.mu.Unlock()
	return nil
}

// sweepLocked drops expired entries. The caller holds the write lock.
func (m *MemoryStore) sweepLocked() {
	if m.ttl <= 0 {
		return
	}
	now := m.now()
	if now.Sub(m.lastSweep) < m.ttl {
		return
	}
	m.lastSweep = now
	for id, entry := range m.sessions {
		if m.expired(entry) {
			delete(m.sessions, id)
		}
	}
}

// Delete removes the session. Deleting an unknown ID returns ErrNotFound.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	if m.expired(entry) {
		return ErrNotFound
	}
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *MemoryStore) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt)
}
