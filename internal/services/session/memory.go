// File: internal/services/session/memory.go
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/medassist-ai/medassist/internal/domain"
)

// MemoryStore is the default in-process Store. Growth is bounded by a
// per-session entry cap; past the cap the oldest entries are dropped.
type MemoryStore struct {
	mu            sync.RWMutex
	sessions      map[string][]domain.HistoryEntry
	maxPerSession int
}

// NewMemoryStore creates an in-memory store. maxPerSession <= 0 uses
// the default cap of 100.
func NewMemoryStore(maxPerSession int) *MemoryStore {
	if maxPerSession <= 0 {
		maxPerSession = 100
	}
	return &MemoryStore{
		sessions:      make(map[string][]domain.HistoryEntry),
		maxPerSession: maxPerSession,
	}
}

// Append records entry in call order under sessionID.
func (s *MemoryStore) Append(ctx context.Context, sessionID string, entry domain.HistoryEntry) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.sessions[sessionID], entry)
	if len(entries) > s.maxPerSession {
		entries = entries[len(entries)-s.maxPerSession:]
	}
	s.sessions[sessionID] = entries
	return nil
}

// Recent returns the last n entries in reverse-chronological order.
func (s *MemoryStore) Recent(ctx context.Context, sessionID string, n int) ([]domain.HistoryEntry, error) {
	if n <= 0 {
		return []domain.HistoryEntry{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.sessions[sessionID]
	if len(entries) == 0 {
		return []domain.HistoryEntry{}, nil
	}

	if n > len(entries) {
		n = len(entries)
	}

	out := make([]domain.HistoryEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		out = append(out, entries[i])
	}
	return out, nil
}

// Sessions reports how many sessions the store currently holds.
func (s *MemoryStore) Sessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
