// Package session stores per-session interaction history behind an
// injected Store so backends can be swapped without touching callers.
package session

import (
	"context"

	"github.com/medassist-ai/medassist/internal/domain"
)

// Store keeps an ordered, append-only interaction history per session.
type Store interface {
	// Append records entry under sessionID, creating the session if
	// absent. Entries are never mutated after append.
	Append(ctx context.Context, sessionID string, entry domain.HistoryEntry) error

	// Recent returns the last n entries most-recent-first, or an empty
	// slice for an unknown session.
	Recent(ctx context.Context, sessionID string, n int) ([]domain.HistoryEntry, error)
}
