// File: internal/repository/history/gorm_history_repository.go
package history

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/medassist-ai/medassist/internal/domain"
)

// GormHistoryRepository is the sqlite-backed session.Store. It keeps
// insertion order via a monotonic-enough CreatedAt nanosecond column
// and trims each session to maxPerSession on append.
type GormHistoryRepository struct {
	db            *gorm.DB
	maxPerSession int
}

func NewGormHistoryRepository(db *gorm.DB, maxPerSession int) *GormHistoryRepository {
	if maxPerSession <= 0 {
		maxPerSession = 100
	}
	return &GormHistoryRepository{db: db, maxPerSession: maxPerSession}
}

// Append persists entry under its session.
func (r *GormHistoryRepository) Append(ctx context.Context, sessionID string, entry domain.HistoryEntry) error {
	if sessionID == "" {
		return errors.New("session id is required")
	}

	resultJSON, err := json.Marshal(entry.Result)
	if err != nil {
		log.Printf("[HistoryRepository] Failed to encode result for session %s: %v", sessionID, err)
		return errors.New("could not encode analysis result")
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	record := &Record{
		EntryID:   entry.ID,
		SessionID: sessionID,
		Symptoms:  entry.Symptoms,
		Age:       entry.Age,
		Gender:    entry.Gender,
		Duration:  entry.Duration,
		Language:  entry.Language,
		Result:    string(resultJSON),
		CreatedAt: createdAt.UnixNano(),
	}

	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		// Generic error out, details stay in the log.
		log.Printf("[HistoryRepository] Database error appending to session %s: %v", sessionID, err)
		return errors.New("database error appending history entry")
	}

	return r.trim(ctx, sessionID)
}

// Recent returns the last n entries most-recent-first.
func (r *GormHistoryRepository) Recent(ctx context.Context, sessionID string, n int) ([]domain.HistoryEntry, error) {
	if n <= 0 || sessionID == "" {
		return []domain.HistoryEntry{}, nil
	}

	var records []Record
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC, id DESC").
		Limit(n).
		Find(&records).Error
	if err != nil {
		log.Printf("[HistoryRepository] Database error reading session %s: %v", sessionID, err)
		return nil, errors.New("database error fetching history")
	}

	entries := make([]domain.HistoryEntry, 0, len(records))
	for _, record := range records {
		entry := domain.HistoryEntry{
			ID:        record.EntryID,
			SessionID: record.SessionID,
			Symptoms:  record.Symptoms,
			Age:       record.Age,
			Gender:    record.Gender,
			Duration:  record.Duration,
			Language:  record.Language,
			CreatedAt: time.Unix(0, record.CreatedAt),
		}
		if err := json.Unmarshal([]byte(record.Result), &entry.Result); err != nil {
			log.Printf("[HistoryRepository] Skipping undecodable entry %s: %v", record.EntryID, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// trim drops the oldest rows of a session past the per-session cap.
func (r *GormHistoryRepository) trim(ctx context.Context, sessionID string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Record{}).Where("session_id = ?", sessionID).Count(&count).Error; err != nil {
		log.Printf("[HistoryRepository] Database error counting session %s: %v", sessionID, err)
		return nil
	}

	excess := count - int64(r.maxPerSession)
	if excess <= 0 {
		return nil
	}

	var stale []Record
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC, id ASC").
		Limit(int(excess)).
		Find(&stale).Error
	if err != nil || len(stale) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(stale))
	for _, record := range stale {
		ids = append(ids, record.ID)
	}
	if err := r.db.WithContext(ctx).Delete(&Record{}, ids).Error; err != nil {
		log.Printf("[HistoryRepository] Database error trimming session %s: %v", sessionID, err)
	}
	return nil
}
