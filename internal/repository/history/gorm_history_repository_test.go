package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/medassist-ai/medassist/internal/domain"
)

func newTestRepo(t *testing.T, maxPerSession int) *GormHistoryRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return NewGormHistoryRepository(db, maxPerSession)
}

func entry(id string, at time.Time) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        id,
		Symptoms:  "symptoms " + id,
		Language:  "en",
		CreatedAt: at,
		Result: domain.AnalysisResult{
			PossibleConditions: []string{"test condition"},
			Severity:           "Low",
			Recommendations:    []string{"rest"},
			SelfCareTips:       []string{"hydrate"},
			WhenToSeeDoctor:    "soon",
		},
	}
}

func TestAppendAndRecentRoundTrip(t *testing.T) {
	repo := newTestRepo(t, 100)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 4; i++ {
		e := entry(fmt.Sprintf("e%d", i), base.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.Append(ctx, "s1", e))
	}

	entries, err := repo.Recent(ctx, "s1", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e3", entries[0].ID)
	assert.Equal(t, "e2", entries[1].ID)
	assert.Equal(t, "Low", entries[0].Result.Severity)
	assert.Equal(t, []string{"test condition"}, entries[0].Result.PossibleConditions)
}

func TestRecentUnknownSession(t *testing.T) {
	repo := newTestRepo(t, 100)

	entries, err := repo.Recent(context.Background(), "missing", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendTrimsPastCap(t *testing.T) {
	repo := newTestRepo(t, 3)
	ctx := context.Background()

	base := time.Now()
	for i := 0; i < 5; i++ {
		e := entry(fmt.Sprintf("e%d", i), base.Add(time.Duration(i)*time.Second))
		require.NoError(t, repo.Append(ctx, "s1", e))
	}

	entries, err := repo.Recent(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e4", entries[0].ID)
	assert.Equal(t, "e2", entries[2].ID)
}

func TestAppendRequiresSessionID(t *testing.T) {
	repo := newTestRepo(t, 100)

	err := repo.Append(context.Background(), "", entry("x", time.Now()))
	assert.Error(t, err)
}

func TestSessionsIsolated(t *testing.T) {
	repo := newTestRepo(t, 100)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "a", entry("a1", time.Now())))
	require.NoError(t, repo.Append(ctx, "b", entry("b1", time.Now())))

	entries, err := repo.Recent(ctx, "a", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a1", entries[0].ID)
}
