package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cerberus/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	summary := "violent content"
	rec := &models.AuditRecord{
		AuditID:        "audit-1",
		UserID:         "alice",
		ContentPreview: "some flagged post",
		ContentType:    "text",
		RiskScore:      0.82,
		RiskLevel:      "High",
		Recommendation: "Do Not Post",
		Actions:        []string{"Remove Content", "Notify user"},
		Summary:        &summary,
	}
	require.NoError(t, store.Record(ctx, rec))

	records, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "audit-1", got.AuditID)
	assert.Equal(t, "alice", got.UserID)
	assert.Equal(t, 0.82, got.RiskScore)
	assert.Equal(t, []string{"Remove Content", "Notify user"}, got.Actions)
	require.NotNil(t, got.Summary)
	assert.Equal(t, "violent content", *got.Summary)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestRecord_GeneratesDefaults(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := &models.AuditRecord{
		ContentType:    "text",
		RiskLevel:      "Low",
		Recommendation: "Post",
	}
	require.NoError(t, store.Record(ctx, rec))

	assert.NotEmpty(t, rec.AuditID)
	assert.Equal(t, "anonymous", rec.UserID)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestRecent_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, store.Record(ctx, &models.AuditRecord{
			AuditID:        id,
			ContentType:    "text",
			RiskLevel:      "Low",
			Recommendation: "Post",
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}))
	}

	records, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "newest", records[0].AuditID)
	assert.Equal(t, "oldest", records[2].AuditID)
}

func TestRecent_LimitApplied(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Record(ctx, &models.AuditRecord{
			ContentType:    "text",
			RiskLevel:      "Low",
			Recommendation: "Post",
		}))
	}

	records, err := store.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestRecord_RejectsDuplicateAuditID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := &models.AuditRecord{
		AuditID:        "dup",
		ContentType:    "text",
		RiskLevel:      "Low",
		Recommendation: "Post",
	}
	require.NoError(t, store.Record(ctx, rec))

	err := store.Record(ctx, &models.AuditRecord{
		AuditID:        "dup",
		ContentType:    "text",
		RiskLevel:      "Low",
		Recommendation: "Post",
	})
	assert.Error(t, err)
}
