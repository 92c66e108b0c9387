package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neerajdhurandher/autofill-engine/internal/common"
	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

func setupTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func samplePattern(fingerprint string, seenAt time.Time) *model.LearnedPattern {
	return &model.LearnedPattern{
		Fingerprint: fingerprint,
		Category:    model.CategoryEmail,
		Confidence:  0.9,
		Site:        "greenhouse",
		SeenAt:      seenAt,
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	s := setupTestStorage(t)
	require.NoError(t, s.Migrate(context.Background()))

	var version int
	err := s.db.QueryRow(`SELECT MAX(version) FROM schema_versions`).Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestSaveAndGetLearnedPattern(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	p := samplePattern("email|email-field|input", time.Now())
	require.NoError(t, s.SaveLearnedPattern(ctx, p))

	got, err := s.GetLearnedPattern(ctx, p.Fingerprint)
	require.NoError(t, err)
	assert.Equal(t, p.Fingerprint, got.Fingerprint)
	assert.Equal(t, model.CategoryEmail, got.Category)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
	assert.Equal(t, "greenhouse", got.Site)
}

func TestGetLearnedPatternNotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetLearnedPattern(context.Background(), "missing||")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMigrateRejectsNewerSchema(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.db.Exec(`INSERT INTO schema_versions (version) VALUES (?)`, ExpectedSchemaVersion+1)
	require.NoError(t, err)

	err = s.Migrate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDatabaseCorrupted)
}

func TestSaveLearnedPatternUpsert(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	p := samplePattern("phone||", time.Now())
	require.NoError(t, s.SaveLearnedPattern(ctx, p))

	p.Category = model.CategoryPhone
	p.Confidence = 0.95
	require.NoError(t, s.SaveLearnedPattern(ctx, p))

	got, err := s.GetLearnedPattern(ctx, "phone||")
	require.NoError(t, err)
	assert.Equal(t, model.CategoryPhone, got.Category)
	assert.InDelta(t, 0.95, got.Confidence, 1e-9)
	assert.Equal(t, 1, got.UseCount, "conflicting save increments use count")

	n, err := s.CountLearnedPatterns(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestListLearnedPatternsOrdersByRecency(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 3; i++ {
		p := samplePattern(fmt.Sprintf("fp-%d||", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.SaveLearnedPattern(ctx, p))
	}

	patterns, err := s.ListLearnedPatterns(ctx)
	require.NoError(t, err)
	require.Len(t, patterns, 3)
	assert.Equal(t, "fp-2||", patterns[0].Fingerprint)
	assert.Equal(t, "fp-0||", patterns[2].Fingerprint)
}

func TestPruneLearnedPatternsKeepsNewest(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)

	for i := 0; i < 5; i++ {
		p := samplePattern(fmt.Sprintf("fp-%d||", i), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.SaveLearnedPattern(ctx, p))
	}

	require.NoError(t, s.PruneLearnedPatterns(ctx, 2))

	patterns, err := s.ListLearnedPatterns(ctx)
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "fp-4||", patterns[0].Fingerprint)
	assert.Equal(t, "fp-3||", patterns[1].Fingerprint)
}

func TestPruneLearnedPatternsRejectsNonPositiveKeep(t *testing.T) {
	s := setupTestStorage(t)
	assert.Error(t, s.PruneLearnedPatterns(context.Background(), 0))
}

func TestClearLearnedPatterns(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveLearnedPattern(ctx, samplePattern("a||", time.Now())))
	require.NoError(t, s.SaveLearnedPattern(ctx, samplePattern("b||", time.Now())))
	require.NoError(t, s.ClearLearnedPatterns(ctx))

	n, err := s.CountLearnedPatterns(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSaveLearnedPatternValidation(t *testing.T) {
	s := setupTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		pattern *model.LearnedPattern
	}{
		{"nil pattern", nil},
		{"empty fingerprint", samplePattern("", time.Now())},
		{
			"confidence out of range",
			&model.LearnedPattern{Fingerprint: "x||", Category: model.CategoryEmail, Confidence: 1.5, SeenAt: time.Now()},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, s.SaveLearnedPattern(ctx, tt.pattern))
		})
	}
}

func TestStorageRejectsCancelledContext(t *testing.T) {
	s := setupTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, s.SaveLearnedPattern(ctx, samplePattern("x||", time.Now())))
	_, err := s.ListLearnedPatterns(ctx)
	assert.Error(t, err)
}
