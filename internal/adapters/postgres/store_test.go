package postgres

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgtracker/internal/domain"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := Connect(ctx, dsn, 0)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx, "up"))
	return db
}

func createCompany(t *testing.T, db *DB) domain.Company {
	t.Helper()
	c, err := db.CreateCompany(context.Background(), domain.NewCompany{
		Name:         "Acme",
		Email:        uuid.NewString() + "@acme.com",
		PasswordHash: "hash",
		EmailDomain:  "acme.com",
	})
	require.NoError(t, err)
	return c
}

func TestCompanyRoundTripAndDuplicate(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	c := createCompany(t, db)

	exists, got, err := db.GetCompanyByEmail(ctx, c.Email)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "acme.com", got.EmailDomain)

	_, err = db.CreateCompany(ctx, domain.NewCompany{Name: "Other", Email: c.Email, PasswordHash: "x"})
	assert.True(t, errors.Is(err, domain.ErrDuplicateEmail), "got %v", err)

	exists, _, err = db.GetCompany(ctx, -1)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpsertRoundTripAndHistory(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	c := createCompany(t, db)

	first, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{0: 8, 3: 9.5}, domain.DimensionResult{E: 80, S: 95, G: 0, Total: 58})
	require.NoError(t, err)
	second, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{1: 4}, domain.DimensionResult{E: 40, Total: 13})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	assert.False(t, second.UpdatedAt.Before(first.UpdatedAt))

	exists, latest, err := db.GetLatestAssessment(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, domain.RawScores{1: 4}, latest.ScoresData)
	assert.Equal(t, 13, latest.TotalScore)

	all, err := db.GetAssessmentHistory(ctx, c.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 13, all[0].TotalScore)
	assert.Equal(t, domain.RawScores{0: 8, 3: 9.5}, all[1].ScoresData)
	assert.Equal(t, latest.ID, all[0].ID)
	assert.True(t, latest.UpdatedAt.Equal(all[0].UpdatedAt))

	one, err := db.GetAssessmentHistory(ctx, c.ID, 1)
	require.NoError(t, err)
	assert.Len(t, one, 1)
}

func TestUpsertUnknownCompany(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.UpsertAssessment(context.Background(), -1, domain.RawScores{0: 5}, domain.DimensionResult{E: 50})
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)

	history, err := db.GetAssessmentHistory(context.Background(), -1, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestConcurrentSavesKeepOneRowAndOrderedHistory(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	c := createCompany(t, db)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{0: float64(n + 1)}, domain.DimensionResult{Total: n})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var rows int
	require.NoError(t, db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM esg_assessments WHERE company_id = $1`, c.ID).Scan(&rows))
	assert.Equal(t, 1, rows)

	exists, latest, err := db.GetLatestAssessment(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, exists)
	history, err := db.GetAssessmentHistory(ctx, c.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, writers)
	assert.Equal(t, latest.TotalScore, history[0].TotalScore)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i-1].UpdatedAt.Before(history[i].UpdatedAt))
	}
}
