package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgtracker/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "esg.db"), 0)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx, "up"))
	return db
}

func createCompany(t *testing.T, db *DB, email string) domain.Company {
	t.Helper()
	c, err := db.CreateCompany(context.Background(), domain.NewCompany{
		Name:         "Acme",
		Email:        email,
		PasswordHash: "hash",
		EmailDomain:  "acme.com",
	})
	require.NoError(t, err)
	return c
}

func TestCreateAndGetCompany(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	c := createCompany(t, db, "ops@acme.com")
	assert.NotZero(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())

	exists, byEmail, err := db.GetCompanyByEmail(ctx, "ops@acme.com")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, c.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)
	assert.Equal(t, "acme.com", byEmail.EmailDomain)

	exists, byID, err := db.GetCompany(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Acme", byID.Name)

	exists, _, err = db.GetCompany(ctx, c.ID+100)
	require.NoError(t, err)
	assert.False(t, exists)

	list, err := db.ListCompanies(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateCompanyDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	createCompany(t, db, "dup@acme.com")

	_, err := db.CreateCompany(context.Background(), domain.NewCompany{Name: "Other", Email: "dup@acme.com", PasswordHash: "x"})
	assert.True(t, errors.Is(err, domain.ErrDuplicateEmail), "got %v", err)
}

func TestUpsertRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	c := createCompany(t, db, "a@acme.com")

	raw := domain.RawScores{0: 8, 1: 6, 2: 7, 3: 9, 4: 5, 5: 10}
	res := domain.DimensionResult{E: 72, S: 78, G: 83, Total: 78}

	saved, err := db.UpsertAssessment(ctx, c.ID, raw, res)
	require.NoError(t, err)
	assert.Equal(t, c.ID, saved.CompanyID)
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

	exists, latest, err := db.GetLatestAssessment(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, res, latest.Result())
	assert.Equal(t, raw, latest.ScoresData)
}

func TestUpsertUnknownCompany(t *testing.T) {
	db := openTestDB(t)

	_, err := db.UpsertAssessment(context.Background(), 404, domain.RawScores{0: 5}, domain.DimensionResult{E: 50})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)

	history, err := db.GetAssessmentHistory(context.Background(), 404, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestUpsertIsIdempotentExceptUpdatedAt(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	c := createCompany(t, db, "b@acme.com")
	res := domain.DimensionResult{E: 40, S: 50, G: 60, Total: 50}

	first, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{0: 4}, res)
	require.NoError(t, err)
	second, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{0: 4}, res)
	require.NoError(t, err)

	_, latest, err := db.GetLatestAssessment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ID, latest.ID)
	assert.Equal(t, first.CreatedAt, latest.CreatedAt)
	assert.Equal(t, res, latest.Result())
	assert.False(t, latest.UpdatedAt.Before(first.UpdatedAt))
}

func TestUpdateKeepsOneCurrentRowAndAppendsHistory(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	c := createCompany(t, db, "c@acme.com")

	for i, total := range []int{30, 55, 81} {
		_, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{0: float64(i + 1)}, domain.DimensionResult{Total: total})
		require.NoError(t, err)
	}

	var rows int
	require.NoError(t, db.SQL.QueryRow(`SELECT COUNT(*) FROM esg_assessments WHERE company_id = ?`, c.ID).Scan(&rows))
	assert.Equal(t, 1, rows)

	_, latest, err := db.GetLatestAssessment(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 81, latest.TotalScore)

	history, err := db.GetAssessmentHistory(ctx, c.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 81, history[0].TotalScore)
	assert.Equal(t, 55, history[1].TotalScore)
	assert.Equal(t, 30, history[2].TotalScore)
	assert.Equal(t, domain.RawScores{0: 2}, history[1].ScoresData)

	two, err := db.GetAssessmentHistory(ctx, c.ID, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestConcurrentFirstSavesYieldOneAssessment(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	c := createCompany(t, db, "race@acme.com")

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{0: float64(n + 1)}, domain.DimensionResult{E: n})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var rows int
	require.NoError(t, db.SQL.QueryRow(`SELECT COUNT(*) FROM esg_assessments WHERE company_id = ?`, c.ID).Scan(&rows))
	assert.Equal(t, 1, rows)

	history, err := db.GetAssessmentHistory(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Len(t, history, writers)
}

func TestHistoryHeadMatchesCurrentRowUnderContention(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	for trial := 0; trial < 20; trial++ {
		c := createCompany(t, db, fmt.Sprintf("queue%d@acme.com", trial))

		// Occupy the only connection so both saves queue behind it.
		conn, err := db.SQL.Conn(ctx)
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make(chan error, 2)
		for _, total := range []int{10, 90} {
			wg.Add(1)
			go func(total int) {
				defer wg.Done()
				_, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{0: 1}, domain.DimensionResult{Total: total})
				errs <- err
			}(total)
			time.Sleep(5 * time.Millisecond)
		}
		require.NoError(t, conn.Close())
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		exists, current, err := db.GetLatestAssessment(ctx, c.ID)
		require.NoError(t, err)
		require.True(t, exists)
		history, err := db.GetAssessmentHistory(ctx, c.ID, 0)
		require.NoError(t, err)
		require.Len(t, history, 2)

		assert.Equal(t, current.TotalScore, history[0].TotalScore, "trial %d", trial)
		assert.True(t, current.UpdatedAt.Equal(history[0].UpdatedAt), "trial %d", trial)
		assert.False(t, history[0].UpdatedAt.Before(history[1].UpdatedAt), "trial %d", trial)
	}
}

func TestHistoryUsesCurrentAssessmentID(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	c := createCompany(t, db, "ids@acme.com")

	first, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{0: 3}, domain.DimensionResult{Total: 30})
	require.NoError(t, err)
	second, err := db.UpsertAssessment(ctx, c.ID, domain.RawScores{0: 6}, domain.DimensionResult{Total: 60})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	history, err := db.GetAssessmentHistory(ctx, c.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for _, h := range history {
		assert.Equal(t, second.ID, h.ID)
		assert.True(t, first.CreatedAt.Equal(h.CreatedAt))
	}
	assert.True(t, second.UpdatedAt.Equal(history[0].UpdatedAt))
	assert.True(t, first.UpdatedAt.Equal(history[1].UpdatedAt))
}

func TestGetLatestWithoutAssessments(t *testing.T) {
	db := openTestDB(t)
	c := createCompany(t, db, "empty@acme.com")

	exists, _, err := db.GetLatestAssessment(context.Background(), c.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCanceledContextIsStorageError(t *testing.T) {
	db := openTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := db.ListCompanies(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStorage), "got %v", err)
}
