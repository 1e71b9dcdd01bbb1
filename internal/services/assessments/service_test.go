package assessments

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esgtracker/internal/adapters/sqlite"
	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
	"esgtracker/internal/scoring"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.AssessmentEvent
	err    error
}

func (p *recordingPublisher) PublishAssessmentSaved(_ context.Context, ev domain.AssessmentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func setup(t *testing.T) (*Service, *recordingPublisher, int64) {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "esg.db"), 0)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx, "up"))

	c, err := db.CreateCompany(ctx, domain.NewCompany{Name: "Acme", Email: "acme@acme.com", PasswordHash: "x"})
	require.NoError(t, err)

	cat, err := criteria.Default()
	require.NoError(t, err)

	pub := &recordingPublisher{}
	return New(db, cat, pub), pub, c.ID
}

func TestSaveComputesResultsWhenOmitted(t *testing.T) {
	s, pub, id := setup(t)
	raw := domain.RawScores{0: 8, 1: 6, 2: 7, 3: 9, 4: 5, 5: 10}

	a, err := s.Save(context.Background(), id, raw, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.DimensionResult{E: 72, S: 78, G: 83, Total: 78}, a.Result())

	require.Len(t, pub.events, 1)
	ev := pub.events[0]
	assert.Equal(t, domain.EventAssessmentSaved, ev.Type)
	assert.Equal(t, id, ev.CompanyID)
	assert.Equal(t, a.ID, ev.AssessmentID)
	assert.NotEmpty(t, ev.ID)
}

func TestSaveKeepsClientResults(t *testing.T) {
	s, _, id := setup(t)
	res := domain.DimensionResult{E: 10, S: 20, G: 30, Total: 20}

	a, err := s.Save(context.Background(), id, domain.RawScores{0: 1}, &res)
	require.NoError(t, err)
	assert.Equal(t, res, a.Result())
}

func TestSaveValidation(t *testing.T) {
	s, _, id := setup(t)
	ctx := context.Background()

	_, err := s.Save(ctx, 0, domain.RawScores{}, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = s.Save(ctx, id, nil, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = s.Save(ctx, id, domain.RawScores{}, &domain.DimensionResult{E: 101})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestSaveUnknownCompany(t *testing.T) {
	s, pub, _ := setup(t)

	_, err := s.Save(context.Background(), 999, domain.RawScores{0: 5}, nil)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
	assert.Empty(t, pub.events)
}

func TestPublishFailureDoesNotFailSave(t *testing.T) {
	s, pub, id := setup(t)
	pub.err = errors.New("broker down")

	_, err := s.Save(context.Background(), id, domain.RawScores{0: 5}, nil)
	require.NoError(t, err)
}

func TestLatestAndHistory(t *testing.T) {
	s, _, id := setup(t)
	ctx := context.Background()

	latest, err := s.Latest(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = s.Save(ctx, id, domain.RawScores{0: 4}, nil)
	require.NoError(t, err)
	_, err = s.Save(ctx, id, domain.RawScores{0: 9}, nil)
	require.NoError(t, err)

	latest, err = s.Latest(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 90, latest.EnvironmentalScore)

	history, err := s.History(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 90, history[0].EnvironmentalScore)
	assert.Equal(t, 40, history[1].EnvironmentalScore)
}

func TestImprovement(t *testing.T) {
	s, _, id := setup(t)
	ctx := context.Background()

	imp, err := s.Improvement(ctx, id)
	require.NoError(t, err)
	assert.False(t, imp.HasComparison)
	assert.Nil(t, imp.Current)

	_, err = s.Save(ctx, id, domain.RawScores{}, &domain.DimensionResult{E: 50, S: 60, G: 70, Total: 60})
	require.NoError(t, err)

	imp, err = s.Improvement(ctx, id)
	require.NoError(t, err)
	assert.False(t, imp.HasComparison)
	require.NotNil(t, imp.Current)
	assert.Nil(t, imp.Previous)
	assert.Equal(t, domain.Deltas{}, imp.Deltas)

	_, err = s.Save(ctx, id, domain.RawScores{}, &domain.DimensionResult{E: 55, S: 58, G: 70, Total: 61})
	require.NoError(t, err)

	imp, err = s.Improvement(ctx, id)
	require.NoError(t, err)
	assert.True(t, imp.HasComparison)
	require.NotNil(t, imp.Previous)
	assert.Equal(t, domain.Deltas{Environmental: 5, Social: -2, Governance: 0, Total: 1}, imp.Deltas)
}

func TestCalculate(t *testing.T) {
	s, _, _ := setup(t)

	res, tier, recs := s.Calculate(domain.RawScores{0: 10, 1: 10, 2: 10, 3: 10, 4: 10, 5: 10})
	assert.Equal(t, domain.DimensionResult{E: 100, S: 100, G: 100, Total: 100}, res)
	assert.Equal(t, scoring.TierExcellent, tier)
	assert.Len(t, recs, 4)
}
