package assessments

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
	"esgtracker/internal/ports"
	"esgtracker/internal/scoring"
)

type Service struct {
	store   ports.AssessmentRepository
	catalog *criteria.Catalog
	events  ports.EventPublisher
}

// New wires the service; events may be nil when no broker is configured.
func New(store ports.AssessmentRepository, catalog *criteria.Catalog, events ports.EventPublisher) *Service {
	return &Service{store: store, catalog: catalog, events: events}
}

// Save upserts the company's current assessment. When results is nil the
// percentages are computed from raw; otherwise the caller's values are
// stored as given.
func (s *Service) Save(ctx context.Context, companyID int64, raw domain.RawScores, results *domain.DimensionResult) (domain.Assessment, error) {
	if companyID <= 0 {
		return domain.Assessment{}, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}
	if raw == nil {
		return domain.Assessment{}, fmt.Errorf("%w: scores are required", domain.ErrValidation)
	}

	var res domain.DimensionResult
	if results != nil {
		res = *results
	} else {
		res = scoring.Aggregate(raw, s.catalog)
	}
	if err := checkRange(res); err != nil {
		return domain.Assessment{}, err
	}

	saved, err := s.store.UpsertAssessment(ctx, companyID, raw, res)
	if err != nil {
		return domain.Assessment{}, err
	}
	s.publish(ctx, saved)
	return saved, nil
}

func (s *Service) Latest(ctx context.Context, companyID int64) (*domain.Assessment, error) {
	exists, a, err := s.store.GetLatestAssessment(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}
	return &a, nil
}

func (s *Service) History(ctx context.Context, companyID int64) ([]domain.Assessment, error) {
	return s.store.GetAssessmentHistory(ctx, companyID, 0)
}

// Improvement compares the two most recent saves.
func (s *Service) Improvement(ctx context.Context, companyID int64) (domain.Improvement, error) {
	recent, err := s.store.GetAssessmentHistory(ctx, companyID, 2)
	if err != nil {
		return domain.Improvement{}, err
	}
	if len(recent) == 0 {
		return domain.Improvement{}, nil
	}

	current := recent[0]
	var previous *domain.Assessment
	if len(recent) > 1 {
		previous = &recent[1]
	}
	cmp := scoring.Compare(current, previous)
	return domain.Improvement{
		HasComparison: cmp.HasComparison,
		Current:       &current,
		Previous:      previous,
		Deltas:        cmp.Deltas,
	}, nil
}

// Calculate scores raw ratings without persisting anything.
func (s *Service) Calculate(raw domain.RawScores) (domain.DimensionResult, scoring.Tier, []string) {
	res := scoring.Aggregate(raw, s.catalog)
	return res, scoring.TierFor(res.Total), scoring.Recommend(res.Total)
}

func (s *Service) publish(ctx context.Context, a domain.Assessment) {
	if s.events == nil {
		return
	}
	ev := domain.AssessmentEvent{
		ID:           uuid.NewString(),
		Type:         domain.EventAssessmentSaved,
		CompanyID:    a.CompanyID,
		AssessmentID: a.ID,
		Scores:       a.Result(),
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.events.PublishAssessmentSaved(ctx, ev); err != nil {
		log.Printf("publish %s for company %d: %v", ev.Type, a.CompanyID, err)
	}
}

func checkRange(r domain.DimensionResult) error {
	for _, v := range []int{r.E, r.S, r.G, r.Total} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%w: results must be between 0 and 100", domain.ErrValidation)
		}
	}
	return nil
}
