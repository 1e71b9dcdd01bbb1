package ports

import (
	"context"

	"esgtracker/internal/domain"
	"esgtracker/internal/scoring"
)

// Auth registers companies, checks credentials and verifies session tokens.
type Auth interface {
	Register(ctx context.Context, companyName, email, password string) (domain.Session, error)
	Login(ctx context.Context, email, password string) (domain.Session, error)
	Verify(token string) (companyID int64, err error)
}

// Assessments saves and reads scored assessments.
type Assessments interface {
	Save(ctx context.Context, companyID int64, raw domain.RawScores, results *domain.DimensionResult) (domain.Assessment, error)
	Latest(ctx context.Context, companyID int64) (*domain.Assessment, error)
	History(ctx context.Context, companyID int64) ([]domain.Assessment, error)
	Improvement(ctx context.Context, companyID int64) (domain.Improvement, error)
	Calculate(raw domain.RawScores) (domain.DimensionResult, scoring.Tier, []string)
}

// Companies lists registered companies.
type Companies interface {
	List(ctx context.Context) ([]domain.Company, error)
}

// Reports renders PDF reports for a company's current assessment.
type Reports interface {
	Render(ctx context.Context, companyID int64, kind domain.ReportKind) (domain.RenderedReport, error)
}
