package ports

import (
	"context"

	"esgtracker/internal/domain"
)

// CompanyRepository stores registered companies. Emails are stored already
// normalized; CreateCompany returns domain.ErrDuplicateEmail on conflict.
type CompanyRepository interface {
	CreateCompany(ctx context.Context, c domain.NewCompany) (domain.Company, error)
	GetCompanyByEmail(ctx context.Context, email string) (exists bool, company domain.Company, err error)
	GetCompany(ctx context.Context, id int64) (exists bool, company domain.Company, err error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

// AssessmentRepository keeps one current assessment per company plus an
// append-only revision log.
type AssessmentRepository interface {
	// UpsertAssessment atomically inserts or updates the current row and
	// appends a revision. Unknown companies yield domain.ErrNotFound.
	UpsertAssessment(ctx context.Context, companyID int64, raw domain.RawScores, result domain.DimensionResult) (domain.Assessment, error)
	GetLatestAssessment(ctx context.Context, companyID int64) (exists bool, assessment domain.Assessment, err error)
	// GetAssessmentHistory returns revisions newest first; limit <= 0 means all.
	GetAssessmentHistory(ctx context.Context, companyID int64, limit int) ([]domain.Assessment, error)
}

// Store is everything the service layer needs from a database adapter.
type Store interface {
	CompanyRepository
	AssessmentRepository
	Ping(ctx context.Context) error
	Close()
}
