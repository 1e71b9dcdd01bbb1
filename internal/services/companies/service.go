package companies

import (
	"context"

	"esgtracker/internal/domain"
	"esgtracker/internal/ports"
)

// Service is the read-only company directory.
type Service struct {
	companies ports.CompanyRepository
}

func New(companies ports.CompanyRepository) *Service { return &Service{companies: companies} }

// List returns registered companies, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Company, error) {
	return s.companies.ListCompanies(ctx)
}
