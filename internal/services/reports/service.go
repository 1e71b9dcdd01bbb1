package reports

import (
	"context"
	"fmt"
	"log"
	"time"

	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
	"esgtracker/internal/ports"
	"esgtracker/internal/reports"
)

type Service struct {
	companies   ports.CompanyRepository
	assessments ports.AssessmentRepository
	catalog     *criteria.Catalog
	archive     ports.ReportArchive
	now         func() time.Time
}

// New wires the service; archive may be nil.
func New(companies ports.CompanyRepository, assessments ports.AssessmentRepository, catalog *criteria.Catalog, archive ports.ReportArchive) *Service {
	return &Service{companies: companies, assessments: assessments, catalog: catalog, archive: archive, now: time.Now}
}

// Render builds a report from the company's current assessment. Companies
// without one, or unknown companies, yield domain.ErrNotFound.
func (s *Service) Render(ctx context.Context, companyID int64, kind domain.ReportKind) (domain.RenderedReport, error) {
	exists, company, err := s.companies.GetCompany(ctx, companyID)
	if err != nil {
		return domain.RenderedReport{}, err
	}
	if !exists {
		return domain.RenderedReport{}, fmt.Errorf("%w: company %d", domain.ErrNotFound, companyID)
	}
	exists, assessment, err := s.assessments.GetLatestAssessment(ctx, companyID)
	if err != nil {
		return domain.RenderedReport{}, err
	}
	if !exists {
		return domain.RenderedReport{}, fmt.Errorf("%w: no assessment for company %d", domain.ErrNotFound, companyID)
	}

	at := s.now().UTC()
	pdf, err := reports.Render(kind, reports.Input{
		Company:     company,
		Assessment:  assessment,
		Catalog:     s.catalog,
		GeneratedAt: at,
	})
	if err != nil {
		return domain.RenderedReport{}, err
	}

	out := domain.RenderedReport{
		Kind:     kind,
		Filename: reports.Filename(kind, company.Name, at),
		PDF:      pdf,
	}
	if s.archive != nil {
		loc, err := s.archive.Archive(ctx, companyID, kind, pdf)
		if err != nil {
			log.Printf("archive %s report for company %d: %v", kind, companyID, err)
		} else {
			out.Location = loc
		}
	}
	return out, nil
}
