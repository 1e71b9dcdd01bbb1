package ports

import (
	"context"

	"esgtracker/internal/domain"
)

// EventPublisher emits domain events to an external broker.
type EventPublisher interface {
	PublishAssessmentSaved(ctx context.Context, ev domain.AssessmentEvent) error
}

// ReportArchive stores rendered reports and returns their location.
type ReportArchive interface {
	Archive(ctx context.Context, companyID int64, kind domain.ReportKind, pdf []byte) (location string, err error)
}
