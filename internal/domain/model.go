package domain

import "time"

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; keep these decoupled where helpful.

type Dimension string

const (
	Environmental Dimension = "E"
	Social        Dimension = "S"
	Governance    Dimension = "G"
)

// Dimensions lists E, S, G in report order.
var Dimensions = []Dimension{Environmental, Social, Governance}

func (d Dimension) Label() string {
	switch d {
	case Environmental:
		return "Environmental"
	case Social:
		return "Social"
	case Governance:
		return "Governance"
	}
	return string(d)
}

type Company struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	EmailDomain  string
	CreatedAt    time.Time
}

// NewCompany carries the fields needed to insert a company row.
type NewCompany struct {
	Name         string
	Email        string
	PasswordHash string
	EmailDomain  string
}

// Session is returned by register and login. Token is empty when no
// session secret is configured.
type Session struct {
	Company Company
	Token   string
}

// RawScores maps criterion index to a rating in [1,10]. Missing or zero
// entries are not rated.
type RawScores map[int]float64

// DimensionResult holds percentages in [0,100].
type DimensionResult struct {
	E     int `json:"E"`
	S     int `json:"S"`
	G     int `json:"G"`
	Total int `json:"total"`
}

func (r DimensionResult) For(d Dimension) int {
	switch d {
	case Environmental:
		return r.E
	case Social:
		return r.S
	case Governance:
		return r.G
	}
	return 0
}

type Assessment struct {
	ID                 int64
	CompanyID          int64
	EnvironmentalScore int
	SocialScore        int
	GovernanceScore    int
	TotalScore         int
	ScoresData         RawScores
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (a Assessment) Result() DimensionResult {
	return DimensionResult{E: a.EnvironmentalScore, S: a.SocialScore, G: a.GovernanceScore, Total: a.TotalScore}
}

// Deltas are signed point differences between two assessments.
type Deltas struct {
	Environmental int
	Social        int
	Governance    int
	Total         int
}

// Improvement pairs the two most recent assessments of a company.
type Improvement struct {
	HasComparison bool
	Current       *Assessment
	Previous      *Assessment
	Deltas        Deltas
}

// AssessmentEvent is published after every successful save.
type AssessmentEvent struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	CompanyID    int64           `json:"companyId"`
	AssessmentID int64           `json:"assessmentId"`
	Scores       DimensionResult `json:"scores"`
	OccurredAt   time.Time       `json:"occurredAt"`
}

const EventAssessmentSaved = "assessment.saved"

// ReportKind names one of the generated PDF documents.
type ReportKind string

const (
	ReportExecutiveSummary   ReportKind = "executive-summary"
	ReportPerformanceMetrics ReportKind = "performance-metrics"
	ReportRiskAssessment     ReportKind = "risk-assessment"
	ReportActionPlan         ReportKind = "action-plan"
	ReportComplete           ReportKind = "complete"
)

var ReportKinds = []ReportKind{
	ReportExecutiveSummary,
	ReportPerformanceMetrics,
	ReportRiskAssessment,
	ReportActionPlan,
	ReportComplete,
}

// RenderedReport is a finished PDF plus where it was archived, if anywhere.
type RenderedReport struct {
	Kind     ReportKind
	Filename string
	PDF      []byte
	Location string
}
