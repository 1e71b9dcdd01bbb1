package scoring

import "esgtracker/internal/domain"

type Trend string

const (
	TrendUp   Trend = "up"
	TrendFlat Trend = "flat"
	TrendDown Trend = "down"
)

// Comparison is the raw point difference between two assessments.
type Comparison struct {
	HasComparison bool
	Deltas        domain.Deltas
}

// Compare subtracts previous from current field by field. A nil previous
// yields no comparison and zero deltas.
func Compare(current domain.Assessment, previous *domain.Assessment) Comparison {
	if previous == nil {
		return Comparison{}
	}
	return Comparison{
		HasComparison: true,
		Deltas: domain.Deltas{
			Environmental: current.EnvironmentalScore - previous.EnvironmentalScore,
			Social:        current.SocialScore - previous.SocialScore,
			Governance:    current.GovernanceScore - previous.GovernanceScore,
			Total:         current.TotalScore - previous.TotalScore,
		},
	}
}

func TrendOf(delta int) Trend {
	switch {
	case delta > 0:
		return TrendUp
	case delta < 0:
		return TrendDown
	}
	return TrendFlat
}
