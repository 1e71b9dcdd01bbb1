package reports

import (
	"github.com/shopspring/decimal"

	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
	"esgtracker/internal/scoring"
)

var hundred = decimal.NewFromInt(100)

// Metric is one criterion's line in the performance metrics report.
type Metric struct {
	Criterion criteria.Criterion
	Rated     bool
	// Score is the rating scaled to 0..100.
	Score decimal.Decimal
	// Share is the criterion weight over its dimension's total weight.
	Share decimal.Decimal
	// Contribution is Score x Share, in dimension percentage points.
	Contribution decimal.Decimal
}

// Metrics derives per-criterion lines from a raw score snapshot. When every
// criterion of a dimension is rated, the contributions add up to that
// dimension's unrounded percentage.
func Metrics(raw domain.RawScores, catalog *criteria.Catalog) []Metric {
	items := catalog.All()
	out := make([]Metric, 0, len(items))
	for _, c := range items {
		m := Metric{Criterion: c, Score: decimal.Zero, Share: catalog.WeightShare(c.Index), Contribution: decimal.Zero}
		if v, ok := raw[c.Index]; ok && scoring.Rated(v) {
			m.Rated = true
			m.Score = decimal.NewFromFloat(v).Mul(decimal.NewFromInt(10))
			m.Contribution = m.Score.Mul(m.Share)
		}
		out = append(out, m)
	}
	return out
}

// Percent formats a 0..1 share as "60%".
func Percent(share decimal.Decimal) string {
	return share.Mul(hundred).Round(1).String() + "%"
}
