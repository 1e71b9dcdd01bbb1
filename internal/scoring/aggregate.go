// Package scoring holds the pure ESG arithmetic: per-dimension weighted
// averages, recommendation tiers and period-over-period deltas.
package scoring

import (
	"math"

	"github.com/shopspring/decimal"

	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
)

var (
	ten   = decimal.NewFromInt(10)
	three = decimal.NewFromInt(3)
)

// Aggregate computes dimension percentages as the weighted average of rated
// criteria only; unrated criteria drop out of both numerator and
// denominator. Total is the plain mean of the rounded E, S and G values,
// rounded again. All rounding is half-up on exact decimals.
func Aggregate(raw domain.RawScores, catalog *criteria.Catalog) domain.DimensionResult {
	sums := make(map[domain.Dimension]decimal.Decimal, len(domain.Dimensions))
	weights := make(map[domain.Dimension]decimal.Decimal, len(domain.Dimensions))

	for _, c := range catalog.All() {
		rating, ok := raw[c.Index]
		if !ok || !Rated(rating) {
			continue
		}
		r := decimal.NewFromFloat(rating)
		sums[c.Dimension] = sums[c.Dimension].Add(r.Mul(c.Weight))
		weights[c.Dimension] = weights[c.Dimension].Add(c.Weight)
	}

	percent := func(d domain.Dimension) int {
		w := weights[d]
		if !w.IsPositive() {
			return 0
		}
		// sum / w / 10 * 100 == sum * 10 / w
		return int(sums[d].Mul(ten).Div(w).Round(0).IntPart())
	}

	res := domain.DimensionResult{
		E: percent(domain.Environmental),
		S: percent(domain.Social),
		G: percent(domain.Governance),
	}
	res.Total = int(decimal.NewFromInt(int64(res.E + res.S + res.G)).Div(three).Round(0).IntPart())
	return res
}

// Rated reports whether a raw value counts as an entered rating.
func Rated(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RoundResult rounds client-supplied percentages half-up and clamps NaN and
// infinities to zero.
func RoundResult(e, s, g, total float64) domain.DimensionResult {
	round := func(v float64) int {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(decimal.NewFromFloat(v).Round(0).IntPart())
	}
	return domain.DimensionResult{E: round(e), S: round(s), G: round(g), Total: round(total)}
}
