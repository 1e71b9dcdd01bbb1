package scoring

// Tier is an advisory band for a total percentage. Higher is better.
type Tier int

const (
	TierNeedsImprovement Tier = iota
	TierModerate
	TierGood
	TierExcellent
)

func (t Tier) String() string {
	switch t {
	case TierExcellent:
		return "excellent"
	case TierGood:
		return "good"
	case TierModerate:
		return "moderate"
	}
	return "needs-improvement"
}

// TierFor buckets a total; lower bounds are inclusive.
func TierFor(total int) Tier {
	switch {
	case total >= 80:
		return TierExcellent
	case total >= 60:
		return TierGood
	case total >= 40:
		return TierModerate
	default:
		return TierNeedsImprovement
	}
}

var recommendations = map[Tier][]string{
	TierExcellent: {
		"Excellent ESG performance! Maintain current practices.",
		"Consider publishing sustainability reports.",
		"Share best practices with industry peers.",
		"Set ambitious targets for continuous improvement.",
	},
	TierGood: {
		"Good ESG performance with room for improvement.",
		"Focus on areas with lower scores.",
		"Implement sustainability initiatives.",
		"Engage stakeholders in ESG efforts.",
	},
	TierModerate: {
		"Moderate ESG performance. Improvement needed.",
		"Develop comprehensive ESG strategy.",
		"Allocate resources to priority areas.",
		"Seek expert guidance on ESG practices.",
	},
	TierNeedsImprovement: {
		"ESG performance needs significant improvement.",
		"Immediate action required on critical issues.",
		"Establish ESG governance framework.",
		"Consider bringing in ESG consultants.",
		"Prioritize compliance and risk management.",
	},
}

// Recommend returns the advisory messages for a total percentage. The slice
// is a fresh copy.
func Recommend(total int) []string {
	msgs := recommendations[TierFor(total)]
	out := make([]string, len(msgs))
	copy(out, msgs)
	return out
}
