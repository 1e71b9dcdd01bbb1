package scoring

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"esgtracker/internal/domain"
)

// ParseRawScores converts a decoded JSON object keyed by criterion index
// into RawScores. Keys that are not non-negative integers are ignored;
// values that are not finite numbers coerce to 0 (not rated).
func ParseRawScores(in map[string]any) domain.RawScores {
	out := make(domain.RawScores, len(in))
	for k, v := range in {
		idx, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil || idx < 0 {
			continue
		}
		out[idx] = finite(coerce(v))
	}
	return out
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func coerce(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}
