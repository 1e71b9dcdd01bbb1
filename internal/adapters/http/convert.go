package httpadapter

import (
	"strconv"

	api "esgtracker/internal/api"
	"esgtracker/internal/domain"
)

func toAssessment(a domain.Assessment) api.Assessment {
	scores := make(map[string]float64, len(a.ScoresData))
	for idx, v := range a.ScoresData {
		scores[strconv.Itoa(idx)] = v
	}
	return api.Assessment{
		Id:                 a.ID,
		CompanyId:          a.CompanyID,
		EnvironmentalScore: a.EnvironmentalScore,
		SocialScore:        a.SocialScore,
		GovernanceScore:    a.GovernanceScore,
		TotalScore:         a.TotalScore,
		ScoresData:         scores,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func toAssessmentPtr(a *domain.Assessment) *api.Assessment {
	if a == nil {
		return nil
	}
	out := toAssessment(*a)
	return &out
}

func toResult(r domain.DimensionResult) api.DimensionResult {
	return api.DimensionResult{E: r.E, S: r.S, G: r.G, Total: r.Total}
}
