// Package reports builds the text content of the ESG reports and renders
// them to PDF.
package reports

import (
	"fmt"
	"strings"

	"esgtracker/internal/domain"
	"esgtracker/internal/scoring"
)

// Status labels a percentage score.
func Status(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	}
	return "Needs Improvement"
}

func RiskLevel(score int) string {
	switch {
	case score >= 70:
		return "Low Risk"
	case score >= 40:
		return "Medium Risk"
	}
	return "High Risk"
}

func Priority(score int) string {
	switch {
	case score < 40:
		return "Critical"
	case score < 70:
		return "High"
	}
	return "Low"
}

// Stars returns a 1 to 5 star count.
func Stars(score int) int {
	switch {
	case score >= 80:
		return 5
	case score >= 60:
		return 4
	case score >= 40:
		return 3
	case score >= 20:
		return 2
	}
	return 1
}

// Rating renders Stars with ASCII asterisks; the PDF core fonts have no
// star glyph.
func Rating(score int) string {
	return strings.Repeat("*", Stars(score))
}

// Analysis is the performance paragraph for an overall score.
func Analysis(total int) string {
	switch scoring.TierFor(total) {
	case scoring.TierExcellent:
		return fmt.Sprintf("Excellent ESG performance with a total score of %d%%. Your organization demonstrates strong commitment to environmental, social, and governance practices. Continue maintaining these high standards and focus on continuous improvement.", total)
	case scoring.TierGood:
		return fmt.Sprintf("Good ESG performance with a total score of %d%%. Your organization shows solid ESG practices with room for improvement. Focus on areas with lower scores to enhance overall performance.", total)
	case scoring.TierModerate:
		return fmt.Sprintf("Fair ESG performance with a total score of %d%%. Your organization has established basic ESG practices but significant improvements are needed. Prioritize implementation of comprehensive ESG strategies.", total)
	}
	return fmt.Sprintf("ESG performance needs significant improvement with a total score of %d%%. Immediate action is required to establish fundamental ESG practices and governance frameworks. Consider engaging ESG consultants for guidance.", total)
}

var mitigations = map[domain.Dimension]string{
	domain.Environmental: "Implement carbon reduction strategies and water conservation programs",
	domain.Social:        "Enhance employee welfare programs and community engagement initiatives",
	domain.Governance:    "Strengthen board diversity and ethics compliance frameworks",
}

func Mitigation(d domain.Dimension) string { return mitigations[d] }

// Risk is one row of the risk assessment table.
type Risk struct {
	Dimension  domain.Dimension
	Score      int
	Level      string
	Priority   string
	Mitigation string
}

func Risks(r domain.DimensionResult) []Risk {
	out := make([]Risk, 0, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		score := r.For(d)
		out = append(out, Risk{
			Dimension:  d,
			Score:      score,
			Level:      RiskLevel(score),
			Priority:   Priority(score),
			Mitigation: Mitigation(d),
		})
	}
	return out
}

type ActionItem struct {
	Action   string
	Timeline string
	Priority string
	Owner    string
}

var actionItems = []ActionItem{
	{"Conduct carbon footprint assessment", "Q1 2026", "High", "Sustainability Team"},
	{"Implement employee wellness program", "Q1-Q2 2026", "Medium", "HR Department"},
	{"Establish ethics committee", "Q2 2026", "High", "Board of Directors"},
	{"Deploy ESG training modules", "Q2-Q3 2026", "Medium", "All Departments"},
}

func ActionItems() []ActionItem {
	out := make([]ActionItem, len(actionItems))
	copy(out, actionItems)
	return out
}

// DimensionDetail is the narrative page for one dimension in the complete
// report.
type DimensionDetail struct {
	Dimension       domain.Dimension
	Score           int
	Description     string
	KeyAreas        []string
	Recommendations []string
}

type detailText struct {
	description string
	keyAreas    []string
	improve     []string
	sustain     []string
}

var details = map[domain.Dimension]detailText{
	domain.Environmental: {
		description: "Environmental performance measures your organization's impact on natural resources and ecosystems.",
		keyAreas:    []string{"Carbon Emissions Management", "Water Usage and Conservation", "Waste Management", "Energy Efficiency"},
		improve:     []string{"Implement carbon reduction strategies", "Enhance water conservation programs", "Invest in renewable energy"},
		sustain:     []string{"Maintain current practices", "Share best practices with industry", "Set ambitious sustainability targets"},
	},
	domain.Social: {
		description: "Social performance evaluates your organization's relationships with employees, communities, and stakeholders.",
		keyAreas:    []string{"Employee Welfare and Benefits", "Workplace Safety", "Community Engagement", "Diversity and Inclusion"},
		improve:     []string{"Enhance employee welfare programs", "Strengthen diversity initiatives", "Improve workplace safety measures"},
		sustain:     []string{"Continue community engagement", "Expand social impact programs", "Share success stories publicly"},
	},
	domain.Governance: {
		description: "Governance performance assesses your organization's leadership, transparency, and ethical practices.",
		keyAreas:    []string{"Board Diversity and Independence", "Ethics and Compliance", "Transparency and Reporting", "Risk Management"},
		improve:     []string{"Strengthen board diversity", "Enhance compliance frameworks", "Improve risk management"},
		sustain:     []string{"Maintain ethical standards", "Publish transparency reports", "Lead industry best practices"},
	},
}

// Detail picks improvement advice below 70 and sustaining advice otherwise.
func Detail(d domain.Dimension, score int) DimensionDetail {
	t := details[d]
	recs := t.sustain
	if score < 70 {
		recs = t.improve
	}
	return DimensionDetail{
		Dimension:       d,
		Score:           score,
		Description:     t.description,
		KeyAreas:        append([]string(nil), t.keyAreas...),
		Recommendations: append([]string(nil), recs...),
	}
}
