package reports

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
	"esgtracker/internal/scoring"
)

// Input is everything a report needs; no I/O happens while rendering.
type Input struct {
	Company     domain.Company
	Assessment  domain.Assessment
	Catalog     *criteria.Catalog
	GeneratedAt time.Time
}

type rgb struct{ r, g, b int }

var (
	blue   = rgb{45, 87, 154}
	green  = rgb{22, 163, 74}
	sky    = rgb{59, 130, 246}
	orange = rgb{234, 88, 12}
	purple = rgb{168, 85, 247}
	grey   = rgb{128, 128, 128}
)

var dimensionColor = map[domain.Dimension]rgb{
	domain.Environmental: green,
	domain.Social:        sky,
	domain.Governance:    purple,
}

var titles = map[domain.ReportKind]string{
	domain.ReportExecutiveSummary:   "Executive Summary",
	domain.ReportPerformanceMetrics: "Performance Metrics",
	domain.ReportRiskAssessment:     "Risk Assessment",
	domain.ReportActionPlan:         "Action Plan",
	domain.ReportComplete:           "Complete Report",
}

// ParseKind validates a report kind, defaulting to the complete report.
func ParseKind(s string) (domain.ReportKind, error) {
	if s == "" {
		return domain.ReportComplete, nil
	}
	k := domain.ReportKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := titles[k]; !ok {
		return "", fmt.Errorf("%w: unknown report kind %q", domain.ErrValidation, s)
	}
	return k, nil
}

// Filename is ESG_<Title>_<Company>_<date>.pdf with spaces as underscores.
func Filename(kind domain.ReportKind, company string, at time.Time) string {
	name := strings.Join(strings.Fields(company), "_")
	if name == "" {
		name = "Company"
	}
	title := strings.ReplaceAll(titles[kind], " ", "_")
	return fmt.Sprintf("ESG_%s_%s_%s.pdf", title, name, at.Format("2006-01-02"))
}

// Render produces the PDF bytes for one report kind.
func Render(kind domain.ReportKind, in Input) ([]byte, error) {
	if _, ok := titles[kind]; !ok {
		return nil, fmt.Errorf("%w: unknown report kind %q", domain.ErrValidation, kind)
	}
	if in.GeneratedAt.IsZero() {
		in.GeneratedAt = time.Now()
	}

	d := newDoc(kind == domain.ReportComplete)
	res := in.Assessment.Result()
	recs := scoring.Recommend(res.Total)

	switch kind {
	case domain.ReportExecutiveSummary:
		d.executiveSummary(in, res, recs)
	case domain.ReportPerformanceMetrics:
		d.performanceMetrics(in)
	case domain.ReportRiskAssessment:
		d.riskAssessment(in, res)
	case domain.ReportActionPlan:
		d.actionPlan(in, recs)
	case domain.ReportComplete:
		d.complete(in, res, recs)
	}

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}
	return buf.Bytes(), nil
}

type doc struct {
	pdf   *fpdf.Fpdf
	width float64
}

func newDoc(numbered bool) *doc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")
	w, _ := pdf.GetPageSize()
	d := &doc{pdf: pdf, width: w}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(grey.r, grey.g, grey.b)
		label := "ESG Governance Tracker - Confidential Report"
		if numbered {
			label = "ESG Governance Tracker - Confidential"
		}
		pdf.CellFormat(0, 6, label, "", 0, "C", false, 0, "")
		pdf.SetX(-40)
		pdf.CellFormat(26, 6, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	return d
}

func (d *doc) banner(c rgb, title, subtitle string) {
	p := d.pdf
	p.AddPage()
	p.SetFillColor(c.r, c.g, c.b)
	p.Rect(0, 0, d.width, 40, "F")
	p.SetTextColor(255, 255, 255)
	p.SetFont("Helvetica", "B", 24)
	p.SetXY(0, 12)
	p.CellFormat(d.width, 10, title, "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "", 12)
	p.SetX(0)
	p.CellFormat(d.width, 8, subtitle, "", 1, "C", false, 0, "")
	p.SetTextColor(0, 0, 0)
	p.SetY(50)
}

func (d *doc) heading(text string, c rgb, size float64) {
	p := d.pdf
	p.Ln(4)
	p.SetFont("Helvetica", "B", size)
	p.SetTextColor(c.r, c.g, c.b)
	p.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
	p.SetTextColor(0, 0, 0)
	p.SetFont("Helvetica", "", 11)
}

func (d *doc) paragraph(text string) {
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.MultiCell(0, 6, text, "", "L", false)
}

func (d *doc) numbered(items []string) {
	for i, it := range items {
		d.paragraph(fmt.Sprintf("%d. %s", i+1, it))
		d.pdf.Ln(1)
	}
}

func (d *doc) table(head []string, widths []float64, rows [][]string, c rgb) {
	p := d.pdf
	p.SetFont("Helvetica", "B", 11)
	p.SetFillColor(c.r, c.g, c.b)
	p.SetTextColor(255, 255, 255)
	for i, h := range head {
		p.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	p.Ln(-1)
	p.SetFont("Helvetica", "", 10)
	p.SetTextColor(0, 0, 0)
	for _, row := range rows {
		for i, cell := range row {
			align := "C"
			if i == 0 {
				align = "L"
			}
			p.CellFormat(widths[i], 7, cell, "1", 0, align, false, 0, "")
		}
		p.Ln(-1)
	}
}

func pct(v int) string { return fmt.Sprintf("%d%%", v) }

func companyLine(in Input) string {
	name := in.Company.Name
	if name == "" {
		name = "Company"
	}
	return fmt.Sprintf("%s - %s", name, in.GeneratedAt.Format("2006-01-02"))
}

func (d *doc) executiveSummary(in Input, res domain.DimensionResult, recs []string) {
	d.banner(blue, "ESG Executive Summary", "Generated: "+in.GeneratedAt.Format("2006-01-02"))

	d.heading("Company Information", rgb{}, 16)
	d.paragraph("Company: " + orNA(in.Company.Name))
	d.paragraph("Email: " + orNA(in.Company.Email))
	d.paragraph("Report Date: " + in.GeneratedAt.Format("2006-01-02"))

	d.heading("ESG Performance Scores", rgb{}, 16)
	rows := make([][]string, 0, 4)
	for _, dim := range domain.Dimensions {
		rows = append(rows, []string{fmt.Sprintf("%s (%s)", dim.Label(), dim), pct(res.For(dim)), Status(res.For(dim))})
	}
	rows = append(rows, []string{"Overall ESG Score", pct(res.Total), Status(res.Total)})
	d.table([]string{"Dimension", "Score", "Status"}, []float64{82, 50, 50}, rows, blue)

	d.heading("Performance Analysis", rgb{}, 16)
	d.paragraph(Analysis(res.Total))

	d.heading("Strategic Recommendations", rgb{}, 16)
	d.numbered(recs)
}

func (d *doc) performanceMetrics(in Input) {
	d.banner(green, "Performance Metrics Report", companyLine(in))
	d.heading("Detailed ESG Metrics", rgb{}, 16)

	metrics := Metrics(in.Assessment.ScoresData, in.Catalog)
	for _, dim := range domain.Dimensions {
		d.heading(dim.Label()+" Performance", dimensionColor[dim], 14)
		var rows [][]string
		for _, m := range metrics {
			if m.Criterion.Dimension != dim {
				continue
			}
			score := "not rated"
			if m.Rated {
				score = m.Score.Round(1).String() + "%"
			}
			rows = append(rows, []string{m.Criterion.Name, score, Percent(m.Share), m.Contribution.Round(1).String() + " pts"})
		}
		rows = append(rows, []string{dim.Label() + " total", pct(in.Assessment.Result().For(dim)), "100%", ""})
		d.table([]string{"Metric", "Score", "Weight", "Contribution"}, []float64{72, 36, 36, 38}, rows, dimensionColor[dim])
	}
}

func (d *doc) riskAssessment(in Input, res domain.DimensionResult) {
	d.banner(orange, "ESG Risk Assessment", companyLine(in))
	d.heading("Risk Level Analysis", rgb{}, 16)

	risks := Risks(res)
	rows := make([][]string, 0, len(risks))
	for _, r := range risks {
		rows = append(rows, []string{r.Dimension.Label(), pct(r.Score), r.Level, r.Priority})
	}
	d.table([]string{"Category", "Score", "Risk Level", "Priority"}, []float64{52, 36, 48, 46}, rows, orange)

	d.heading("Mitigation Strategies", rgb{}, 16)
	lines := make([]string, 0, len(risks))
	for _, r := range risks {
		lines = append(lines, fmt.Sprintf("%s: %s", r.Dimension.Label(), r.Mitigation))
	}
	d.numbered(lines)
}

func (d *doc) actionPlan(in Input, recs []string) {
	d.banner(purple, "ESG Action Plan", companyLine(in))
	d.heading("Priority Action Items", rgb{}, 16)

	items := ActionItems()
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{a.Action, a.Timeline, a.Priority, a.Owner})
	}
	d.table([]string{"Action Item", "Timeline", "Priority", "Owner"}, []float64{80, 30, 24, 48}, rows, purple)

	d.heading("Strategic Recommendations", rgb{}, 16)
	d.numbered(recs)
}

func (d *doc) complete(in Input, res domain.DimensionResult, recs []string) {
	p := d.pdf
	h := 297.0

	p.AddPage()
	p.SetFillColor(blue.r, blue.g, blue.b)
	p.Rect(0, 0, d.width, h, "F")
	p.SetTextColor(255, 255, 255)
	p.SetFont("Helvetica", "B", 36)
	p.SetXY(0, 70)
	p.CellFormat(d.width, 16, "ESG REPORT", "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "", 16)
	p.SetX(0)
	p.CellFormat(d.width, 12, "Environmental, Social & Governance", "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "B", 20)
	p.SetXY(0, 132)
	p.CellFormat(d.width, 12, orDefault(in.Company.Name, "Company Name"), "", 1, "C", false, 0, "")
	p.SetFont("Helvetica", "", 12)
	p.SetX(0)
	p.CellFormat(d.width, 10, "Generated: "+in.GeneratedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	p.SetTextColor(0, 0, 0)

	p.AddPage()
	d.heading("ESG PERFORMANCE SUMMARY", blue, 20)
	p.SetFillColor(239, 246, 255)
	y := p.GetY() + 2
	p.RoundedRect(14, y, d.width-28, 36, 3, "1234", "F")
	p.SetXY(14, y+6)
	p.SetFont("Helvetica", "B", 14)
	p.CellFormat(d.width-28, 8, "OVERALL ESG SCORE", "", 1, "C", false, 0, "")
	p.SetX(14)
	p.SetFont("Helvetica", "B", 28)
	p.CellFormat(d.width-28, 14, pct(res.Total), "", 1, "C", false, 0, "")
	p.SetY(y + 40)

	d.heading("Score Breakdown", rgb{}, 14)
	rows := make([][]string, 0, 3)
	for _, dim := range domain.Dimensions {
		s := res.For(dim)
		rows = append(rows, []string{fmt.Sprintf("%s (%s)", dim.Label(), dim), pct(s), Status(s), Rating(s)})
	}
	d.table([]string{"Category", "Score", "Status", "Rating"}, []float64{60, 36, 50, 36}, rows, blue)

	d.heading("Performance Analysis", rgb{}, 14)
	d.paragraph(Analysis(res.Total))

	for _, dim := range domain.Dimensions {
		det := Detail(dim, res.For(dim))
		p.AddPage()
		d.heading(fmt.Sprintf("%s (%s)", strings.ToUpper(dim.Label()), dim), dimensionColor[dim], 20)
		p.SetFont("Helvetica", "B", 14)
		p.CellFormat(0, 8, "Score: "+pct(det.Score), "", 1, "L", false, 0, "")
		d.paragraph(det.Description)
		d.heading("Key Areas Assessed", rgb{}, 12)
		for _, a := range det.KeyAreas {
			d.paragraph("- " + a)
		}
		d.heading("Current Status: "+Status(det.Score), rgb{}, 12)
		d.heading("Recommendations", rgb{}, 12)
		for _, r := range det.Recommendations {
			d.paragraph("- " + r)
		}
	}

	p.AddPage()
	d.heading("STRATEGIC RECOMMENDATIONS", blue, 20)
	d.numbered(recs)
}

func orNA(s string) string { return orDefault(s, "N/A") }

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
