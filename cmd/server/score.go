package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"esgtracker/internal/criteria"
	"esgtracker/internal/domain"
	"esgtracker/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score INDEX=RATING...",
	Short: "Score ratings offline and print recommendations",
	Example: `  esgtracker score 0=8 1=6 2=7 3=9 4=5 5=10
  esgtracker score --criteria ./criteria.yaml 0=4 2=9`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := parseRatings(args)
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("criteria")
		var catalog *criteria.Catalog
		if path != "" {
			catalog, err = criteria.Load(path)
		} else {
			catalog, err = criteria.Default()
		}
		if err != nil {
			return fmt.Errorf("load criteria: %w", err)
		}
		printScore(cmd.OutOrStdout(), catalog, raw)
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("criteria", "", "criteria catalog file (default built-in)")
}

func parseRatings(args []string) (domain.RawScores, error) {
	raw := make(domain.RawScores, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected INDEX=RATING, got %q", arg)
		}
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("bad criterion index %q", k)
		}
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("bad rating %q", v)
		}
		raw[idx] = rating
	}
	return raw, nil
}

type scoreStyles struct {
	header lipgloss.Style
	label  lipgloss.Style
	tiers  map[scoring.Tier]lipgloss.Style
	dim    lipgloss.Style
}

func newScoreStyles() scoreStyles {
	return scoreStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:  lipgloss.NewStyle().Width(16),
		tiers: map[scoring.Tier]lipgloss.Style{
			scoring.TierExcellent:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			scoring.TierGood:             lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			scoring.TierModerate:         lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			scoring.TierNeedsImprovement: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		},
		dim: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func printScore(w io.Writer, catalog *criteria.Catalog, raw domain.RawScores) {
	st := newScoreStyles()
	res := scoring.Aggregate(raw, catalog)

	fmt.Fprintln(w, st.header.Render("Ratings"))
	for _, c := range catalog.All() {
		value := st.dim.Render("not rated")
		if r, ok := raw[c.Index]; ok && scoring.Rated(r) {
			value = strconv.FormatFloat(r, 'f', -1, 64)
		}
		fmt.Fprintf(w, "  %d %s %s %s\n", c.Index, c.Dimension, st.label.Render(c.Name), value)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.header.Render("Scores"))
	rows := []struct {
		name  string
		value int
	}{
		{"Environmental", res.E},
		{"Social", res.S},
		{"Governance", res.G},
		{"Total", res.Total},
	}
	for _, r := range rows {
		style := st.tiers[scoring.TierFor(r.value)]
		fmt.Fprintf(w, "  %s %s\n", st.label.Render(r.name), style.Render(fmt.Sprintf("%3d%%", r.value)))
	}

	tier := scoring.TierFor(res.Total)
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.header.Render("Recommendations")+" "+st.tiers[tier].Render("("+tier.String()+")"))
	for _, msg := range scoring.Recommend(res.Total) {
		fmt.Fprintf(w, "  - %s\n", msg)
	}
}
