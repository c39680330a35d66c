package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/liftlog/internal/metrics"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/progression"
)

var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	MutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	bandColors = map[metrics.Band]lipgloss.Color{
		metrics.BandLight:    lipgloss.Color("42"),
		metrics.BandModerate: lipgloss.Color("220"),
		metrics.BandHard:     lipgloss.Color("208"),
		metrics.BandMax:      lipgloss.Color("196"),
	}
	trendColors = map[progression.Trend]lipgloss.Color{
		progression.Improved:  lipgloss.Color("42"),
		progression.Regressed: lipgloss.Color("196"),
		progression.Unchanged: lipgloss.Color("241"),
	}
)

// FormatWeight renders kg without trailing zeros.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64) + "kg"
}

// FormatRPE renders an RPE value in the color of its effort band.
func FormatRPE(rpe int) string {
	return lipgloss.NewStyle().Foreground(bandColors[metrics.BandFor(rpe)]).Render(fmt.Sprintf("RPE %d", rpe))
}

// FormatLoad renders "60kg 4x8".
func FormatLoad(weight float64, sets, reps int) string {
	return fmt.Sprintf("%s %dx%d", FormatWeight(weight), sets, reps)
}

// FormatSigned renders a delta with an explicit sign, colored by trend.
func FormatSigned(v float64, unit string, trend progression.Trend) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v > 0 {
		s = "+" + s
	}
	return lipgloss.NewStyle().Foreground(trendColors[trend]).Render(s + unit)
}

// RecordTable renders records as a table with ids for later deletion.
func RecordTable(recs []models.ExerciseRecord, showIDs bool) string {
	headers := []string{"Date", "Exercise", "Load", "RPE", "Workout"}
	if showIDs {
		headers = append([]string{"ID"}, headers...)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(MutedStyle).
		Headers(headers...)
	for _, r := range recs {
		row := []string{r.Date, r.Name, FormatLoad(r.Weight, r.Sets, r.Reps), FormatRPE(r.RPE), r.WorkoutName}
		if showIDs {
			row = append([]string{shortID(r.ID)}, row...)
		}
		t.Row(row...)
	}
	return t.Render()
}

// minIDPrefix is the length of the ids shown in tables; shorter input must
// match an id exactly.
const minIDPrefix = 8

// shortID keeps ids readable; commands accept the shown prefix.
func shortID(id string) string {
	if len(id) > minIDPrefix {
		return id[:minIDPrefix]
	}
	return id
}

// ResolveID expands a unique id prefix of at least minIDPrefix characters
// against ids. Input that matches nothing comes back unchanged.
func ResolveID(prefix string, ids []string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("id must not be empty")
	}
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
	}
	if len(prefix) < minIDPrefix {
		return prefix, nil
	}
	var match string
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = id
		}
	}
	if match == "" {
		return prefix, nil
	}
	return match, nil
}
