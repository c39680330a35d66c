package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/metrics"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/progression"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(18)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	trendStyles = map[progression.Trend]lipgloss.Style{
		progression.Improved:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		progression.Regressed: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		progression.Unchanged: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
)

// Model is a scrollable summary of the exercise log.
type Model struct {
	viewport viewport.Model
	records  []models.ExerciseRecord
	now      time.Time
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetRecords recomputes every figure as of now.
func (m *Model) SetRecords(records []models.ExerciseRecord, now time.Time) {
	m.records = records
	m.now = now
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Content(m.records, m.now))
}

// Content renders metrics, effort, history and progression for records.
func Content(records []models.ExerciseRecord, now time.Time) string {
	var b strings.Builder
	met := metrics.ComputeMetrics(records, now)

	b.WriteString(headerStyle.Render("Last 7 days"))
	b.WriteString("\n")
	line(&b, "Active days", strconv.Itoa(met.ActiveDays))
	line(&b, "Avg session", fmt.Sprintf("%d min", met.AvgSessionDuration))
	line(&b, "Cardio", fmt.Sprintf("%d min", met.TotalCardioTime))
	line(&b, "Calories", strconv.Itoa(met.TotalCalories))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("All time"))
	b.WriteString("\n")
	line(&b, "Volume", strconv.FormatFloat(met.TotalVolume, 'f', -1, 64)+"kg")
	line(&b, "Sets", strconv.Itoa(met.TotalSets))
	line(&b, "Avg RPE", strconv.FormatFloat(met.AvgRPE, 'f', 1, 64))
	line(&b, "Today", strconv.Itoa(metrics.TodayCount(records, now)))
	b.WriteString("\n")

	dist := metrics.RPEDistribution(records)
	b.WriteString(headerStyle.Render("Effort"))
	b.WriteString("\n")
	for _, band := range metrics.Bands {
		share := dist.Share(band)
		line(&b, band.String(), fmt.Sprintf("%3d %s", dist[band], barStyle.Render(strings.Repeat("█", int(share*20)))))
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Recent workouts"))
	b.WriteString("\n")
	workouts := metrics.History(records, constants.DefaultHistoryLimit)
	if len(workouts) == 0 {
		b.WriteString("  none yet\n")
	}
	for _, w := range workouts {
		fmt.Fprintf(&b, "  %s  %s  %d exercises, %d min, %d kcal\n", w.Date, w.Name, len(w.Records), w.Duration, w.Calories)
	}
	b.WriteString("\n")

	b.WriteString(headerStyle.Render("Progression"))
	b.WriteString("\n")
	compared := 0
	for _, name := range progression.ExerciseNames(records) {
		d, ok := progression.CompareLatestTwo(records, name)
		if !ok {
			continue
		}
		compared++
		fmt.Fprintf(&b, "  %s  %s  %s  %s\n", d.Name,
			signed(d.Weight, "kg", d.WeightTrend()),
			signed(float64(d.Reps), " reps", d.RepsTrend()),
			signed(float64(d.RPE), " rpe", d.RPETrend()),
		)
	}
	if compared == 0 {
		b.WriteString("  log an exercise twice to compare\n")
	}
	return b.String()
}

func line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s%s\n", labelStyle.Render(label), value)
}

func signed(v float64, unit string, trend progression.Trend) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v > 0 {
		s = "+" + s
	}
	return trendStyles[trend].Render(s + unit)
}
