package reports

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/metrics"
)

type StatsCmd struct {
	JSON bool `help:"Print metrics as JSON." name:"json"`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	now, err := ctx.Now()
	if err != nil {
		return err
	}
	recs, err := ctx.Records()
	if err != nil {
		return err
	}

	all := recs.All()
	m := metrics.ComputeMetrics(all, now)

	if c.JSON {
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode metrics: %w", err)
		}
		ctx.Println(string(data))
		return nil
	}

	from, to := metrics.Window(now)
	ctx.Println(cli.HeaderStyle.Render(fmt.Sprintf("Last 7 days (%s to %s)", from, to)))
	ctx.Printf("  Active days:       %d\n", m.ActiveDays)
	ctx.Printf("  Avg session:       %d min\n", m.AvgSessionDuration)
	ctx.Printf("  Cardio time:       %d min\n", m.TotalCardioTime)
	ctx.Printf("  Calories burned:   %d\n", m.TotalCalories)
	ctx.Println()
	ctx.Println(cli.HeaderStyle.Render("All time"))
	ctx.Printf("  Total volume:      %s\n", cli.FormatWeight(m.TotalVolume))
	ctx.Printf("  Total sets:        %d\n", m.TotalSets)
	ctx.Printf("  Average RPE:       %.1f\n", m.AvgRPE)
	ctx.Printf("  Logged today:      %d\n", metrics.TodayCount(all, now))
	ctx.Println()

	dist := metrics.RPEDistribution(all)
	ctx.Println(cli.HeaderStyle.Render("Effort"))
	for _, b := range metrics.Bands {
		share := dist.Share(b)
		ctx.Printf("  %-9s %3d  %s %.0f%%\n", b, dist[b], strings.Repeat("█", int(share*20)), share*100)
	}
	return nil
}
