package reports

import (
	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/progression"
)

type ProgressCmd struct {
	Name string `arg:"" optional:"" help:"Exercise to compare (default: every exercise)."`
}

func (c *ProgressCmd) Run(ctx *cli.Context) error {
	recs, err := ctx.Records()
	if err != nil {
		return err
	}
	all := recs.All()

	names := []string{c.Name}
	if c.Name == "" {
		names = progression.ExerciseNames(all)
	}
	if len(names) == 0 {
		ctx.Println("No exercises logged yet.")
		return nil
	}

	for _, name := range names {
		d, ok := progression.CompareLatestTwo(all, name)
		if !ok {
			ctx.Printf("%s: %s\n", name, cli.MutedStyle.Render("not enough sessions to compare"))
			continue
		}
		ctx.Printf("%s (%s → %s): weight %s, sets %s, reps %s, rpe %s, volume %s\n",
			d.Name, d.Previous.Date, d.Latest.Date,
			cli.FormatSigned(d.Weight, "kg", d.WeightTrend()),
			cli.FormatSigned(float64(d.Sets), "", d.SetsTrend()),
			cli.FormatSigned(float64(d.Reps), "", d.RepsTrend()),
			cli.FormatSigned(float64(d.RPE), "", d.RPETrend()),
			cli.FormatSigned(d.VolumeDelta(), "kg", volumeTrend(d.VolumeDelta())),
		)
	}
	return nil
}

func volumeTrend(v float64) progression.Trend {
	switch {
	case v > 0:
		return progression.Improved
	case v < 0:
		return progression.Regressed
	default:
		return progression.Unchanged
	}
}
