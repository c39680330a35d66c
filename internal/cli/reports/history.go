package reports

import (
	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/metrics"
)

type HistoryCmd struct {
	Limit int `help:"Number of workouts to show (0 for all)." default:"5"`
}

func (c *HistoryCmd) Validate() error {
	if c.Limit < 0 {
		c.Limit = constants.DefaultHistoryLimit
	}
	return nil
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	recs, err := ctx.Records()
	if err != nil {
		return err
	}

	workouts := metrics.History(recs.All(), c.Limit)
	if len(workouts) == 0 {
		ctx.Println("No workouts logged yet.")
		return nil
	}

	for i, w := range workouts {
		if i > 0 {
			ctx.Println()
		}
		ctx.Println(cli.HeaderStyle.Render(w.Date + "  " + w.Name))
		ctx.Printf("%d min, %d kcal, volume %s\n", w.Duration, w.Calories, cli.FormatWeight(w.Volume()))
		for _, r := range w.Records {
			ctx.Printf("  - %s %s %s\n", r.Name, cli.FormatLoad(r.Weight, r.Sets, r.Reps), cli.FormatRPE(r.RPE))
		}
	}
	return nil
}
