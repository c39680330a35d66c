package logs

import (
	"github.com/julianstephens/liftlog/internal/cli"
)

type LogListCmd struct {
	Date string `help:"Only show records from this date (YYYY-MM-DD)."`
	All  bool   `help:"Show every record instead of a single day."`
}

func (c *LogListCmd) Run(ctx *cli.Context) error {
	recs, err := ctx.Records()
	if err != nil {
		return err
	}

	list := recs.All()
	label := "all dates"
	if !c.All {
		date, err := DateFlag(ctx, c.Date)
		if err != nil {
			return err
		}
		list = recs.OnDate(date)
		label = date
	}

	if len(list) == 0 {
		ctx.Printf("No exercises logged for %s.\n", label)
		return nil
	}

	ctx.Println(cli.HeaderStyle.Render("Exercises for " + label))
	ctx.Println(cli.RecordTable(list, true))
	return nil
}
