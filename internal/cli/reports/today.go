package reports

import (
	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/metrics"
	"github.com/julianstephens/liftlog/internal/today"
)

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	now, err := ctx.Now()
	if err != nil {
		return err
	}
	recs, err := ctx.Records()
	if err != nil {
		return err
	}
	plan, err := ctx.Plan()
	if err != nil {
		return err
	}

	all := recs.All()
	day := today.ResolveDay(now)
	slot, planned := today.PlannedSlot(plan.Plan(), now)

	title := day + ": free training day"
	if planned {
		title = day + ": " + slot.MuscleGroup
	}
	ctx.Println(cli.HeaderStyle.Render(title))

	display := today.DisplayExercises(plan.Plan(), all, now)
	if len(display) == 0 {
		ctx.Println(cli.MutedStyle.Render("Nothing planned or logged today."))
		return nil
	}

	done := metrics.TodayCount(all, now)
	if done > 0 {
		ctx.Printf("%d exercise(s) logged today\n", done)
	} else {
		ctx.Printf("Planned ~%d min. Start a session with 'liftlog tui'.\n", slot.EstimatedDuration)
	}
	ctx.Println(cli.RecordTable(display, false))
	return nil
}
