package plans

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/validation"
	"github.com/julianstephens/liftlog/internal/weekplan"
)

func parseDay(raw string) (string, error) {
	day, ok := models.ParseWeekday(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", weekplan.ErrUnknownDay, raw)
	}
	return day, nil
}

type PlanShowCmd struct {
	Day string `arg:"" optional:"" help:"Only show this weekday."`
}

func (c *PlanShowCmd) Run(ctx *cli.Context) error {
	store, err := ctx.Plan()
	if err != nil {
		return err
	}

	days := constants.WeekdayNames[:]
	if c.Day != "" {
		day, err := parseDay(c.Day)
		if err != nil {
			return err
		}
		days = []string{day}
	}

	ctx.Println(cli.HeaderStyle.Render("Weekly plan"))
	for _, day := range days {
		slot, ok := store.Slot(day)
		if !ok {
			ctx.Printf("%-9s  %s\n", day, cli.MutedStyle.Render("rest"))
			continue
		}
		ctx.Printf("%-9s  %s (~%d min, %d/%d exercises)\n", day, slot.MuscleGroup, slot.EstimatedDuration, len(slot.Exercises), constants.MaxExercisesPerSlot)
		for _, ex := range slot.Exercises {
			ctx.Printf("           - %s %s %s [%s]\n", ex.Name, cli.FormatLoad(ex.Weight, ex.Sets, ex.Reps), cli.FormatRPE(ex.RPE), ex.ID)
		}
	}
	return nil
}

type PlanSetCmd struct {
	Day         string `arg:"" help:"Weekday to plan."`
	MuscleGroup string `help:"Muscle group trained on this day." required:"" short:"m"`
	Duration    string `help:"Estimated duration in minutes (default 60)."`
}

func (c *PlanSetCmd) Validate() error {
	if strings.TrimSpace(c.MuscleGroup) == "" {
		return fmt.Errorf("muscle group must not be empty")
	}
	return nil
}

func (c *PlanSetCmd) Run(ctx *cli.Context) error {
	slot, ok := validation.ParseSlotForm(validation.SlotForm{
		Day:               c.Day,
		MuscleGroup:       c.MuscleGroup,
		EstimatedDuration: c.Duration,
	})
	if !ok {
		if _, err := parseDay(c.Day); err != nil {
			return err
		}
		return fmt.Errorf("invalid estimated duration %q", c.Duration)
	}

	if err := ctx.AcquireWriteLock(); err != nil {
		return err
	}
	store, err := ctx.Plan()
	if err != nil {
		return err
	}

	// Re-planning a day keeps its exercises
	if existing, ok := store.Slot(slot.Day); ok {
		slot.Exercises = existing.Exercises
	}
	if err := store.SetSlot(slot); err != nil {
		return err
	}
	ctx.Printf("Planned %s on %s (~%d min).\n", slot.MuscleGroup, slot.Day, slot.EstimatedDuration)
	return nil
}

type PlanRemoveCmd struct {
	Day string `arg:"" help:"Weekday to clear."`
}

func (c *PlanRemoveCmd) Run(ctx *cli.Context) error {
	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}
	if err := ctx.AcquireWriteLock(); err != nil {
		return err
	}
	store, err := ctx.Plan()
	if err != nil {
		return err
	}

	removed, err := store.RemoveSlot(day)
	if err != nil {
		return err
	}
	if !removed {
		ctx.Printf("%s is not planned.\n", day)
		return nil
	}
	ctx.Printf("Removed %s from the plan.\n", day)
	return nil
}

type PlanExerciseCmd struct {
	Add    PlanExerciseAddCmd    `cmd:"" help:"Add a planned exercise to a day."`
	Update PlanExerciseUpdateCmd `cmd:"" help:"Change a planned exercise."`
	Remove PlanExerciseRemoveCmd `cmd:"" help:"Remove a planned exercise."`
}

type PlanExerciseAddCmd struct {
	Day    string `arg:"" help:"Planned weekday."`
	Name   string `arg:"" help:"Exercise name."`
	Weight string `help:"Target load in kilograms."`
	Sets   string `help:"Target sets (default 1)."`
	Reps   string `help:"Target reps (default 1)."`
	RPE    string `help:"Target RPE (default 5)." name:"rpe"`
}

func (c *PlanExerciseAddCmd) Run(ctx *cli.Context) error {
	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}
	ex, ok := validation.ParsePlannedExerciseForm(validation.PlannedExerciseForm{
		Name:   c.Name,
		Weight: c.Weight,
		Sets:   c.Sets,
		Reps:   c.Reps,
		RPE:    c.RPE,
	}, models.NewPlannedExercise())
	if !ok {
		return fmt.Errorf("invalid planned exercise values")
	}

	if err := ctx.AcquireWriteLock(); err != nil {
		return err
	}
	store, err := ctx.Plan()
	if err != nil {
		return err
	}

	ex, added, err := store.AddExercise(day, ex)
	if errors.Is(err, weekplan.ErrSlotFull) {
		return fmt.Errorf("%s already has %d exercises: %w", day, constants.MaxExercisesPerSlot, err)
	}
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("%s is not planned; run 'liftlog plan set %s --muscle-group ...' first", day, day)
	}
	ctx.Printf("Added %s to %s (id %s).\n", ex.Name, day, ex.ID)
	return nil
}

type PlanExerciseUpdateCmd struct {
	Day    string `arg:"" help:"Planned weekday."`
	ID     string `arg:"" help:"Planned exercise id or its first 8 characters."`
	Name   string `help:"New exercise name."`
	Weight string `help:"New target load in kilograms."`
	Sets   string `help:"New target sets."`
	Reps   string `help:"New target reps."`
	RPE    string `help:"New target RPE." name:"rpe"`
}

func (c *PlanExerciseUpdateCmd) Run(ctx *cli.Context) error {
	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}
	if err := ctx.AcquireWriteLock(); err != nil {
		return err
	}
	store, err := ctx.Plan()
	if err != nil {
		return err
	}

	slot, ok := store.Slot(day)
	if !ok {
		ctx.Printf("%s is not planned.\n", day)
		return nil
	}
	base, found := findExercise(slot, c.ID)
	if !found {
		ctx.Printf("No planned exercise %s on %s.\n", c.ID, day)
		return nil
	}

	ex, ok := validation.ParsePlannedExerciseForm(validation.PlannedExerciseForm{
		Name:   c.Name,
		Weight: c.Weight,
		Sets:   c.Sets,
		Reps:   c.Reps,
		RPE:    c.RPE,
	}, base)
	if !ok {
		return fmt.Errorf("invalid planned exercise values")
	}
	if _, err := store.UpdateExercise(day, ex); err != nil {
		return err
	}
	ctx.Printf("Updated %s on %s: %s %s.\n", ex.Name, day, cli.FormatLoad(ex.Weight, ex.Sets, ex.Reps), cli.FormatRPE(ex.RPE))
	return nil
}

type PlanExerciseRemoveCmd struct {
	Day string `arg:"" help:"Planned weekday."`
	ID  string `arg:"" help:"Planned exercise id or its first 8 characters."`
}

func (c *PlanExerciseRemoveCmd) Run(ctx *cli.Context) error {
	day, err := parseDay(c.Day)
	if err != nil {
		return err
	}
	if err := ctx.AcquireWriteLock(); err != nil {
		return err
	}
	store, err := ctx.Plan()
	if err != nil {
		return err
	}

	slot, _ := store.Slot(day)
	ex, found := findExercise(slot, c.ID)
	if !found {
		ctx.Printf("No planned exercise %s on %s.\n", c.ID, day)
		return nil
	}
	if _, err := store.RemoveExercise(day, ex.ID); err != nil {
		return err
	}
	ctx.Printf("Removed %s from %s.\n", ex.Name, day)
	return nil
}

func findExercise(slot models.WorkoutDaySlot, prefix string) (models.PlannedExercise, bool) {
	ids := make([]string, len(slot.Exercises))
	for i, ex := range slot.Exercises {
		ids[i] = ex.ID
	}
	id, err := cli.ResolveID(prefix, ids)
	if err != nil {
		return models.PlannedExercise{}, false
	}
	for _, ex := range slot.Exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.PlannedExercise{}, false
}
