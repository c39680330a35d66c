package logs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/utils"
	"github.com/julianstephens/liftlog/internal/validation"
)

type LogAddCmd struct {
	Name     string  `arg:"" help:"Exercise name."`
	Weight   float64 `help:"Load in kilograms." default:"0"`
	Sets     int     `help:"Number of sets." required:""`
	Reps     int     `help:"Repetitions per set." required:""`
	RPE      int     `help:"Rate of perceived exertion (1-10)." required:"" name:"rpe"`
	Duration int     `help:"Session duration in minutes (default 45)."`
	Cardio   int     `help:"Cardio time in minutes (default 10)."`
	Calories int     `help:"Calories burned (default 300)."`
	Workout  string  `help:"Workout name used to group history."`
	Date     string  `help:"Back-date the entry (YYYY-MM-DD, today or earlier; default today)."`
}

func (c *LogAddCmd) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("exercise name must not be empty")
	}
	if !validation.ValidWeight(c.Weight) {
		return fmt.Errorf("weight must be a non-negative number, got %v", c.Weight)
	}
	if c.Sets <= 0 || c.Reps <= 0 {
		return fmt.Errorf("sets and reps must be positive")
	}
	if !validation.ValidRPE(c.RPE) {
		return fmt.Errorf("rpe must be between 1 and 10, got %d", c.RPE)
	}
	if c.Date != "" && !utils.ValidateDateFormat(c.Date) {
		return fmt.Errorf("invalid date format %q, expected YYYY-MM-DD", c.Date)
	}
	return nil
}

func (c *LogAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.AcquireWriteLock(); err != nil {
		return err
	}
	now, err := ctx.Now()
	if err != nil {
		return err
	}

	// The form parser owns defaults for the optional fields
	rec, ok := validation.ParseExerciseForm(validation.ExerciseForm{
		Name:        c.Name,
		Weight:      formatFloat(c.Weight),
		Sets:        fmt.Sprint(c.Sets),
		Reps:        fmt.Sprint(c.Reps),
		RPE:         fmt.Sprint(c.RPE),
		WorkoutName: c.Workout,
		Duration:    formatOptional(c.Duration),
		CardioTime:  formatOptional(c.Cardio),
		Calories:    formatOptional(c.Calories),
	}, now)
	if !ok {
		return fmt.Errorf("invalid exercise values")
	}
	if c.Date != "" {
		// ISO dates order as strings
		if c.Date > rec.Date {
			return fmt.Errorf("cannot log exercises for %s, today is %s", c.Date, rec.Date)
		}
		rec.Date = c.Date
	}

	recs, err := ctx.Records()
	if err != nil {
		return err
	}
	rec, err = recs.Add(rec)
	if err != nil {
		return fmt.Errorf("failed to save exercise: %w", err)
	}

	ctx.Printf("Logged %s: %s %s on %s (id %s)\n", rec.Name, cli.FormatLoad(rec.Weight, rec.Sets, rec.Reps), cli.FormatRPE(rec.RPE), rec.Date, rec.ID)
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v int) string {
	if v <= 0 {
		return ""
	}
	return fmt.Sprint(v)
}

// DateFlag resolves an optional YYYY-MM-DD flag against today.
func DateFlag(ctx *cli.Context, date string) (string, error) {
	if date == "" {
		now, err := ctx.Now()
		if err != nil {
			return "", err
		}
		return utils.DateString(now), nil
	}
	if !utils.ValidateDateFormat(date) {
		return "", fmt.Errorf("invalid date format %q, expected YYYY-MM-DD", date)
	}
	return date, nil
}

