package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/liftlog/internal/backup"
	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/lock"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/internal/utils"
	"github.com/julianstephens/liftlog/internal/validation"
)

type DoctorCmd struct{}

type check struct {
	name      string
	needStore bool
	warnOnly  bool
	run       func(ctx *cli.Context) error
}

var checks = []check{
	{name: "Schema version", needStore: true, run: checkSchemaVersion},
	{name: "Exercise records", needStore: true, run: checkRecordsParse},
	{name: "Workout plan", needStore: true, run: checkPlanParse},
	{name: "Data validation", needStore: true, run: checkValidation},
	{name: "Write lock", run: checkLock, warnOnly: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	reachable := false

	if err := checkStoreReachable(ctx); err != nil {
		ctx.Printf("❌ Storage reachable: FAIL\n")
		ctx.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		ctx.Printf("✓ Storage reachable: OK\n")
		reachable = true
	}

	for _, c := range checks {
		if c.needStore && !reachable {
			ctx.Printf("⊘ %s: SKIPPED (storage not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warnOnly:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	ctx.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*storage.SQLiteStore)
	if !ok {
		// JSON store doesn't have schema version
		return nil
	}
	current, latest, err := sqliteStore.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", current, latest)
	}
	return nil
}

func checkRecordsParse(ctx *cli.Context) error {
	var recs []models.ExerciseRecord
	_, err := storage.ReadJSON(ctx.Store, constants.ExercisesKey, &recs)
	return err
}

func checkPlanParse(ctx *cli.Context) error {
	var plan models.WeeklyPlan
	_, err := storage.ReadJSON(ctx.Store, constants.WorkoutPlanKey, &plan)
	return err
}

func checkValidation(ctx *cli.Context) error {
	var recs []models.ExerciseRecord
	if _, err := storage.ReadJSON(ctx.Store, constants.ExercisesKey, &recs); err != nil {
		return err
	}
	var plan models.WeeklyPlan
	if _, err := storage.ReadJSON(ctx.Store, constants.WorkoutPlanKey, &plan); err != nil {
		return err
	}

	v := validation.New()
	result := v.ValidateRecords(recs)
	result.Merge(v.ValidatePlan(plan))
	if result.HasConflicts() {
		return fmt.Errorf("found %d conflict(s):\n%s", len(result.Conflicts), result.FormatReport())
	}
	return nil
}

func checkLock(ctx *cli.Context) error {
	holder, held := lock.Held(ctx.LockPath())
	if !held {
		return nil
	}
	return fmt.Errorf("lock held by pid %d (%s) since %s", holder.PID, holder.Executable, holder.AcquiredAt.Format(time.RFC3339))
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s", mgr.GetBackupDir())
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now, err := ctx.Now()
	if err != nil {
		return err
	}
	if now.Year() < 2000 {
		return fmt.Errorf("system clock appears incorrect: %s", now.Format(time.RFC3339))
	}
	if !utils.ValidateDateFormat(utils.DateString(now)) {
		return fmt.Errorf("failed to format today's date")
	}
	return nil
}
