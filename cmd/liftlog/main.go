package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/cli/backups"
	"github.com/julianstephens/liftlog/internal/cli/logs"
	"github.com/julianstephens/liftlog/internal/cli/plans"
	"github.com/julianstephens/liftlog/internal/cli/reports"
	"github.com/julianstephens/liftlog/internal/cli/system"
	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/errors"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Data store path. A .json extension selects the JSON backend, anything else SQLite." type:"string" default:"${default_config}" env:"LIFTLOG_CONFIG"`
	Debug    bool   `help:"Log debug output to stderr." env:"LIFTLOG_DEBUG"`
	Timezone string `help:"IANA timezone used to decide today's date." default:"Local" env:"LIFTLOG_TIMEZONE"`

	Init   system.InitCmd   `cmd:"" help:"Initialize liftlog storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Today  reports.TodayCmd `cmd:"" help:"Show today's planned or logged exercises."`
	Log    struct {
		Add    logs.LogAddCmd    `cmd:"" help:"Log a completed exercise."`
		List   logs.LogListCmd   `cmd:"" help:"List logged exercises." default:"1"`
		Delete logs.LogDeleteCmd `cmd:"" help:"Delete a logged exercise."`
	} `cmd:"" help:"Manage logged exercises."`
	Plan struct {
		Show     plans.PlanShowCmd     `cmd:"" help:"Show the weekly plan." default:"1"`
		Set      plans.PlanSetCmd      `cmd:"" help:"Plan a workout for a weekday."`
		Remove   plans.PlanRemoveCmd   `cmd:"" help:"Clear a weekday from the plan."`
		Exercise plans.PlanExerciseCmd `cmd:"" help:"Manage a weekday's planned exercises."`
	} `cmd:"" help:"Manage the weekly workout plan."`
	Stats    reports.StatsCmd    `cmd:"" help:"Show training metrics."`
	History  reports.HistoryCmd  `cmd:"" help:"Show recent workouts."`
	Progress reports.ProgressCmd `cmd:"" help:"Compare the latest two sessions of an exercise."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage data backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Workout logger and weekly training planner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Configuration(kong.JSON, constants.DefaultConfigFile),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	configPath, err := storage.ExpandPath(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
		StorePath: configPath,
		Command:   ctx.Command(),
	}); err != nil {
		// Logging is best effort; commands still run without a log file
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	if !utils.ValidateTimezone(CLI.Timezone) {
		errors.Fatalf("invalid timezone %q", CLI.Timezone)
	}

	store := storage.NewProvider(configPath)
	appCtx := &cli.Context{
		Store:    store,
		Timezone: CLI.Timezone,
	}

	// Load the store before running the command (Init command will handle its own loading)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	err = ctx.Run(appCtx)
	if cerr := appCtx.Close(); cerr != nil {
		logger.Warn("Failed to close data store", "error", cerr)
	}
	if err != nil {
		errors.Fatal(err)
	}
}
