package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting the existing data store before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			// Close first so the file handle doesn't outlive the delete
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing data store: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing data store: %w", err)
			}
			ctx.Reload()
			ctx.Printf("Deleted existing data store at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing data store: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// Seed empty collections so a fresh store validates cleanly
	for _, key := range []string{constants.ExercisesKey, constants.WorkoutPlanKey} {
		existing, err := ctx.Store.Get(key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := storage.WriteJSON(ctx.Store, key, []struct{}{}); err != nil {
			return err
		}
	}

	ctx.Printf("Initialized liftlog storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
