package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/liftlog/internal/backup"
	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/lock"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/records"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/internal/utils"
	"github.com/julianstephens/liftlog/internal/weekplan"
)

// Context is shared by every command. The record and plan stores are opened
// on first use from the loaded storage provider.
type Context struct {
	Store    storage.Provider
	Timezone string
	Out      io.Writer
	Clock    func() time.Time

	records *records.Store
	plan    *weekplan.Store
	lock    *lock.Lock
}

// Now returns the current time in the configured timezone.
func (c *Context) Now() (time.Time, error) {
	if c.Clock == nil {
		return utils.NowInTimezone(c.Timezone)
	}
	loc, err := utils.LoadLocation(c.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return c.Clock().In(loc), nil
}

// Records returns the record store, opening it on first use.
func (c *Context) Records() (*records.Store, error) {
	if c.records != nil {
		return c.records, nil
	}
	s, err := records.Open(c.Store)
	if err != nil {
		return nil, err
	}
	s.Subscribe(func(recs []models.ExerciseRecord) {
		logger.Debug("Exercise records changed", "count", len(recs))
	})
	c.records = s
	return s, nil
}

// Plan returns the weekly plan store, opening it on first use.
func (c *Context) Plan() (*weekplan.Store, error) {
	if c.plan != nil {
		return c.plan, nil
	}
	s, err := weekplan.Open(c.Store)
	if err != nil {
		return nil, err
	}
	s.Subscribe(func(plan models.WeeklyPlan) {
		logger.Debug("Workout plan changed", "slots", len(plan))
	})
	c.plan = s
	return s, nil
}

// Reload drops the opened stores so the next access re-reads storage.
func (c *Context) Reload() {
	c.records = nil
	c.plan = nil
}

// LockPath returns the single-writer lockfile next to the data store.
func (c *Context) LockPath() string {
	return filepath.Join(filepath.Dir(c.Store.GetConfigPath()), constants.LockfileName)
}

// AcquireWriteLock takes the single-writer lock for the rest of the command.
func (c *Context) AcquireWriteLock() error {
	if c.lock != nil {
		return nil
	}
	l, err := lock.Acquire(c.LockPath())
	if err != nil {
		return err
	}
	c.lock = l
	return nil
}

// Close releases the write lock and the storage provider.
func (c *Context) Close() error {
	if err := c.lock.Release(); err != nil {
		logger.Warn("Failed to release lock", "error", err)
	}
	c.lock = nil
	return c.Store.Close()
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store)
	if _, err := mgr.CreateBackup(); err != nil {
		// Never interrupt the user's workflow for a failed backup
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes formatted command output.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

// Println writes a line of command output.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}
