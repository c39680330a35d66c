// Package lock guards the data store with a single-writer lockfile.
package lock

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/liftlog/internal/logger"
)

// ErrLocked is returned when another live process holds the lock.
var ErrLocked = errors.New("data store is locked by another liftlog process")

var (
	findProcessFunc = ps.FindProcess
	getpid          = os.Getpid
)

// Lock is a held lockfile. The file content is "pid|executable|acquired_at".
type Lock struct {
	path string
	pid  int
}

// Holder describes the process recorded in a lockfile.
type Holder struct {
	PID        int
	Executable string
	AcquiredAt time.Time
}

// Acquire takes the lock at path. A lockfile left behind by a process that
// no longer exists, or whose PID now belongs to another program, is taken over.
func Acquire(path string) (*Lock, error) {
	for attempt := 0; attempt < 2; attempt++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			pid := getpid()
			_, werr := fmt.Fprintf(f, "%d|%s|%s", pid, executableOf(pid), time.Now().UTC().Format(time.RFC3339))
			cerr := f.Close()
			if werr != nil || cerr != nil {
				_ = os.Remove(path)
				return nil, fmt.Errorf("failed to write lockfile: %w", errors.Join(werr, cerr))
			}
			logger.Debug("Acquired lock", "path", path, "pid", pid)
			return &Lock{path: path, pid: pid}, nil
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("failed to create lockfile: %w", err)
		}

		holder, err := ReadHolder(path)
		if err == nil && isAlive(holder) {
			logger.Warn("Lock held by another process", "path", path, "pid", holder.PID)
			return nil, fmt.Errorf("%w (pid %d)", ErrLocked, holder.PID)
		}

		logger.Info("Removing stale lockfile", "path", path)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
		}
	}
	return nil, ErrLocked
}

// Release removes the lockfile if it still belongs to this lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	holder, err := ReadHolder(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if holder.PID != l.pid {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	logger.Debug("Released lock", "path", l.path)
	return nil
}

// ReadHolder parses the lockfile at path.
func ReadHolder(path string) (Holder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Holder{}, err
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return Holder{}, errors.New("lockfile is malformed")
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return Holder{}, errors.New("invalid process ID in lockfile")
	}
	at, err := time.Parse(time.RFC3339, parts[2])
	if err != nil {
		return Holder{}, errors.New("invalid timestamp in lockfile")
	}
	return Holder{PID: pid, Executable: parts[1], AcquiredAt: at}, nil
}

func isAlive(h Holder) bool {
	process, err := findProcessFunc(h.PID)
	if err != nil || process == nil {
		return false
	}
	return h.Executable == "" || process.Executable() == h.Executable
}

func executableOf(pid int) string {
	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return ""
	}
	return process.Executable()
}

// Held reports whether a live process currently holds the lock at path.
func Held(path string) (Holder, bool) {
	h, err := ReadHolder(path)
	if err != nil {
		return Holder{}, false
	}
	return h, isAlive(h)
}
