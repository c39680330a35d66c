package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/liftlog/internal/lock"
	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/storage"
)

// Format formats an error message with a consistent "Error: " prefix.
// Known failure modes get a follow-up hint on a second line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\nHint: " + hint
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a suggested next step for errors the user can act on.
func Hint(err error) string {
	switch {
	case stderrors.Is(err, storage.ErrNotInitialized):
		return "run 'liftlog init' to create the data store"
	case stderrors.Is(err, storage.ErrSchemaTooNew):
		return "upgrade liftlog, the data store was written by a newer version"
	case stderrors.Is(err, lock.ErrLocked):
		return "close the other liftlog process or wait for it to finish"
	default:
		return ""
	}
}

// Fatal prints err for the user, records it in the log and exits with code 1
func Fatal(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		logger.Fatal("Command execution failed", "error", err)
	}
}

// Fatalf is Fatal with a format string
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	logger.Fatal("Command execution failed", "error", fmt.Sprintf(format, args...))
}
