// Package logger holds the process-wide structured logger. Entries go to a
// rotating file next to the data store and, with --debug, to stderr as well.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/liftlog/internal/constants"
)

var (
	// Logger is the global logger instance
	Logger *log.Logger
)

// Config holds logger configuration
type Config struct {
	Debug bool
	// ConfigDir is the data store directory; logs live in its logs/ subdirectory.
	ConfigDir string
	// StorePath and Command are attached to every entry.
	StorePath string
	Command   string
	// Output replaces the rotating log file when set.
	Output io.Writer
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	writer := cfg.Output
	if writer == nil {
		fileWriter, err := rotatingFile(cfg.ConfigDir)
		if err != nil {
			return err
		}
		writer = fileWriter
	}
	if cfg.Debug {
		writer = io.MultiWriter(os.Stderr, writer)
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	l := log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})

	var fields []interface{}
	if cfg.StorePath != "" {
		fields = append(fields, "store", cfg.StorePath)
	}
	if cfg.Command != "" {
		fields = append(fields, "command", cfg.Command)
	}
	if len(fields) > 0 {
		l = l.With(fields...)
	}

	Logger = l
	return nil
}

func rotatingFile(configDir string) (io.Writer, error) {
	logDir := filepath.Join(configDir, constants.LogDirName)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return nil, err
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.AppName+".log"),
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   true,
	}, nil
}

func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal records msg at fatal level and exits with status 1.
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
