package constants

import (
	tea "github.com/charmbracelet/bubbletea"
)

// SessionState represents the current state of the TUI application
type SessionState int

// ConflictType represents the type of validation conflict
type ConflictType string

// ConfirmationMsg is a message to trigger a confirmation dialog
type ConfirmationMsg struct {
	Message string
	Action  func() tea.Cmd
}

const (
	AppName           = "liftlog"
	DefaultConfigPath = "~/.config/liftlog/liftlog.db"
	DefaultConfigFile = "~/.config/liftlog/config.json"
	Version           = "v0.1.0"

	// Storage keys
	ExercisesKey   = "exercises"
	WorkoutPlanKey = "workoutPlan"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "liftlog-"

	// Log constants
	LogDirName      = "logs"
	LogMaxSizeMB    = 10
	LogMaxBackups   = 3
	LogMaxAgeDays   = 28

	// Lock constants
	LockfileName = "liftlog.lock"

	// Conflict Types
	ConflictDuplicateRecordID   ConflictType = "duplicate_record_id"
	ConflictInvalidRPE          ConflictType = "invalid_rpe"
	ConflictInvalidLoad         ConflictType = "invalid_load"
	ConflictInvalidDate         ConflictType = "invalid_date"
	ConflictUnknownWeekday      ConflictType = "unknown_weekday"
	ConflictDuplicatePlanDay    ConflictType = "duplicate_plan_day"
	ConflictSlotOverCapacity    ConflictType = "slot_over_capacity"
	ConflictInvalidEstimatedDur ConflictType = "invalid_estimated_duration"
	ConflictMissingName         ConflictType = "missing_name"
)

// Session States
const (
	StateToday SessionState = iota
	StateLog
	StatePlan
	StateStats
	StateSession
	StateAddExercise
	StateAddSlot
	StateAddPlanned
	StateConfirmDelete
)
