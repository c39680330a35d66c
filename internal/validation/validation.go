package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/utils"
)

// Conflict represents a detected problem in stored records or the plan
type Conflict struct {
	Type        constants.ConflictType
	Description string
	Date        string   // YYYY-MM-DD format (if applicable)
	Day         string   // weekday (if applicable)
	IDs         []string // record or planned exercise ids involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Merge appends the conflicts of other.
func (vr *ValidationResult) Merge(other ValidationResult) {
	vr.Conflicts = append(vr.Conflicts, other.Conflicts...)
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

// Validator checks stored data for values the stores would never produce
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateRecords checks exercise records for duplicate ids and out-of-range values
func (v *Validator) ValidateRecords(records []models.ExerciseRecord) ValidationResult {
	var result ValidationResult
	seen := make(map[string]int)

	for _, r := range records {
		seen[r.ID]++
		label := r.Name
		if label == "" {
			label = r.ID
		}

		if strings.TrimSpace(r.Name) == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictMissingName,
				Description: fmt.Sprintf("Record %s has no exercise name", r.ID),
				Date:        r.Date,
				IDs:         []string{r.ID},
			})
		}
		if !utils.ValidateDateFormat(r.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictInvalidDate,
				Description: fmt.Sprintf("Record %q has invalid date %q", label, r.Date),
				IDs:         []string{r.ID},
			})
		}
		if !ValidRPE(r.RPE) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictInvalidRPE,
				Description: fmt.Sprintf("Record %q on %s has RPE %d outside 1-10", label, r.Date, r.RPE),
				Date:        r.Date,
				IDs:         []string{r.ID},
			})
		}
		if !ValidWeight(r.Weight) || r.Sets <= 0 || r.Reps <= 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictInvalidLoad,
				Description: fmt.Sprintf("Record %q on %s has invalid load %.1fkg %dx%d", label, r.Date, r.Weight, r.Sets, r.Reps),
				Date:        r.Date,
				IDs:         []string{r.ID},
			})
		}
	}

	var dups []string
	for id, n := range seen {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Strings(dups)
	for _, id := range dups {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        constants.ConflictDuplicateRecordID,
			Description: fmt.Sprintf("Record id %q is used %d times", id, seen[id]),
			IDs:         []string{id},
		})
	}

	return result
}

// ValidatePlan checks the weekly plan for unknown or repeated days and oversized slots
func (v *Validator) ValidatePlan(plan models.WeeklyPlan) ValidationResult {
	var result ValidationResult
	days := make(map[string]int)

	for _, slot := range plan {
		days[slot.Day]++
		if !models.IsWeekday(slot.Day) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictUnknownWeekday,
				Description: fmt.Sprintf("Plan has a slot for unknown day %q", slot.Day),
				Day:         slot.Day,
			})
		}
		if len(slot.Exercises) > constants.MaxExercisesPerSlot {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictSlotOverCapacity,
				Description: fmt.Sprintf("%s has %d exercises, the limit is %d", slot.Day, len(slot.Exercises), constants.MaxExercisesPerSlot),
				Day:         slot.Day,
			})
		}
		if slot.EstimatedDuration <= 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictInvalidEstimatedDur,
				Description: fmt.Sprintf("%s has non-positive estimated duration %d", slot.Day, slot.EstimatedDuration),
				Day:         slot.Day,
			})
		}
		for _, ex := range slot.Exercises {
			if !ValidRPE(ex.RPE) {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        constants.ConflictInvalidRPE,
					Description: fmt.Sprintf("%s: planned %q has RPE %d outside 1-10", slot.Day, ex.Name, ex.RPE),
					Day:         slot.Day,
					IDs:         []string{ex.ID},
				})
			}
		}
	}

	for _, day := range constants.WeekdayNames {
		if days[day] > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictDuplicatePlanDay,
				Description: fmt.Sprintf("%s is planned %d times", day, days[day]),
				Day:         day,
			})
		}
	}

	return result
}
