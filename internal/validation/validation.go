package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

// ErrInvalidInput wraps every validation failure returned by Err
var ErrInvalidInput = errors.New("invalid input")

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictOutOfRange       ConflictType = "out_of_range"
	ConflictUnknownValue     ConflictType = "unknown_value"
	ConflictInvalidDate      ConflictType = "invalid_date"
	ConflictMissingField     ConflictType = "missing_field"
	ConflictDuplicateID      ConflictType = "duplicate_id"
	ConflictNegativeQuantity ConflictType = "negative_quantity"
)

// Conflict represents a detected problem in user input or stored state
type Conflict struct {
	Type        ConflictType
	Field       string
	Description string
	IDs         []string // ids of stored records involved
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
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

// Err returns nil when the result is clean, otherwise an error wrapping
// ErrInvalidInput that lists every conflict.
func (vr *ValidationResult) Err() error {
	if !vr.HasConflicts() {
		return nil
	}
	msgs := make([]string, len(vr.Conflicts))
	for i, c := range vr.Conflicts {
		msgs[i] = c.Description
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func (vr *ValidationResult) add(t ConflictType, field, format string, args ...any) {
	vr.Conflicts = append(vr.Conflicts, Conflict{Type: t, Field: field, Description: fmt.Sprintf(format, args...)})
}

// Validator checks user input before it reaches the generators
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// Routine input bounds.
const (
	MinDaysPerWeek   = 1
	MaxDaysPerWeek   = 7
	MinDurationWeeks = 1
	MaxDurationWeeks = 52
)

// ValidateRoutineRequest checks generator inputs. Unknown goals are
// accepted by the generator but rejected here so typos surface early.
func (v *Validator) ValidateRoutineRequest(goal constants.Goal, weeks, days int) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	known := false
	for _, g := range constants.Goals {
		if g == goal {
			known = true
			break
		}
	}
	if !known {
		result.add(ConflictUnknownValue, "goal", "unknown goal %q (want one of %s)", goal, joinGoals())
	}
	if weeks < MinDurationWeeks || weeks > MaxDurationWeeks {
		result.add(ConflictOutOfRange, "weeks", "weeks must be between %d and %d, got %d", MinDurationWeeks, MaxDurationWeeks, weeks)
	}
	if days < MinDaysPerWeek || days > MaxDaysPerWeek {
		result.add(ConflictOutOfRange, "days", "days per week must be between %d and %d, got %d", MinDaysPerWeek, MaxDaysPerWeek, days)
	}
	return result
}

// MealProfile is the subset of meal planner input that needs checking
type MealProfile struct {
	Age      int
	Gender   string
	WeightKg float64
	HeightCm float64
	Activity string
	Goal     constants.MealGoal
	Diet     string
	Cuisine  string
}

// ValidateMealProfile checks body measurements and preference values.
func (v *Validator) ValidateMealProfile(p MealProfile) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if p.Age < 10 || p.Age > 120 {
		result.add(ConflictOutOfRange, "age", "age must be between 10 and 120, got %d", p.Age)
	}
	if p.WeightKg < 20 || p.WeightKg > 400 {
		result.add(ConflictOutOfRange, "weight", "weight must be between 20 and 400 kg, got %g", p.WeightKg)
	}
	if p.HeightCm < 100 || p.HeightCm > 250 {
		result.add(ConflictOutOfRange, "height", "height must be between 100 and 250 cm, got %g", p.HeightCm)
	}
	if !oneOf(p.Gender, "male", "female") {
		result.add(ConflictUnknownValue, "gender", "gender must be male or female, got %q", p.Gender)
	}
	if !oneOf(p.Activity, constants.ActivitySedentary, constants.ActivityLight, constants.ActivityModerate, constants.ActivityActive, constants.ActivityVeryActive) {
		result.add(ConflictUnknownValue, "activity", "unknown activity level %q", p.Activity)
	}
	if !oneOf(string(p.Goal), string(constants.MealGoalLose), string(constants.MealGoalMaintain), string(constants.MealGoalGain)) {
		result.add(ConflictUnknownValue, "goal", "meal goal must be lose, maintain or gain, got %q", p.Goal)
	}
	if !oneOf(p.Diet, constants.DietVeg, constants.DietNonVeg, constants.DietBoth) {
		result.add(ConflictUnknownValue, "diet", "diet must be veg, nonveg or both, got %q", p.Diet)
	}
	if !oneOf(p.Cuisine, constants.CuisineAny, constants.CuisineIndian, constants.CuisineWestern) {
		result.add(ConflictUnknownValue, "cuisine", "cuisine must be any, indian or western, got %q", p.Cuisine)
	}
	return result
}

// ValidateWorkouts checks stored log entries for problems that editing
// by hand or older versions could leave behind.
func (v *Validator) ValidateWorkouts(entries []models.WorkoutLogEntry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string]int)
	var order []string
	for _, e := range entries {
		if seen[e.ID] == 0 {
			order = append(order, e.ID)
		}
		seen[e.ID]++
		if strings.TrimSpace(e.Exercise) == "" {
			result.add(ConflictMissingField, "exercise", "workout %s has no exercise name", e.ID)
		}
		if !IsValidDate(e.Date) {
			result.add(ConflictInvalidDate, "date", "workout %s has invalid date %q", e.ID, e.Date)
		}
		for _, s := range e.Sets {
			if s.Reps < 0 || s.Weight < 0 {
				result.add(ConflictNegativeQuantity, "sets", "workout %s has a set with negative reps or weight", e.ID)
				break
			}
		}
	}
	for _, id := range order {
		if n := seen[id]; n > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Field:       "id",
				Description: fmt.Sprintf("workout id %q appears %d times", id, n),
				IDs:         []string{id},
			})
		}
	}
	return result
}

// IsValidDate reports whether s is a YYYY-MM-DD date
func IsValidDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

func oneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func joinGoals() string {
	names := make([]string, len(constants.Goals))
	for i, g := range constants.Goals {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
