// Package export writes routines, meal plans and workout logs as JSON
// documents and XLSX workbooks.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

// MealPlanExport is the document written for a meal plan.
type MealPlanExport struct {
	Name          string                `json:"name"`
	Inputs        models.MealPlanInputs `json:"inputs"`
	CalorieTarget int                   `json:"calorieTarget"`
	WeeklyPlan    models.WeeklyMealPlan `json:"weeklyPlan"`
}

// FromSaved drops the bookkeeping fields of a saved plan.
func FromSaved(p models.SavedMealPlan) MealPlanExport {
	return MealPlanExport{Name: p.Name, Inputs: p.Inputs, CalorieTarget: p.CalorieTarget, WeeklyPlan: p.WeeklyPlan}
}

// WorkoutsExport is the document written for the workout log.
type WorkoutsExport struct {
	ExportedAt time.Time                `json:"exportedAt"`
	Workouts   []models.WorkoutLogEntry `json:"workouts"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// Routine writes r as indented JSON.
func Routine(w io.Writer, r models.Routine) error {
	if r.Weeks == nil {
		r.Weeks = []models.WeekPlan{}
	}
	return writeJSON(w, r)
}

// MealPlan writes a meal plan document.
func MealPlan(w io.Writer, p MealPlanExport) error {
	return writeJSON(w, p)
}

// Workouts writes the log with the export time.
func Workouts(w io.Writer, entries []models.WorkoutLogEntry, now time.Time) error {
	if entries == nil {
		entries = []models.WorkoutLogEntry{}
	}
	return writeJSON(w, WorkoutsExport{ExportedAt: now.UTC(), Workouts: entries})
}

// RoutineFileName is fitfinder_routine_<goal>_<weeks>w with ext appended.
func RoutineFileName(r models.Routine, ext string) string {
	return fmt.Sprintf("fitfinder_routine_%s_%dw%s", r.Goal, r.DurationWeeks, ext)
}

var whitespace = regexp.MustCompile(`\s+`)

// MealPlanFileName lowercases the plan name and replaces whitespace runs
// with underscores. A blank name becomes "mealplan".
func MealPlanFileName(name, ext string) string {
	if name == "" {
		name = "mealplan"
	}
	return strings.ToLower(whitespace.ReplaceAllString(name, "_")) + ext
}

// WorkoutsFileName is fitfinder_workouts_<date>.json.
func WorkoutsFileName(now time.Time) string {
	return fmt.Sprintf("fitfinder_workouts_%s.json", now.UTC().Format(constants.DateFormat))
}
