package models

import (
	"time"

	"github.com/julianstephens/fitfinder/internal/constants"
)

// RoutineExercise is a per-routine snapshot of a catalog exercise plus the
// prescription generated for it.
type RoutineExercise struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	BodyPart    []string `json:"bodyPart"`
	Equipment   []string `json:"equipment"`
	Sets        int      `json:"sets"`
	Reps        string   `json:"reps"` // range, e.g. "8-12"
	RestSeconds int      `json:"restSeconds"`
}

type DayPlan struct {
	Name      string            `json:"name"` // e.g. "Push" or "Full Body"
	Exercises []RoutineExercise `json:"exercises"`
}

type WeekPlan []DayPlan

type Routine struct {
	Goal          constants.Goal `json:"goal"`
	Weeks         []WeekPlan     `json:"weeks"`
	DaysPerWeek   int            `json:"daysPerWeek"`
	DurationWeeks int            `json:"durationWeeks"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// TotalExercises counts exercise prescriptions across every week and day
func (r Routine) TotalExercises() int {
	total := 0
	for _, week := range r.Weeks {
		for _, day := range week {
			total += len(day.Exercises)
		}
	}
	return total
}
