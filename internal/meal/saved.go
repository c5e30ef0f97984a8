package meal

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

// NewSavedPlan snapshots a generated plan for persistence. A blank name
// becomes "Plan <date>".
func NewSavedPlan(name string, inputs models.MealPlanInputs, calorieTarget int, plan models.WeeklyMealPlan, now time.Time) models.SavedMealPlan {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("Plan %s", now.Format(constants.DateFormat))
	}
	return models.SavedMealPlan{
		ID:            uuid.New().String(),
		Name:          name,
		CreatedAt:     now.UTC(),
		Inputs:        inputs,
		CalorieTarget: calorieTarget,
		WeeklyPlan:    plan,
	}
}
