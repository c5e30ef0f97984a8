// Package meal computes calorie targets and composes weekly meal plans
// from a fixed food table.
package meal

import (
	"math"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

// Profile holds the body measurements and preferences used for targets.
type Profile struct {
	Age      int
	Gender   string
	WeightKg float64
	HeightCm float64
	Activity string
	Goal     constants.MealGoal
}

type Targets struct {
	BMR           int `json:"bmr"`
	TDEE          int `json:"tdee"`
	CalorieTarget int `json:"calorieTarget"`
}

var activityFactors = map[string]float64{
	constants.ActivitySedentary:  1.2,
	constants.ActivityLight:      1.375,
	constants.ActivityModerate:   1.55,
	constants.ActivityActive:     1.725,
	constants.ActivityVeryActive: 1.9,
}

// ActivityFactor returns the TDEE multiplier for an activity level.
// Unknown levels are treated as moderate.
func ActivityFactor(activity string) float64 {
	if f, ok := activityFactors[activity]; ok {
		return f
	}
	return activityFactors[constants.ActivityModerate]
}

// ComputeTargets applies the Mifflin-St Jeor equation. Only "female"
// selects the female constant.
func ComputeTargets(p Profile) Targets {
	base := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == "female" {
		base -= 161
	} else {
		base += 5
	}
	bmr := int(math.Round(base))
	tdee := int(math.Round(float64(bmr) * ActivityFactor(p.Activity)))

	target := tdee
	switch p.Goal {
	case constants.MealGoalLose:
		target = int(math.Round(float64(tdee) * 0.82))
	case constants.MealGoalGain:
		target = int(math.Round(float64(tdee) * 1.12))
	}
	return Targets{BMR: bmr, TDEE: tdee, CalorieTarget: target}
}

// Inputs converts the profile plus preferences into the persisted form.
func (p Profile) Inputs(diet, cuisine string) models.MealPlanInputs {
	return models.MealPlanInputs{
		Age:      p.Age,
		Gender:   p.Gender,
		WeightKg: p.WeightKg,
		HeightCm: p.HeightCm,
		Activity: p.Activity,
		Goal:     p.Goal,
		Diet:     diet,
		Cuisine:  cuisine,
	}
}
