package models

import (
	"time"

	"github.com/julianstephens/fitfinder/internal/constants"
)

type FoodItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kcal         float64  `json:"kcal"`
	Protein      float64  `json:"protein"`
	Fat          float64  `json:"fat"`
	Carbs        float64  `json:"carbs"`
	PortionLabel string   `json:"portionLabel"`
	Tags         []string `json:"tags,omitempty"` // diet type, cuisine and meal slot
}

type MealItem struct {
	Food     FoodItem `json:"food"`
	Portions int      `json:"portions"`
}

type MealSlot struct {
	MealName constants.MealName `json:"mealName"`
	Items    []MealItem         `json:"items"`
	Kcal     int                `json:"kcal"`
}

// WeeklyMealPlan maps a weekday name (Monday..Sunday) to its four meal slots.
type WeeklyMealPlan map[string][]MealSlot

// Days returns the plan's days in calendar order, skipping absent keys.
func (p WeeklyMealPlan) Days() []string {
	days := make([]string, 0, len(constants.Weekdays))
	for _, d := range constants.Weekdays {
		if _, ok := p[d]; ok {
			days = append(days, d)
		}
	}
	return days
}

// DayKcal sums the slot totals of a day
func (p WeeklyMealPlan) DayKcal(day string) int {
	total := 0
	for _, slot := range p[day] {
		total += slot.Kcal
	}
	return total
}

type MealPlanInputs struct {
	Age      int                `json:"age"`
	Gender   string             `json:"gender"`
	WeightKg float64            `json:"weight"`
	HeightCm float64            `json:"height"`
	Activity string             `json:"activity"`
	Goal     constants.MealGoal `json:"goal"`
	Diet     string             `json:"diet"`
	Cuisine  string             `json:"cuisine"`
}

type SavedMealPlan struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	CreatedAt     time.Time      `json:"createdAt"`
	Inputs        MealPlanInputs `json:"inputs"`
	CalorieTarget int            `json:"calorieTarget"`
	WeeklyPlan    WeeklyMealPlan `json:"weeklyPlan"`
}

type GroceryItem struct {
	Name    string `json:"name"`
	Portion string `json:"portion"`
	Qty     int    `json:"qty"`
}
