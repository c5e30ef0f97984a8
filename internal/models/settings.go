package models

import "github.com/julianstephens/fitfinder/internal/constants"

// Settings represents persisted user defaults
type Settings struct {
	PageSize             int            `json:"pageSize"`             // catalog results revealed per page
	DefaultGoal          constants.Goal `json:"defaultGoal"`          // goal used when none is given
	DefaultDaysPerWeek   int            `json:"defaultDaysPerWeek"`   // training days per week
	DefaultDurationWeeks int            `json:"defaultDurationWeeks"` // routine length in weeks
	DefaultEquipment     []string       `json:"defaultEquipment"`     // equipment available to the user
	Diet                 string         `json:"diet"`                 // veg, nonveg or both
	Cuisine              string         `json:"cuisine"`              // indian, western or any
}

// DefaultSettings returns the settings used before the user changes anything
func DefaultSettings() Settings {
	return Settings{
		PageSize:             constants.DefaultPageSize,
		DefaultGoal:          constants.GoalMuscleGain,
		DefaultDaysPerWeek:   constants.DefaultDaysPerWeek,
		DefaultDurationWeeks: constants.DefaultDurationWeeks,
		DefaultEquipment:     []string{},
		Diet:                 constants.DietBoth,
		Cuisine:              constants.CuisineAny,
	}
}

// WithDefaults fills zero-valued fields from DefaultSettings
func (s Settings) WithDefaults() Settings {
	d := DefaultSettings()
	if s.PageSize <= 0 {
		s.PageSize = d.PageSize
	}
	if s.DefaultGoal == "" {
		s.DefaultGoal = d.DefaultGoal
	}
	if s.DefaultDaysPerWeek <= 0 {
		s.DefaultDaysPerWeek = d.DefaultDaysPerWeek
	}
	if s.DefaultDurationWeeks <= 0 {
		s.DefaultDurationWeeks = d.DefaultDurationWeeks
	}
	if s.DefaultEquipment == nil {
		s.DefaultEquipment = d.DefaultEquipment
	}
	if s.Diet == "" {
		s.Diet = d.Diet
	}
	if s.Cuisine == "" {
		s.Cuisine = d.Cuisine
	}
	return s
}
