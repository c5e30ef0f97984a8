package models

import "strings"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty maps free-form level text onto one of the three known
// difficulties. Anything unrecognized is treated as beginner.
func ParseDifficulty(s string) Difficulty {
	c := strings.ToLower(s)
	switch {
	case strings.Contains(c, "begin"):
		return DifficultyBeginner
	case strings.Contains(c, "inter"):
		return DifficultyIntermediate
	case strings.Contains(c, "adv"):
		return DifficultyAdvanced
	default:
		return DifficultyBeginner
	}
}

type Exercise struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	BodyPart     []string   `json:"bodyPart"`
	Equipment    []string   `json:"equipment"`
	Goals        []string   `json:"goals"`
	Difficulty   Difficulty `json:"difficulty"`
	Instructions []string   `json:"instructions"`
	Tips         string     `json:"tips"`
	Rating       *float64   `json:"rating,omitempty"`     // 0-5
	RatingDesc   string     `json:"ratingDesc,omitempty"` // free text shown next to the rating
	Image        string     `json:"image,omitempty"`
	Video        string     `json:"video,omitempty"`
}

// HasTag reports whether tags contains tag exactly.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

// FilterOptions holds the selected values of each facet. An empty facet
// places no constraint on the results.
type FilterOptions struct {
	BodyParts []string `json:"bodyParts"`
	Equipment []string `json:"equipment"`
	Goals     []string `json:"goals"`
}

// IsEmpty returns true when no facet has a selection
func (f FilterOptions) IsEmpty() bool {
	return len(f.BodyParts) == 0 && len(f.Equipment) == 0 && len(f.Goals) == 0
}

// Count returns the total number of selected facet values
func (f FilterOptions) Count() int {
	return len(f.BodyParts) + len(f.Equipment) + len(f.Goals)
}

// Clone returns a deep copy so callers can derive new filter sets without
// sharing backing arrays.
func (f FilterOptions) Clone() FilterOptions {
	return FilterOptions{
		BodyParts: append([]string(nil), f.BodyParts...),
		Equipment: append([]string(nil), f.Equipment...),
		Goals:     append([]string(nil), f.Goals...),
	}
}
