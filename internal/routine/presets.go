package routine

import (
	"fmt"
	"strings"

	"github.com/julianstephens/fitfinder/internal/constants"
)

// Preset is the per-goal prescription applied to every exercise of a day.
type Preset struct {
	MinSets     int
	MaxSets     int
	Reps        string
	RestSeconds int
}

var presets = map[constants.Goal]Preset{
	constants.GoalMuscleGain: {MinSets: 3, MaxSets: 4, Reps: "8-12", RestSeconds: 60},
	constants.GoalStrength:   {MinSets: 3, MaxSets: 5, Reps: "3-6", RestSeconds: 150},
	constants.GoalEndurance:  {MinSets: 2, MaxSets: 3, Reps: "15-25", RestSeconds: 45},
	constants.GoalFatLoss:    {MinSets: 3, MaxSets: 3, Reps: "10-15", RestSeconds: 30},
}

var defaultPreset = Preset{MinSets: 3, MaxSets: 3, Reps: "8-12", RestSeconds: 60}

// PresetFor returns the goal's preset; unknown goals get the default shape.
func PresetFor(goal constants.Goal) Preset {
	if p, ok := presets[goal]; ok {
		return p
	}
	return defaultPreset
}

var exerciseCounts = map[constants.Goal]int{
	constants.GoalMuscleGain: 5,
	constants.GoalFatLoss:    6,
	constants.GoalStrength:   4,
	constants.GoalEndurance:  5,
}

const (
	defaultExerciseCount = 5
	fullBodyMinCount     = 5
)

// Day names used by the fixed splits.
const (
	DayFullBody = "Full Body"
	DayUpper    = "Upper"
	DayLower    = "Lower"
	DayPush     = "Push"
	DayPull     = "Pull"
	DayLegs     = "Legs"
)

// ExerciseCount is the number of exercises to pick for a day.
func ExerciseCount(goal constants.Goal, day string) int {
	n, ok := exerciseCounts[goal]
	if !ok {
		n = defaultExerciseCount
	}
	if day == DayFullBody && n < fullBodyMinCount {
		n = fullBodyMinCount
	}
	return n
}

// SplitFor maps training days per week onto named day templates.
func SplitFor(days int) []string {
	switch days {
	case 3:
		return []string{DayFullBody, DayFullBody, DayFullBody}
	case 4:
		return []string{DayUpper, DayLower, DayUpper, DayLower}
	case 5:
		return []string{DayPush, DayPull, DayLegs, DayPush, DayPull}
	case 6:
		return []string{DayPush, DayPull, DayLegs, DayPush, DayPull, DayLegs}
	}
	if days <= 0 {
		return []string{}
	}
	split := make([]string, days)
	for i := range split {
		split[i] = fmt.Sprintf("Day %d", i+1)
	}
	return split
}

var dayTargets = map[string][]string{
	DayFullBody: {"fullbody", "chest", "back", "legs", "shoulders", "arms", "abs"},
	DayUpper:    {"chest", "back", "shoulders", "arms"},
	DayLower:    {"legs", "glutes", "calves", "hamstrings", "quads"},
	DayPush:     {"chest", "shoulders", "triceps"},
	DayPull:     {"back", "biceps", "rear delts", "lats", "upper back"},
	DayLegs:     {"quads", "hamstrings", "glutes", "calves"},
}

// TargetsFor returns the body parts a day trains. Days without a template
// target their own lowercased name.
func TargetsFor(day string) []string {
	if t, ok := dayTargets[day]; ok {
		return append([]string(nil), t...)
	}
	return []string{strings.ToLower(day)}
}
