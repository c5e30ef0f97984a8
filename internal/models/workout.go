package models

type SetEntry struct {
	ID     string  `json:"id"`
	Reps   int     `json:"reps"`
	Weight float64 `json:"weight"`
}

type WorkoutLogEntry struct {
	ID       string     `json:"id"`
	Date     string     `json:"date"` // YYYY-MM-DD format
	Exercise string     `json:"exercise"`
	Notes    string     `json:"notes,omitempty"`
	Sets     []SetEntry `json:"sets"`
}

// Volume returns the sum of reps x weight over all sets
func (e WorkoutLogEntry) Volume() float64 {
	total := 0.0
	for _, s := range e.Sets {
		total += float64(s.Reps) * s.Weight
	}
	return total
}
