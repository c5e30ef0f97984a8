package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

func TestValidateRoutineRequest(t *testing.T) {
	validator := New()

	tests := []struct {
		name  string
		goal  constants.Goal
		weeks int
		days  int
		want  []ConflictType
	}{
		{name: "valid", goal: constants.GoalStrength, weeks: 8, days: 4},
		{name: "unknown goal", goal: "yoga", weeks: 4, days: 3, want: []ConflictType{ConflictUnknownValue}},
		{name: "zero weeks", goal: constants.GoalFatLoss, weeks: 0, days: 3, want: []ConflictType{ConflictOutOfRange}},
		{name: "too many days", goal: constants.GoalEndurance, weeks: 4, days: 8, want: []ConflictType{ConflictOutOfRange}},
		{name: "everything wrong", goal: "", weeks: 60, days: 0, want: []ConflictType{ConflictUnknownValue, ConflictOutOfRange, ConflictOutOfRange}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.ValidateRoutineRequest(tt.goal, tt.weeks, tt.days)
			if len(result.Conflicts) != len(tt.want) {
				t.Fatalf("got %d conflicts, want %d: %s", len(result.Conflicts), len(tt.want), result.FormatReport())
			}
			for i, c := range result.Conflicts {
				if c.Type != tt.want[i] {
					t.Errorf("conflict %d = %s, want %s", i, c.Type, tt.want[i])
				}
			}
		})
	}
}

func TestValidateMealProfile(t *testing.T) {
	validator := New()
	valid := MealProfile{
		Age:      25,
		Gender:   "male",
		WeightKg: 70,
		HeightCm: 175,
		Activity: constants.ActivityModerate,
		Goal:     constants.MealGoalMaintain,
		Diet:     constants.DietBoth,
		Cuisine:  constants.CuisineAny,
	}

	if result := validator.ValidateMealProfile(valid); result.HasConflicts() {
		t.Fatalf("valid profile rejected: %s", result.FormatReport())
	}

	tests := []struct {
		name   string
		mutate func(*MealProfile)
		field  string
	}{
		{name: "age", mutate: func(p *MealProfile) { p.Age = 5 }, field: "age"},
		{name: "weight", mutate: func(p *MealProfile) { p.WeightKg = 0 }, field: "weight"},
		{name: "height", mutate: func(p *MealProfile) { p.HeightCm = 300 }, field: "height"},
		{name: "gender", mutate: func(p *MealProfile) { p.Gender = "" }, field: "gender"},
		{name: "activity", mutate: func(p *MealProfile) { p.Activity = "couch" }, field: "activity"},
		{name: "goal", mutate: func(p *MealProfile) { p.Goal = "bulk" }, field: "goal"},
		{name: "diet", mutate: func(p *MealProfile) { p.Diet = "vegan" }, field: "diet"},
		{name: "cuisine", mutate: func(p *MealProfile) { p.Cuisine = "thai" }, field: "cuisine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			result := validator.ValidateMealProfile(p)
			if len(result.Conflicts) != 1 || result.Conflicts[0].Field != tt.field {
				t.Errorf("conflicts = %+v, want one on %s", result.Conflicts, tt.field)
			}
		})
	}
}

func TestValidateWorkouts(t *testing.T) {
	validator := New()
	entries := []models.WorkoutLogEntry{
		{ID: "a", Date: "2026-05-01", Exercise: "Squat", Sets: []models.SetEntry{{Reps: 5, Weight: 100}}},
		{ID: "b", Date: "05/01/2026", Exercise: "Bench"},
		{ID: "c", Date: "2026-05-02", Exercise: "  "},
		{ID: "a", Date: "2026-05-03", Exercise: "Row", Sets: []models.SetEntry{{Reps: -1}}},
	}

	result := validator.ValidateWorkouts(entries)

	counts := map[ConflictType]int{}
	for _, c := range result.Conflicts {
		counts[c.Type]++
	}
	want := map[ConflictType]int{
		ConflictInvalidDate:      1,
		ConflictMissingField:     1,
		ConflictNegativeQuantity: 1,
		ConflictDuplicateID:      1,
	}
	for typ, n := range want {
		if counts[typ] != n {
			t.Errorf("%s conflicts = %d, want %d", typ, counts[typ], n)
		}
	}
}

func TestValidateWorkoutsDuplicateOrder(t *testing.T) {
	entries := []models.WorkoutLogEntry{
		{ID: "z", Date: "2026-05-01", Exercise: "Squat"},
		{ID: "m", Date: "2026-05-01", Exercise: "Bench"},
		{ID: "a", Date: "2026-05-01", Exercise: "Row"},
		{ID: "m", Date: "2026-05-02", Exercise: "Bench"},
		{ID: "a", Date: "2026-05-02", Exercise: "Row"},
		{ID: "z", Date: "2026-05-02", Exercise: "Squat"},
		{ID: "z", Date: "2026-05-03", Exercise: "Squat"},
	}

	for i := 0; i < 20; i++ {
		result := New().ValidateWorkouts(entries)
		var got []string
		for _, c := range result.Conflicts {
			if c.Type == ConflictDuplicateID {
				got = append(got, c.Description)
			}
		}
		want := []string{
			`workout id "z" appears 3 times`,
			`workout id "m" appears 2 times`,
			`workout id "a" appears 2 times`,
		}
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Fatalf("run %d: duplicate conflicts = %q, want %q", i, got, want)
		}
	}
}

func TestValidationResultErr(t *testing.T) {
	clean := ValidationResult{}
	if clean.Err() != nil {
		t.Error("clean result should have no error")
	}
	if clean.FormatReport() != "No conflicts detected." {
		t.Errorf("FormatReport() = %q", clean.FormatReport())
	}

	result := New().ValidateRoutineRequest("yoga", 4, 4)
	err := result.Err()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Err() = %v, want ErrInvalidInput", err)
	}
	if !strings.Contains(err.Error(), "yoga") {
		t.Errorf("error %q should name the bad goal", err)
	}
}

func TestIsValidDate(t *testing.T) {
	for date, want := range map[string]bool{
		"2026-01-31": true,
		"2026-02-30": false,
		"2026-1-3":   false,
		"":           false,
	} {
		if got := IsValidDate(date); got != want {
			t.Errorf("IsValidDate(%q) = %v, want %v", date, got, want)
		}
	}
}
