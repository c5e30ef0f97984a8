package storage

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

func TestRepositoryFavorites(t *testing.T) {
	repo := NewRepository(NewMemoryStore())

	favs, err := repo.LoadFavorites()
	if err != nil {
		t.Fatalf("LoadFavorites failed: %v", err)
	}
	if favs.Len() != 0 {
		t.Errorf("expected empty favorites, got %v", favs.IDs())
	}

	if err := repo.SaveFavorites(models.NewFavoriteSet("squat", "plank")); err != nil {
		t.Fatalf("SaveFavorites failed: %v", err)
	}
	favs, err = repo.LoadFavorites()
	if err != nil {
		t.Fatalf("LoadFavorites failed: %v", err)
	}
	if !favs.Has("squat") || !favs.Has("plank") {
		t.Errorf("LoadFavorites() = %v", favs.IDs())
	}
}

func TestRepositoryCorruptValueLoadsAsAbsent(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		check func(t *testing.T, repo *Repository)
	}{
		{
			name: "favorites",
			key:  constants.KeyFavorites,
			check: func(t *testing.T, repo *Repository) {
				favs, err := repo.LoadFavorites()
				if err != nil || favs.Len() != 0 {
					t.Errorf("LoadFavorites() = %v, %v", favs.IDs(), err)
				}
			},
		},
		{
			name: "workouts",
			key:  constants.KeyWorkouts,
			check: func(t *testing.T, repo *Repository) {
				entries, err := repo.LoadWorkouts()
				if err != nil || len(entries) != 0 {
					t.Errorf("LoadWorkouts() = %v, %v", entries, err)
				}
			},
		},
		{
			name: "meal plans",
			key:  constants.KeyMealPlans,
			check: func(t *testing.T, repo *Repository) {
				plans, err := repo.LoadMealPlans()
				if err != nil || len(plans) != 0 {
					t.Errorf("LoadMealPlans() = %v, %v", plans, err)
				}
			},
		},
		{
			name: "last routine",
			key:  constants.KeyLastRoutine,
			check: func(t *testing.T, repo *Repository) {
				r, err := repo.LoadLastRoutine()
				if err != nil || r != nil {
					t.Errorf("LoadLastRoutine() = %v, %v", r, err)
				}
			},
		},
		{
			name: "settings",
			key:  constants.KeySettings,
			check: func(t *testing.T, repo *Repository) {
				s, err := repo.LoadSettings()
				if err != nil || s.PageSize != constants.DefaultPageSize {
					t.Errorf("LoadSettings() = %+v, %v", s, err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := NewMemoryStore()
			if err := mem.Put(tt.key, []byte("{not json")); err != nil {
				t.Fatal(err)
			}
			tt.check(t, NewRepository(mem))
		})
	}
}

func TestRepositoryMealPlansCapped(t *testing.T) {
	repo := NewRepository(NewMemoryStore())

	for i := 0; i < constants.MaxSavedMealPlans+3; i++ {
		plan := models.SavedMealPlan{
			ID:            fmt.Sprintf("plan-%02d", i),
			Name:          fmt.Sprintf("Plan %d", i),
			CreatedAt:     time.Date(2026, 1, 1, 0, i, 0, 0, time.UTC),
			CalorieTarget: 2000 + i,
		}
		if _, err := repo.SaveMealPlan(plan); err != nil {
			t.Fatalf("SaveMealPlan #%d failed: %v", i, err)
		}
	}

	plans, err := repo.LoadMealPlans()
	if err != nil {
		t.Fatalf("LoadMealPlans failed: %v", err)
	}
	if len(plans) != constants.MaxSavedMealPlans {
		t.Fatalf("expected %d plans, got %d", constants.MaxSavedMealPlans, len(plans))
	}
	if plans[0].ID != "plan-14" {
		t.Errorf("newest plan = %s, want plan-14", plans[0].ID)
	}
	if plans[len(plans)-1].ID != "plan-03" {
		t.Errorf("oldest kept plan = %s, want plan-03", plans[len(plans)-1].ID)
	}

	got, err := repo.GetMealPlan("plan-07")
	if err != nil || got.CalorieTarget != 2007 {
		t.Errorf("GetMealPlan(plan-07) = %+v, %v", got, err)
	}

	if err := repo.DeleteMealPlan("plan-07"); err != nil {
		t.Fatalf("DeleteMealPlan failed: %v", err)
	}
	if _, err := repo.GetMealPlan("plan-07"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetMealPlan after delete error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetMealPlan("plan-1"); !errors.Is(err, ErrAmbiguousID) {
		t.Errorf("GetMealPlan(plan-1) error = %v, want ErrAmbiguousID", err)
	}
}

func TestRepositoryLastRoutine(t *testing.T) {
	repo := NewRepository(NewMemoryStore())

	r, err := repo.LoadLastRoutine()
	if err != nil || r != nil {
		t.Fatalf("LoadLastRoutine() on empty store = %v, %v", r, err)
	}

	routine := models.Routine{
		Goal:          constants.GoalStrength,
		DaysPerWeek:   3,
		DurationWeeks: 1,
		Weeks: []models.WeekPlan{{
			{Name: "Full Body", Exercises: []models.RoutineExercise{{ID: "squat", Name: "Squat", Sets: 4, Reps: "3-6", RestSeconds: 150}}},
		}},
	}
	if err := repo.SaveLastRoutine(routine); err != nil {
		t.Fatalf("SaveLastRoutine failed: %v", err)
	}

	r, err = repo.LoadLastRoutine()
	if err != nil || r == nil {
		t.Fatalf("LoadLastRoutine() = %v, %v", r, err)
	}
	if r.Goal != constants.GoalStrength || r.TotalExercises() != 1 {
		t.Errorf("LoadLastRoutine() = %+v", r)
	}

	if err := repo.ClearLastRoutine(); err != nil {
		t.Fatalf("ClearLastRoutine failed: %v", err)
	}
	if r, _ := repo.LoadLastRoutine(); r != nil {
		t.Error("routine still present after clear")
	}
}

func TestRepositoryWorkoutsTruncated(t *testing.T) {
	repo := NewRepository(NewMemoryStore())

	entries := make([]models.WorkoutLogEntry, constants.MaxWorkoutEntries+10)
	for i := range entries {
		entries[i] = models.WorkoutLogEntry{ID: fmt.Sprintf("w%d", i), Exercise: "Row"}
	}
	if err := repo.SaveWorkouts(entries); err != nil {
		t.Fatalf("SaveWorkouts failed: %v", err)
	}

	got, err := repo.LoadWorkouts()
	if err != nil {
		t.Fatalf("LoadWorkouts failed: %v", err)
	}
	if len(got) != constants.MaxWorkoutEntries {
		t.Errorf("expected %d entries, got %d", constants.MaxWorkoutEntries, len(got))
	}
	if got[0].ID != "w0" {
		t.Errorf("first entry = %s, want w0", got[0].ID)
	}
}

func TestRepositorySettings(t *testing.T) {
	repo := NewRepository(NewMemoryStore())

	s, err := repo.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.DefaultGoal != constants.GoalMuscleGain || s.Diet != constants.DietBoth {
		t.Errorf("default settings = %+v", s)
	}

	s.PageSize = 50
	s.DefaultEquipment = []string{"dumbbell"}
	if err := repo.SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := repo.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got.PageSize != 50 || len(got.DefaultEquipment) != 1 {
		t.Errorf("LoadSettings() = %+v", got)
	}
}

type failingProvider struct {
	*MemoryStore
}

func (failingProvider) Put(string, []byte) error { return errors.New("disk full") }

func TestRepositoryWriteFailureIsReturned(t *testing.T) {
	repo := NewRepository(failingProvider{NewMemoryStore()})
	if err := repo.SaveFavorites(models.NewFavoriteSet("x")); err == nil {
		t.Error("expected write failure to be returned")
	}
	if _, err := repo.SaveMealPlan(models.SavedMealPlan{ID: "p"}); err == nil {
		t.Error("expected write failure to be returned")
	}
}
