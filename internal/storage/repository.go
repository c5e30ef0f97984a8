package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/logger"
	"github.com/julianstephens/fitfinder/internal/models"
)

// Repository maps application state onto namespaced keys of a Provider.
type Repository struct {
	provider Provider
}

func NewRepository(p Provider) *Repository {
	return &Repository{provider: p}
}

func (r *Repository) Provider() Provider {
	return r.provider
}

// load decodes key into a value of type T. Missing keys and corrupt
// documents both yield def; only backend failures are returned.
func load[T any](p Provider, key string, def T) (T, error) {
	data, err := p.Get(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return def, nil
		}
		return def, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Warn("Ignoring corrupt stored value", "key", key, "error", err)
		return def, nil
	}
	return v, nil
}

func store(p Provider, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := p.Put(key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Favorites

func (r *Repository) LoadFavorites() (models.FavoriteSet, error) {
	ids, err := load[[]string](r.provider, constants.KeyFavorites, nil)
	if err != nil {
		return models.NewFavoriteSet(), err
	}
	return models.NewFavoriteSet(ids...), nil
}

func (r *Repository) SaveFavorites(set models.FavoriteSet) error {
	return store(r.provider, constants.KeyFavorites, set.IDs())
}

// Last routine

// LoadLastRoutine returns nil when no routine has been generated yet.
func (r *Repository) LoadLastRoutine() (*models.Routine, error) {
	return load[*models.Routine](r.provider, constants.KeyLastRoutine, nil)
}

func (r *Repository) SaveLastRoutine(routine models.Routine) error {
	return store(r.provider, constants.KeyLastRoutine, routine)
}

func (r *Repository) ClearLastRoutine() error {
	return r.provider.Delete(constants.KeyLastRoutine)
}

// Meal plans

func (r *Repository) LoadMealPlans() ([]models.SavedMealPlan, error) {
	return load[[]models.SavedMealPlan](r.provider, constants.KeyMealPlans, []models.SavedMealPlan{})
}

// SaveMealPlan prepends plan and keeps at most MaxSavedMealPlans entries.
func (r *Repository) SaveMealPlan(plan models.SavedMealPlan) ([]models.SavedMealPlan, error) {
	plans, err := r.LoadMealPlans()
	if err != nil {
		return nil, err
	}

	next := make([]models.SavedMealPlan, 0, len(plans)+1)
	next = append(next, plan)
	next = append(next, plans...)
	if len(next) > constants.MaxSavedMealPlans {
		next = next[:constants.MaxSavedMealPlans]
	}

	if err := store(r.provider, constants.KeyMealPlans, next); err != nil {
		return nil, err
	}
	return next, nil
}

// GetMealPlan looks up a saved plan by id or unique id prefix.
func (r *Repository) GetMealPlan(id string) (models.SavedMealPlan, error) {
	plans, err := r.LoadMealPlans()
	if err != nil {
		return models.SavedMealPlan{}, err
	}
	idx, err := findByID(len(plans), func(i int) string { return plans[i].ID }, id)
	if err != nil {
		return models.SavedMealPlan{}, fmt.Errorf("meal plan %s: %w", id, err)
	}
	return plans[idx], nil
}

func (r *Repository) DeleteMealPlan(id string) error {
	plans, err := r.LoadMealPlans()
	if err != nil {
		return err
	}
	idx, err := findByID(len(plans), func(i int) string { return plans[i].ID }, id)
	if err != nil {
		return fmt.Errorf("meal plan %s: %w", id, err)
	}

	next := append(append([]models.SavedMealPlan{}, plans[:idx]...), plans[idx+1:]...)
	return store(r.provider, constants.KeyMealPlans, next)
}

// Workouts

func (r *Repository) LoadWorkouts() ([]models.WorkoutLogEntry, error) {
	return load[[]models.WorkoutLogEntry](r.provider, constants.KeyWorkouts, []models.WorkoutLogEntry{})
}

// SaveWorkouts persists entries newest first, truncated to MaxWorkoutEntries.
func (r *Repository) SaveWorkouts(entries []models.WorkoutLogEntry) error {
	if len(entries) > constants.MaxWorkoutEntries {
		entries = entries[:constants.MaxWorkoutEntries]
	}
	if entries == nil {
		entries = []models.WorkoutLogEntry{}
	}
	return store(r.provider, constants.KeyWorkouts, entries)
}

// Settings

func (r *Repository) LoadSettings() (models.Settings, error) {
	settings, err := load(r.provider, constants.KeySettings, models.DefaultSettings())
	if err != nil {
		return settings, err
	}
	return settings.WithDefaults(), nil
}

func (r *Repository) SaveSettings(settings models.Settings) error {
	return store(r.provider, constants.KeySettings, settings)
}

// ErrAmbiguousID is returned when an id prefix matches more than one record
var ErrAmbiguousID = errors.New("ambiguous id prefix")

func findByID(n int, idAt func(int) string, id string) (int, error) {
	match := -1
	for i := 0; i < n; i++ {
		candidate := idAt(i)
		if candidate == id {
			return i, nil
		}
		if len(id) > 0 && len(candidate) > len(id) && candidate[:len(id)] == id {
			if match >= 0 {
				return -1, ErrAmbiguousID
			}
			match = i
		}
	}
	if match < 0 {
		return -1, ErrNotFound
	}
	return match, nil
}
