// Package workoutlog records performed sets, newest entry first.
package workoutlog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/storage"
	"github.com/julianstephens/fitfinder/internal/validation"
)

var (
	ErrEmptyExercise = errors.New("please enter an exercise name")
	ErrNotFound      = errors.New("workout not found")
)

// SetInput is a set as typed by the user. Either field may be blank.
type SetInput struct {
	Reps   string
	Weight string
}

// ParseSet reads "reps:weight", "reps" or ":weight".
func ParseSet(s string) SetInput {
	reps, weight, _ := strings.Cut(s, ":")
	return SetInput{Reps: strings.TrimSpace(reps), Weight: strings.TrimSpace(weight)}
}

// NewEntry builds a log entry. Sets with both fields blank are dropped and
// a blank field within a kept set counts as zero.
func NewEntry(date, exercise, notes string, sets []SetInput) (models.WorkoutLogEntry, error) {
	exercise = strings.TrimSpace(exercise)
	if exercise == "" {
		return models.WorkoutLogEntry{}, ErrEmptyExercise
	}
	if !validation.IsValidDate(date) {
		return models.WorkoutLogEntry{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", validation.ErrInvalidInput, date)
	}

	entry := models.WorkoutLogEntry{
		ID:       uuid.New().String(),
		Date:     date,
		Exercise: exercise,
		Notes:    strings.TrimSpace(notes),
		Sets:     []models.SetEntry{},
	}
	for i, in := range sets {
		reps, weight := strings.TrimSpace(in.Reps), strings.TrimSpace(in.Weight)
		if reps == "" && weight == "" {
			continue
		}
		set := models.SetEntry{ID: uuid.New().String()}
		if reps != "" {
			n, err := strconv.Atoi(reps)
			if err != nil || n < 0 {
				return models.WorkoutLogEntry{}, fmt.Errorf("%w: set %d reps %q is not a whole number", validation.ErrInvalidInput, i+1, reps)
			}
			set.Reps = n
		}
		if weight != "" {
			w, err := strconv.ParseFloat(weight, 64)
			if err != nil || w < 0 {
				return models.WorkoutLogEntry{}, fmt.Errorf("%w: set %d weight %q is not a number", validation.ErrInvalidInput, i+1, weight)
			}
			set.Weight = w
		}
		entry.Sets = append(entry.Sets, set)
	}
	return entry, nil
}

// Log is an immutable list of entries, newest first.
type Log struct {
	entries []models.WorkoutLogEntry
}

// New wraps stored entries, keeping at most the newest 1000.
func New(entries []models.WorkoutLogEntry) Log {
	if len(entries) > constants.MaxWorkoutEntries {
		entries = entries[:constants.MaxWorkoutEntries]
	}
	return Log{entries: append([]models.WorkoutLogEntry(nil), entries...)}
}

// Entries returns a copy of the entries, newest first.
func (l Log) Entries() []models.WorkoutLogEntry {
	return append([]models.WorkoutLogEntry{}, l.entries...)
}

func (l Log) Len() int {
	return len(l.entries)
}

// Save prepends entry and evicts the oldest entries beyond the cap.
func (l Log) Save(entry models.WorkoutLogEntry) (Log, error) {
	if strings.TrimSpace(entry.Exercise) == "" {
		return l, ErrEmptyExercise
	}
	n := min(len(l.entries)+1, constants.MaxWorkoutEntries)
	next := make([]models.WorkoutLogEntry, 0, n)
	next = append(next, entry)
	next = append(next, l.entries[:n-1]...)
	return Log{entries: next}, nil
}

// Delete removes the entry with id. The id may be a unique prefix.
func (l Log) Delete(id string) (Log, error) {
	idx, err := l.find(id)
	if err != nil {
		return l, err
	}
	next := make([]models.WorkoutLogEntry, 0, len(l.entries)-1)
	next = append(next, l.entries[:idx]...)
	next = append(next, l.entries[idx+1:]...)
	return Log{entries: next}, nil
}

// Get returns the entry with id or a unique id prefix.
func (l Log) Get(id string) (models.WorkoutLogEntry, error) {
	idx, err := l.find(id)
	if err != nil {
		return models.WorkoutLogEntry{}, err
	}
	return l.entries[idx], nil
}

func (l Log) find(id string) (int, error) {
	match := -1
	for i, e := range l.entries {
		if e.ID == id {
			return i, nil
		}
		if id != "" && strings.HasPrefix(e.ID, id) {
			if match >= 0 {
				return -1, fmt.Errorf("workout id prefix %q: %w", id, storage.ErrAmbiguousID)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return match, nil
}
