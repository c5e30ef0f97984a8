// Package routine builds multi-week training routines from the catalog.
package routine

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/logger"
	"github.com/julianstephens/fitfinder/internal/models"
)

// bodyweightTag is always eligible when the user lists no equipment
const bodyweightTag = "bodyweight"

type Request struct {
	Goal          constants.Goal
	DurationWeeks int
	DaysPerWeek   int
	Equipment     []string
	Seed          Seed
}

type Generator struct {
	exercises []models.Exercise
	now       func() time.Time
}

// NewGenerator returns a generator over a snapshot of exercises.
func NewGenerator(exercises []models.Exercise) *Generator {
	return &Generator{
		exercises: append([]models.Exercise(nil), exercises...),
		now:       time.Now,
	}
}

// Generate builds a routine of DurationWeeks weeks, each with one day per
// split entry. Every week draws its own exercises. Days whose pool is empty
// are returned with no exercises.
func (g *Generator) Generate(req Request) models.Routine {
	rng := req.Seed.Rand()
	split := SplitFor(req.DaysPerWeek)
	equipment := normalizeEquipment(req.Equipment)

	pools := make(map[string][]models.Exercise, len(split))
	for _, day := range split {
		if _, ok := pools[day]; !ok {
			pools[day] = Pool(g.exercises, TargetsFor(day), equipment)
		}
	}

	weeks := make([]models.WeekPlan, 0, max(req.DurationWeeks, 0))
	for w := 0; w < req.DurationWeeks; w++ {
		week := make(models.WeekPlan, 0, len(split))
		for _, day := range split {
			week = append(week, models.DayPlan{
				Name:      day,
				Exercises: buildDay(rng, pools[day], req.Goal, day),
			})
		}
		weeks = append(weeks, week)
	}

	r := models.Routine{
		Goal:          req.Goal,
		Weeks:         weeks,
		DaysPerWeek:   req.DaysPerWeek,
		DurationWeeks: req.DurationWeeks,
		CreatedAt:     g.now().UTC(),
	}
	logger.Debug("Generated routine", "goal", req.Goal, "weeks", req.DurationWeeks, "days", req.DaysPerWeek, "seed", req.Seed, "exercises", r.TotalExercises())
	return r
}

func buildDay(rng *rand.Rand, pool []models.Exercise, goal constants.Goal, day string) []models.RoutineExercise {
	preset := PresetFor(goal)
	n := min(ExerciseCount(goal, day), len(pool))

	shuffled := append([]models.Exercise(nil), pool...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	out := make([]models.RoutineExercise, 0, n)
	for _, ex := range shuffled[:n] {
		out = append(out, models.RoutineExercise{
			ID:          ex.ID,
			Name:        ex.Name,
			BodyPart:    append([]string(nil), ex.BodyPart...),
			Equipment:   append([]string(nil), ex.Equipment...),
			Sets:        preset.MinSets + rng.IntN(preset.MaxSets-preset.MinSets+1),
			Reps:        preset.Reps,
			RestSeconds: preset.RestSeconds,
		})
	}
	return out
}

// Pool returns the exercises that train any of targets and fit the user's
// equipment. Equipment is a soft preference: when nothing fits, every
// exercise with a matching body part qualifies.
func Pool(exercises []models.Exercise, targets []string, equipment []string) []models.Exercise {
	userEq := normalizeEquipment(equipment)

	var byBody, pool []models.Exercise
	for _, ex := range exercises {
		if !trainsAny(ex, targets) {
			continue
		}
		byBody = append(byBody, ex)
		if EquipmentMatches(ex.Equipment, userEq) {
			pool = append(pool, ex)
		} else if len(userEq) == 0 && models.HasTag(ex.Equipment, bodyweightTag) {
			pool = append(pool, ex)
		}
	}
	if len(pool) == 0 {
		return byBody
	}
	return pool
}

// EquipmentMatches reports whether any exercise equipment tag and any user
// entry contain one another, ignoring case. An empty user list matches all.
func EquipmentMatches(exerciseEq, userEq []string) bool {
	if len(userEq) == 0 {
		return true
	}
	for _, e := range exerciseEq {
		e = strings.ToLower(e)
		for _, u := range userEq {
			u = strings.ToLower(u)
			if strings.Contains(e, u) || strings.Contains(u, e) {
				return true
			}
		}
	}
	return false
}

func trainsAny(ex models.Exercise, targets []string) bool {
	for _, part := range ex.BodyPart {
		part = strings.ToLower(part)
		for _, t := range targets {
			if part == strings.ToLower(t) {
				return true
			}
		}
	}
	return false
}

// normalizeEquipment trims and lowercases entries and drops blanks
func normalizeEquipment(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			out = append(out, e)
		}
	}
	return out
}

// ParseEquipment splits a comma-separated equipment list.
func ParseEquipment(s string) []string {
	return normalizeEquipment(strings.Split(s, ","))
}
