// Package catalog loads the read-only exercise catalog and exposes the tag
// vocabularies discovered in it.
package catalog

import (
	"errors"
	"fmt"

	"github.com/julianstephens/fitfinder/internal/logger"
	"github.com/julianstephens/fitfinder/internal/models"
)

// ErrNotFound is returned when an exercise id is not in the catalog
var ErrNotFound = errors.New("exercise not found")

// Vocabulary lists the distinct tag values of each facet in discovery order.
type Vocabulary struct {
	BodyParts []string
	Equipment []string
	Goals     []string
}

type Catalog struct {
	exercises []models.Exercise
	byID      map[string]int
	vocab     Vocabulary
}

// New builds a catalog from already normalized exercises. Duplicate ids are
// renamed with a numeric suffix so every id stays unique.
func New(exercises []models.Exercise) *Catalog {
	c := &Catalog{
		exercises: make([]models.Exercise, 0, len(exercises)),
		byID:      make(map[string]int, len(exercises)),
	}

	seenBody := map[string]bool{}
	seenEquip := map[string]bool{}
	seenGoal := map[string]bool{}

	for _, ex := range exercises {
		if _, dup := c.byID[ex.ID]; dup {
			original := ex.ID
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s-%d", original, n)
				if _, taken := c.byID[candidate]; !taken {
					ex.ID = candidate
					break
				}
			}
			logger.Warn("Duplicate exercise id in catalog", "id", original, "renamed", ex.ID)
		}

		c.byID[ex.ID] = len(c.exercises)
		c.exercises = append(c.exercises, ex)

		c.vocab.BodyParts = appendUnseen(c.vocab.BodyParts, seenBody, ex.BodyPart)
		c.vocab.Equipment = appendUnseen(c.vocab.Equipment, seenEquip, ex.Equipment)
		c.vocab.Goals = appendUnseen(c.vocab.Goals, seenGoal, ex.Goals)
	}
	return c
}

func appendUnseen(dst []string, seen map[string]bool, values []string) []string {
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			dst = append(dst, v)
		}
	}
	return dst
}

// All returns a copy of every exercise in catalog order.
func (c *Catalog) All() []models.Exercise {
	out := make([]models.Exercise, len(c.exercises))
	copy(out, c.exercises)
	return out
}

func (c *Catalog) Len() int {
	return len(c.exercises)
}

func (c *Catalog) Get(id string) (models.Exercise, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Exercise{}, false
	}
	return c.exercises[i], true
}

func (c *Catalog) BodyParts() []string { return append([]string(nil), c.vocab.BodyParts...) }
func (c *Catalog) Equipment() []string { return append([]string(nil), c.vocab.Equipment...) }
func (c *Catalog) Goals() []string     { return append([]string(nil), c.vocab.Goals...) }

// Vocabulary returns a copy of the facet vocabularies.
func (c *Catalog) Vocabulary() Vocabulary {
	return Vocabulary{
		BodyParts: c.BodyParts(),
		Equipment: c.Equipment(),
		Goals:     c.Goals(),
	}
}
