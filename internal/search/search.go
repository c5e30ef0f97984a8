// Package search filters the exercise catalog by free text, facets and
// favorites, and derives suggestions from partial queries.
package search

import (
	"strings"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

// Search returns the exercises matching query and filters in catalog order.
// A blank query and empty facets pass everything through.
func Search(exercises []models.Exercise, query string, filters models.FilterOptions) []models.Exercise {
	q := normalizeQuery(query)

	out := make([]models.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if q != "" && !matchesQuery(ex, q) {
			continue
		}
		if !matchesFacets(ex, filters) {
			continue
		}
		out = append(out, ex)
	}
	return out
}

// FilterFavorites keeps only the exercises whose id is in favorites.
func FilterFavorites(exercises []models.Exercise, favorites models.FavoriteSet) []models.Exercise {
	out := make([]models.Exercise, 0, len(exercises))
	for _, ex := range exercises {
		if favorites.Has(ex.ID) {
			out = append(out, ex)
		}
	}
	return out
}

// Suggest returns up to MaxSuggestions distinct names and tags that contain
// query, in the order they are first seen while scanning the catalog.
func Suggest(exercises []models.Exercise, query string) []string {
	q := normalizeQuery(query)
	if q == "" {
		return nil
	}

	seen := make(map[string]bool)
	var out []string
	add := func(v string) bool {
		if !seen[v] && strings.Contains(strings.ToLower(v), q) {
			seen[v] = true
			out = append(out, v)
		}
		return len(out) >= constants.MaxSuggestions
	}

	for _, ex := range exercises {
		if add(ex.Name) {
			return out
		}
		for _, group := range [][]string{ex.BodyPart, ex.Equipment, ex.Goals} {
			for _, tag := range group {
				if add(tag) {
					return out
				}
			}
		}
	}
	return out
}

// ToggleFavorite returns a new set with id added, or removed if present.
// The input set is not modified.
func ToggleFavorite(favorites models.FavoriteSet, id string) models.FavoriteSet {
	next := favorites.Clone()
	if next.Has(id) {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return next
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

func matchesQuery(ex models.Exercise, q string) bool {
	if strings.Contains(strings.ToLower(ex.Name), q) {
		return true
	}
	for _, group := range [][]string{ex.BodyPart, ex.Equipment, ex.Goals} {
		for _, tag := range group {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
	}
	return strings.Contains(strings.ToLower(string(ex.Difficulty)), q)
}

func matchesFacets(ex models.Exercise, f models.FilterOptions) bool {
	return matchesFacet(ex.BodyPart, f.BodyParts) &&
		matchesFacet(ex.Equipment, f.Equipment) &&
		matchesFacet(ex.Goals, f.Goals)
}

func matchesFacet(tags, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if models.HasTag(tags, s) {
			return true
		}
	}
	return false
}
