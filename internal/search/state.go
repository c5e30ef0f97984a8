package search

import (
	"strings"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
)

// Facet names a filter dimension.
type Facet int

const (
	FacetBodyPart Facet = iota
	FacetEquipment
	FacetGoal
)

func (f Facet) String() string {
	switch f {
	case FacetBodyPart:
		return "body part"
	case FacetEquipment:
		return "equipment"
	case FacetGoal:
		return "goal"
	default:
		return "unknown"
	}
}

// State is the explorer's query state. Every method returns a new value;
// a State never changes after construction.
type State struct {
	Query         string
	Filters       models.FilterOptions
	FavoritesOnly bool
	Visible       int
	PageSize      int
	Suggestions   []string
}

// NewState returns an empty query showing the first page.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = constants.DefaultPageSize
	}
	return State{Visible: pageSize, PageSize: pageSize}
}

func (s State) clone() State {
	s.Filters = s.Filters.Clone()
	s.Suggestions = append([]string(nil), s.Suggestions...)
	return s
}

// WithQuery sets the text query and recomputes suggestions against exercises.
func (s State) WithQuery(exercises []models.Exercise, q string) State {
	next := s.clone()
	next.Query = q
	next.Suggestions = Suggest(exercises, q)
	return next
}

// ToggleFilter adds value to the facet, or removes it if already selected.
func (s State) ToggleFilter(facet Facet, value string) State {
	next := s.clone()
	sel := next.facet(facet)
	for i, v := range *sel {
		if v == value {
			*sel = append((*sel)[:i], (*sel)[i+1:]...)
			return next
		}
	}
	*sel = append(*sel, value)
	return next
}

// ClearAll drops every facet selection and the query.
func (s State) ClearAll() State {
	next := s.clone()
	next.Query = ""
	next.Filters = models.FilterOptions{}
	next.Suggestions = nil
	return next
}

func (s State) ToggleFavoritesOnly() State {
	next := s.clone()
	next.FavoritesOnly = !next.FavoritesOnly
	return next
}

// LoadMore reveals one more page of results.
func (s State) LoadMore() State {
	next := s.clone()
	step := next.PageSize
	if step <= 0 {
		step = constants.DefaultPageSize
	}
	next.Visible += step
	return next
}

// ApplySuggestion makes suggestion the query. If it names a known tag of
// any facet, that tag is also added to the facet's selection.
func (s State) ApplySuggestion(vocab catalog.Vocabulary, suggestion string) State {
	next := s.clone()
	for facet, values := range map[Facet][]string{
		FacetBodyPart:  vocab.BodyParts,
		FacetEquipment: vocab.Equipment,
		FacetGoal:      vocab.Goals,
	} {
		match, ok := findFold(values, suggestion)
		if !ok {
			continue
		}
		sel := next.facet(facet)
		if !models.HasTag(*sel, match) {
			*sel = append(*sel, match)
		}
	}
	next.Query = suggestion
	next.Suggestions = nil
	return next
}

func (s *State) facet(f Facet) *[]string {
	switch f {
	case FacetEquipment:
		return &s.Filters.Equipment
	case FacetGoal:
		return &s.Filters.Goals
	default:
		return &s.Filters.BodyParts
	}
}

func findFold(values []string, s string) (string, bool) {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return v, true
		}
	}
	return "", false
}

// Results evaluates the state: search, then the optional favorites filter.
// The full match count is returned along with the visible page.
func (s State) Results(exercises []models.Exercise, favorites models.FavoriteSet) (page []models.Exercise, total int) {
	matched := Search(exercises, s.Query, s.Filters)
	if s.FavoritesOnly {
		matched = FilterFavorites(matched, favorites)
	}
	return Page(matched, s.Visible), len(matched)
}

// HasMore reports whether total results exceed the visible window.
func (s State) HasMore(total int) bool {
	return total > s.Visible
}

// Page truncates results to the first visible entries.
func Page(results []models.Exercise, visible int) []models.Exercise {
	if visible < 0 {
		visible = 0
	}
	if len(results) > visible {
		return results[:visible]
	}
	return results
}
