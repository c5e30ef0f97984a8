package search

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/models"
)

func TestStateToggleFilter(t *testing.T) {
	s0 := NewState(0)
	s1 := s0.ToggleFilter(FacetBodyPart, "chest")
	s2 := s1.ToggleFilter(FacetGoal, "strength")
	s3 := s2.ToggleFilter(FacetBodyPart, "chest")

	if len(s0.Filters.BodyParts) != 0 {
		t.Error("ToggleFilter modified the original state")
	}
	if !reflect.DeepEqual(s1.Filters.BodyParts, []string{"chest"}) {
		t.Errorf("s1 body parts = %v", s1.Filters.BodyParts)
	}
	if len(s3.Filters.BodyParts) != 0 || !reflect.DeepEqual(s3.Filters.Goals, []string{"strength"}) {
		t.Errorf("s3 filters = %+v", s3.Filters)
	}
	if !reflect.DeepEqual(s2.Filters.BodyParts, []string{"chest"}) {
		t.Error("removing from s2 leaked into s2")
	}
}

func TestStateApplySuggestion(t *testing.T) {
	vocab := catalog.Vocabulary{
		BodyParts: []string{"chest", "back"},
		Equipment: []string{"barbell", "bench"},
		Goals:     []string{"strength"},
	}

	s := NewState(0).ToggleFilter(FacetBodyPart, "back").WithQuery(fixture(), "ben")
	if len(s.Suggestions) == 0 {
		t.Fatal("expected suggestions for 'ben'")
	}

	applied := s.ApplySuggestion(vocab, "Bench")
	if applied.Query != "Bench" {
		t.Errorf("query = %q, want Bench", applied.Query)
	}
	if applied.Suggestions != nil {
		t.Errorf("suggestions should be cleared, got %v", applied.Suggestions)
	}
	if !reflect.DeepEqual(applied.Filters.Equipment, []string{"bench"}) {
		t.Errorf("equipment = %v, want [bench]", applied.Filters.Equipment)
	}
	if !reflect.DeepEqual(applied.Filters.BodyParts, []string{"back"}) {
		t.Errorf("body parts should be unioned, got %v", applied.Filters.BodyParts)
	}

	again := applied.ApplySuggestion(vocab, "bench")
	if len(again.Filters.Equipment) != 1 {
		t.Errorf("applying twice should not duplicate, got %v", again.Filters.Equipment)
	}

	name := s.ApplySuggestion(vocab, "Bench Press")
	if name.Filters.Count() != 1 {
		t.Errorf("a name suggestion should not add facets, got %+v", name.Filters)
	}
}

func TestStatePagination(t *testing.T) {
	var exercises []models.Exercise
	for i := 0; i < 450; i++ {
		exercises = append(exercises, models.Exercise{ID: fmt.Sprint(i), Name: "Lift"})
	}

	s := NewState(200)
	page, total := s.Results(exercises, nil)
	if len(page) != 200 || total != 450 || !s.HasMore(total) {
		t.Fatalf("first page = %d of %d", len(page), total)
	}

	s = s.LoadMore()
	page, _ = s.Results(exercises, nil)
	if len(page) != 400 {
		t.Errorf("second page = %d, want 400", len(page))
	}

	s = s.LoadMore()
	page, total = s.Results(exercises, nil)
	if len(page) != 450 || s.HasMore(total) {
		t.Errorf("third page = %d, hasMore = %v", len(page), s.HasMore(total))
	}
}

func TestStateFavoritesOnlyAndClear(t *testing.T) {
	favs := models.NewFavoriteSet("row")
	s := NewState(0).ToggleFavoritesOnly().WithQuery(fixture(), "barbell")

	page, total := s.Results(fixture(), favs)
	if total != 1 || page[0].ID != "row" {
		t.Errorf("favorites-only results = %v", ids(page))
	}

	cleared := s.ToggleFilter(FacetGoal, "strength").ClearAll()
	if cleared.Query != "" || !cleared.Filters.IsEmpty() {
		t.Errorf("ClearAll left %+v", cleared)
	}
	if !cleared.FavoritesOnly {
		t.Error("ClearAll should not change the favorites toggle")
	}
}
