package exercises

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/cli"
	"github.com/julianstephens/fitfinder/internal/storage"
)

func setupContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	ctx := cli.NewContext(storage.NewMemoryStore(), "")
	ctx.Out = &buf
	return ctx, &buf
}

func TestExerciseSearchCmd(t *testing.T) {
	ctx, buf := setupContext(t)
	cat, err := ctx.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}

	cmd := &ExerciseSearchCmd{Limit: 2, Page: 1}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, fmt.Sprintf("Exercises 1-2 of %d", cat.Len())) {
		t.Errorf("missing page header:\n%s", out)
	}
	if !strings.Contains(out, "use --page 2") {
		t.Errorf("missing next page hint:\n%s", out)
	}
}

func TestExerciseSearchCmd_QueryAndFacets(t *testing.T) {
	ctx, buf := setupContext(t)

	cmd := &ExerciseSearchCmd{Query: []string{"bench", "press"}, Equipment: []string{"barbell"}, Page: 1, ShowIDs: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Barbell Bench Press (ID: chest-bench-press)") {
		t.Errorf("expected bench press in results:\n%s", out)
	}
	if strings.Contains(out, "Push-Up") {
		t.Errorf("push-up should not match a barbell bench press query:\n%s", out)
	}
}

func TestExerciseSearchCmd_FacetCase(t *testing.T) {
	tests := []struct {
		name string
		cmd  ExerciseSearchCmd
	}{
		{"body part", ExerciseSearchCmd{BodyPart: []string{" Chest "}}},
		{"equipment", ExerciseSearchCmd{Equipment: []string{"BARBELL"}}},
		{"blank values ignored", ExerciseSearchCmd{BodyPart: []string{"Chest", "  "}, Goal: []string{""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf := setupContext(t)
			tt.cmd.Query = []string{"bench", "press"}
			tt.cmd.Page = 1
			tt.cmd.ShowIDs = true
			if err := tt.cmd.Run(ctx); err != nil {
				t.Fatalf("search failed: %v", err)
			}
			if !strings.Contains(buf.String(), "(ID: chest-bench-press)") {
				t.Errorf("expected bench press in results:\n%s", buf.String())
			}
		})
	}
}

func TestExerciseSearchCmd_NoResultsAndPastEnd(t *testing.T) {
	ctx, buf := setupContext(t)

	if err := (&ExerciseSearchCmd{Query: []string{"zzzz-nothing"}, Page: 1}).Run(ctx); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No exercises found") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if err := (&ExerciseSearchCmd{Page: 1000}).Run(ctx); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(buf.String(), "past the end") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFavoriteToggleAndList(t *testing.T) {
	ctx, buf := setupContext(t)

	if err := (&FavoriteToggleCmd{ID: "chest-push-up"}).Run(ctx); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Added Push-Up") {
		t.Errorf("output = %q", buf.String())
	}
	favorites, err := ctx.Repo.LoadFavorites()
	if err != nil {
		t.Fatalf("LoadFavorites: %v", err)
	}
	if !favorites.Has("chest-push-up") {
		t.Fatal("favorite not persisted")
	}

	buf.Reset()
	if err := (&ExerciseSearchCmd{Favorites: true, Page: 1}).Run(ctx); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Exercises 1-1 of 1") || !strings.Contains(buf.String(), "★ Push-Up") {
		t.Errorf("favorites-only search output:\n%s", buf.String())
	}

	buf.Reset()
	if err := (&FavoriteListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Favorites (1)") {
		t.Errorf("list output:\n%s", buf.String())
	}

	buf.Reset()
	if err := (&FavoriteToggleCmd{ID: "chest-push-up"}).Run(ctx); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Removed Push-Up") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	if err := (&FavoriteListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No favorites yet") {
		t.Errorf("list output:\n%s", buf.String())
	}
}

func TestUnknownExerciseID(t *testing.T) {
	tests := []struct {
		name string
		run  func(*cli.Context) error
	}{
		{"favorite toggle", (&FavoriteToggleCmd{ID: "no-such-exercise"}).Run},
		{"show", (&ExerciseShowCmd{ID: "no-such-exercise"}).Run},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupContext(t)
			err := tt.run(ctx)
			if !errors.Is(err, catalog.ErrNotFound) {
				t.Fatalf("err = %v, want catalog.ErrNotFound", err)
			}
			if !strings.Contains(err.Error(), "no-such-exercise") {
				t.Errorf("error %q should name the id", err)
			}
		})
	}
}

func TestExerciseShowAndSuggest(t *testing.T) {
	ctx, buf := setupContext(t)

	if err := (&ExerciseShowCmd{ID: "chest-bench-press"}).Run(ctx); err != nil {
		t.Fatalf("show failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Barbell Bench Press", "Instructions:", "1. Lie on the bench", "Tips: Keep shoulder blades retracted", "Rating:     4.8/5"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := (&ExerciseSuggestCmd{Query: "barb"}).Run(ctx); err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) == 0 || len(lines) > 8 {
		t.Errorf("suggestions = %v", lines)
	}
	for _, l := range lines {
		if !strings.Contains(strings.ToLower(l), "barb") {
			t.Errorf("suggestion %q does not contain the query", l)
		}
	}

	buf.Reset()
	if err := (&ExerciseTagsCmd{}).Run(ctx); err != nil {
		t.Fatalf("tags failed: %v", err)
	}
	if !strings.Contains(buf.String(), "barbell") {
		t.Errorf("tags output:\n%s", buf.String())
	}
}
