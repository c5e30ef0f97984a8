package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/fitfinder/internal/models"
)

func TestLoadBundled(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("bundled catalog is empty")
	}

	all := c.All()
	if all[0].BodyPart[0] != "abs" {
		t.Errorf("first exercise should come from the abs file, got %v", all[0].BodyPart)
	}
	if last := all[len(all)-1]; !models.HasTag(last.BodyPart, "shoulders") {
		t.Errorf("last exercise should come from the shoulders file, got %v", last.BodyPart)
	}

	seen := map[string]bool{}
	for _, ex := range all {
		if seen[ex.ID] {
			t.Errorf("duplicate id %s", ex.ID)
		}
		seen[ex.ID] = true
		if ex.Difficulty != models.DifficultyBeginner && ex.Difficulty != models.DifficultyIntermediate && ex.Difficulty != models.DifficultyAdvanced {
			t.Errorf("%s has difficulty %q", ex.ID, ex.Difficulty)
		}
		if len(ex.Instructions) == 0 {
			t.Errorf("%s has no instructions", ex.ID)
		}
		for _, tag := range append(append(append([]string{}, ex.BodyPart...), ex.Equipment...), ex.Goals...) {
			if tag != strings.ToLower(strings.TrimSpace(tag)) || tag == "" {
				t.Errorf("%s has unnormalized tag %q", ex.ID, tag)
			}
		}
	}

	// split-day targets need matching body parts
	vocab := c.Vocabulary()
	for _, want := range []string{"chest", "back", "legs", "shoulders", "arms", "abs", "triceps", "biceps", "quads", "hamstrings", "glutes", "lats"} {
		found := false
		for _, bp := range vocab.BodyParts {
			if bp == want {
				found = true
			}
		}
		if !found {
			t.Errorf("body part %q missing from bundled vocabulary", want)
		}
	}
}

func TestCatalogAccessors(t *testing.T) {
	c := New([]models.Exercise{
		{ID: "a", Name: "A", BodyPart: []string{"chest"}, Equipment: []string{"dumbbell"}, Goals: []string{"strength"}},
		{ID: "b", Name: "B", BodyPart: []string{"back", "chest"}, Equipment: []string{"cable"}, Goals: []string{"strength", "endurance"}},
		{ID: "a", Name: "A again", BodyPart: []string{"legs"}},
	})

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if _, ok := c.Get("a-2"); !ok {
		t.Error("duplicate id should have been renamed to a-2")
	}
	if ex, ok := c.Get("a"); !ok || ex.Name != "A" {
		t.Errorf("Get(a) = %+v, %v", ex, ok)
	}
	if _, ok := c.Get("zzz"); ok {
		t.Error("Get(zzz) should miss")
	}

	wantBody := []string{"chest", "back", "legs"}
	if got := c.BodyParts(); strings.Join(got, ",") != strings.Join(wantBody, ",") {
		t.Errorf("BodyParts() = %v, want %v", got, wantBody)
	}
	if got := c.Goals(); strings.Join(got, ",") != "strength,endurance" {
		t.Errorf("Goals() = %v", got)
	}

	all := c.All()
	all[0].Name = "mutated"
	if ex, _ := c.Get("a"); ex.Name != "A" {
		t.Error("All() must return a copy")
	}
}

func TestLoadDirYAMLAndJSON(t *testing.T) {
	dir := t.TempDir()
	yamlDoc := `
- id: band-row
  name: Band Row
  bodyPart: back, lats
  equipment: [Resistance Band]
  goals: endurance
  difficulty: beginner
  rating: 4
- Title: Sled Push
  BodyPart: Legs
  Level: Advanced
  Desc: Lean in. Drive the sled.
`
	jsonDoc := `[{"id": "zz-carry", "name": "Farmer Carry", "bodyPart": "fullbody", "equipment": "dumbbell"}]`

	files := map[string]string{
		"b_extra.yaml": yamlDoc,
		"a_extra.json": jsonDoc,
		"ignored.txt":  "not a catalog",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
			t.Fatal(err)
		}
	}

	bundled, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	c, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if c.Len() != bundled.Len()+3 {
		t.Fatalf("Len() = %d, want %d", c.Len(), bundled.Len()+3)
	}

	all := c.All()
	tail := all[bundled.Len():]
	if tail[0].ID != "zz-carry" || tail[1].ID != "band-row" {
		t.Errorf("extra files should load in name order, got %s, %s", tail[0].ID, tail[1].ID)
	}

	row := tail[1]
	if strings.Join(row.BodyPart, ",") != "back,lats" || strings.Join(row.Equipment, ",") != "resistance band" {
		t.Errorf("band row tags = %v / %v", row.BodyPart, row.Equipment)
	}
	if row.Rating == nil || *row.Rating != 4 {
		t.Errorf("band row rating = %v", row.Rating)
	}

	sled := tail[2]
	if sled.ID != "Sled Push-1" || sled.Difficulty != models.DifficultyAdvanced {
		t.Errorf("sled = %+v", sled)
	}
	if strings.Join(sled.Instructions, "|") != "Lean in|Drive the sled" {
		t.Errorf("sled instructions = %v", sled.Instructions)
	}
}

func TestLoadDirErrors(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("LoadDir should fail for a missing directory")
	}

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); err == nil {
		t.Error("LoadDir should fail for a malformed file")
	}
	if _, err := ReadFile(filepath.Join(dir, "catalog.csv")); err == nil {
		t.Error("ReadFile should reject unsupported extensions")
	}
}
