package tui

import (
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/search"
	"github.com/julianstephens/fitfinder/internal/storage"
	"github.com/julianstephens/fitfinder/internal/tui/components/exerciselist"
	"github.com/julianstephens/fitfinder/internal/tui/components/facetpicker"
	"github.com/julianstephens/fitfinder/internal/tui/components/loglist"
	"github.com/julianstephens/fitfinder/internal/workoutlog"
)

func fixture() []models.Exercise {
	return []models.Exercise{
		{ID: "push-up", Name: "Push-Up", BodyPart: []string{"chest", "triceps"}, Equipment: []string{"body weight"}, Goals: []string{"endurance"}, Difficulty: models.DifficultyBeginner},
		{ID: "bench", Name: "Bench Press", BodyPart: []string{"chest"}, Equipment: []string{"barbell", "bench"}, Goals: []string{"strength", "muscle-gain"}, Difficulty: models.DifficultyIntermediate},
		{ID: "row", Name: "Bent-Over Row", BodyPart: []string{"back"}, Equipment: []string{"barbell"}, Goals: []string{"strength"}, Difficulty: models.DifficultyIntermediate},
		{ID: "curl", Name: "Hammer Curl", BodyPart: []string{"arms", "biceps"}, Equipment: []string{"dumbbell"}, Goals: []string{"muscle-gain"}, Difficulty: models.DifficultyBeginner},
		{ID: "deadlift", Name: "Deadlift", BodyPart: []string{"back", "hamstrings"}, Equipment: []string{"barbell"}, Goals: []string{"strength"}, Difficulty: models.DifficultyAdvanced},
	}
}

func newTestModel(t *testing.T) (Model, *storage.Repository) {
	t.Helper()
	repo := storage.NewRepository(storage.NewMemoryStore())
	return newTestModelWith(t, repo), repo
}

func newTestModelWith(t *testing.T, repo *storage.Repository) Model {
	t.Helper()
	m := NewModel(repo, catalog.New(fixture()))
	m.now = func() time.Time { return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC) }
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(t, m, keyMsg(k))
	}
	return m
}

func TestNewModelShowsCatalog(t *testing.T) {
	m, _ := newTestModel(t)

	if m.state != constants.StateExplore {
		t.Errorf("initial state = %v, want explore", m.state)
	}
	if m.total != 5 || m.results.Len() != 5 {
		t.Errorf("total=%d visible=%d, want 5/5", m.total, m.results.Len())
	}
	if m.routine != nil {
		t.Error("expected no routine before one is generated")
	}
	if !strings.Contains(m.View(), "Showing 5 of 5") {
		t.Errorf("view missing result status:\n%s", m.View())
	}
}

func TestTabsCycle(t *testing.T) {
	m, _ := newTestModel(t)

	want := []constants.SessionState{constants.StateRoutine, constants.StateLog, constants.StateExplore}
	for i, w := range want {
		m = press(t, m, "tab")
		if m.state != w {
			t.Fatalf("after %d tabs state = %v, want %v", i+1, m.state, w)
		}
	}
	m = press(t, m, "shift+tab")
	if m.state != constants.StateLog {
		t.Errorf("shift+tab from explore = %v, want log", m.state)
	}
}

func TestToggleFavoritePersists(t *testing.T) {
	m, repo := newTestModel(t)

	m, cmd := send(t, m, keyMsg("f"))
	if cmd == nil {
		t.Fatal("expected a command from the favorite key")
	}
	msg, ok := cmd().(exerciselist.ToggleFavoriteMsg)
	if !ok || msg.ID != "push-up" {
		t.Fatalf("got %#v, want toggle of push-up", msg)
	}
	m, _ = send(t, m, msg)

	if !m.favorites.Has("push-up") {
		t.Error("favorite not recorded in model")
	}
	stored, err := repo.LoadFavorites()
	if err != nil {
		t.Fatalf("LoadFavorites: %v", err)
	}
	if !stored.Has("push-up") {
		t.Error("favorite not persisted")
	}

	m = press(t, m, "F")
	if m.total != 1 {
		t.Errorf("favorites-only total = %d, want 1", m.total)
	}
	m = press(t, m, "F")
	if m.total != 5 {
		t.Errorf("after clearing favorites-only total = %d, want 5", m.total)
	}
}

func TestSearchAppliesSuggestion(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "/")
	if !m.searching {
		t.Fatal("expected search input to be focused")
	}
	m = press(t, m, "barb")
	if m.query.Query != "barb" {
		t.Fatalf("query = %q, want barb", m.query.Query)
	}
	if m.total != 3 {
		t.Errorf("total for barb = %d, want 3", m.total)
	}
	if !reflect.DeepEqual(m.query.Suggestions, []string{"barbell"}) {
		t.Fatalf("suggestions = %v", m.query.Suggestions)
	}

	m = press(t, m, "enter")
	if m.query.Query != "barbell" || m.input.Value() != "barbell" {
		t.Errorf("query=%q input=%q, want barbell", m.query.Query, m.input.Value())
	}
	if !reflect.DeepEqual(m.query.Filters.Equipment, []string{"barbell"}) {
		t.Errorf("equipment filter = %v, want [barbell]", m.query.Filters.Equipment)
	}
	if m.total != 3 {
		t.Errorf("total after suggestion = %d, want 3", m.total)
	}

	m = press(t, m, "esc")
	if m.searching {
		t.Fatal("esc should leave the search input")
	}
	m = press(t, m, "x")
	if m.total != 5 || m.query.Query != "" || !m.query.Filters.IsEmpty() {
		t.Errorf("clear left total=%d query=%q filters=%+v", m.total, m.query.Query, m.query.Filters)
	}
}

func TestLoadMore(t *testing.T) {
	repo := storage.NewRepository(storage.NewMemoryStore())
	s := models.DefaultSettings()
	s.PageSize = 2
	if err := repo.SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	m := newTestModelWith(t, repo)

	for _, want := range []int{2, 4, 5, 5} {
		if got := m.results.Len(); got != want {
			t.Fatalf("visible = %d, want %d", got, want)
		}
		m = press(t, m, "m")
	}
}

func TestFacetPickerToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "t")
	if m.state != constants.StateFilters {
		t.Fatalf("state = %v, want StateFilters", m.state)
	}
	if got, want := m.picker.Len(), 13; got != want {
		t.Fatalf("picker options = %d, want %d", got, want)
	}
	if o, ok := m.picker.Selected(); !ok || o.Facet != search.FacetBodyPart || o.Value != "chest" {
		t.Fatalf("first option = %+v", o)
	}

	toggle := func(m Model) Model {
		t.Helper()
		m, cmd := send(t, m, keyMsg("enter"))
		if cmd == nil {
			t.Fatal("enter should emit a toggle message")
		}
		msg, ok := cmd().(facetpicker.ToggleFacetMsg)
		if !ok {
			t.Fatalf("cmd() = %T, want ToggleFacetMsg", cmd())
		}
		m, _ = send(t, m, msg)
		return m
	}

	m = toggle(m)
	if !reflect.DeepEqual(m.query.Filters.BodyParts, []string{"chest"}) {
		t.Errorf("body parts = %v, want [chest]", m.query.Filters.BodyParts)
	}
	if m.total != 2 {
		t.Errorf("total = %d, want 2", m.total)
	}
	if o, _ := m.picker.Selected(); !o.Selected {
		t.Error("chest should be checked after toggling on")
	}
	if !strings.Contains(m.View(), "body: chest") {
		t.Error("view should show the chest chip")
	}

	m = toggle(m)
	if len(m.query.Filters.BodyParts) != 0 {
		t.Errorf("body parts = %v, want none", m.query.Filters.BodyParts)
	}
	if m.total != 5 {
		t.Errorf("total = %d, want 5", m.total)
	}

	m, cmd := send(t, m, keyMsg("esc"))
	if cmd == nil {
		t.Fatal("esc should close the picker")
	}
	m, _ = send(t, m, cmd())
	if m.state != constants.StateExplore {
		t.Errorf("state = %v, want StateExplore", m.state)
	}
}

func TestRegenerateRoutine(t *testing.T) {
	m, repo := newTestModel(t)

	m = press(t, m, "tab", "g")
	if m.routine == nil {
		t.Fatal("expected a routine after g")
	}
	if len(m.routine.Weeks) != constants.DefaultDurationWeeks {
		t.Errorf("weeks = %d, want %d", len(m.routine.Weeks), constants.DefaultDurationWeeks)
	}
	stored, err := repo.LoadLastRoutine()
	if err != nil || stored == nil {
		t.Fatalf("LoadLastRoutine = %v, %v", stored, err)
	}
	if stored.Goal != constants.GoalMuscleGain {
		t.Errorf("stored goal = %q", stored.Goal)
	}
}

func TestDeleteLogEntry(t *testing.T) {
	repo := storage.NewRepository(storage.NewMemoryStore())
	entries := []models.WorkoutLogEntry{
		{ID: "w-2", Date: "2026-03-02", Exercise: "Squat"},
		{ID: "w-1", Date: "2026-03-01", Exercise: "Bench Press"},
	}
	if err := repo.SaveWorkouts(entries); err != nil {
		t.Fatalf("SaveWorkouts: %v", err)
	}
	m := newTestModelWith(t, repo)

	m = press(t, m, "tab", "tab")
	m, cmd := send(t, m, keyMsg("d"))
	if cmd == nil {
		t.Fatal("expected a command from the delete key")
	}
	m, _ = send(t, m, cmd())
	if m.state != constants.StateConfirmDelete || m.toDeleteID != "w-2" {
		t.Fatalf("state=%v id=%q, want confirm delete of w-2", m.state, m.toDeleteID)
	}

	m = press(t, m, "y")
	if m.state != constants.StateLog {
		t.Errorf("state after confirm = %v, want log", m.state)
	}
	stored, err := repo.LoadWorkouts()
	if err != nil {
		t.Fatalf("LoadWorkouts: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "w-1" {
		t.Errorf("stored = %+v, want only w-1", stored)
	}
}

func TestAddLogOpensForm(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, "tab", "tab")
	m, cmd := send(t, m, keyMsg("a"))
	if cmd == nil {
		t.Fatal("expected a command from the add key")
	}
	if _, ok := cmd().(loglist.AddEntryMsg); !ok {
		t.Fatal("add key did not request a new entry")
	}
	m, _ = send(t, m, loglist.AddEntryMsg{})
	if m.state != constants.StateAddLog || m.form == nil {
		t.Fatalf("state = %v, want add-log with a form", m.state)
	}
	if m.logForm.Date != "2026-03-02" {
		t.Errorf("default date = %q", m.logForm.Date)
	}

	m = press(t, m, "esc")
	if m.state != constants.StateLog {
		t.Errorf("esc from form = %v, want log", m.state)
	}
}

func TestSubmitLogForm(t *testing.T) {
	m, repo := newTestModel(t)

	m.logForm = &LogFormModel{Date: "2026-03-02", Exercise: " Squat ", Sets: "5:100, 5:105, ", Notes: "felt good"}
	m.submitLogForm()

	if m.log.Len() != 1 {
		t.Fatalf("log len = %d, want 1", m.log.Len())
	}
	entry := m.log.Entries()[0]
	if entry.Exercise != "Squat" || len(entry.Sets) != 2 || entry.Volume() != 1025 {
		t.Errorf("entry = %+v", entry)
	}
	stored, _ := repo.LoadWorkouts()
	if len(stored) != 1 {
		t.Errorf("stored %d entries, want 1", len(stored))
	}

	m.logForm = &LogFormModel{Date: "2026-03-02", Exercise: "  "}
	m.submitLogForm()
	if m.log.Len() != 1 {
		t.Errorf("blank exercise was saved")
	}
	if !strings.Contains(m.notice, workoutlog.ErrEmptyExercise.Error()) {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestParseSets(t *testing.T) {
	tests := []struct {
		in   string
		want []workoutlog.SetInput
	}{
		{"", nil},
		{"10:60", []workoutlog.SetInput{{Reps: "10", Weight: "60"}}},
		{"10:60, 8", []workoutlog.SetInput{{Reps: "10", Weight: "60"}, {Reps: "8", Weight: ""}}},
		{" , ", nil},
	}
	for _, tt := range tests {
		if got := parseSets(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("parseSets(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
