package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/routine"
	"github.com/julianstephens/fitfinder/internal/search"
	"github.com/julianstephens/fitfinder/internal/storage"
	"github.com/julianstephens/fitfinder/internal/tui/components/exerciselist"
	"github.com/julianstephens/fitfinder/internal/tui/components/facetpicker"
	"github.com/julianstephens/fitfinder/internal/tui/components/loglist"
	"github.com/julianstephens/fitfinder/internal/tui/components/routineview"
	"github.com/julianstephens/fitfinder/internal/workoutlog"
)

// tabCount is the number of top-level tabs: Explore, Routine and Log.
const tabCount = 3

type LogFormModel struct {
	Date     string
	Exercise string
	Sets     string
	Notes    string
}

type Model struct {
	repo    *storage.Repository
	catalog *catalog.Catalog
	now     func() time.Time

	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	quitting bool
	width    int
	height   int
	notice   string

	// Explore
	query         search.State
	input         textinput.Model
	searching     bool
	suggestionIdx int
	favorites     models.FavoriteSet
	settings      models.Settings
	results       exerciselist.Model
	picker        facetpicker.Model
	total         int

	// Routine
	routine     *models.Routine
	routineView routineview.Model

	// Log
	log        workoutlog.Log
	logList    loglist.Model
	form       *huh.Form
	logForm    *LogFormModel
	toDeleteID string
}

// NewModel loads persisted state from repo. Load failures leave the
// affected view empty and are reported in the notice line.
func NewModel(repo *storage.Repository, cat *catalog.Catalog) Model {
	m := Model{
		repo:        repo,
		catalog:     cat,
		now:         time.Now,
		state:       constants.StateExplore,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		favorites:   models.FavoriteSet{},
		results:     exerciselist.New(80, 20),
		picker:      facetpicker.New(80, 20),
		routineView: routineview.New(80, 20),
	}

	settings, err := repo.LoadSettings()
	if err != nil {
		m.notice = fmt.Sprintf("⚠ failed to load settings: %v", err)
	}
	m.settings = settings.WithDefaults()

	if favs, err := repo.LoadFavorites(); err == nil {
		m.favorites = favs
	} else {
		m.notice = fmt.Sprintf("⚠ failed to load favorites: %v", err)
	}

	if r, err := repo.LoadLastRoutine(); err == nil && r != nil {
		m.routine = r
		m.routineView.SetRoutine(r)
	}

	entries, err := repo.LoadWorkouts()
	if err != nil {
		m.notice = fmt.Sprintf("⚠ failed to load workouts: %v", err)
	}
	m.log = workoutlog.New(entries)
	m.logList = loglist.New(m.log.Entries(), 80, 20)

	ti := textinput.New()
	ti.Placeholder = "Search exercises, body parts, equipment..."
	ti.Prompt = "🔍 "
	m.input = ti

	m.query = search.NewState(m.settings.PageSize)
	m.refreshResults()
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateExplore:
		if m.searching {
			return []key.Binding{m.keys.Enter, m.keys.Back}
		}
		keys = append(keys, m.keys.Search, m.keys.Favorite, m.keys.Filters, m.keys.LoadMore)
	case constants.StateFilters:
		return m.picker.Bindings()
	case constants.StateRoutine:
		keys = append(keys, m.keys.Generate)
	case constants.StateLog:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back}

	var actions []key.Binding
	switch m.state {
	case constants.StateExplore:
		actions = []key.Binding{m.keys.Search, m.keys.Favorite, m.keys.FavoritesOnly, m.keys.LoadMore, m.keys.Filters, m.keys.Clear}
	case constants.StateFilters:
		actions = m.picker.Bindings()
	case constants.StateRoutine:
		actions = []key.Binding{m.keys.Generate}
	case constants.StateLog:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshResults re-evaluates the query and resets the results list.
func (m *Model) refreshResults() {
	page, total := m.query.Results(m.catalog.All(), m.favorites)
	m.results.SetExercises(page, m.favorites)
	m.total = total
	if m.suggestionIdx >= len(m.query.Suggestions) {
		m.suggestionIdx = 0
	}
}

func (m *Model) toggleFavorite(id string) {
	next := search.ToggleFavorite(m.favorites, id)
	if err := m.repo.SaveFavorites(next); err != nil {
		m.notice = fmt.Sprintf("⚠ failed to save favorites: %v", err)
		return
	}
	m.favorites = next
	m.refreshResults()
}

// regenerate builds a fresh routine from the saved defaults and stores it
// as the last routine.
func (m *Model) regenerate() {
	s := m.settings
	r := routine.NewGenerator(m.catalog.All()).Generate(routine.Request{
		Goal:          s.DefaultGoal,
		DurationWeeks: s.DefaultDurationWeeks,
		DaysPerWeek:   s.DefaultDaysPerWeek,
		Equipment:     s.DefaultEquipment,
		Seed:          routine.RandomSeed(),
	})
	if err := m.repo.SaveLastRoutine(r); err != nil {
		m.notice = fmt.Sprintf("⚠ failed to save routine: %v", err)
	} else {
		m.notice = fmt.Sprintf("✓ Generated %d-week %s routine", r.DurationWeeks, r.Goal)
	}
	m.routine = &r
	m.routineView.SetRoutine(&r)
}

func (m *Model) saveLog(next workoutlog.Log) bool {
	if err := m.repo.SaveWorkouts(next.Entries()); err != nil {
		m.notice = fmt.Sprintf("⚠ failed to save workouts: %v", err)
		return false
	}
	m.log = next
	m.logList.SetEntries(next.Entries())
	return true
}

func (m *Model) resize() {
	w, h := m.width-4, m.height-8
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.input.Width = w - 4
	m.results.SetSize(w, h-4)
	m.picker.SetSize(w, h-4)
	m.routineView.SetSize(w, h)
	m.logList.SetSize(w, h)
}
