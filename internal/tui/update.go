package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/fitfinder/internal/constants"
	"github.com/julianstephens/fitfinder/internal/tui/components/exerciselist"
	"github.com/julianstephens/fitfinder/internal/tui/components/facetpicker"
	"github.com/julianstephens/fitfinder/internal/tui/components/loglist"
	"github.com/julianstephens/fitfinder/internal/validation"
	"github.com/julianstephens/fitfinder/internal/workoutlog"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case exerciselist.ToggleFavoriteMsg:
		m.toggleFavorite(msg.ID)
		return m, nil

	case facetpicker.ToggleFacetMsg:
		m.query = m.query.ToggleFilter(msg.Facet, msg.Value)
		m.refreshResults()
		m.picker.SetOptions(m.catalog.Vocabulary(), m.query.Filters)
		return m, nil

	case facetpicker.CloseMsg:
		m.state = constants.StateExplore
		return m, nil

	case loglist.AddEntryMsg:
		m.logForm = &LogFormModel{Date: m.now().Format(constants.DateFormat)}
		m.form = newLogForm(m.logForm)
		m.state = constants.StateAddLog
		return m, m.form.Init()

	case loglist.DeleteEntryMsg:
		m.toDeleteID = msg.ID
		m.state = constants.StateConfirmDelete
		return m, nil
	}

	switch m.state {
	case constants.StateAddLog:
		return m.updateAddLog(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StateFilters:
		return m.updateFilters(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearchInput(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	switch m.state {
	case constants.StateRoutine:
		return m.updateRoutine(msg)
	case constants.StateLog:
		return m.updateLog(msg)
	default:
		return m.updateExplore(msg)
	}
}

func (m Model) updateExplore(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Search):
			m.searching = true
			m.notice = ""
			return m, tea.Batch(m.input.Focus(), textinput.Blink)
		case key.Matches(msg, m.keys.FavoritesOnly):
			m.query = m.query.ToggleFavoritesOnly()
			m.refreshResults()
			return m, nil
		case key.Matches(msg, m.keys.Filters):
			m.picker.SetOptions(m.catalog.Vocabulary(), m.query.Filters)
			m.notice = ""
			m.state = constants.StateFilters
			return m, nil
		case key.Matches(msg, m.keys.LoadMore):
			if m.query.HasMore(m.total) {
				m.query = m.query.LoadMore()
				m.refreshResults()
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.query = m.query.ClearAll()
			m.input.SetValue("")
			m.refreshResults()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

// updateFilters hands keys to the facet picker; its messages come back
// through Update.
func (m Model) updateFilters(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// updateSearchInput routes keys to the focused search box. Arrow keys move
// through suggestions; enter applies the highlighted one.
func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.searching = false
		m.input.Blur()
		return m, nil
	case tea.KeyUp:
		if m.suggestionIdx > 0 {
			m.suggestionIdx--
		}
		return m, nil
	case tea.KeyDown:
		if m.suggestionIdx < len(m.query.Suggestions)-1 {
			m.suggestionIdx++
		}
		return m, nil
	case tea.KeyEnter:
		if len(m.query.Suggestions) > 0 {
			m.query = m.query.ApplySuggestion(m.catalog.Vocabulary(), m.query.Suggestions[m.suggestionIdx])
			m.input.SetValue(m.query.Query)
			m.input.CursorEnd()
			m.suggestionIdx = 0
			m.refreshResults()
			return m, nil
		}
		m.searching = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.query = m.query.WithQuery(m.catalog.All(), v)
		m.suggestionIdx = 0
		m.refreshResults()
	}
	return m, cmd
}

func (m Model) updateRoutine(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Generate) {
		m.regenerate()
		return m, nil
	}
	var cmd tea.Cmd
	m.routineView, cmd = m.routineView.Update(msg)
	return m, cmd
}

func (m Model) updateLog(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.logList, cmd = m.logList.Update(msg)
	return m, cmd
}

func newLogForm(f *LogFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&f.Date).
				Validate(func(s string) error {
					if !validation.IsValidDate(strings.TrimSpace(s)) {
						return errors.New("enter a date as YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Exercise").
				Value(&f.Exercise).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return workoutlog.ErrEmptyExercise
					}
					return nil
				}),
			huh.NewInput().
				Title("Sets").
				Description("reps:weight, comma separated (e.g. 10:60, 8:70)").
				Value(&f.Sets),
			huh.NewText().
				Title("Notes").
				Value(&f.Notes),
		),
	)
}

// parseSets splits "10:60, 8:70" into set inputs.
func parseSets(s string) []workoutlog.SetInput {
	var sets []workoutlog.SetInput
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		sets = append(sets, workoutlog.ParseSet(part))
	}
	return sets
}

func (m Model) updateAddLog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateLog
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.submitLogForm()
		m.state = constants.StateLog
	case huh.StateAborted:
		m.state = constants.StateLog
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) submitLogForm() {
	f := m.logForm
	entry, err := workoutlog.NewEntry(f.Date, f.Exercise, f.Notes, parseSets(f.Sets))
	if err != nil {
		m.notice = fmt.Sprintf("⚠ %v", err)
		return
	}
	next, err := m.log.Save(entry)
	if err != nil {
		m.notice = fmt.Sprintf("⚠ %v", err)
		return
	}
	if m.saveLog(next) {
		m.notice = fmt.Sprintf("✓ Logged %s", entry.Exercise)
	}
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if next, err := m.log.Delete(m.toDeleteID); err != nil {
				m.notice = fmt.Sprintf("⚠ %v", err)
			} else if m.saveLog(next) {
				m.notice = "✓ Entry deleted"
			}
			m.toDeleteID = ""
			m.state = constants.StateLog
		case "n", "N", "esc":
			m.toDeleteID = ""
			m.state = constants.StateLog
		}
	}
	return m, nil
}
