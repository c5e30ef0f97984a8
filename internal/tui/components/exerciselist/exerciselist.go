package exerciselist

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/fitfinder/internal/models"
)

type ToggleFavoriteMsg struct {
	ID string
}

type Item struct {
	Exercise models.Exercise
	Favorite bool
}

func (i Item) Title() string {
	if i.Favorite {
		return "★ " + i.Exercise.Name
	}
	return i.Exercise.Name
}

func (i Item) Description() string {
	parts := []string{}
	if len(i.Exercise.BodyPart) > 0 {
		parts = append(parts, strings.Join(i.Exercise.BodyPart, ", "))
	}
	if len(i.Exercise.Equipment) > 0 {
		parts = append(parts, strings.Join(i.Exercise.Equipment, ", "))
	}
	parts = append(parts, string(i.Exercise.Difficulty))
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string { return i.Exercise.Name }

type KeyMap struct {
	Favorite key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "favorite"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return Model{list: l, keys: DefaultKeyMap()}
}

// SetExercises replaces the visible page, marking members of favorites.
func (m *Model) SetExercises(page []models.Exercise, favorites models.FavoriteSet) {
	items := make([]list.Item, len(page))
	for i, ex := range page {
		items[i] = Item{Exercise: ex, Favorite: favorites.Has(ex.ID)}
	}
	m.list.SetItems(items)
}

func (m Model) Selected() (models.Exercise, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i.Exercise, ok
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Favorite) {
		if i, ok := m.list.SelectedItem().(Item); ok {
			return m, func() tea.Msg { return ToggleFavoriteMsg{ID: i.Exercise.ID} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No exercises match.\n  Press 'x' to clear filters."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
