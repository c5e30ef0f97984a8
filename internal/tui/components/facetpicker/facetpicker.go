package facetpicker

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/fitfinder/internal/catalog"
	"github.com/julianstephens/fitfinder/internal/models"
	"github.com/julianstephens/fitfinder/internal/search"
)

// ToggleFacetMsg asks the parent to add or remove one facet value.
type ToggleFacetMsg struct {
	Facet search.Facet
	Value string
}

type CloseMsg struct{}

type Option struct {
	Facet    search.Facet
	Value    string
	Selected bool
}

func (o Option) Title() string {
	if o.Selected {
		return "☑ " + o.Value
	}
	return "☐ " + o.Value
}

func (o Option) Description() string { return o.Facet.String() }

func (o Option) FilterValue() string { return o.Value }

type KeyMap struct {
	Toggle key.Binding
	Close  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle filter"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "t"),
			key.WithHelp("esc", "done"),
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

// SetOptions lists every vocabulary value, body parts first, checking the
// ones present in filters. The cursor position is kept.
func (m *Model) SetOptions(vocab catalog.Vocabulary, filters models.FilterOptions) {
	var items []list.Item
	add := func(facet search.Facet, values, selected []string) {
		for _, v := range values {
			items = append(items, Option{Facet: facet, Value: v, Selected: models.HasTag(selected, v)})
		}
	}
	add(search.FacetBodyPart, vocab.BodyParts, filters.BodyParts)
	add(search.FacetEquipment, vocab.Equipment, filters.Equipment)
	add(search.FacetGoal, vocab.Goals, filters.Goals)
	m.list.SetItems(items)
}

func (m Model) Selected() (Option, bool) {
	o, ok := m.list.SelectedItem().(Option)
	return o, ok
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Bindings() []key.Binding {
	return []key.Binding{m.keys.Toggle, m.keys.Close}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if o, ok := m.list.SelectedItem().(Option); ok {
				return m, func() tea.Msg { return ToggleFacetMsg{Facet: o.Facet, Value: o.Value} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Close):
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  The catalog has no tags to filter by."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
