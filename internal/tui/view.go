package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/fitfinder/internal/constants"
)

var tabTitles = []string{"Explore", "Routine", "Log"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateExplore:
		content = m.viewExplore()
	case constants.StateRoutine:
		content = docStyle.Render(m.routineView.View())
	case constants.StateLog:
		content = docStyle.Render(m.logList.View())
	case constants.StateAddLog:
		content = docStyle.Render(m.form.View())
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StateFilters:
		content = m.viewFilters()
	}

	parts := []string{m.viewTabs()}
	if m.notice != "" {
		parts = append(parts, noticeStyle.Render(m.notice))
	}
	parts = append(parts, content, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	active := m.state
	switch active {
	case constants.StateAddLog, constants.StateConfirmDelete:
		active = constants.StateLog
	case constants.StateFilters:
		active = constants.StateExplore
	}
	tabs := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs[i] = activeTabStyle.Render(title)
		} else {
			tabs[i] = inactiveTabStyle.Render(title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewExplore() string {
	var b strings.Builder
	b.WriteString(m.input.View() + "\n")

	if m.searching {
		for i, s := range m.query.Suggestions {
			if i == m.suggestionIdx {
				b.WriteString(selectedSuggestionStyle.Render("› "+s) + "\n")
			} else {
				b.WriteString(suggestionStyle.Render("  "+s) + "\n")
			}
		}
	}

	if chips := m.chips(); len(chips) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n")
	}

	shown := m.results.Len()
	status := fmt.Sprintf("Showing %d of %d", shown, m.total)
	if m.query.HasMore(m.total) {
		status += " · m to load more"
	}
	b.WriteString(mutedStyle.Render(status) + "\n")
	b.WriteString(m.results.View())
	return docStyle.Render(b.String())
}

func (m Model) viewFilters() string {
	var b strings.Builder
	if chips := m.chips(); len(chips) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, chips...) + "\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d exercises match", m.total)) + "\n")
	b.WriteString(m.picker.View())
	return docStyle.Render(b.String())
}

func (m Model) chips() []string {
	var chips []string
	add := func(prefix string, values []string) {
		for _, v := range values {
			chips = append(chips, chipStyle.Render(prefix+v)+" ")
		}
	}
	add("body: ", m.query.Filters.BodyParts)
	add("equipment: ", m.query.Filters.Equipment)
	add("goal: ", m.query.Filters.Goals)
	if m.query.FavoritesOnly {
		chips = append(chips, chipStyle.Render("★ favorites"))
	}
	return chips
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this workout entry?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
