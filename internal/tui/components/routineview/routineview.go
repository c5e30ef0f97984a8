package routineview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/fitfinder/internal/models"
)

var (
	weekStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	prescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Width(22)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

type Model struct {
	viewport viewport.Model
	Routine  *models.Routine
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Routine == nil {
		return "No routine yet. Press 'g' to generate one."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetRoutine(r *models.Routine) {
	m.Routine = r
	m.viewport.GotoTop()
	m.Render()
}

func (m *Model) Render() {
	if m.Routine == nil {
		m.viewport.SetContent("")
		return
	}

	r := m.Routine
	var b strings.Builder
	fmt.Fprintf(&b, "%s | %d days/week | %d weeks | %d exercises\n",
		r.Goal, r.DaysPerWeek, r.DurationWeeks, r.TotalExercises())
	for wi, week := range r.Weeks {
		b.WriteString("\n" + weekStyle.Render(fmt.Sprintf("Week %d", wi+1)) + "\n")
		for _, day := range week {
			b.WriteString("  " + dayStyle.Render(day.Name) + "\n")
			if len(day.Exercises) == 0 {
				b.WriteString("    " + emptyStyle.Render("No matching exercises") + "\n")
				continue
			}
			for _, ex := range day.Exercises {
				rx := fmt.Sprintf("%d × %s, rest %ds", ex.Sets, ex.Reps, ex.RestSeconds)
				fmt.Fprintf(&b, "    %s %s\n", prescriptionStyle.Render(rx), ex.Name)
			}
		}
	}
	m.viewport.SetContent(b.String())
}
