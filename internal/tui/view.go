package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/datepick/internal/picker"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		return docStyle.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("datepick"),
			m.form.View(),
		))
	}

	var content string
	if m.open {
		content = lipgloss.JoinVertical(
			lipgloss.Left,
			m.viewModeTabs(),
			"",
			m.grid.View(),
		)
	} else {
		content = closedStyle.Render("picker closed - press o to open")
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("datepick"),
		m.viewValue(),
		content,
		"",
		m.help.View(m.keys),
	))
}

// viewValue shows the committed value line the way the host input field
// would.
func (m Model) viewValue() string {
	if m.events.lastOutput != nil && m.events.lastOutput.Value != "" {
		return valueStyle.Render(m.events.lastOutput.Value)
	}
	if s := m.session.Serialized(); s != "" {
		return valueStyle.Render(s)
	}
	return emptyValueStyle.Render("no value")
}

func (m Model) viewModeTabs() string {
	modes := []picker.Mode{
		picker.ModeYear, picker.ModeMonth, picker.ModeDay,
		picker.ModeHour, picker.ModeMinute,
	}
	var tabs []string
	for _, mode := range modes {
		if mode == m.session.Mode() {
			tabs = append(tabs, activeTabStyle.Render(mode.String()))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(mode.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
