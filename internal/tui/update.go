package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/picker"
	"github.com/julianstephens/datepick/internal/tui/components/grid"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case flushMsg:
		m.session.Flush()
		if m.events.closed {
			m.open = false
			m.events.closed = false
			m.session.FocusLeave()
		}
		m.pageOffset = 0
		m.refreshGrid()
		return m, nil

	case grid.ConfirmMsg:
		if m.session.Confirm(m.confirmFields(msg.Value)) {
			return m, flushCmd
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(keyMsg, m.keys.Toggle):
			if m.open {
				m.open = false
				m.session.FocusLeave()
			} else {
				m.open = true
				m.session.FocusEnter()
				m.pageOffset = 0
				m.refreshGrid()
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Edit):
			m.form = m.newEditForm()
			return m, m.form.Init()

		case key.Matches(keyMsg, m.keys.Back):
			if m.open {
				m.session.Retreat()
				return m, flushCmd
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.PrevPg):
			if m.open && m.session.Mode() == picker.ModeYear {
				m.pageOffset--
				m.refreshGrid()
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.NextPg):
			if m.open && m.session.Mode() == picker.ModeYear {
				m.pageOffset++
				m.refreshGrid()
			}
			return m, nil
		}
	}

	if !m.open {
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	if m.form.State == huh.StateCompleted {
		text := m.form.GetString("value")
		m.form = nil
		m.session.TextEdited(text)
		return m, flushCmd
	}
	return m, cmd
}

// confirmFields builds the partial date a confirmed cell stands for. Finer
// cells carry their coarser display context so bounds and disabled checks
// see a full candidate.
func (m Model) confirmFields(cellValue int) models.DateValue {
	year, month, day, hour, _ := centerFields(m.session.Value())
	switch m.session.Mode() {
	case picker.ModeYear:
		return models.DateValue{Year: intp(cellValue)}
	case picker.ModeMonth:
		return models.DateValue{Year: intp(year), Month: intp(cellValue)}
	case picker.ModeDay:
		return models.NewDate(year, month, cellValue)
	case picker.ModeHour:
		return models.DateValue{
			Year: intp(year), Month: intp(month), Day: intp(day), Hour: intp(cellValue),
		}
	default:
		return models.DateValue{
			Year: intp(year), Month: intp(month), Day: intp(day),
			Hour: intp(hour), Minute: intp(cellValue),
		}
	}
}
