// Package grid renders one screen of selectable cells (years, months,
// days, hours or minutes). It knows nothing about calendars: the parent
// computes the cells, the grid handles cursor movement and styling.
package grid

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Cell is one selectable unit in the grid.
type Cell struct {
	Label     string
	Value     int
	Disabled  bool
	Marked    bool
	MarkColor string
	Current   bool // cell matches the session's current value
	Blank     bool // placeholder, e.g. leading pad in a day grid
}

// ConfirmMsg is emitted when the cursor cell is confirmed.
type ConfirmMsg struct {
	Value int
}

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

var (
	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true)

	disabledStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("240")).
			Strikethrough(true)

	currentStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("241"))
)

type Model struct {
	cells   []Cell
	headers []string
	columns int
	cursor  int
	keys    KeyMap
}

func New(columns int) Model {
	return Model{
		columns: columns,
		keys:    DefaultKeyMap(),
	}
}

// SetCells replaces the grid contents. The cursor lands on the current
// cell when one exists, otherwise on the first selectable cell.
func (m *Model) SetCells(cells []Cell, headers []string) {
	m.cells = cells
	m.headers = headers
	m.cursor = 0
	for i, c := range cells {
		if c.Current && !c.Blank {
			m.cursor = i
			return
		}
	}
	for i, c := range cells {
		if !c.Blank && !c.Disabled {
			m.cursor = i
			return
		}
	}
}

// Cursor returns the cell under the cursor.
func (m Model) Cursor() (Cell, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cells) {
		return Cell{}, false
	}
	c := m.cells[m.cursor]
	return c, !c.Blank
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.move(-m.columns)
	case key.Matches(keyMsg, m.keys.Down):
		m.move(m.columns)
	case key.Matches(keyMsg, m.keys.Left):
		m.move(-1)
	case key.Matches(keyMsg, m.keys.Right):
		m.move(1)
	case key.Matches(keyMsg, m.keys.Enter):
		if c, ok := m.Cursor(); ok && !c.Disabled {
			value := c.Value
			return m, func() tea.Msg { return ConfirmMsg{Value: value} }
		}
	}
	return m, nil
}

// move shifts the cursor by delta, skipping blanks, clamped to the grid.
func (m *Model) move(delta int) {
	next := m.cursor + delta
	for next >= 0 && next < len(m.cells) && m.cells[next].Blank {
		if delta > 0 {
			next++
		} else {
			next--
		}
	}
	if next >= 0 && next < len(m.cells) {
		m.cursor = next
	}
}

func (m Model) View() string {
	var b strings.Builder

	if len(m.headers) > 0 {
		var row []string
		for _, h := range m.headers {
			row = append(row, headerStyle.Render(h))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	for start := 0; start < len(m.cells); start += m.columns {
		end := start + m.columns
		if end > len(m.cells) {
			end = len(m.cells)
		}
		var row []string
		for i := start; i < end; i++ {
			row = append(row, m.renderCell(i))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		if end < len(m.cells) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderCell(i int) string {
	c := m.cells[i]
	if c.Blank {
		return cellStyle.Render(strings.Repeat(" ", len(c.Label)))
	}
	switch {
	case i == m.cursor:
		return cursorStyle.Render(c.Label)
	case c.Disabled:
		return disabledStyle.Render(c.Label)
	case c.Marked:
		return lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color(c.MarkColor)).
			Underline(true).
			Render(c.Label)
	case c.Current:
		return currentStyle.Render(c.Label)
	default:
		return cellStyle.Render(c.Label)
	}
}
