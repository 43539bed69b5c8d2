package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/datepick/internal/logger"
	"github.com/julianstephens/datepick/internal/picker"
	"github.com/julianstephens/datepick/internal/tui/components/grid"
)

// flushMsg asks the model to drain the session's deferred queue. It is
// always delivered as a fresh message, never handled inline, so deferred
// mode transitions become visible only after the triggering key event has
// fully resolved, the shell-side half of the one-tick ordering guarantee.
type flushMsg struct{}

func flushCmd() tea.Msg { return flushMsg{} }

// shellEvents collects the session's outbound notifications. The session
// callbacks write here; the model reads it after every flush.
type shellEvents struct {
	lastRender *picker.RenderRequest
	lastOutput *picker.OutputChanged
	closed     bool
	log        logger.SessionLogger
}

type Model struct {
	session    *picker.Session
	events     *shellEvents
	grid       grid.Model
	form       *huh.Form
	formText   string
	keys       KeyMap
	help       help.Model
	width      int
	height     int
	pageOffset int
	open       bool
	quitting   bool
}

func NewModel(opts picker.Options) (Model, error) {
	events := &shellEvents{}
	session, err := picker.NewSession(opts, picker.Callbacks{
		OnRender: func(req picker.RenderRequest) {
			events.lastRender = &req
		},
		OnOutputChanged: func(out picker.OutputChanged) {
			events.lastOutput = &out
			events.log.Debug("output changed", "value", out.Value)
		},
		OnClose: func() {
			events.closed = true
			events.log.Debug("session closed")
		},
	})
	if err != nil {
		return Model{}, err
	}
	// Set before any event reaches the session.
	events.log = logger.WithSession(session.ID)

	m := Model{
		session: session,
		events:  events,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		open:    true,
	}
	// Opening the picker is a focus entry.
	session.FocusEnter()
	m.refreshGrid()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refreshGrid rebuilds the cell grid from the latest render request.
func (m *Model) refreshGrid() {
	req := picker.RenderRequest{
		Mode:   m.session.Mode(),
		Value:  m.session.Value(),
		Eval:   m.session.Resolved().Eval,
		Marked: m.session.Resolved().Marked,
	}
	if m.events.lastRender != nil {
		req = *m.events.lastRender
	}
	cells, headers, columns := buildCells(req, m.session.Resolved().Locale, m.pageOffset)
	g := grid.New(columns)
	g.SetCells(cells, headers)
	m.grid = g
}

// newEditForm builds the free-text editor for the current value.
func (m *Model) newEditForm() *huh.Form {
	m.formText = m.session.Serialized()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("value").
				Title("Value").
				Description("Format: "+m.session.Resolved().Format).
				Value(&m.formText),
		),
	)
	return form.WithShowHelp(false)
}
