package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/datepick/internal/tui"
)

type TuiCmd struct {
	PickerFlags
}

func (c *TuiCmd) Run(ctx *Context) error {
	opts, err := c.Options(ctx)
	if err != nil {
		return err
	}

	model, err := tui.NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
