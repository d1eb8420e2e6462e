package system

import (
	"fmt"
	"os"

	"github.com/lumenwell/lumen/internal/cli"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumenwell/lumen/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Backup on startup, while nothing else holds the database.
	ctx.PerformAutomaticBackup()

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
