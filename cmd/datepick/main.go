package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/datepick/internal/cli"
	"github.com/julianstephens/datepick/internal/logger"
	"github.com/julianstephens/datepick/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Preset store path." type:"path" default:"~/.config/datepick/datepick.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize datepick storage."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive picker." default:"1"`
	Parse    cli.ParseCmd    `cmd:"" help:"Parse a value in the configured format."`
	Fmt      cli.FmtCmd      `cmd:"" help:"Serialize date fields in the configured format."`
	Check    cli.CheckCmd    `cmd:"" help:"Check a value against bounds and disabled dates."`
	Validate cli.ValidateCmd `cmd:"" help:"Audit a picker configuration for conflicts."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks."`
	Preset   struct {
		Add  cli.PresetAddCmd  `cmd:"" help:"Save the given flags as a named preset."`
		List cli.PresetListCmd `cmd:"" help:"List stored presets."`
		Rm   cli.PresetRmCmd   `cmd:"" help:"Remove a preset."`
	} `cmd:"" help:"Manage configuration presets."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the preset store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the preset store from a backup."`
	} `cmd:"" help:"Manage preset store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("datepick"),
		kong.Description("Date/time picker value lifecycle engine"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if len(CLI.Config) > 5 && CLI.Config[len(CLI.Config)-5:] == ".json" {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
