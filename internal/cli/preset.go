package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PresetAddCmd struct {
	PickerFlags
	Name string `arg:"" help:"Name for the preset."`
}

func (c *PresetAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	now := time.Now()
	preset := c.preset(c.Name, uuid.NewString())
	preset.CreatedAt = now
	preset.UpdatedAt = now

	// Adding over an existing name updates it but keeps its identity.
	if existing, err := ctx.Store.GetPreset(c.Name); err == nil {
		preset.ID = existing.ID
		preset.CreatedAt = existing.CreatedAt
	}

	if err := ctx.Store.SavePreset(preset); err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}

	fmt.Printf("✓ Saved preset %q\n", c.Name)
	return nil
}

type PresetListCmd struct{}

func (c *PresetListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	presets, err := ctx.Store.GetAllPresets()
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}

	if len(presets) == 0 {
		fmt.Println("No presets found. Add one with 'datepick preset add'.")
		return nil
	}

	fmt.Printf("Presets (%d total):\n\n", len(presets))
	for _, p := range presets {
		format := p.DateFormat
		if p.DateTimeFormat != "" {
			format = p.DateTimeFormat
		}
		fmt.Printf("  %-20s %s", p.Name, format)
		if p.MinDate != "" || p.MaxDate != "" {
			fmt.Printf("  [%s .. %s]", p.MinDate, p.MaxDate)
		}
		if len(p.Disable) > 0 {
			fmt.Printf("  (%d disabled)", len(p.Disable))
		}
		fmt.Println()
	}
	return nil
}

type PresetRmCmd struct {
	Name string `arg:"" help:"Name of the preset to remove."`
}

func (c *PresetRmCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	defer ctx.Store.Close()

	if err := ctx.Store.DeletePreset(c.Name); err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}

	fmt.Printf("✓ Removed preset %q\n", c.Name)
	return nil
}
