package cli

import (
	"fmt"

	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/parse"
	"github.com/julianstephens/datepick/internal/picker"
)

type ParseCmd struct {
	PickerFlags
	Raw string `arg:"" help:"Text to parse in the configured format."`
}

func (c *ParseCmd) Run(ctx *Context) error {
	opts, err := c.Options(ctx)
	if err != nil {
		return err
	}
	res, err := picker.Resolve(opts)
	if err != nil {
		return err
	}

	v, ok := parse.Parse(models.TextRaw(c.Raw), res.Format, res.Locale)
	if !ok {
		fmt.Printf("%q does not parse under format %q\n", c.Raw, res.Format)
		return nil
	}

	fmt.Printf("Parsed %q (format %q):\n", c.Raw, res.Format)
	printField("year", v.Year)
	printField("month", v.Month)
	printField("day", v.Day)
	printField("hour", v.Hour)
	printField("minute", v.Minute)
	fmt.Printf("Canonical: %s\n", parse.Format(v, res.Format, res.Locale))
	return nil
}

func printField(name string, v *int) {
	if v == nil {
		fmt.Printf("  %-7s -\n", name)
		return
	}
	fmt.Printf("  %-7s %d\n", name, *v)
}

type FmtCmd struct {
	PickerFlags
	Year   *int `help:"Year field."`
	Month  *int `help:"Month field, zero-based (0 is January)."`
	Day    *int `help:"Day of the month."`
	Hour   *int `help:"Hour field, 24-hour."`
	Minute *int `help:"Minute field."`
}

func (c *FmtCmd) Run(ctx *Context) error {
	opts, err := c.Options(ctx)
	if err != nil {
		return err
	}
	res, err := picker.Resolve(opts)
	if err != nil {
		return err
	}

	v := models.DateValue{
		Year: c.Year, Month: c.Month, Day: c.Day, Hour: c.Hour, Minute: c.Minute,
	}
	out := parse.Format(v, res.Format, res.Locale)
	if out == "" {
		return fmt.Errorf("fields do not fill format %q", res.Format)
	}
	fmt.Println(out)
	return nil
}

type CheckCmd struct {
	PickerFlags
	Raw string `arg:"" help:"Candidate value to check against bounds and disabled dates."`
}

func (c *CheckCmd) Run(ctx *Context) error {
	opts, err := c.Options(ctx)
	if err != nil {
		return err
	}
	res, err := picker.Resolve(opts)
	if err != nil {
		return err
	}

	v, ok := parse.Parse(models.TextRaw(c.Raw), res.Format, res.Locale)
	if !ok {
		v, ok = parse.Parse(models.TextRaw(c.Raw), c.Format, res.Locale)
	}
	if !ok {
		return fmt.Errorf("%q does not parse under format %q", c.Raw, res.Format)
	}

	if res.Eval.Selectable(v) {
		fmt.Printf("✓ %s is selectable\n", c.Raw)
	} else {
		fmt.Printf("❌ %s is not selectable\n", c.Raw)
	}

	if months := res.Eval.MonthsFullyDisabled(); len(months) > 0 {
		fmt.Println("\nFully disabled months:")
		for _, ym := range months {
			fmt.Printf("  %d-%02d\n", ym.Year, ym.Month+1)
		}
	}
	if years := res.Eval.YearsFullyDisabled(); len(years) > 0 {
		fmt.Println("\nFully disabled years:")
		for _, y := range years {
			fmt.Printf("  %d\n", y)
		}
	}
	return nil
}
