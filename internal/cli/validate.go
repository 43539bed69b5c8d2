package cli

import (
	"fmt"

	"github.com/julianstephens/datepick/internal/validation"
)

type ValidateCmd struct {
	PickerFlags
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	opts, err := cmd.Options(ctx)
	if err != nil {
		return err
	}

	validator := validation.New()
	result := validator.ValidateOptions(opts)

	fmt.Println(result.FormatReport())

	if result.HasFatal() {
		return fmt.Errorf("configuration has fatal conflicts")
	}
	return nil
}
