package picker

import (
	"github.com/julianstephens/datepick/internal/constraint"
	"github.com/julianstephens/datepick/internal/models"
)

// RenderRequest is the outbound contract to the host shell: the active
// mode plus the fully resolved constraint data. The shell turns this into
// interactive cells; the core never renders.
type RenderRequest struct {
	Mode   Mode
	Value  models.DateValue // value the picker should center on
	Eval   constraint.Evaluator
	Marked []models.MarkedValue
}

// OutputChanged is the sole notification a caller's change handler
// receives. Props carries the caller's full configuration merged with the
// newly serialized value, so callers never reconstruct prop state from a
// partial payload.
type OutputChanged struct {
	Value     string
	Canonical models.DateValue
	Props     map[string]any
}

// Callbacks wires a session to its host shell. Nil callbacks are skipped.
type Callbacks struct {
	OnRender        func(RenderRequest)
	OnOutputChanged func(OutputChanged)
	OnClose         func()
}
