package picker

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/datepick/internal/models"
	"github.com/julianstephens/datepick/internal/parse"
)

// Session is the value lifecycle engine for one picker: it owns the
// current mode, the in-progress partial selection and the deferred task
// queue. All state changes are reactions to the inbound events below;
// mode transitions and output notifications are deferred onto the queue
// and become visible only when the owner drains it.
//
// A Session is single-owner state; it is not safe for concurrent use.
type Session struct {
	ID string

	opts    Options
	res     Resolved
	mode    Mode
	initial models.DateValue
	partial models.DateValue
	last    models.DateValue // last committed value
	focused bool
	queue   Queue
	cb      Callbacks
	now     func() time.Time
}

// NewSession resolves the configuration and builds a session positioned at
// the configured start mode.
func NewSession(opts Options, cb Callbacks) (*Session, error) {
	res, err := Resolve(opts)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:   uuid.NewString(),
		opts: opts,
		res:  res,
		mode: res.StartMode,
		cb:   cb,
		now:  time.Now,
	}
	s.initial = PickInitialDate(opts.Value, opts.InitialDate, res.Format, res.Locale, s.now)
	return s, nil
}

// Configure replaces the session options, re-resolving everything derived
// from them. Selection state survives a reconfiguration.
func (s *Session) Configure(opts Options) error {
	res, err := Resolve(opts)
	if err != nil {
		return err
	}
	s.opts = opts
	s.res = res
	s.initial = PickInitialDate(opts.Value, opts.InitialDate, res.Format, res.Locale, s.now)
	s.render()
	return nil
}

// Mode returns the active calendar granularity.
func (s *Session) Mode() Mode { return s.mode }

// Resolved exposes the derived configuration for the shell.
func (s *Session) Resolved() Resolved { return s.res }

// Value builds the value the active picker should display.
func (s *Session) Value() models.DateValue {
	return Build(s.opts.Value, s.initial, s.partial, s.res.Format, s.res.Locale)
}

// Serialized renders the last committed value in the caller's format.
func (s *Session) Serialized() string {
	return parse.Format(s.last, s.res.Format, s.res.Locale)
}

// Pending reports whether deferred work is queued.
func (s *Session) Pending() bool { return s.queue.Len() > 0 }

// Flush drains the deferred queue. The owner calls this strictly after the
// synchronous portion of the triggering event has returned.
func (s *Session) Flush() { s.queue.Drain() }

// FocusEnter reacts to the input gaining focus: unless the caller asked to
// preserve the view mode, the machine resets to the configured start mode.
func (s *Session) FocusEnter() {
	s.focused = true
	if !s.opts.PreserveViewMode {
		s.mode = s.res.StartMode
	}
	s.render()
}

// FocusLeave reacts to the input losing focus.
func (s *Session) FocusLeave() {
	s.focused = false
}

// Focused reports whether the session currently has focus.
func (s *Session) Focused() bool { return s.focused }

// Confirm records a selection confirmed at the current granularity. The
// candidate is refused (no state change, no error) when bounds or the
// disabled set forbid it. At every mode but minute the machine schedules
// an advance; at minute the accumulated selection commits.
func (s *Session) Confirm(fields models.DateValue) bool {
	candidate := models.Merge(s.partial, fields)
	if !s.res.Eval.Selectable(candidate) {
		return false
	}
	s.partial = candidate
	if s.mode == ModeMinute {
		s.commit()
		return true
	}
	s.queue.Defer(func() {
		s.mode = s.mode.Next()
		s.render()
	})
	return true
}

// Retreat schedules a move to the next coarser granularity, as triggered
// by header navigation. Legal from any mode; the cycle wraps.
func (s *Session) Retreat() {
	s.queue.Defer(func() {
		s.mode = s.mode.Prev()
		s.render()
	})
}

// TextEdited reacts to free-text edits of the value. An empty string
// clears the selection and notifies; a string that parses and is
// selectable replaces it; anything else is tolerated and ignored.
func (s *Session) TextEdited(raw string) {
	if raw == "" {
		s.partial = models.DateValue{}
		s.last = models.DateValue{}
		s.deferOutput(models.DateValue{})
		s.render()
		return
	}
	v, ok := parse.Parse(models.TextRaw(raw), s.res.Format, s.res.Locale)
	if !ok || !s.res.Eval.Selectable(v) {
		return
	}
	s.partial = v
	s.last = v
	s.deferOutput(v)
	s.render()
}

// commit finalizes the accumulated selection: the serialized value goes
// out on the deferred queue, the popup closes when configured closable,
// and the mode cycles onward to year. The selection itself resets unless
// the view mode is preserved.
func (s *Session) commit() {
	final := models.Merge(s.initial, s.partial)
	s.last = final
	s.deferOutput(final)
	s.queue.Defer(func() {
		if s.opts.Closable && s.cb.OnClose != nil {
			s.cb.OnClose()
		}
		s.mode = s.mode.Next()
		if !s.opts.PreserveViewMode {
			s.partial = models.DateValue{}
		}
		s.render()
	})
}

func (s *Session) deferOutput(v models.DateValue) {
	serialized := parse.Format(v, s.res.Format, s.res.Locale)
	s.queue.Defer(func() {
		if s.cb.OnOutputChanged != nil {
			s.cb.OnOutputChanged(OutputChanged{
				Value:     serialized,
				Canonical: v,
				Props:     s.mergedProps(serialized),
			})
		}
	})
}

// mergedProps rebuilds the caller's full prop set with the serialized
// value folded in; pass-through props ride along untouched.
func (s *Session) mergedProps(serialized string) map[string]any {
	o := s.opts.withDefaults()
	props := map[string]any{
		"dateFormat":       o.DateFormat,
		"timeFormat":       o.TimeFormat,
		"divider":          o.Divider,
		"dateTimeFormat":   o.DateTimeFormat,
		"startMode":        o.StartMode,
		"preserveViewMode": o.PreserveViewMode,
		"closable":         o.Closable,
		"markColor":        o.MarkColor,
		"localization":     o.Localization,
		"value":            serialized,
	}
	for k, v := range s.res.PassThrough {
		props[k] = v
	}
	return props
}

func (s *Session) render() {
	if s.cb.OnRender == nil {
		return
	}
	s.cb.OnRender(RenderRequest{
		Mode:   s.mode,
		Value:  s.Value(),
		Eval:   s.res.Eval,
		Marked: s.res.Marked,
	})
}
