package selection

import (
	"slices"

	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/logger"
)

// Service handles selection logic
type Service struct {
	state *State
	bus   eventbus.EventBus
	log   *logger.Logger
}

// NewService creates a new selection service in single mode with nothing selected
func NewService(bus eventbus.EventBus, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		state: &State{Value: domain.EmptyValue(false)},
		bus:   bus,
		log:   log,
	}
}

// Configure applies the mode-related props and re-normalizes the current value
func (s *Service) Configure(multiple bool, maxSelections int, clearable bool) {
	if maxSelections < 0 {
		maxSelections = 0
	}
	s.state.Multiple = multiple
	s.state.MaxSelections = maxSelections
	s.state.Clearable = clearable
	s.state.Value = s.normalize(s.state.Value)
}

// SetValue replaces the value with one supplied by the host.
// Host updates are authoritative and never notify.
func (s *Service) SetValue(v domain.Value) {
	s.state.Value = s.normalize(v)
}

// normalize coerces v into the configured mode
func (s *Service) normalize(v domain.Value) domain.Value {
	if s.state.Multiple {
		var vals []string
		if v.Multiple {
			vals = v.Values
		} else if v.Single != "" {
			vals = []string{v.Single}
		}
		// duplicates can only come from the host; keep first occurrences
		out := make([]string, 0, len(vals))
		for _, x := range vals {
			if !slices.Contains(out, x) {
				out = append(out, x)
			}
		}
		return domain.MultiValue(out...)
	}

	if v.Multiple {
		if len(v.Values) > 0 {
			return domain.SingleValue(v.Values[0])
		}
		return domain.SingleValue("")
	}
	return domain.SingleValue(v.Single)
}

// Value returns a copy of the current value
func (s *Service) Value() domain.Value {
	return s.state.Value.Clone()
}

// Select commits opt. In single mode it replaces the value; in multiple mode it
// toggles opt, refusing to grow past MaxSelections. Disabled options are refused.
func (s *Service) Select(opt domain.Option) Outcome {
	if opt.Disabled {
		s.log.Debug().Str("value", opt.Value).Str("reason", RejectedDisabled.String()).Msg("Selection rejected")
		return RejectedDisabled
	}

	if !s.state.Multiple {
		s.state.Value = domain.SingleValue(opt.Value)
		s.publishChange()
		return Selected
	}

	vals := s.state.Value.Values
	if i := slices.Index(vals, opt.Value); i >= 0 {
		s.state.Value = domain.MultiValue(slices.Delete(slices.Clone(vals), i, i+1)...)
		s.publishChange()
		return Deselected
	}

	if s.AtLimit() {
		s.log.Debug().
			Str("value", opt.Value).
			Int("max", s.state.MaxSelections).
			Str("reason", RejectedLimit.String()).
			Msg("Selection rejected")
		return RejectedLimit
	}

	s.state.Value = domain.MultiValue(append(slices.Clone(vals), opt.Value)...)
	s.publishChange()
	return Selected
}

// CanClear reports whether the clear control is offered
func (s *Service) CanClear() bool {
	return s.state.Clearable && !s.state.Value.IsEmpty()
}

// Clear empties the selection, notifying clear then change.
// It is a no-op when the clear control is not offered.
func (s *Service) Clear() bool {
	if !s.CanClear() {
		s.log.Debug().Bool("clearable", s.state.Clearable).Msg("Clear ignored")
		return false
	}

	s.state.Value = domain.EmptyValue(s.state.Multiple)
	s.bus.Publish(eventbus.ClearEvent{})
	s.publishChange()
	return true
}

// AtLimit reports whether a multiple selection has reached MaxSelections
func (s *Service) AtLimit() bool {
	return s.state.Multiple && s.state.MaxSelections > 0 && s.state.Value.Len() >= s.state.MaxSelections
}

// IsMultiple reports whether the service is in multiple mode
func (s *Service) IsMultiple() bool {
	return s.state.Multiple
}

func (s *Service) publishChange() {
	s.log.Debug().Strs("value", s.state.Value.List()).Msg("Selection changed")
	s.bus.Publish(eventbus.ChangeEvent{Value: s.state.Value.Clone()})
}
