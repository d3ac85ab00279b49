package navigation

import (
	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/logger"
)

// Service drives the Closed/Open state machine and the keyboard highlight.
// Every transition goes through enter, so the reset rules live in one place.
type Service struct {
	state    State
	disabled bool
	bus      eventbus.EventBus
	log      *logger.Logger
	resetFn  func() // clears transient state owned elsewhere (search text)
}

// NewService creates a closed navigation service
func NewService(bus eventbus.EventBus, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		state: Closed{},
		bus:   bus,
		log:   log,
	}
}

// SetResetFunction sets the function run on every open/close transition
func (s *Service) SetResetFunction(fn func()) {
	s.resetFn = fn
}

// IsOpen reports whether the panel is open
func (s *Service) IsOpen() bool {
	_, ok := s.state.(Open)
	return ok
}

// GetHighlight returns the highlighted index, or false when there is none
func (s *Service) GetHighlight() (int, bool) {
	open, ok := s.state.(Open)
	if !ok || open.Highlight == NoHighlight {
		return NoHighlight, false
	}
	return open.Highlight, true
}

// SetDisabled marks the widget disabled. A disabled widget that is open closes.
func (s *Service) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled && s.IsOpen() {
		s.Close()
	}
}

// IsDisabled reports whether transitions are blocked
func (s *Service) IsDisabled() bool {
	return s.disabled
}

// Open transitions Closed -> Open. Returns false if disabled or already open.
func (s *Service) Open() bool {
	if s.disabled || s.IsOpen() {
		return false
	}
	s.enter(Open{Highlight: NoHighlight})
	s.bus.Publish(eventbus.OpenEvent{})
	return true
}

// Close transitions Open -> Closed. Returns false if already closed.
func (s *Service) Close() bool {
	if !s.IsOpen() {
		return false
	}
	s.enter(Closed{})
	s.bus.Publish(eventbus.CloseEvent{})
	return true
}

// Toggle opens a closed panel or closes an open one
func (s *Service) Toggle() bool {
	if s.IsOpen() {
		return s.Close()
	}
	return s.Open()
}

func (s *Service) enter(next State) {
	if s.resetFn != nil {
		s.resetFn()
	}
	s.log.Debug().Bool("open", isOpen(next)).Msg("Panel transition")
	s.state = next
}

// Navigate moves the highlight within items, skipping disabled options and
// stopping at the ends. Returns true if the highlight moved.
func (s *Service) Navigate(direction Direction, items domain.Catalog) bool {
	open, ok := s.state.(Open)
	if !ok {
		return false
	}

	target := NoHighlight
	switch direction {
	case DirectionDown:
		if open.Highlight == NoHighlight {
			target = nextEnabled(items, 0, 1)
		} else {
			target = nextEnabled(items, open.Highlight+1, 1)
		}
	case DirectionUp:
		if open.Highlight == NoHighlight {
			target = nextEnabled(items, 0, 1)
		} else {
			target = nextEnabled(items, open.Highlight-1, -1)
		}
	case DirectionHome:
		target = nextEnabled(items, 0, 1)
	case DirectionEnd:
		target = nextEnabled(items, len(items)-1, -1)
	}

	if target == NoHighlight || target == open.Highlight {
		return false
	}
	s.state = Open{Highlight: target}
	return true
}

// MoveToIndex highlights index directly (pointer hover). Disabled or
// out-of-range indices are refused.
func (s *Service) MoveToIndex(index int, items domain.Catalog) bool {
	if !s.IsOpen() || index < 0 || index >= len(items) || items[index].Disabled {
		return false
	}
	s.state = Open{Highlight: index}
	return true
}

// Reconcile drops a highlight that no longer points at an enabled item.
// Call it whenever the catalog or the search text changes.
func (s *Service) Reconcile(items domain.Catalog) {
	open, ok := s.state.(Open)
	if !ok || open.Highlight == NoHighlight {
		return
	}
	if open.Highlight >= len(items) || items[open.Highlight].Disabled {
		s.state = Open{Highlight: NoHighlight}
	}
}

// nextEnabled walks from start in step direction and returns the first
// enabled index, or NoHighlight when it runs off the end.
func nextEnabled(items domain.Catalog, start, step int) int {
	for i := start; i >= 0 && i < len(items); i += step {
		if !items[i].Disabled {
			return i
		}
	}
	return NoHighlight
}

func isOpen(st State) bool {
	_, ok := st.(Open)
	return ok
}
