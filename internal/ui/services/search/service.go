package search

import (
	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
	"selectdrop/internal/logger"
	"selectdrop/internal/ui/logic"
)

// Service owns the search text of an open dropdown
type Service struct {
	state *State
	bus   eventbus.EventBus
	log   *logger.Logger
}

// NewService creates a new search service
func NewService(bus eventbus.EventBus, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Discard()
	}
	return &Service{
		state: &State{},
		bus:   bus,
		log:   log,
	}
}

// SetEnabled turns text entry on or off. Disabling drops any query.
func (s *Service) SetEnabled(enabled bool) {
	s.state.Enabled = enabled
	if !enabled {
		s.state.Query = ""
	}
}

// IsEnabled reports whether the dropdown is searchable
func (s *Service) IsEnabled() bool {
	return s.state.Enabled
}

// SetQuery records text typed by the user and notifies the host when it changed.
// It returns false when search is disabled or the text is unchanged.
func (s *Service) SetQuery(query string) bool {
	if !s.state.Enabled {
		return false
	}
	if query == s.state.Query {
		return false
	}

	s.state.Query = query
	s.bus.Publish(eventbus.SearchEvent{Text: query})
	return true
}

// Reset drops the query without notifying; used when the panel opens or closes
func (s *Service) Reset() {
	if s.state.Query != "" {
		s.log.Debug().Str("query", s.state.Query).Msg("Search discarded")
	}
	s.state.Query = ""
}

// GetQuery returns the current search query
func (s *Service) GetQuery() string {
	return s.state.Query
}

// Visible returns the options of catalog matching the current query
func (s *Service) Visible(catalog domain.Catalog) domain.Catalog {
	return logic.Filter(catalog, s.state.Query)
}
