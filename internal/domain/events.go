package domain

// EventType represents the type of widget notification
type EventType string

// Event types
const (
	EventChange EventType = "Change"
	EventClear  EventType = "Clear"
	EventSearch EventType = "Search"
	EventOpen   EventType = "Open"
	EventClose  EventType = "Close"
)

// DomainEvent is the interface for all notifications sent to the host
type DomainEvent interface {
	Type() EventType
}

// ChangeEvent is emitted on every committed selection mutation
type ChangeEvent struct {
	Value Value
}

func (e ChangeEvent) Type() EventType { return EventChange }

// ClearEvent is emitted once per clear action, before the matching ChangeEvent
type ClearEvent struct{}

func (e ClearEvent) Type() EventType { return EventClear }

// SearchEvent is emitted whenever the user changes the search text
type SearchEvent struct {
	Text string
}

func (e SearchEvent) Type() EventType { return EventSearch }

// OpenEvent is emitted when the option panel opens
type OpenEvent struct{}

func (e OpenEvent) Type() EventType { return EventOpen }

// CloseEvent is emitted when the option panel closes
type CloseEvent struct{}

func (e CloseEvent) Type() EventType { return EventClose }
