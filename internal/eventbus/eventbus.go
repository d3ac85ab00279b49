package eventbus

import (
	"runtime/debug"
	"sync"

	"selectdrop/internal/domain"
	"selectdrop/internal/logger"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventChange = domain.EventChange
	EventClear  = domain.EventClear
	EventSearch = domain.EventSearch
	EventOpen   = domain.EventOpen
	EventClose  = domain.EventClose
)

// Re-export domain event types
type ChangeEvent = domain.ChangeEvent
type ClearEvent = domain.ClearEvent
type SearchEvent = domain.SearchEvent
type OpenEvent = domain.OpenEvent
type CloseEvent = domain.CloseEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers every event synchronously, in publication order,
// to handlers in subscription order.
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
	log      *logger.Logger
}

// New creates a new event bus
func New(log *logger.Logger) EventBus {
	if log == nil {
		log = logger.Discard()
	}
	return &bus{
		handlers: make(map[EventType][]subscription),
		log:      log,
	}
}

// Publish delivers an event to all subscribers before returning
func (b *bus) Publish(event DomainEvent) {
	// Search fires on every keystroke
	if event.Type() != EventSearch {
		b.log.Debug().Str("event", string(event.Type())).Msg("Publishing event")
	}

	// Copy so handlers may subscribe or unsubscribe while being called
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.call(sub.handler, event)
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error().
				Str("event", string(event.Type())).
				Any("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("Event handler panic")
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// NullBus is a no-op implementation of EventBus
type NullBus struct{}

func (NullBus) Publish(event DomainEvent) {}
func (NullBus) Subscribe(eventType EventType, handler EventHandler) func() {
	return func() {}
}
