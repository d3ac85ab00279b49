package eventbus

import "selectdrop/internal/domain"

// Callbacks are the host's handlers for widget notifications.
// Nil fields are simply not subscribed.
type Callbacks struct {
	OnChange func(domain.Value)
	OnClear  func()
	// OnSearch fires when the user edits the search text.
	// The reset to "" on every open and close is silent.
	OnSearch func(text string)
	OnOpen   func()
	OnClose  func()
}

// Attach subscribes the callbacks to bus and returns a function that detaches them all
func (c Callbacks) Attach(bus EventBus) func() {
	var unsubs []func()

	if c.OnChange != nil {
		unsubs = append(unsubs, bus.Subscribe(EventChange, func(e DomainEvent) {
			if ev, ok := e.(ChangeEvent); ok {
				c.OnChange(ev.Value.Clone())
			}
		}))
	}
	if c.OnClear != nil {
		unsubs = append(unsubs, bus.Subscribe(EventClear, func(DomainEvent) { c.OnClear() }))
	}
	if c.OnSearch != nil {
		unsubs = append(unsubs, bus.Subscribe(EventSearch, func(e DomainEvent) {
			if ev, ok := e.(SearchEvent); ok {
				c.OnSearch(ev.Text)
			}
		}))
	}
	if c.OnOpen != nil {
		unsubs = append(unsubs, bus.Subscribe(EventOpen, func(DomainEvent) { c.OnOpen() }))
	}
	if c.OnClose != nil {
		unsubs = append(unsubs, bus.Subscribe(EventClose, func(DomainEvent) { c.OnClose() }))
	}

	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}
