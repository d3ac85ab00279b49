package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectdrop/internal/domain"
	"selectdrop/internal/eventbus"
)

var items = domain.Catalog{
	{Value: "apple", Label: "Apple"},
	{Value: "banana", Label: "Banana", Disabled: true},
	{Value: "cherry", Label: "Cherry"},
	{Value: "date", Label: "Date"},
}

func newRecorded() (*Service, *[]domain.EventType) {
	bus := eventbus.New(nil)
	var events []domain.EventType
	record := func(e eventbus.DomainEvent) { events = append(events, e.Type()) }
	bus.Subscribe(eventbus.EventOpen, record)
	bus.Subscribe(eventbus.EventClose, record)
	return NewService(bus, nil), &events
}

func highlight(t *testing.T, s *Service) int {
	t.Helper()
	idx, ok := s.GetHighlight()
	require.True(t, ok, "expected a highlight")
	return idx
}

func TestInitialStateClosed(t *testing.T) {
	s, _ := newRecorded()
	assert.Equal(t, Closed{}, s.state)
	assert.False(t, s.IsOpen())
	_, ok := s.GetHighlight()
	assert.False(t, ok)
}

func TestOpenCloseTransitions(t *testing.T) {
	s, events := newRecorded()
	resets := 0
	s.SetResetFunction(func() { resets++ })

	assert.True(t, s.Open())
	assert.Equal(t, Open{Highlight: NoHighlight}, s.state)
	assert.False(t, s.Open(), "already open")

	assert.True(t, s.Close())
	assert.False(t, s.Close(), "already closed")

	assert.True(t, s.Toggle())
	assert.True(t, s.Toggle())

	assert.Equal(t, []domain.EventType{
		domain.EventOpen, domain.EventClose, domain.EventOpen, domain.EventClose,
	}, *events)
	assert.Equal(t, 4, resets)
}

func TestDisabledNeverTransitions(t *testing.T) {
	s, events := newRecorded()
	s.SetDisabled(true)

	assert.False(t, s.Open())
	assert.False(t, s.Toggle())
	assert.False(t, s.IsOpen())
	assert.Empty(t, *events)
}

func TestDisablingClosesOpenPanel(t *testing.T) {
	s, events := newRecorded()
	s.Open()
	s.SetDisabled(true)
	assert.False(t, s.IsOpen())
	assert.Equal(t, []domain.EventType{domain.EventOpen, domain.EventClose}, *events)
}

func TestNavigateDownSkipsDisabledAndClamps(t *testing.T) {
	s, _ := newRecorded()
	s.Open()

	require.True(t, s.Navigate(DirectionDown, items))
	assert.Equal(t, 0, highlight(t, s))

	require.True(t, s.Navigate(DirectionDown, items))
	assert.Equal(t, 2, highlight(t, s), "banana is disabled")

	require.True(t, s.Navigate(DirectionDown, items))
	assert.Equal(t, 3, highlight(t, s))

	assert.False(t, s.Navigate(DirectionDown, items), "no wraparound")
	assert.Equal(t, 3, highlight(t, s))
}

func TestNavigateUp(t *testing.T) {
	s, _ := newRecorded()
	s.Open()

	// from no highlight, up lands on the first enabled option
	require.True(t, s.Navigate(DirectionUp, items))
	assert.Equal(t, 0, highlight(t, s))
	assert.False(t, s.Navigate(DirectionUp, items))

	s.Navigate(DirectionEnd, items)
	assert.Equal(t, 3, highlight(t, s))
	s.Navigate(DirectionUp, items)
	s.Navigate(DirectionUp, items)
	assert.Equal(t, 0, highlight(t, s))

	s.Navigate(DirectionEnd, items)
	s.Navigate(DirectionHome, items)
	assert.Equal(t, 0, highlight(t, s))
}

func TestNavigateFirstEnabledWhenLeadingDisabled(t *testing.T) {
	s, _ := newRecorded()
	s.Open()
	list := domain.Catalog{{Value: "x", Disabled: true}, {Value: "y"}}

	s.Navigate(DirectionDown, list)
	assert.Equal(t, 1, highlight(t, s))
}

func TestNavigateIgnoredWhenClosedOrNothingEnabled(t *testing.T) {
	s, _ := newRecorded()
	assert.False(t, s.Navigate(DirectionDown, items))

	s.Open()
	assert.False(t, s.Navigate(DirectionDown, domain.Catalog{{Value: "x", Disabled: true}}))
	assert.False(t, s.Navigate(DirectionDown, nil))
	_, ok := s.GetHighlight()
	assert.False(t, ok)
}

func TestCloseResetsHighlight(t *testing.T) {
	s, _ := newRecorded()
	s.Open()
	s.Navigate(DirectionDown, items)
	s.Close()
	s.Open()

	_, ok := s.GetHighlight()
	assert.False(t, ok)
}

func TestReconcile(t *testing.T) {
	s, _ := newRecorded()
	s.Open()
	s.Navigate(DirectionEnd, items)
	require.Equal(t, 3, highlight(t, s))

	// still valid: kept
	s.Reconcile(items)
	assert.Equal(t, 3, highlight(t, s))

	// list shrank below the highlight: reset
	s.Reconcile(items[:2])
	_, ok := s.GetHighlight()
	assert.False(t, ok)

	// highlight landed on a disabled option: reset
	s.Navigate(DirectionDown, items)
	s.Navigate(DirectionDown, items)
	require.Equal(t, 2, highlight(t, s))
	s.Reconcile(domain.Catalog{items[0], items[2], items[1]})
	_, ok = s.GetHighlight()
	assert.False(t, ok)
}

func TestMoveToIndex(t *testing.T) {
	s, _ := newRecorded()
	assert.False(t, s.MoveToIndex(0, items), "closed")

	s.Open()
	assert.True(t, s.MoveToIndex(2, items))
	assert.Equal(t, 2, highlight(t, s))
	assert.False(t, s.MoveToIndex(1, items), "disabled")
	assert.False(t, s.MoveToIndex(9, items))
	assert.Equal(t, 2, highlight(t, s))
}
