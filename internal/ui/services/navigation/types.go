package navigation

// NoHighlight marks an open panel with no highlighted option
const NoHighlight = -1

// State is the panel state: either Closed or Open
type State interface {
	isState()
}

// Closed is the initial state; nothing is highlighted
type Closed struct{}

// Open carries the highlight, an index into the navigable options or NoHighlight
type Open struct {
	Highlight int
}

func (Closed) isState() {}
func (Open) isState()   {}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionHome Direction = "home"
	DirectionEnd  Direction = "end"
)
