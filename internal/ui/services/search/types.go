package search

// State holds search state
type State struct {
	Query   string
	Enabled bool // only searchable dropdowns accept text
}
