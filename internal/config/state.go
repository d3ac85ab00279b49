package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"selectdrop/internal/domain"
)

// Entry is the remembered value of one widget
type Entry struct {
	Values    []string  `toml:"values"`
	UpdatedAt time.Time `toml:"updated_at"`
}

// State is the content of the state file, keyed by widget name
type State struct {
	Widgets map[string]Entry `toml:"widgets"`
}

// StateStore remembers the last committed value of each widget in a TOML file
type StateStore struct {
	path string
	now  func() time.Time
}

// NewStateStore creates a store backed by path
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path, now: time.Now}
}

// DefaultStatePath returns the user-level state file
func DefaultStatePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "selectdrop", "state.toml")
}

// Path returns the file the store reads and writes
func (s *StateStore) Path() string {
	return s.path
}

// Load reads the state file. A missing file is an empty state.
func (s *StateStore) Load() (*State, error) {
	state := &State{Widgets: make(map[string]Entry)}

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading state file %s: %w", s.path, err)
	}

	if err := toml.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("parsing state file %s: %w", s.path, err)
	}
	if state.Widgets == nil {
		state.Widgets = make(map[string]Entry)
	}
	return state, nil
}

// Save writes the whole state file
func (s *StateStore) Save(state *State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing state file %s: %w", s.path, err)
	}
	return nil
}

// Remember stores v as the last value of widget name
func (s *StateStore) Remember(name string, v domain.Value) error {
	state, err := s.Load()
	if err != nil {
		return err
	}
	state.Widgets[name] = Entry{
		Values:    v.List(),
		UpdatedAt: s.now().UTC(),
	}
	return s.Save(state)
}

// Recall returns the last value stored for widget name, shaped for the given mode
func (s *StateStore) Recall(name string, multiple bool) (domain.Value, bool, error) {
	state, err := s.Load()
	if err != nil {
		return domain.Value{}, false, err
	}
	entry, ok := state.Widgets[name]
	if !ok {
		return domain.EmptyValue(multiple), false, nil
	}
	return ValueFromList(entry.Values, multiple), true, nil
}
