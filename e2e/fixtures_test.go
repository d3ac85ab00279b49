//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefinitionOption is a function that configures a widget definition
type DefinitionOption func(*definitionOptions)

type definitionOptions struct {
	name       string
	label      string
	multiple   bool
	searchable bool
	clearable  bool
	groupBy    bool
	disabled   bool
	value      []string
	options    []string // raw YAML option entries
}

// WithName gives the widget a name so its value is remembered
func WithName(name string) DefinitionOption {
	return func(opts *definitionOptions) {
		opts.name = name
	}
}

// WithMultiple switches the widget to multiple selection
func WithMultiple() DefinitionOption {
	return func(opts *definitionOptions) {
		opts.multiple = true
	}
}

// WithSearch enables the search box
func WithSearch() DefinitionOption {
	return func(opts *definitionOptions) {
		opts.searchable = true
	}
}

// WithClear offers the clear control
func WithClear() DefinitionOption {
	return func(opts *definitionOptions) {
		opts.clearable = true
	}
}

// WithGroups groups options by their group field
func WithGroups() DefinitionOption {
	return func(opts *definitionOptions) {
		opts.groupBy = true
	}
}

// WithDisabled disables the whole widget
func WithDisabled() DefinitionOption {
	return func(opts *definitionOptions) {
		opts.disabled = true
	}
}

// WithValue sets the initial value
func WithValue(values ...string) DefinitionOption {
	return func(opts *definitionOptions) {
		opts.value = values
	}
}

// WithOptions replaces the default fruit catalog
func WithOptions(entries ...string) DefinitionOption {
	return func(opts *definitionOptions) {
		opts.options = entries
	}
}

// Option renders one catalog entry; group and description may be empty
func Option(value, label, group, description string, disabled bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  - value: %q\n    label: %q\n", value, label)
	if group != "" {
		fmt.Fprintf(&b, "    group: %q\n", group)
	}
	if description != "" {
		fmt.Fprintf(&b, "    description: %q\n", description)
	}
	if disabled {
		b.WriteString("    disabled: true\n")
	}
	return b.String()
}

var fruitCatalog = []string{
	Option("apple", "Apple", "Pome", "Crisp and red", false),
	Option("banana", "Banana", "", "Yellow tropical fruit", false),
	Option("cherry", "Cherry", "Drupe", "", false),
	Option("durian", "Durian", "", "Smelly", true),
}

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// CreateDefinition writes a YAML widget definition into the workspace
func (tf *TUITestFramework) CreateDefinition(file string, options ...DefinitionOption) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	opts := &definitionOptions{
		label:   "Favourite fruit",
		options: fruitCatalog,
	}
	for _, opt := range options {
		opt(opts)
	}

	var b strings.Builder
	if opts.name != "" {
		fmt.Fprintf(&b, "name: %q\n", opts.name)
	}
	fmt.Fprintf(&b, "label: %q\n", opts.label)
	fmt.Fprintf(&b, "multiple: %t\n", opts.multiple)
	fmt.Fprintf(&b, "searchable: %t\n", opts.searchable)
	fmt.Fprintf(&b, "clearable: %t\n", opts.clearable)
	fmt.Fprintf(&b, "group_by: %t\n", opts.groupBy)
	fmt.Fprintf(&b, "disabled: %t\n", opts.disabled)
	if len(opts.value) > 0 {
		b.WriteString("value:\n")
		for _, v := range opts.value {
			fmt.Fprintf(&b, "  - %q\n", v)
		}
	}
	b.WriteString("options:\n")
	for _, entry := range opts.options {
		b.WriteString(entry)
	}

	path := filepath.Join(tf.workspace, file)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write definition: %w", err)
	}
	return path, nil
}

// StatePath returns the state file the app is started with
func (tf *TUITestFramework) StatePath() string {
	return filepath.Join(tf.workspace, "state.toml")
}

// StartPicker launches the dropdown on a definition with workspace-local log and state files
func (tf *TUITestFramework) StartPicker(definition string, extra ...string) error {
	args := []string{
		"--config", definition,
		"--log-file", filepath.Join(tf.workspace, "selectdrop.log"),
		"--state-file", tf.StatePath(),
	}
	return tf.StartApp(append(args, extra...)...)
}
