package config

import (
	encjson "encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"selectdrop/internal/domain"
	"selectdrop/internal/ui/logic"
)

var (
	// ErrConfigNotFound is returned when a widget definition file does not exist
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidCatalog is returned when a definition fails schema validation
	ErrInvalidCatalog = errors.New("invalid widget definition")
)

// Config is a widget definition: its props, its catalog and its display formats
type Config struct {
	Name              string               `koanf:"name" json:"name,omitempty"`
	Label             string               `koanf:"label" json:"label,omitempty"`
	Placeholder       string               `koanf:"placeholder" json:"placeholder,omitempty"`
	HelpText          string               `koanf:"help_text" json:"help_text,omitempty"`
	Required          bool                 `koanf:"required" json:"required,omitempty"`
	Multiple          bool                 `koanf:"multiple" json:"multiple,omitempty"`
	MaxSelections     int                  `koanf:"max_selections" json:"max_selections,omitempty"`
	Searchable        bool                 `koanf:"searchable" json:"searchable,omitempty"`
	Clearable         bool                 `koanf:"clearable" json:"clearable,omitempty"`
	GroupBy           bool                 `koanf:"group_by" json:"group_by,omitempty"`
	Disabled          bool                 `koanf:"disabled" json:"disabled,omitempty"`
	ClassName         string               `koanf:"class_name" json:"class_name,omitempty"`
	DropdownClassName string               `koanf:"dropdown_class_name" json:"dropdown_class_name,omitempty"`
	Value             []string             `koanf:"value" json:"value,omitempty"` // a scalar in the file is read as one entry
	Display           logic.DisplayFormats `koanf:"display" json:"display,omitempty"`
	Options           []domain.Option      `koanf:"options" json:"options"`
}

// Props converts the definition into widget props
func (c *Config) Props() domain.Props {
	p := domain.Props{
		Options:           append(domain.Catalog(nil), c.Options...),
		Multiple:          c.Multiple,
		MaxSelections:     c.MaxSelections,
		Searchable:        c.Searchable,
		Clearable:         c.Clearable,
		GroupBy:           c.GroupBy,
		Disabled:          c.Disabled,
		Placeholder:       c.Placeholder,
		Label:             c.Label,
		Required:          c.Required,
		HelpText:          c.HelpText,
		ClassName:         c.ClassName,
		DropdownClassName: c.DropdownClassName,
	}
	p.Value = ValueFromList(c.Value, c.Multiple)
	return p
}

// ValueFromList builds a value for the given mode from a plain list
func ValueFromList(vals []string, multiple bool) domain.Value {
	if multiple {
		return domain.MultiValue(vals...)
	}
	if len(vals) == 0 {
		return domain.SingleValue("")
	}
	return domain.SingleValue(vals[0])
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	LoadBytes(data []byte, format string) (*Config, error)
	ValidatePath(path string) (*ValidationResult, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service using the default definition path
func NewConfigService() ConfigService {
	return &configService{
		filePath: DefaultConfigPath(),
	}
}

// NewConfigServiceWithPath creates a config service whose Load and Save use path
func NewConfigServiceWithPath(path string) ConfigService {
	return &configService{filePath: path}
}

// DefaultConfigPath returns the user-level definition file
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "selectdrop", "config.yaml")
}

// Load loads the definition from the service path, or the default one if the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the definition to the service path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads a definition from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return cs.LoadBytes(data, filepath.Ext(path))
}

// LoadBytes parses, validates and unmarshals a definition.
// format is a file extension or a bare format name ("yaml", ".toml", ...).
func (cs *configService) LoadBytes(data []byte, format string) (*Config, error) {
	k, err := parse(data, format)
	if err != nil {
		return nil, err
	}

	result, err := validateDocument(k.Raw())
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, describe(result))
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// ValidatePath checks a definition file against the schema without unmarshalling it
func (cs *configService) ValidatePath(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	k, err := parse(data, filepath.Ext(path))
	if err != nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "syntax", Message: err.Error()}},
		}, nil
	}
	return validateDocument(k.Raw())
}

// SaveToPath saves a definition to a specific path in the format its extension names
func (cs *configService) SaveToPath(config *Config, path string) error {
	parser, err := parserFor(filepath.Ext(path))
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// round-trip through JSON so every format sees the same keys
	raw, err := encjson.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	doc, err := json.Parser().Unmarshal(raw)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data, err := parser.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the definition used when no file exists
func DefaultConfig() *Config {
	return &Config{
		Name:        "default",
		Placeholder: domain.DefaultPlaceholder,
		Searchable:  true,
		Clearable:   true,
		Options:     []domain.Option{},
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}

func parse(data []byte, format string) (*koanf.Koanf, error) {
	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return k, nil
}

func parserFor(format string) (koanf.Parser, error) {
	switch strings.TrimPrefix(strings.ToLower(format), ".") {
	case "yml", "yaml":
		return yaml.Parser(), nil
	case "toml":
		return toml.Parser(), nil
	case "json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %q", format)
	}
}

func describe(result *ValidationResult) string {
	parts := make([]string, len(result.Errors))
	for i, e := range result.Errors {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}
