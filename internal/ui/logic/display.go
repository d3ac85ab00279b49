package logic

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"selectdrop/internal/domain"
)

// Default display formats for multiple mode
const (
	DefaultMultiFormat    = `{{ .Count }} selected`
	DefaultMultiMaxFormat = `{{ .Count }} / {{ .Max }} selected`
)

// DisplayFormats holds the templates used to summarise a multiple selection
type DisplayFormats struct {
	Multi    string `koanf:"multi" json:"multi,omitempty"`
	MultiMax string `koanf:"multi_max" json:"multi_max,omitempty"`
}

// DisplayData is what the summary templates are executed against
type DisplayData struct {
	Count  int
	Max    int
	Values []string
	Labels []string
}

// Formatter derives the trigger text from props and the current value
type Formatter struct {
	multi    *template.Template
	multiMax *template.Template
}

// NewFormatter compiles formats, falling back to the defaults for empty fields
func NewFormatter(formats DisplayFormats) (*Formatter, error) {
	if formats.Multi == "" {
		formats.Multi = DefaultMultiFormat
	}
	if formats.MultiMax == "" {
		formats.MultiMax = DefaultMultiMaxFormat
	}

	multi, err := template.New("multi").Funcs(sprig.TxtFuncMap()).Parse(formats.Multi)
	if err != nil {
		return nil, fmt.Errorf("failed to parse multi format: %w", err)
	}
	multiMax, err := template.New("multi_max").Funcs(sprig.TxtFuncMap()).Parse(formats.MultiMax)
	if err != nil {
		return nil, fmt.Errorf("failed to parse multi_max format: %w", err)
	}

	return &Formatter{multi: multi, multiMax: multiMax}, nil
}

// DefaultFormatter returns a formatter using the built-in formats
func DefaultFormatter() *Formatter {
	f, err := NewFormatter(DisplayFormats{})
	if err != nil {
		// built-in templates always parse
		panic(err)
	}
	return f
}

// DisplayText returns the text shown on the trigger
func (f *Formatter) DisplayText(props domain.Props, value domain.Value) string {
	text, _ := f.Display(props, value)
	return text
}

// Display returns the trigger text and whether it is the placeholder
func (f *Formatter) Display(props domain.Props, value domain.Value) (string, bool) {
	placeholder := props.Placeholder
	if placeholder == "" {
		placeholder = domain.DefaultPlaceholder
	}

	if !props.Multiple {
		if value.Single == "" {
			return placeholder, true
		}
		if opt, ok := props.Options.Lookup(value.Single); ok {
			return opt.Label, false
		}
		return placeholder, true
	}

	if value.Len() == 0 {
		return placeholder, true
	}

	data := DisplayData{
		Count:  value.Len(),
		Max:    props.MaxSelections,
		Values: value.List(),
	}
	for _, v := range data.Values {
		label := v
		if opt, ok := props.Options.Lookup(v); ok {
			label = opt.Label
		}
		data.Labels = append(data.Labels, label)
	}

	tmpl := f.multi
	if props.MaxSelections > 0 {
		tmpl = f.multiMax
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("%d selected", data.Count), false
	}
	return buf.String(), false
}
