// Package text renders a plain-text preview sheet of a schema, one line per
// preview widget, using a pongo2 template.
package text

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-fieldcontrols/pkg/controls"
	"github.com/goliatone/go-fieldcontrols/pkg/convert"
)

// DefaultTemplate prints label, kind, current value and the choice list.
const DefaultTemplate = `{% for row in rows %}{{ row.label|safe }} [{{ row.kind|safe }}]{% if row.collapsed %} (hidden){% endif %}: {{ row.value|safe }}{% if row.choices %} <{{ row.choices|safe }}>{% endif %}
{% endfor %}`

// Option configures the renderer.
type Option func(*Renderer)

// WithTemplate replaces DefaultTemplate. Each row exposes key, label, kind,
// shape, value, tooltip, width, collapsed, readonly and choices.
func WithTemplate(source string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(source) != "" {
			r.source = source
		}
	}
}

// WithFlagConverter sets how flag values are displayed.
func WithFlagConverter(converter convert.FlagConverter) Option {
	return func(r *Renderer) {
		r.flags = converter
	}
}

// Renderer turns preview widgets into text.
type Renderer struct {
	source string
	tpl    *pongo2.Template
	kinds  convert.KindConverter
	flags  convert.FlagConverter
}

// New compiles the configured template.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{source: DefaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	tpl, err := pongo2.FromString(r.source)
	if err != nil {
		return nil, fmt.Errorf("text: compile template: %w", err)
	}
	r.tpl = tpl
	return r, nil
}

// Render executes the template over widgets in order.
func (r *Renderer) Render(widgets []controls.Widget) ([]byte, error) {
	if r == nil || r.tpl == nil {
		return nil, errors.New("text: renderer is not initialised")
	}
	rows := make([]map[string]any, 0, len(widgets))
	for _, widget := range widgets {
		row, err := r.row(widget)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	out, err := r.tpl.Execute(pongo2.Context{"rows": rows})
	if err != nil {
		return nil, fmt.Errorf("text: render: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) row(widget controls.Widget) (map[string]any, error) {
	kindName, err := r.kindName(widget)
	if err != nil {
		return nil, err
	}
	value := widget.Content()
	if widget.Shape() == controls.ShapeFlag {
		display, err := r.flags.Convert(value)
		if err != nil {
			return nil, fmt.Errorf("text: field %q: %w", widget.Key(), err)
		}
		if list, ok := display.([]string); ok {
			value = strings.Join(list, ", ")
		} else {
			value = fmt.Sprint(display)
		}
	}
	choices := ""
	if choice, ok := widget.(*controls.ChoiceWidget); ok {
		choices = strings.Join(choice.Choices(), ", ")
	}
	return map[string]any{
		"key":       widget.Key(),
		"label":     widget.Label(),
		"kind":      kindName,
		"shape":     string(widget.Shape()),
		"value":     value,
		"tooltip":   widget.Tooltip(),
		"width":     widget.Width(),
		"collapsed": widget.Collapsed(),
		"readonly":  widget.ReadOnly(),
		"choices":   choices,
	}, nil
}

// kindName shows the editor name of base kinds; system kinds show their own
// name next to the base kind's editor name.
func (r *Renderer) kindName(widget controls.Widget) (string, error) {
	kind := widget.Kind()
	if name, err := r.kinds.Convert(kind); err == nil {
		return name, nil
	}
	base, err := kind.Base()
	if err != nil {
		return "", err
	}
	name, err := r.kinds.Convert(base)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, %s", name, kind), nil
}
