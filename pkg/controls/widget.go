package controls

import (
	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

// Shape is the concrete widget form a kind dispatches to.
type Shape string

const (
	ShapeText      Shape = "text"
	ShapeCounter   Shape = "counter"
	ShapeFlag      Shape = "flag"
	ShapeChoice    Shape = "choice"
	ShapeDateTime  Shape = "datetime"
	ShapeUtcOffset Shape = "utcoffset"
)

// ChangeFunc receives the key and the previous and current canonical content
// after a widget's content changed.
type ChangeFunc func(key, previous, current string)

// Widget is the capability every built control exposes. Content is always the
// canonical stored string; each shape decides how it is decoded.
type Widget interface {
	Key() string
	Kind() schema.Kind
	Shape() Shape
	Label() string
	Definition() schema.FieldDefinition

	Content() string
	SetContent(value string) error

	ReadOnly() bool
	SetReadOnly(readOnly bool)
	Tooltip() string
	SetTooltip(tooltip string)
	Width() int
	Visible() bool
	Collapsed() bool
	Copyable() bool
	Style() Style

	Focus()
	Focused() bool

	// OnChange subscribes fn to content changes and returns a function that
	// removes the subscription.
	OnChange(fn ChangeFunc) (unsubscribe func())
}

type listener struct {
	id int
	fn ChangeFunc
}

// control carries the state shared by every shape.
type control struct {
	def       schema.FieldDefinition
	shape     Shape
	readOnly  bool
	pinned    bool
	tooltip   string
	collapsed bool
	style     Style
	scope     *focusScope
	listeners []listener
	nextID    int
}

func newControl(def schema.FieldDefinition, shape Shape, env buildEnv) *control {
	return &control{
		def:       def,
		shape:     shape,
		readOnly:  env.nonInteractive || def.Kind.IsIdentity(),
		pinned:    env.nonInteractive || def.Kind.IsIdentity(),
		tooltip:   def.Tooltip,
		collapsed: !def.Visible,
		style:     env.style,
		scope:     env.focus,
	}
}

func (c *control) Key() string                        { return c.def.Key }
func (c *control) Kind() schema.Kind                  { return c.def.Kind }
func (c *control) Shape() Shape                       { return c.shape }
func (c *control) Label() string                      { return c.def.DisplayLabel() }
func (c *control) Definition() schema.FieldDefinition { return c.def }
func (c *control) ReadOnly() bool                     { return c.readOnly }
func (c *control) Tooltip() string                    { return c.tooltip }
func (c *control) SetTooltip(tooltip string)          { c.tooltip = tooltip }
func (c *control) Visible() bool                      { return c.def.Visible }
func (c *control) Collapsed() bool                    { return c.collapsed }
func (c *control) Copyable() bool                     { return c.def.Copyable }
func (c *control) Style() Style                       { return c.style }

// SetReadOnly toggles editing. Identity fields and preview widgets stay
// read-only.
func (c *control) SetReadOnly(readOnly bool) {
	if !readOnly && c.pinned {
		return
	}
	c.readOnly = readOnly
}

func (c *control) Width() int {
	return c.style.WidthFor(c.shape, c.def.Width)
}

func (c *control) Focus() {
	if c.scope != nil {
		c.scope.current = c.def.Key
	}
}

func (c *control) Focused() bool {
	return c.scope != nil && c.scope.current == c.def.Key
}

func (c *control) OnChange(fn ChangeFunc) func() {
	if fn == nil {
		return func() {}
	}
	id := c.nextID
	c.nextID++
	c.listeners = append(c.listeners, listener{id: id, fn: fn})
	return func() {
		for idx, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:idx], c.listeners[idx+1:]...)
				return
			}
		}
	}
}

func (c *control) notify(previous, current string) {
	if previous == current || len(c.listeners) == 0 {
		return
	}
	snapshot := append([]listener(nil), c.listeners...)
	for _, l := range snapshot {
		l.fn(c.def.Key, previous, current)
	}
}

// focusScope tracks the focused key among the widgets of one build.
type focusScope struct {
	current string
}
