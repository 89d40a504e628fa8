package controls

import (
	"strconv"
	"strings"
)

// CounterWidget is a text box paired with an exclusive selection label. All
// counters from one build share a selection group, so selecting one counter
// clears the others. The stored count is not validated here.
type CounterWidget struct {
	*control
	text  string
	group *selectionGroup
}

func newCounterWidget(c *control, group *selectionGroup) *CounterWidget {
	return &CounterWidget{control: c, text: c.def.DefaultValue, group: group}
}

func (w *CounterWidget) Content() string { return w.text }

func (w *CounterWidget) SetContent(value string) error {
	previous := w.text
	w.text = value
	w.notify(previous, value)
	return nil
}

// Selected reports whether this counter holds the group's selection.
func (w *CounterWidget) Selected() bool {
	return w.group != nil && w.group.selected == w.def.Key
}

// Select makes this counter the active one in its group.
func (w *CounterWidget) Select() {
	if w.group != nil {
		w.group.selected = w.def.Key
	}
}

// Deselect clears the group's selection if this counter holds it.
func (w *CounterWidget) Deselect() {
	if w.Selected() {
		w.group.selected = ""
	}
}

// Increment adds one to the stored count. A value that does not parse as an
// integer restarts the count at one.
func (w *CounterWidget) Increment() error {
	next := 1
	if current, err := strconv.Atoi(strings.TrimSpace(w.text)); err == nil {
		next = current + 1
	}
	return w.SetContent(strconv.Itoa(next))
}

// selectionGroup holds the key of the selected counter, if any.
type selectionGroup struct {
	selected string
}
