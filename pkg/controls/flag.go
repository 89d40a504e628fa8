package controls

import (
	"github.com/goliatone/go-fieldcontrols/pkg/convert"
)

// FlagWidget is a boolean toggle. Content is "true" or "false"; input is
// accepted in any letter case.
type FlagWidget struct {
	*control
	checked bool
}

func newFlagWidget(c *control) (*FlagWidget, error) {
	w := &FlagWidget{control: c}
	if c.def.DefaultValue == "" {
		return w, nil
	}
	checked, err := convert.ParseBool(c.def.DefaultValue)
	if err != nil {
		return nil, err
	}
	w.checked = checked
	return w, nil
}

func (w *FlagWidget) Content() string { return convert.FormatBool(w.checked) }

func (w *FlagWidget) SetContent(value string) error {
	checked, err := convert.ParseBool(value)
	if err != nil {
		return err
	}
	w.SetChecked(checked)
	return nil
}

// Checked reports the toggle state.
func (w *FlagWidget) Checked() bool { return w.checked }

// SetChecked sets the toggle state.
func (w *FlagWidget) SetChecked(checked bool) {
	previous := w.Content()
	w.checked = checked
	w.notify(previous, w.Content())
}

// Toggle flips the toggle state.
func (w *FlagWidget) Toggle() {
	w.SetChecked(!w.checked)
}
