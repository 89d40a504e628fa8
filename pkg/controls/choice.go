package controls

import (
	"fmt"
)

// ChoiceWidget selects exactly one of its choices. The first choice is
// selected when the definition has no default.
type ChoiceWidget struct {
	*control
	choices []string
	index   int
}

func newChoiceWidget(c *control) (*ChoiceWidget, error) {
	if err := c.def.ValidateChoices(); err != nil {
		return nil, err
	}
	w := &ChoiceWidget{
		control: c,
		choices: append([]string(nil), c.def.Choices...),
	}
	if c.def.DefaultValue == "" {
		return w, nil
	}
	idx := w.indexOf(c.def.DefaultValue)
	if idx < 0 {
		return nil, fmt.Errorf("%w: default %q of field %q", ErrChoiceNotFound, c.def.DefaultValue, c.def.Key)
	}
	w.index = idx
	return w, nil
}

func (w *ChoiceWidget) Content() string { return w.choices[w.index] }

// SetContent selects the matching choice. Tokens that are not choices are
// rejected and leave the selection unchanged.
func (w *ChoiceWidget) SetContent(value string) error {
	idx := w.indexOf(value)
	if idx < 0 {
		return fmt.Errorf("%w: %q is not a choice of %q", ErrChoiceNotFound, value, w.def.Key)
	}
	return w.SelectIndex(idx)
}

// Choices returns a copy of the choice list.
func (w *ChoiceWidget) Choices() []string {
	return append([]string(nil), w.choices...)
}

// SelectedIndex returns the index of the selected choice.
func (w *ChoiceWidget) SelectedIndex() int { return w.index }

// SelectIndex selects the choice at idx.
func (w *ChoiceWidget) SelectIndex(idx int) error {
	if idx < 0 || idx >= len(w.choices) {
		return fmt.Errorf("%w: index %d out of range for %q", ErrChoiceNotFound, idx, w.def.Key)
	}
	previous := w.Content()
	w.index = idx
	w.notify(previous, w.Content())
	return nil
}

func (w *ChoiceWidget) indexOf(value string) int {
	for i, choice := range w.choices {
		if choice == value {
			return i
		}
	}
	return -1
}
