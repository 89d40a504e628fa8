package controls

// TextWidget is a single-line text box. Content passes through unchanged.
type TextWidget struct {
	*control
	text string
}

func newTextWidget(c *control) *TextWidget {
	return &TextWidget{control: c, text: c.def.DefaultValue}
}

func (w *TextWidget) Content() string { return w.text }

func (w *TextWidget) SetContent(value string) error {
	previous := w.text
	w.text = value
	w.notify(previous, value)
	return nil
}
