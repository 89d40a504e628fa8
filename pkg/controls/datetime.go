package controls

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-fieldcontrols/pkg/convert"
)

// DateTimeFormat is the canonical stored form of DateTime fields: UTC with
// millisecond precision.
const DateTimeFormat = "2006-01-02T15:04:05.000Z"

// ParseDateTime decodes a canonical DateTime value.
func ParseDateTime(value string) (time.Time, error) {
	parsed, err := time.Parse(DateTimeFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date time: %v", convert.ErrInvalidEncoding, value, err)
	}
	return parsed.UTC(), nil
}

// FormatDateTime encodes t in the canonical DateTime form.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeFormat)
}

// DateTimeWidget edits a date and time. An empty default takes the factory
// clock's current time.
type DateTimeWidget struct {
	*control
	value time.Time
}

func newDateTimeWidget(c *control, now func() time.Time) (*DateTimeWidget, error) {
	w := &DateTimeWidget{control: c}
	if c.def.DefaultValue == "" {
		w.value = now().UTC().Truncate(time.Millisecond)
		return w, nil
	}
	value, err := ParseDateTime(c.def.DefaultValue)
	if err != nil {
		return nil, err
	}
	w.value = value
	return w, nil
}

func (w *DateTimeWidget) Content() string { return FormatDateTime(w.value) }

func (w *DateTimeWidget) SetContent(value string) error {
	parsed, err := ParseDateTime(value)
	if err != nil {
		return err
	}
	w.SetValue(parsed)
	return nil
}

// Value returns the edited time in UTC.
func (w *DateTimeWidget) Value() time.Time { return w.value }

// SetValue replaces the edited time. Precision below a millisecond is dropped.
func (w *DateTimeWidget) SetValue(t time.Time) {
	previous := w.Content()
	w.value = t.UTC().Truncate(time.Millisecond)
	w.notify(previous, w.Content())
}
