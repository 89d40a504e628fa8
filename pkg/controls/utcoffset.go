package controls

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-fieldcontrols/pkg/convert"
)

// UTC offsets are held in minutes.
const (
	MinUtcOffset      = -12 * 60
	MaxUtcOffset      = 14 * 60
	UtcOffsetStep     = 15
	utcOffsetHourStep = 60
)

// OffsetComponent is the part of a UTC offset the stepper acts on.
type OffsetComponent int

const (
	OffsetHours OffsetComponent = iota
	OffsetMinutes
)

// ClampUtcOffset limits minutes to [MinUtcOffset, MaxUtcOffset].
func ClampUtcOffset(minutes int) int {
	if minutes < MinUtcOffset {
		return MinUtcOffset
	}
	if minutes > MaxUtcOffset {
		return MaxUtcOffset
	}
	return minutes
}

// SnapUtcOffset rounds minutes to the nearest multiple of UtcOffsetStep (ties
// away from zero) and clamps the result.
func SnapUtcOffset(minutes int) int {
	rem := minutes % UtcOffsetStep
	snapped := minutes - rem
	switch {
	case rem*2 >= UtcOffsetStep:
		snapped += UtcOffsetStep
	case rem*2 <= -UtcOffsetStep:
		snapped -= UtcOffsetStep
	}
	return ClampUtcOffset(snapped)
}

// FormatUtcOffset encodes minutes as ±hh:mm.
func FormatUtcOffset(minutes int) string {
	sign := '+'
	if minutes < 0 {
		sign = '-'
		minutes = -minutes
	}
	return fmt.Sprintf("%c%02d:%02d", sign, minutes/60, minutes%60)
}

// ParseUtcOffset decodes ±hh:mm. The value must sit on the UtcOffsetStep grid;
// it is not clamped.
func ParseUtcOffset(value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	invalid := func() (int, error) {
		return 0, fmt.Errorf("%w: %q is not a UTC offset", convert.ErrInvalidEncoding, value)
	}
	if len(trimmed) != len("+hh:mm") || trimmed[3] != ':' {
		return invalid()
	}
	sign := 1
	switch trimmed[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return invalid()
	}
	if !isDigits(trimmed[1:3]) || !isDigits(trimmed[4:6]) {
		return invalid()
	}
	hours, _ := strconv.Atoi(trimmed[1:3])
	minutes, _ := strconv.Atoi(trimmed[4:6])
	if minutes >= 60 {
		return invalid()
	}
	if minutes%UtcOffsetStep != 0 {
		return 0, fmt.Errorf("%w: %q is not a multiple of %d minutes", convert.ErrInvalidEncoding, value, UtcOffsetStep)
	}
	return sign * (hours*60 + minutes), nil
}

// UtcOffsetWidget is a bounded stepper over UTC offsets. Stepping moves by one
// hour while the hour component is active and by UtcOffsetStep minutes while
// the minute component is active. Values are clamped to the offset range.
type UtcOffsetWidget struct {
	*control
	minutes   int
	component OffsetComponent
}

func newUtcOffsetWidget(c *control) (*UtcOffsetWidget, error) {
	w := &UtcOffsetWidget{control: c}
	if c.def.DefaultValue == "" {
		return w, nil
	}
	minutes, err := ParseUtcOffset(c.def.DefaultValue)
	if err != nil {
		return nil, err
	}
	w.minutes = ClampUtcOffset(minutes)
	return w, nil
}

func (w *UtcOffsetWidget) Content() string { return FormatUtcOffset(w.minutes) }

func (w *UtcOffsetWidget) SetContent(value string) error {
	minutes, err := ParseUtcOffset(value)
	if err != nil {
		return err
	}
	w.SetMinutes(minutes)
	return nil
}

// Minutes returns the offset in minutes.
func (w *UtcOffsetWidget) Minutes() int { return w.minutes }

// SetMinutes sets the offset, snapped to the UtcOffsetStep grid and clamped to
// the allowed range.
func (w *UtcOffsetWidget) SetMinutes(minutes int) {
	previous := w.Content()
	w.minutes = SnapUtcOffset(minutes)
	w.notify(previous, w.Content())
}

// ActiveComponent reports which component the stepper acts on.
func (w *UtcOffsetWidget) ActiveComponent() OffsetComponent { return w.component }

// SetActiveComponent chooses the component the stepper acts on.
func (w *UtcOffsetWidget) SetActiveComponent(component OffsetComponent) {
	w.component = component
}

// StepUp moves the offset one step forward.
func (w *UtcOffsetWidget) StepUp() { w.SetMinutes(w.minutes + w.step()) }

// StepDown moves the offset one step back.
func (w *UtcOffsetWidget) StepDown() { w.SetMinutes(w.minutes - w.step()) }

func (w *UtcOffsetWidget) step() int {
	if w.component == OffsetMinutes {
		return UtcOffsetStep
	}
	return utcOffsetHourStep
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
