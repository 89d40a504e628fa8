package convert

import (
	"fmt"
	"strings"
)

// Canonical flag tokens.
const (
	True  = "true"
	False = "false"
)

// Default display tokens for flags.
const (
	DefaultTrueDisplay  = "True"
	DefaultFalseDisplay = "False"
)

// ParseBool accepts the canonical tokens in any letter case and returns the
// matching value.
func ParseBool(value string) (bool, error) {
	switch {
	case strings.EqualFold(value, True):
		return true, nil
	case strings.EqualFold(value, False):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a flag value", ErrInvalidEncoding, value)
	}
}

// FormatBool returns the canonical token for v.
func FormatBool(v bool) string {
	if v {
		return True
	}
	return False
}

// CanonicalBool normalises the letter case of a flag token.
func CanonicalBool(value string) (string, error) {
	v, err := ParseBool(value)
	if err != nil {
		return "", err
	}
	return FormatBool(v), nil
}

// BooleanConverter maps canonical flag tokens to display tokens and back.
// The zero value uses DefaultTrueDisplay and DefaultFalseDisplay.
type BooleanConverter struct {
	TrueDisplay  string
	FalseDisplay string
}

// NewBooleanConverter builds a converter with custom display tokens. Empty
// tokens fall back to the defaults. Tokens that resolve to the same display
// are rejected with ErrAmbiguousDisplay.
func NewBooleanConverter(trueDisplay, falseDisplay string) (BooleanConverter, error) {
	c := BooleanConverter{TrueDisplay: trueDisplay, FalseDisplay: falseDisplay}
	if t, f := c.displays(); t == f {
		return BooleanConverter{}, fmt.Errorf("%w: both are %q", ErrAmbiguousDisplay, t)
	}
	return c, nil
}

func (c BooleanConverter) displays() (string, string) {
	t, f := c.TrueDisplay, c.FalseDisplay
	if t == "" {
		t = DefaultTrueDisplay
	}
	if f == "" {
		f = DefaultFalseDisplay
	}
	return t, f
}

// Convert maps a canonical token to its display token.
func (c BooleanConverter) Convert(canonical string) (string, error) {
	v, err := ParseBool(canonical)
	if err != nil {
		return "", err
	}
	t, f := c.displays()
	if v {
		return t, nil
	}
	return f, nil
}

// ConvertBack maps a display token to its canonical token. Display tokens are
// matched exactly.
func (c BooleanConverter) ConvertBack(display string) (string, error) {
	t, f := c.displays()
	if t == f {
		return "", fmt.Errorf("%w: both are %q", ErrAmbiguousDisplay, t)
	}
	switch display {
	case t:
		return True, nil
	case f:
		return False, nil
	default:
		return "", fmt.Errorf("%w: %q is not a flag display value", ErrInvalidEncoding, display)
	}
}
