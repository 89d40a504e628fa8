package convert

import "fmt"

// FlagConverter converts flag fields, including multi-valued "well known
// value" fields whose stored string holds several delimited flags.
//
// Convert returns a string when the stored value holds one token and a
// []string otherwise. ConvertBack accepts either shape.
type FlagConverter struct {
	List    ListConverter
	Boolean BooleanConverter
}

// Convert maps a canonical value to a display string or an ordered list of
// display strings.
func (c FlagConverter) Convert(canonical string) (any, error) {
	tokens := c.List.Convert(canonical)
	if len(tokens) == 1 {
		return c.Boolean.Convert(tokens[0])
	}

	displays := make([]string, len(tokens))
	for idx, token := range tokens {
		display, err := c.Boolean.Convert(token)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", idx, err)
		}
		displays[idx] = display
	}
	return displays, nil
}

// ConvertBack maps a display string or list of display strings back to the
// canonical stored value.
func (c FlagConverter) ConvertBack(display any) (string, error) {
	switch typed := display.(type) {
	case string:
		return c.Boolean.ConvertBack(typed)
	case []string:
		canonical := make([]string, len(typed))
		for idx, token := range typed {
			value, err := c.Boolean.ConvertBack(token)
			if err != nil {
				return "", fmt.Errorf("token %d: %w", idx, err)
			}
			canonical[idx] = value
		}
		return c.List.ConvertBack(canonical), nil
	default:
		return "", fmt.Errorf("%w: unsupported display shape %T", ErrInvalidEncoding, display)
	}
}
