package convert

import (
	"runtime"
	"strings"
)

// LineBreak is the platform line break used to delimit multi-valued fields.
var LineBreak = platformLineBreak(runtime.GOOS)

func platformLineBreak(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// ListConverter splits a delimited canonical string into its ordered tokens
// and joins them back. Empty tokens and duplicates survive the round trip.
type ListConverter struct {
	// Delimiter defaults to LineBreak when empty.
	Delimiter string
}

func (c ListConverter) delimiter() string {
	if c.Delimiter == "" {
		return LineBreak
	}
	return c.Delimiter
}

// Convert splits value into tokens. The empty string yields one empty token.
func (c ListConverter) Convert(value string) []string {
	return strings.Split(value, c.delimiter())
}

// ConvertBack joins tokens with the delimiter.
func (c ListConverter) ConvertBack(tokens []string) string {
	return strings.Join(tokens, c.delimiter())
}
