package tui

import "github.com/goliatone/go-fieldcontrols/pkg/convert"

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits a JSON object of key to canonical value.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits key=value lines in field order.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional formatting hints the session applies when printing
// messages. Keep minimal to avoid coupling session logic to ANSI specifics.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(s *Session) {
		if format != "" {
			s.outputFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Session) {
		s.theme = theme
	}
}

// WithFlagConverter sets how flag values are shown for read-only fields.
func WithFlagConverter(converter convert.FlagConverter) Option {
	return func(s *Session) {
		s.flags = converter
	}
}
