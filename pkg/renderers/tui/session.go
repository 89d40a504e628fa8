package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-fieldcontrols/pkg/controls"
	"github.com/goliatone/go-fieldcontrols/pkg/convert"
)

// Session walks the widgets of a registry in build order and edits each one
// through terminal prompts. Read-only widgets are shown but not prompted.
type Session struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	flags        convert.FlagConverter
}

// New constructs a session with defaults (survey driver, JSON output).
func New(options ...Option) *Session {
	s := &Session{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// ContentType reports the serialization format used by Render.
func (s *Session) ContentType() string {
	if s.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Run prompts for every editable widget and writes the answers back as
// canonical content. Invalid answers are reported and asked again.
func (s *Session) Run(ctx context.Context, registry *controls.Registry) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if registry == nil {
		return ErrNoRegistry
	}
	if s.driver == nil {
		return errors.New("tui: prompt driver is nil")
	}

	for _, widget := range registry.Widgets() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.promptWidget(ctx, widget); err != nil {
			return err
		}
	}
	return nil
}

// Render runs the session and serializes the resulting contents.
func (s *Session) Render(ctx context.Context, registry *controls.Registry) ([]byte, error) {
	if err := s.Run(ctx, registry); err != nil {
		return nil, err
	}
	return s.serialize(registry)
}

func (s *Session) promptWidget(ctx context.Context, widget controls.Widget) error {
	if widget.ReadOnly() {
		return s.driver.Info(ctx, s.theme.InfoPrefix+fmt.Sprintf("%s: %s (read-only)", widget.Label(), s.displayValue(widget)))
	}
	widget.Focus()

	switch w := widget.(type) {
	case *controls.FlagWidget:
		return s.promptFlag(ctx, w)
	case *controls.ChoiceWidget:
		return s.promptChoice(ctx, w)
	case *controls.UtcOffsetWidget:
		return s.promptUtcOffset(ctx, w)
	case *controls.CounterWidget:
		if err := s.promptText(ctx, w); err != nil {
			return err
		}
		w.Select()
		return nil
	default:
		return s.promptText(ctx, widget)
	}
}

// promptText covers text, counter and date time widgets: anything whose
// content is typed in directly.
func (s *Session) promptText(ctx context.Context, widget controls.Widget) error {
	for {
		response, err := s.driver.Input(ctx, InputConfig{
			Message:   widget.Label(),
			Default:   widget.Content(),
			Help:      widget.Tooltip(),
			Validator: inputValidator(widget),
		})
		if err != nil {
			return err
		}
		if err := widget.SetContent(response); err != nil {
			if infoErr := s.invalid(ctx, widget, err); infoErr != nil {
				return infoErr
			}
			continue
		}
		return nil
	}
}

// inputValidator lets the driver reject malformed date times while the
// prompt is still open.
func inputValidator(widget controls.Widget) func(string) error {
	if widget.Shape() != controls.ShapeDateTime {
		return nil
	}
	return func(value string) error {
		_, err := controls.ParseDateTime(value)
		return err
	}
}

func (s *Session) promptFlag(ctx context.Context, widget *controls.FlagWidget) error {
	resp, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: widget.Label(),
		Default: widget.Checked(),
		Help:    widget.Tooltip(),
	})
	if err != nil {
		return err
	}
	widget.SetChecked(resp)
	return nil
}

func (s *Session) promptChoice(ctx context.Context, widget *controls.ChoiceWidget) error {
	options := widget.Choices()
	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      widget.Label(),
			Options:      options,
			DefaultIndex: widget.SelectedIndex(),
			Help:         widget.Tooltip(),
		})
		if err != nil {
			return err
		}
		if err := widget.SelectIndex(idx); err != nil {
			if infoErr := s.invalid(ctx, widget, err); infoErr != nil {
				return infoErr
			}
			continue
		}
		return nil
	}
}

func (s *Session) promptUtcOffset(ctx context.Context, widget *controls.UtcOffsetWidget) error {
	options := utcOffsetOptions()
	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      widget.Label(),
			Options:      options,
			DefaultIndex: indexOf(options, widget.Content()),
			Help:         widget.Tooltip(),
			PageSize:     12,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			if infoErr := s.invalid(ctx, widget, errors.New("selection out of range")); infoErr != nil {
				return infoErr
			}
			continue
		}
		return widget.SetContent(options[idx])
	}
}

func (s *Session) invalid(ctx context.Context, widget controls.Widget, err error) error {
	return s.driver.Info(ctx, s.theme.ErrorPrefix+fmt.Sprintf("Invalid %s: %v", widget.Key(), err))
}

func (s *Session) displayValue(widget controls.Widget) string {
	if widget.Shape() != controls.ShapeFlag {
		return widget.Content()
	}
	display, err := s.flags.Convert(widget.Content())
	if err != nil {
		return widget.Content()
	}
	if list, ok := display.([]string); ok {
		return strings.Join(list, ", ")
	}
	return fmt.Sprint(display)
}

func utcOffsetOptions() []string {
	options := make([]string, 0, (controls.MaxUtcOffset-controls.MinUtcOffset)/controls.UtcOffsetStep+1)
	for minutes := controls.MinUtcOffset; minutes <= controls.MaxUtcOffset; minutes += controls.UtcOffsetStep {
		options = append(options, controls.FormatUtcOffset(minutes))
	}
	return options
}

func (s *Session) serialize(registry *controls.Registry) ([]byte, error) {
	if s.outputFormat == OutputFormatPrettyText {
		var b strings.Builder
		for _, widget := range registry.Widgets() {
			fmt.Fprintf(&b, "%s=%s\n", widget.Key(), widget.Content())
		}
		return []byte(b.String()), nil
	}
	return json.Marshal(registry.Contents())
}
