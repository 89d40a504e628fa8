package controls

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

// Option configures a Factory or PreviewBuilder.
type Option func(*Factory)

// WithStyle sets the style handed to every widget.
func WithStyle(style Style) Option {
	return func(f *Factory) {
		f.style = style
	}
}

// WithLogger routes build diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Factory) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithClock overrides the clock used for DateTime fields without a default.
func WithClock(now func() time.Time) Option {
	return func(f *Factory) {
		if now != nil {
			f.now = now
		}
	}
}

// Factory builds the interactive widgets for a schema.
type Factory struct {
	style  Style
	logger *slog.Logger
	now    func() time.Time
}

// NewFactory constructs a Factory with DefaultStyle, a discarding logger and
// the system clock unless overridden.
func NewFactory(options ...Option) *Factory {
	f := &Factory{
		style:  DefaultStyle(),
		logger: slog.New(slog.DiscardHandler),
		now:    time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Style returns the style the factory hands to widgets.
func (f *Factory) Style() Style { return f.style }

// Build creates one widget per visible definition, in definition order.
// Definitions that are not visible are checked like any other and then
// skipped. The first definition that cannot be built aborts the build and no
// widgets are returned.
func (f *Factory) Build(defs []schema.FieldDefinition) ([]Widget, error) {
	return f.build(defs, buildInteractive)
}

type buildMode int

const (
	buildInteractive buildMode = iota
	buildPreview
)

func (m buildMode) String() string {
	if m == buildPreview {
		return "preview"
	}
	return "interactive"
}

// buildEnv is shared by every widget of a single build.
type buildEnv struct {
	style          Style
	nonInteractive bool
	focus          *focusScope
	counters       *selectionGroup
	now            func() time.Time
}

func (f *Factory) build(defs []schema.FieldDefinition, mode buildMode) ([]Widget, error) {
	env := buildEnv{
		style:          f.style,
		nonInteractive: mode == buildPreview,
		focus:          &focusScope{},
		counters:       &selectionGroup{},
		now:            f.now,
	}

	widgets := make([]Widget, 0, len(defs))
	skipped := 0
	for idx, def := range defs {
		// Invisible rows are still built so a corrupt row aborts either mode.
		widget, err := newWidget(def, env)
		if err != nil {
			f.logger.Error("control build aborted",
				slog.String("mode", mode.String()),
				slog.Int("row", idx),
				slog.String("key", def.Key),
				slog.String("kind", string(def.Kind)),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("controls: build %q (row %d): %w", def.Key, idx, err)
		}
		if !def.Visible && mode == buildInteractive {
			skipped++
			continue
		}
		widgets = append(widgets, widget)
	}

	f.logger.Debug("controls built",
		slog.String("mode", mode.String()),
		slog.Int("widgets", len(widgets)),
		slog.Int("skipped", skipped),
	)
	return widgets, nil
}

// newWidget is the kind-to-shape dispatch table shared by both builders.
func newWidget(def schema.FieldDefinition, env buildEnv) (Widget, error) {
	base, err := def.Kind.Base()
	if err != nil {
		return nil, err
	}

	switch base {
	case schema.KindNote:
		return newTextWidget(newControl(def, ShapeText, env)), nil
	case schema.KindCounter:
		return newCounterWidget(newControl(def, ShapeCounter, env), env.counters), nil
	case schema.KindFlag:
		return built(newFlagWidget(newControl(def, ShapeFlag, env)))
	case schema.KindFixedChoice:
		return built(newChoiceWidget(newControl(def, ShapeChoice, env)))
	case schema.KindDateTime:
		return built(newDateTimeWidget(newControl(def, ShapeDateTime, env), env.now))
	case schema.KindUtcOffset:
		return built(newUtcOffsetWidget(newControl(def, ShapeUtcOffset, env)))
	default:
		return nil, fmt.Errorf("%w: %q", schema.ErrUnsupportedControlType, string(def.Kind))
	}
}

func built[W Widget](widget W, err error) (Widget, error) {
	if err != nil {
		return nil, err
	}
	return widget, nil
}
