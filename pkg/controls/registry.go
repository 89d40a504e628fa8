package controls

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Registry indexes the widgets of one schema load by key. Rebuild installs a
// whole new generation in one step; readers see either the old generation or
// the new one, never a mix.
type Registry struct {
	mu         sync.RWMutex
	widgets    map[string]Widget
	order      []string
	generation uuid.UUID
	logger     *slog.Logger
}

// NewRegistry returns an empty registry. A nil logger discards output.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		widgets: make(map[string]Widget),
		logger:  logger,
	}
}

// Rebuild replaces the registry contents with widgets. The new index is built
// before the lock is taken; a duplicate key rejects the whole rebuild and
// leaves the current generation installed.
func (r *Registry) Rebuild(widgets []Widget) error {
	next := make(map[string]Widget, len(widgets))
	order := make([]string, 0, len(widgets))
	for _, widget := range widgets {
		key := widget.Key()
		if _, exists := next[key]; exists {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		next[key] = widget
		order = append(order, key)
	}
	generation := uuid.New()

	r.mu.Lock()
	previous := r.generation
	r.widgets = next
	r.order = order
	r.generation = generation
	r.mu.Unlock()

	r.logger.Debug("control registry rebuilt",
		slog.String("generation", generation.String()),
		slog.String("previous", previous.String()),
		slog.Int("widgets", len(order)),
	)
	return nil
}

// Lookup returns the widget registered for key.
func (r *Registry) Lookup(key string) (Widget, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	widget, ok := r.widgets[key]
	return widget, ok
}

// MustLookup panics when key is not registered.
func (r *Registry) MustLookup(key string) Widget {
	widget, ok := r.Lookup(key)
	if !ok {
		panic(fmt.Sprintf("controls: no widget registered for %q", key))
	}
	return widget
}

// Keys returns the registered keys in build order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Widgets returns the registered widgets in build order.
func (r *Registry) Widgets() []Widget {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Widget, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.widgets[key])
	}
	return out
}

// Len reports the number of registered widgets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.widgets)
}

// Generation identifies the installed set of widgets. It is uuid.Nil until the
// first rebuild.
func (r *Registry) Generation() uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.generation
}

// Snapshot returns a copy of the key to widget index.
func (r *Registry) Snapshot() map[string]Widget {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Widget, len(r.widgets))
	for key, widget := range r.widgets {
		out[key] = widget
	}
	return out
}

// Contents returns the canonical content of every registered widget.
func (r *Registry) Contents() map[string]string {
	widgets := r.Widgets()
	out := make(map[string]string, len(widgets))
	for _, widget := range widgets {
		out[widget.Key()] = widget.Content()
	}
	return out
}

// Apply writes canonical values into the matching widgets in build order.
// Unknown keys are rejected with ErrUnknownKey before any widget is written.
// A value a widget rejects restores the widgets already written, so Apply
// either takes every value or none.
func (r *Registry) Apply(values map[string]string) error {
	widgets := r.Widgets()
	known := make(map[string]struct{}, len(widgets))
	for _, widget := range widgets {
		known[widget.Key()] = struct{}{}
	}
	for key := range values {
		if _, ok := known[key]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
	}
	written := make([]Widget, 0, len(values))
	previous := make([]string, 0, len(values))
	for _, widget := range widgets {
		value, ok := values[widget.Key()]
		if !ok {
			continue
		}
		before := widget.Content()
		if err := widget.SetContent(value); err != nil {
			r.restore(written, previous)
			return fmt.Errorf("controls: apply %q: %w", widget.Key(), err)
		}
		written = append(written, widget)
		previous = append(previous, before)
	}
	return nil
}

// restore puts back canonical contents captured before a failed Apply, most
// recent write first.
func (r *Registry) restore(widgets []Widget, contents []string) {
	for idx := len(widgets) - 1; idx >= 0; idx-- {
		if err := widgets[idx].SetContent(contents[idx]); err != nil {
			r.logger.Error("control restore failed",
				slog.String("key", widgets[idx].Key()),
				slog.Any("error", err),
			)
		}
	}
}
