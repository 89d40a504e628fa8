package controls

import (
	"log/slog"

	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

// Surface owns the interactive widgets of the loaded schema: a Factory that
// builds them and the Registry that publishes them.
type Surface struct {
	factory  *Factory
	registry *Registry
}

// NewSurface builds a Surface whose factory uses options. The registry logs
// through the same logger as the factory.
func NewSurface(options ...Option) *Surface {
	factory := NewFactory(options...)
	return &Surface{
		factory:  factory,
		registry: NewRegistry(factory.logger),
	}
}

// Registry returns the registry readers should consult.
func (s *Surface) Registry() *Registry { return s.registry }

// Factory returns the factory used by Load.
func (s *Surface) Factory() *Factory { return s.factory }

// Load builds widgets for defs and installs them as the new registry
// generation. On any error the previously installed generation stays in
// place.
func (s *Surface) Load(defs []schema.FieldDefinition) error {
	widgets, err := s.factory.Build(defs)
	if err != nil {
		return err
	}
	if err := s.registry.Rebuild(widgets); err != nil {
		s.factory.logger.Error("control registry rebuild rejected", slog.Any("error", err))
		return err
	}
	return nil
}
