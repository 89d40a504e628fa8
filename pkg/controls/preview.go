package controls

import (
	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

// PreviewBuilder builds the read-only widgets shown in the schema editor. It
// shares the Factory's dispatch table. Unlike the Factory it keeps rows that
// are not visible and marks their widgets collapsed, so the editor can show
// every column of the schema being edited.
type PreviewBuilder struct {
	factory *Factory
}

// NewPreviewBuilder accepts the same options as NewFactory.
func NewPreviewBuilder(options ...Option) *PreviewBuilder {
	return &PreviewBuilder{factory: NewFactory(options...)}
}

// Build creates one read-only widget per definition, in definition order.
func (b *PreviewBuilder) Build(defs []schema.FieldDefinition) ([]Widget, error) {
	return b.factory.build(defs, buildPreview)
}
