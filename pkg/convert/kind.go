package convert

import (
	"fmt"

	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

var kindDisplayNames = map[schema.Kind]string{
	schema.KindNote:        "Text",
	schema.KindCounter:     "Counter",
	schema.KindFixedChoice: "Choice",
	schema.KindFlag:        "Checkbox",
	schema.KindDateTime:    "Date and time",
	schema.KindUtcOffset:   "UTC offset",
}

var kindsByDisplayName = func() map[string]schema.Kind {
	out := make(map[string]schema.Kind, len(kindDisplayNames))
	for kind, name := range kindDisplayNames {
		out[name] = kind
	}
	return out
}()

// KindConverter maps the six user-definable kinds to the names shown in the
// schema editor and back. System kinds are not part of its domain.
type KindConverter struct{}

// Convert returns the display name for kind.
func (KindConverter) Convert(kind schema.Kind) (string, error) {
	name, ok := kindDisplayNames[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", schema.ErrUnsupportedControlType, string(kind))
	}
	return name, nil
}

// ConvertBack returns the kind for a display name.
func (KindConverter) ConvertBack(name string) (schema.Kind, error) {
	kind, ok := kindsByDisplayName[name]
	if !ok {
		return "", fmt.Errorf("%w: display name %q", schema.ErrUnsupportedControlType, name)
	}
	return kind, nil
}

// DisplayNames lists the display names in schema.BaseKinds order.
func (KindConverter) DisplayNames() []string {
	kinds := schema.BaseKinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, kindDisplayNames[kind])
	}
	return names
}
