package schema

import "fmt"

// Kind is the closed category of a field. It decides the widget shape and the
// conversion rules applied to the stored value.
type Kind string

const (
	KindNote        Kind = "Note"
	KindCounter     Kind = "Counter"
	KindFixedChoice Kind = "FixedChoice"
	KindFlag        Kind = "Flag"
	KindDateTime    Kind = "DateTime"
	KindUtcOffset   Kind = "UtcOffset"
)

// System kinds are fixed columns every schema carries. They alias one of the
// base kinds for widget purposes.
const (
	KindFile         Kind = "File"
	KindFolder       Kind = "Folder"
	KindRelativePath Kind = "RelativePath"
	KindDate         Kind = "Date"
	KindTime         Kind = "Time"
	KindDeleteFlag   Kind = "DeleteFlag"
	KindImageQuality Kind = "ImageQuality"
)

var baseKinds = map[Kind]Kind{
	KindNote:         KindNote,
	KindCounter:      KindCounter,
	KindFixedChoice:  KindFixedChoice,
	KindFlag:         KindFlag,
	KindDateTime:     KindDateTime,
	KindUtcOffset:    KindUtcOffset,
	KindFile:         KindNote,
	KindFolder:       KindNote,
	KindRelativePath: KindNote,
	KindDate:         KindNote,
	KindTime:         KindNote,
	KindDeleteFlag:   KindFlag,
	KindImageQuality: KindFixedChoice,
}

// BaseKinds lists the six user-definable kinds in display order.
func BaseKinds() []Kind {
	return []Kind{KindNote, KindCounter, KindFixedChoice, KindFlag, KindDateTime, KindUtcOffset}
}

// Base resolves system aliases to the base kind that drives the widget. Kinds
// outside the dispatch table return ErrUnsupportedControlType.
func (k Kind) Base() (Kind, error) {
	base, ok := baseKinds[k]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedControlType, string(k))
	}
	return base, nil
}

// Known reports whether k belongs to the dispatch table.
func (k Kind) Known() bool {
	_, ok := baseKinds[k]
	return ok
}

// IsSystem reports whether k is one of the fixed system columns.
func (k Kind) IsSystem() bool {
	base, ok := baseKinds[k]
	return ok && base != k
}

// IsIdentity reports whether k names the image's location rather than an
// annotation. Identity fields are never editable.
func (k Kind) IsIdentity() bool {
	switch k {
	case KindFile, KindFolder, KindRelativePath:
		return true
	default:
		return false
	}
}

// HasChoices reports whether widgets for k select from Choices.
func (k Kind) HasChoices() bool {
	return k == KindFixedChoice || k == KindImageQuality
}

// FieldDefinition is one schema row. Key must be unique across a schema; the
// loader enforces it, callers that build definitions by hand must too.
type FieldDefinition struct {
	Key              string   `json:"key" yaml:"key" validate:"required"`
	Kind             Kind     `json:"kind" yaml:"kind" validate:"required"`
	Label            string   `json:"label,omitempty" yaml:"label,omitempty"`
	Tooltip          string   `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	DefaultValue     string   `json:"default,omitempty" yaml:"default,omitempty"`
	Width            int      `json:"width,omitempty" yaml:"width,omitempty" validate:"gte=0"`
	Visible          bool     `json:"visible" yaml:"visible"`
	Copyable         bool     `json:"copyable" yaml:"copyable"`
	Choices          []string `json:"choices,omitempty" yaml:"choices,omitempty"`
	ControlOrder     int      `json:"controlOrder,omitempty" yaml:"controlOrder,omitempty"`
	SpreadsheetOrder int      `json:"spreadsheetOrder,omitempty" yaml:"spreadsheetOrder,omitempty"`
}

// DisplayLabel falls back to the key when no label was supplied.
func (d FieldDefinition) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return d.Key
}

// ValidateChoices checks the choice list of choice kinds: at least one entry
// and no repeats. Other kinds always pass.
func (d FieldDefinition) ValidateChoices() error {
	if !d.Kind.HasChoices() {
		return nil
	}
	if len(d.Choices) == 0 {
		return fmt.Errorf("%w: field %q has no choices", ErrInvalidChoices, d.Key)
	}
	seen := make(map[string]struct{}, len(d.Choices))
	for _, choice := range d.Choices {
		if _, exists := seen[choice]; exists {
			return fmt.Errorf("%w: field %q repeats choice %q", ErrInvalidChoices, d.Key, choice)
		}
		seen[choice] = struct{}{}
	}
	return nil
}
