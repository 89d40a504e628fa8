package schema

import "errors"

var (
	// ErrUnsupportedControlType signals a kind outside the closed dispatch
	// table. It indicates a corrupt schema and is never recoverable.
	ErrUnsupportedControlType = errors.New("schema: unsupported control type")
	// ErrInvalidChoices is returned when a choice field has no choices or
	// repeats one.
	ErrInvalidChoices = errors.New("schema: invalid choices")
	// ErrDuplicateKey is returned when two definitions share a key.
	ErrDuplicateKey = errors.New("schema: duplicate key")
	// ErrInvalidDefinition wraps struct-level validation failures.
	ErrInvalidDefinition = errors.New("schema: invalid definition")
)
