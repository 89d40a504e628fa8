package controls

import (
	"errors"

	"github.com/goliatone/go-fieldcontrols/pkg/schema"
)

var (
	// ErrChoiceNotFound is returned when a choice widget is given a token
	// that is not one of its choices.
	ErrChoiceNotFound = errors.New("controls: choice not found")
	// ErrDuplicateKey is returned when a registry rebuild sees the same key
	// twice.
	ErrDuplicateKey = schema.ErrDuplicateKey
	// ErrUnknownKey is returned by registry writes addressed to a key that
	// the current generation does not hold.
	ErrUnknownKey = errors.New("controls: unknown key")
)
