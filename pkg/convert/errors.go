package convert

import "errors"

// ErrInvalidEncoding is returned when a value is not in the encoding a
// converter expects.
var ErrInvalidEncoding = errors.New("convert: invalid encoding")

// ErrAmbiguousDisplay is returned when the true and false display tokens are
// the same, so a display token could not be mapped back.
var ErrAmbiguousDisplay = errors.New("convert: true and false display tokens must differ")
