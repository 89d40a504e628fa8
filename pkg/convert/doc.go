// Package convert holds the stateless, bidirectional string converters used
// at the boundary between stored values and what a widget displays.
//
// Canonical encodings:
//
//   - flags are exactly "true" or "false" (case-insensitive on input)
//   - multi-valued fields join their tokens with the platform line break
//   - control kinds round-trip through a fixed set of display names
//
// Converters never auto-correct input. Anything outside the canonical
// encoding fails with ErrInvalidEncoding (or schema.ErrUnsupportedControlType
// for kinds).
package convert
