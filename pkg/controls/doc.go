// Package controls turns schema rows into typed widgets and indexes them by
// field key.
//
// A Factory builds the interactive data-entry widgets; a PreviewBuilder
// builds the non-interactive copies shown while the schema itself is edited.
// Both dispatch through the same kind-to-shape table:
//
//	Note, File, Folder, RelativePath, Date, Time  -> ShapeText
//	Counter                                       -> ShapeCounter
//	Flag, DeleteFlag                              -> ShapeFlag
//	FixedChoice, ImageQuality                     -> ShapeChoice
//	DateTime                                      -> ShapeDateTime
//	UtcOffset                                     -> ShapeUtcOffset
//
// The factory skips rows that are not visible; the preview builder keeps them
// and marks them collapsed.
//
// Widgets hold their content as the canonical stored string. A Registry maps
// keys to the widgets of one schema load and is swapped in a single step, so
// readers never see widgets from two loads at once. Widgets and their owner
// are expected to live on one goroutine; only the registry swap is locked.
package controls
