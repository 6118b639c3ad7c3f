// Package views reinterprets arrays without copying them.
//
// A view shares storage with the array it was made from: change an element of
// the view and the original changes too. Views let image data move between
// representations (pixels of a colorant type, separate numeric channels, raw
// integer storage) at no cost, which matters when processing large images.
//
// # View Types
//
//   - ChannelView: colorant array (h, w) -> numeric array (c, h, w)
//   - ColorView: numeric array (c, h, w) -> colorant array (h, w)
//   - Raw: fixed-point array -> raw integer array (N0f8 -> uint8)
//   - Normed: raw integer array -> fixed-point array (uint8 -> N0f8)
//   - Stacked: several arrays presented as slices of a new first dimension
//   - Mapped: lazy element-wise transformation, optionally invertible
//
// Single-channel colorants (Gray) neither add nor consume a dimension.
//
// # Simplest Views
//
// Channels, Colors, RawView and NormedView return the simplest value that
// serves as the requested view. When their input is a view of the opposite
// kind they return its parent instead of stacking a second wrapper, so
// Channels(Colors(A)) is A itself.
//
// # Placeholders
//
// ZeroArray returns a placeholder that Stack and ColorsOf expand to a
// read-only all-zeros array matching the shape of the other inputs:
//
//	rb, err := views.ColorsOf[fixedpoint.N0f8, colorant.RGB[fixedpoint.N0f8]](
//	    red, views.ZeroArray[fixedpoint.N0f8](), blue)
package views
