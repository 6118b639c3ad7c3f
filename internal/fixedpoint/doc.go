// Package fixedpoint implements normalized fixed-point numbers used as image
// channel storage.
//
// A normalized number stores an unsigned integer raw value r with f fractional
// bits and represents the real value r / (2^f - 1). The all-zero raw value is
// 0.0 and the raw value 2^f - 1 is 1.0, so 8-bit image data maps onto [0, 1]
// without any scaling at the call site.
//
// # Types
//
//   - N0f8: uint8 storage, 8 fractional bits, range [0, 1]
//   - N6f10: uint16 storage, 10 fractional bits, range [0, 64.06]
//   - N4f12: uint16 storage, 12 fractional bits, range [0, 16.0]
//   - N2f14: uint16 storage, 14 fractional bits, range [0, 4.0]
//   - N0f16: uint16 storage, 16 fractional bits, range [0, 1]
//
// The 10, 12 and 14 bit variants describe camera data that is stored in 16-bit
// words but only uses the lower bits; their nominal white is still 1.0.
//
// # Conversion
//
// Checked constructors (NewN0f8, FromFloat) round to the nearest raw value and
// fail with ErrOutOfRange for NaN or values the type cannot hold. The Clamp
// family saturates instead, mapping NaN to zero.
package fixedpoint
