// Package colorant defines structured pixel types built from numeric channels.
//
// Every colorant is generic over its channel type T, which is a float or one
// of the fixed-point types from package fixedpoint. Channels are always
// addressed in constructor-argument order: channel 0 of both RGB and BGR is
// red, and the alpha channel of ARGB is channel 3 even though it is stored
// first. Memory order only affects struct layout.
//
// All colorants implement image/color.Color, so arrays of colorants can be
// rendered, encoded or drawn with the standard image packages.
package colorant

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/ironsheep/image-core/internal/fixedpoint"
)

// ErrChannelCount is returned when the number of channel values does not
// match the colorant.
var ErrChannelCount = errors.New("wrong number of color channels")

// Channel is the constraint for colorant channel storage.
type Channel interface {
	float32 | float64 |
		fixedpoint.N0f8 | fixedpoint.N6f10 | fixedpoint.N4f12 | fixedpoint.N2f14 | fixedpoint.N0f16
}

// Color is implemented by every colorant type C with channel type T.
type Color[T Channel, C any] interface {
	color.Color

	// Len returns the number of channels.
	Len() int

	// Channel returns channel i in constructor order. It panics if i is
	// out of range.
	Channel(i int) T

	// WithChannel returns a copy with channel i set to v.
	WithChannel(i int, v T) C
}

// ToFloat64 returns the real value of a channel.
func ToFloat64[T Channel](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case fixedpoint.N0f8:
		return x.Float64()
	case fixedpoint.N6f10:
		return x.Float64()
	case fixedpoint.N4f12:
		return x.Float64()
	case fixedpoint.N2f14:
		return x.Float64()
	case fixedpoint.N0f16:
		return x.Float64()
	}
	panic(fmt.Sprintf("colorant: unsupported channel type %T", v))
}

// FromFloat64 converts x to channel type T. Fixed-point targets saturate and
// map NaN to zero; float targets keep x unchanged.
func FromFloat64[T Channel](x float64) T {
	var z T
	var out any
	switch any(z).(type) {
	case float32:
		out = float32(x)
	case float64:
		out = x
	case fixedpoint.N0f8:
		out = fixedpoint.Clamp[fixedpoint.N0f8](x)
	case fixedpoint.N6f10:
		out = fixedpoint.Clamp[fixedpoint.N6f10](x)
	case fixedpoint.N4f12:
		out = fixedpoint.Clamp[fixedpoint.N4f12](x)
	case fixedpoint.N2f14:
		out = fixedpoint.Clamp[fixedpoint.N2f14](x)
	case fixedpoint.N0f16:
		out = fixedpoint.Clamp[fixedpoint.N0f16](x)
	}
	return out.(T)
}

// Convert changes the storage type of a channel value.
func Convert[T, U Channel](v T) U {
	return FromFloat64[U](ToFloat64(v))
}

// ChannelName returns a printable name for channel type T.
func ChannelName[T Channel]() string {
	var z T
	switch any(z).(type) {
	case float32:
		return "Float32"
	case float64:
		return "Float64"
	case fixedpoint.N0f8:
		return fixedpoint.TypeName[fixedpoint.N0f8]()
	case fixedpoint.N6f10:
		return fixedpoint.TypeName[fixedpoint.N6f10]()
	case fixedpoint.N4f12:
		return fixedpoint.TypeName[fixedpoint.N4f12]()
	case fixedpoint.N2f14:
		return fixedpoint.TypeName[fixedpoint.N2f14]()
	}
	return fixedpoint.TypeName[fixedpoint.N0f16]()
}

// NumChannels returns the channel count of colorant type C.
func NumChannels[T Channel, C Color[T, C]]() int {
	var z C
	return z.Len()
}

// Channels returns the channels of c in constructor order.
func Channels[T Channel, C Color[T, C]](c C) []T {
	out := make([]T, c.Len())
	for i := range out {
		out[i] = c.Channel(i)
	}
	return out
}

// FromChannels builds a C from channel values given in constructor order.
func FromChannels[T Channel, C Color[T, C]](vs ...T) (C, error) {
	var c C
	if len(vs) != c.Len() {
		return c, fmt.Errorf("%w: got %d, want %d", ErrChannelCount, len(vs), c.Len())
	}
	for i, v := range vs {
		c = c.WithChannel(i, v)
	}
	return c, nil
}

// MapChannels applies f to every channel of c.
func MapChannels[T Channel, C Color[T, C]](c C, f func(T) T) C {
	for i := 0; i < c.Len(); i++ {
		c = c.WithChannel(i, f(c.Channel(i)))
	}
	return c
}

// to16 scales a channel to the 16-bit range used by color.Color, clamping
// to [0, 1] and mapping NaN to zero.
func to16[T Channel](v T) uint32 {
	x := ToFloat64(v)
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	if x >= 1 {
		return 0xffff
	}
	return uint32(x*0xffff + 0.5)
}

// premultiplied returns 16-bit alpha-premultiplied components for straight
// (non-premultiplied) channel values.
func premultiplied[T Channel](r, g, b, a T) (uint32, uint32, uint32, uint32) {
	a16 := to16(a)
	return to16(r) * a16 / 0xffff, to16(g) * a16 / 0xffff, to16(b) * a16 / 0xffff, a16
}

func badChannel(name string, i int) string {
	return fmt.Sprintf("colorant: channel %d out of range for %s", i, name)
}
