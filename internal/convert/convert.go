// Package convert changes the channel storage type of arrays without changing
// their color space: N0f8 to Float32, Float64 to N0f16, and so on.
//
// Conversions are eager and return a new contiguous array. Values are
// preserved up to the precision of the target; conversion into a
// fixed-point type saturates out-of-range values and maps NaN to zero.
package convert

import (
	"fmt"

	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/fixedpoint"
	"github.com/ironsheep/image-core/internal/ndarray"
	"github.com/ironsheep/image-core/internal/views"
)

// Numeric converts a numeric array with channel type T to channel type U.
func Numeric[T, U colorant.Channel](a ndarray.Array[T]) *ndarray.Dense[U] {
	return ndarray.Collect[U](Lazy[T, U](a))
}

// Lazy is Numeric without the copy: a read-only view converting on access.
func Lazy[T, U colorant.Channel](a ndarray.Array[T]) ndarray.Array[U] {
	return views.Map(a, colorant.Convert[T, U], nil)
}

// Storage converts an array of colorants C with channel type T into
// colorants D with channel type U. C and D must have the same number of
// channels, for example RGB[N0f8] and RGB[float32].
func Storage[T, U colorant.Channel, C colorant.Color[T, C], D colorant.Color[U, D]](a ndarray.Array[C]) (*ndarray.Dense[D], error) {
	f, err := colorFunc[T, U, C, D]()
	if err != nil {
		return nil, err
	}
	return ndarray.Collect[D](views.Map(a, f, nil)), nil
}

// Color converts a single colorant between storage types.
func Color[T, U colorant.Channel, C colorant.Color[T, C], D colorant.Color[U, D]](c C) (D, error) {
	f, err := colorFunc[T, U, C, D]()
	if err != nil {
		var zero D
		return zero, err
	}
	return f(c), nil
}

func colorFunc[T, U colorant.Channel, C colorant.Color[T, C], D colorant.Color[U, D]]() (func(C) D, error) {
	var c C
	var d D
	if c.Len() != d.Len() {
		return nil, fmt.Errorf("%w: %d-channel source, %d-channel target", colorant.ErrChannelCount, c.Len(), d.Len())
	}
	n := c.Len()
	return func(c C) D {
		var d D
		for i := 0; i < n; i++ {
			d = d.WithChannel(i, colorant.Convert[T, U](c.Channel(i)))
		}
		return d
	}, nil
}

// Float32 converts a numeric array to float32.
func Float32[T colorant.Channel](a ndarray.Array[T]) *ndarray.Dense[float32] {
	return Numeric[T, float32](a)
}

// Float64 converts a numeric array to float64.
func Float64[T colorant.Channel](a ndarray.Array[T]) *ndarray.Dense[float64] {
	return Numeric[T, float64](a)
}

// N0f8 converts a numeric array to 8-bit fixed point.
func N0f8[T colorant.Channel](a ndarray.Array[T]) *ndarray.Dense[fixedpoint.N0f8] {
	return Numeric[T, fixedpoint.N0f8](a)
}

// N6f10 converts a numeric array to 10-bit fixed point.
func N6f10[T colorant.Channel](a ndarray.Array[T]) *ndarray.Dense[fixedpoint.N6f10] {
	return Numeric[T, fixedpoint.N6f10](a)
}

// N4f12 converts a numeric array to 12-bit fixed point.
func N4f12[T colorant.Channel](a ndarray.Array[T]) *ndarray.Dense[fixedpoint.N4f12] {
	return Numeric[T, fixedpoint.N4f12](a)
}

// N2f14 converts a numeric array to 14-bit fixed point.
func N2f14[T colorant.Channel](a ndarray.Array[T]) *ndarray.Dense[fixedpoint.N2f14] {
	return Numeric[T, fixedpoint.N2f14](a)
}

// N0f16 converts a numeric array to 16-bit fixed point.
func N0f16[T colorant.Channel](a ndarray.Array[T]) *ndarray.Dense[fixedpoint.N0f16] {
	return Numeric[T, fixedpoint.N0f16](a)
}
