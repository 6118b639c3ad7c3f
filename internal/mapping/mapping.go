// Package mapping transforms pixel values: clamping into [0, 1], linear
// rescaling of arbitrary ranges, and signed colormaps.
//
// Scaling functions are built by factories (ScaleMinMax, ScaleSigned,
// ScaleSignedCentered) that validate their parameters once and return a
// plain func(float64) float64. TakeMap fits a factory to the data of an
// array.
package mapping

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/ndarray"
	"github.com/ironsheep/image-core/internal/views"
)

// ErrInvalidRange is returned when scaling parameters do not describe a
// non-empty interval.
var ErrInvalidRange = errors.New("invalid scaling range")

// Float is the constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Real is the constraint for element types that TakeMap can fit. It covers
// the fixed-point types through their unsigned storage.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ToFloat returns the real value of x. Fixed-point values report their
// normalized value, not their raw storage.
func ToFloat[T Real](x T) float64 {
	if n, ok := any(x).(interface{ Float64() float64 }); ok {
		return n.Float64()
	}
	return float64(x)
}

// Clamp01 restricts x to [0, 1]. NaN passes through.
func Clamp01[T Float](x T) T {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}

// Clamp01NaN is Clamp01 with NaN mapped to zero.
func Clamp01NaN[T Float](x T) T {
	if x != x {
		return 0
	}
	return Clamp01(x)
}

func clampChannel[T colorant.Channel](v T) T {
	return colorant.FromFloat64[T](Clamp01(colorant.ToFloat64(v)))
}

func clampChannelNaN[T colorant.Channel](v T) T {
	return colorant.FromFloat64[T](Clamp01NaN(colorant.ToFloat64(v)))
}

// Clamp01Color applies Clamp01 to every channel of c. Fixed-point types
// above 1 (N6f10 and friends) saturate at 1.
func Clamp01Color[T colorant.Channel, C colorant.Color[T, C]](c C) C {
	return colorant.MapChannels[T, C](c, clampChannel[T])
}

// Clamp01NaNColor applies Clamp01NaN to every channel of c.
func Clamp01NaNColor[T colorant.Channel, C colorant.Color[T, C]](c C) C {
	return colorant.MapChannels[T, C](c, clampChannelNaN[T])
}

// Clamp01InPlace clamps every element of a.
func Clamp01InPlace[T Float](a ndarray.Array[T]) error {
	return update(a, Clamp01[T])
}

// Clamp01NaNInPlace clamps every element of a and replaces NaN with zero.
func Clamp01NaNInPlace[T Float](a ndarray.Array[T]) error {
	return update(a, Clamp01NaN[T])
}

// Clamp01ColorInPlace clamps every channel of every element of a.
func Clamp01ColorInPlace[T colorant.Channel, C colorant.Color[T, C]](a ndarray.Array[C]) error {
	return update(a, Clamp01Color[T, C])
}

func update[T any](a ndarray.Array[T], f func(T) T) error {
	var err error
	ndarray.Indices(a.Shape(), func(idx []int) {
		if err != nil {
			return
		}
		err = a.Set(f(a.At(idx...)), idx...)
	})
	return err
}

// ScaleMinMax returns a function mapping lo to 0 and hi to 1, linear in
// between and clamped outside. NaN passes through.
func ScaleMinMax(lo, hi float64) (func(float64) float64, error) {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: min %g must be below max %g", ErrInvalidRange, lo, hi)
	}
	width := hi - lo
	return func(x float64) float64 {
		return Clamp01((x - lo) / width)
	}, nil
}

// ScaleMinMaxColor is ScaleMinMax applied to every channel of a colorant.
func ScaleMinMaxColor[T colorant.Channel, C colorant.Color[T, C]](lo, hi float64) (func(C) C, error) {
	f, err := ScaleMinMax(lo, hi)
	if err != nil {
		return nil, err
	}
	return func(c C) C {
		return colorant.MapChannels[T, C](c, func(v T) T {
			return colorant.FromFloat64[T](f(colorant.ToFloat64(v)))
		})
	}, nil
}

// ScaleSigned returns a function mapping [-maxabs, maxabs] to [-1, 1],
// clamping values outside.
func ScaleSigned(maxabs float64) (func(float64) float64, error) {
	if !(maxabs > 0) || math.IsInf(maxabs, 0) {
		return nil, fmt.Errorf("%w: maxabs %g must be positive", ErrInvalidRange, maxabs)
	}
	return func(x float64) float64 {
		return clampSigned(x / maxabs)
	}, nil
}

// ScaleSignedCentered returns a function mapping [lo, center] to [-1, 0]
// and [center, hi] to [0, 1], clamping values outside. The two halves are
// scaled independently.
func ScaleSignedCentered(lo, center, hi float64) (func(float64) float64, error) {
	if !(lo < center && center < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: need min < center < max, got %g, %g, %g", ErrInvalidRange, lo, center, hi)
	}
	neg, pos := center-lo, hi-center
	return func(x float64) float64 {
		if x < center {
			return clampSigned((x - center) / neg)
		}
		return clampSigned((x - center) / pos)
	}, nil
}

func clampSigned(x float64) float64 {
	switch {
	case x < -1:
		return -1
	case x > 1:
		return 1
	}
	return x
}

// Factory builds a scaling function for the range [lo, hi].
type Factory func(lo, hi float64) (func(float64) float64, error)

// TakeMap fits factory to the extrema of a, ignoring NaN. It fails with
// ErrInvalidRange when a holds no numbers or only one distinct value.
func TakeMap[T Real](factory Factory, a ndarray.Array[T]) (func(float64) float64, error) {
	lo, hi, ok := ndarray.Extrema(a, ToFloat[T])
	if !ok {
		return nil, fmt.Errorf("%w: array has no finite values", ErrInvalidRange)
	}
	return factory(lo, hi)
}

// TakeMapSigned fits ScaleSigned to the largest absolute value of a.
func TakeMapSigned[T Real](a ndarray.Array[T]) (func(float64) float64, error) {
	lo, hi, ok := ndarray.Extrema(a, ToFloat[T])
	if !ok {
		return nil, fmt.Errorf("%w: array has no finite values", ErrInvalidRange)
	}
	return ScaleSigned(math.Max(math.Abs(lo), math.Abs(hi)))
}

// Apply returns a lazy read-only view of a with f applied to every element.
func Apply[S, T any](a ndarray.Array[S], f func(S) T) ndarray.Array[T] {
	return views.Map(a, f, nil)
}

// ApplyFloat returns a lazy view of a as float64 values passed through f.
func ApplyFloat[T Real](a ndarray.Array[T], f func(float64) float64) ndarray.Array[float64] {
	return views.Map(a, func(v T) float64 { return f(ToFloat(v)) }, nil)
}
