// Package traits answers geometric questions about arrays: which dimensions
// are spatial, how far apart pixels are, and how many images an array holds.
//
// A plain array has only spatial dimensions with unit spacing and holds a
// single image. WithAxes attaches named axes that can carry a pixel spacing
// or mark a dimension as time or color channel; the trait functions honor
// those annotations.
package traits

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/image-core/internal/ndarray"
)

var (
	// ErrTimeDimNotLast is returned by AssertTimedimLast.
	ErrTimeDimNotLast = errors.New("time dimension is not the last dimension")

	// ErrAxisCount is returned when the number of axes does not match the
	// number of array dimensions.
	ErrAxisCount = errors.New("axis count does not match array dimensions")

	// ErrInvalidSpacing is returned for a negative or non-finite spacing.
	ErrInvalidSpacing = errors.New("invalid axis spacing")
)

// Axis describes one dimension of an array.
type Axis struct {
	Name string `json:"name"`

	// Spacing is the distance between adjacent pixels along a spatial
	// axis. Zero means 1.
	Spacing float64 `json:"spacing,omitempty"`

	// Time marks the axis as the time (frame) dimension.
	Time bool `json:"time,omitempty"`

	// Channel marks the axis as a color channel dimension.
	Channel bool `json:"channel,omitempty"`
}

// Spatial reports whether the axis is neither time nor channel.
func (a Axis) Spatial() bool { return !a.Time && !a.Channel }

func (a Axis) spacing() float64 {
	if a.Spacing == 0 {
		return 1
	}
	return a.Spacing
}

// Annotated is implemented by arrays that carry axis metadata.
type Annotated interface {
	Axes() []Axis
}

// AxisArray is an array with named axes. It reads and writes through to the
// wrapped array.
type AxisArray[T any] struct {
	ndarray.Array[T]
	axes []Axis
}

// WithAxes attaches axes to a, one per dimension.
func WithAxes[T any](a ndarray.Array[T], axes ...Axis) (*AxisArray[T], error) {
	if len(axes) != len(a.Shape()) {
		return nil, fmt.Errorf("%w: %d axes for shape %v", ErrAxisCount, len(axes), a.Shape())
	}
	for _, ax := range axes {
		if ax.Spacing < 0 || math.IsNaN(ax.Spacing) || math.IsInf(ax.Spacing, 0) {
			return nil, fmt.Errorf("%w: %q has spacing %g", ErrInvalidSpacing, ax.Name, ax.Spacing)
		}
	}
	return &AxisArray[T]{Array: a, axes: append([]Axis(nil), axes...)}, nil
}

// Axes returns the axes of a.
func (a *AxisArray[T]) Axes() []Axis { return a.axes }

// Unwrap returns the array without axis metadata.
func (a *AxisArray[T]) Unwrap() ndarray.Array[T] { return a.Array }

// Axes returns the axes of a: the attached ones for annotated arrays,
// otherwise unit-spaced spatial axes named dim0, dim1, ...
func Axes[T any](a ndarray.Array[T]) []Axis {
	if an, ok := a.(Annotated); ok {
		return an.Axes()
	}
	axes := make([]Axis, len(a.Shape()))
	for i := range axes {
		axes[i] = Axis{Name: fmt.Sprintf("dim%d", i)}
	}
	return axes
}

// CoordsSpatial returns the indices of the spatial dimensions of a.
func CoordsSpatial[T any](a ndarray.Array[T]) []int {
	var dims []int
	for i, ax := range Axes(a) {
		if ax.Spatial() {
			dims = append(dims, i)
		}
	}
	return dims
}

// SDims returns the number of spatial dimensions.
func SDims[T any](a ndarray.Array[T]) int {
	return len(CoordsSpatial(a))
}

// PixelSpacing returns the spacing along each spatial dimension.
func PixelSpacing[T any](a ndarray.Array[T]) []float64 {
	axes := Axes(a)
	var out []float64
	for _, d := range CoordsSpatial(a) {
		out = append(out, axes[d].spacing())
	}
	return out
}

// SpaceDirections returns, for each spatial dimension, the displacement
// vector between adjacent pixels along it. For axis-aligned arrays these are
// the unit vectors scaled by the pixel spacing.
func SpaceDirections[T any](a ndarray.Array[T]) [][]float64 {
	spacing := PixelSpacing(a)
	out := make([][]float64, len(spacing))
	for i, s := range spacing {
		v := make([]float64, len(spacing))
		v[i] = s
		out[i] = v
	}
	return out
}

// SizeSpatial returns the size of each spatial dimension.
func SizeSpatial[T any](a ndarray.Array[T]) []int {
	shape := a.Shape()
	var out []int
	for _, d := range CoordsSpatial(a) {
		out = append(out, shape[d])
	}
	return out
}

// Range is the half-open index range [Start, Stop).
type Range struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

// Len returns the number of indices in r.
func (r Range) Len() int { return r.Stop - r.Start }

// IndicesSpatial returns the index range of each spatial dimension.
func IndicesSpatial[T any](a ndarray.Array[T]) []Range {
	sizes := SizeSpatial(a)
	out := make([]Range, len(sizes))
	for i, n := range sizes {
		out[i] = Range{Start: 0, Stop: n}
	}
	return out
}

// TimeDim returns the index of the time dimension, or -1 if there is none.
func TimeDim[T any](a ndarray.Array[T]) int {
	for i, ax := range Axes(a) {
		if ax.Time {
			return i
		}
	}
	return -1
}

// NImages returns the number of time slices in a, 1 without a time axis.
func NImages[T any](a ndarray.Array[T]) int {
	d := TimeDim(a)
	if d < 0 {
		return 1
	}
	return a.Shape()[d]
}

// AssertTimedimLast returns ErrTimeDimNotLast if a has a time dimension
// that is not its last dimension.
func AssertTimedimLast[T any](a ndarray.Array[T]) error {
	d := TimeDim(a)
	if d >= 0 && d != len(a.Shape())-1 {
		return fmt.Errorf("%w: time is dimension %d of %d", ErrTimeDimNotLast, d, len(a.Shape()))
	}
	return nil
}
