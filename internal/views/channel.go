package views

import (
	"errors"
	"fmt"

	"github.com/ironsheep/image-core/internal/colorant"
	"github.com/ironsheep/image-core/internal/ndarray"
)

// ErrChannelMismatch is returned when the leading dimension of a numeric
// array does not match the channel count of the requested colorant.
var ErrChannelMismatch = errors.New("channel dimension does not match colorant")

// ChannelView presents an array of colorants C as an array of their channels
// T with a new leading channel dimension. For single-channel colorants no
// dimension is added.
type ChannelView[T colorant.Channel, C colorant.Color[T, C]] struct {
	parent ndarray.Array[C]
	n      int
	shape  []int
}

// NewChannelView creates a ChannelView of a. For an (h, w) array of RGB the
// view has shape (3, h, w) and element (k, y, x) is channel k of a[y, x].
// Channels are in constructor order (R, G, B) for every RGB-like type.
func NewChannelView[T colorant.Channel, C colorant.Color[T, C]](a ndarray.Array[C]) *ChannelView[T, C] {
	n := colorant.NumChannels[T, C]()
	shape := a.Shape()
	if n > 1 {
		shape = append([]int{n}, shape...)
	}
	return &ChannelView[T, C]{parent: a, n: n, shape: shape}
}

// Parent returns the colorant array being viewed.
func (v *ChannelView[T, C]) Parent() ndarray.Array[C] { return v.parent }

func (v *ChannelView[T, C]) Shape() []int { return v.shape }

func (v *ChannelView[T, C]) At(idx ...int) T {
	if v.n == 1 {
		return v.parent.At(idx...).Channel(0)
	}
	ndarray.CheckIndex(v.shape, idx)
	return v.parent.At(idx[1:]...).Channel(idx[0])
}

func (v *ChannelView[T, C]) Set(x T, idx ...int) error {
	if v.n == 1 {
		c := v.parent.At(idx...)
		return v.parent.Set(c.WithChannel(0, x), idx...)
	}
	ndarray.CheckIndex(v.shape, idx)
	c := v.parent.At(idx[1:]...)
	return v.parent.Set(c.WithChannel(idx[0], x), idx[1:]...)
}

// ColorView presents a numeric array as an array of colorants C, consuming the
// leading dimension as channels. For single-channel colorants no dimension is
// consumed.
type ColorView[T colorant.Channel, C colorant.Color[T, C]] struct {
	parent ndarray.Array[T]
	n      int
	shape  []int
}

// NewColorView creates a ColorView of a. For a (3, h, w) numeric array and
// C = RGB the view has shape (h, w). The leading dimension must equal the
// channel count of C.
func NewColorView[T colorant.Channel, C colorant.Color[T, C]](a ndarray.Array[T]) (*ColorView[T, C], error) {
	n := colorant.NumChannels[T, C]()
	shape := a.Shape()
	if n > 1 {
		if len(shape) == 0 || shape[0] != n {
			return nil, fmt.Errorf("%w: shape %v for %d-channel colorant", ErrChannelMismatch, shape, n)
		}
		shape = shape[1:]
	}
	return &ColorView[T, C]{parent: a, n: n, shape: shape}, nil
}

// Parent returns the numeric array being viewed.
func (v *ColorView[T, C]) Parent() ndarray.Array[T] { return v.parent }

func (v *ColorView[T, C]) Shape() []int { return v.shape }

func (v *ColorView[T, C]) At(idx ...int) C {
	var c C
	if v.n == 1 {
		return c.WithChannel(0, v.parent.At(idx...))
	}
	ndarray.CheckIndex(v.shape, idx)
	pidx := make([]int, len(idx)+1)
	copy(pidx[1:], idx)
	for k := 0; k < v.n; k++ {
		pidx[0] = k
		c = c.WithChannel(k, v.parent.At(pidx...))
	}
	return c
}

// Set writes every channel of c. If one channel cannot be written the
// channels already written are restored, so a failed Set leaves the parent
// unchanged.
func (v *ColorView[T, C]) Set(c C, idx ...int) error {
	if v.n == 1 {
		return v.parent.Set(c.Channel(0), idx...)
	}
	ndarray.CheckIndex(v.shape, idx)
	pidx := make([]int, len(idx)+1)
	copy(pidx[1:], idx)
	old := v.At(idx...)
	for k := 0; k < v.n; k++ {
		pidx[0] = k
		if err := v.parent.Set(c.Channel(k), pidx...); err != nil {
			for j := 0; j < k; j++ {
				pidx[0] = j
				_ = v.parent.Set(old.Channel(j), pidx...)
			}
			return err
		}
	}
	return nil
}

// Channels returns a view of a with the channels split into a new first
// dimension. If a is a ColorView it returns the ColorView's parent, so the
// result may not be a ChannelView.
func Channels[T colorant.Channel, C colorant.Color[T, C]](a ndarray.Array[C]) ndarray.Array[T] {
	if cv, ok := a.(*ColorView[T, C]); ok {
		return cv.parent
	}
	return NewChannelView[T, C](a)
}

// Colors returns a view of the numeric array a as colorants C. If a is a
// ChannelView over C it returns the ChannelView's parent, so the result may
// not be a ColorView.
func Colors[T colorant.Channel, C colorant.Color[T, C]](a ndarray.Array[T]) (ndarray.Array[C], error) {
	if cv, ok := a.(*ChannelView[T, C]); ok {
		return cv.parent, nil
	}
	v, err := NewColorView[T, C](a)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ColorsOf combines numeric arrays into the channels of an array of C, one
// array per channel in constructor order. ZeroArray placeholders become
// all-zero channels.
func ColorsOf[T colorant.Channel, C colorant.Color[T, C]](arrays ...ndarray.Array[T]) (ndarray.Array[C], error) {
	n := colorant.NumChannels[T, C]()
	if len(arrays) != n {
		return nil, fmt.Errorf("%w: %d arrays for %d-channel colorant", ErrChannelMismatch, len(arrays), n)
	}
	if n == 1 {
		if isPlaceholder(arrays[0]) {
			return nil, fmt.Errorf("%w: no array determines the shape", ndarray.ErrShapeMismatch)
		}
		return Colors[T, C](arrays[0])
	}
	s, err := Stack(arrays...)
	if err != nil {
		return nil, err
	}
	return Colors[T, C](s)
}
