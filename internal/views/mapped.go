package views

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/image-core/internal/fixedpoint"
	"github.com/ironsheep/image-core/internal/ndarray"
)

// ErrStorageMismatch is returned when a raw integer type and a fixed-point
// type do not share a storage width.
var ErrStorageMismatch = errors.New("raw and fixed-point storage widths differ")

// Mapped applies f lazily to every element of its parent. Writes go through
// finv; without an inverse the view is read-only.
type Mapped[S, T any] struct {
	parent ndarray.Array[S]
	f      func(S) T
	finv   func(T) S
}

// Map returns a lazily transformed view of a. finv may be nil.
func Map[S, T any](a ndarray.Array[S], f func(S) T, finv func(T) S) *Mapped[S, T] {
	return &Mapped[S, T]{parent: a, f: f, finv: finv}
}

// Parent returns the array being transformed.
func (m *Mapped[S, T]) Parent() ndarray.Array[S] { return m.parent }

func (m *Mapped[S, T]) Shape() []int { return m.parent.Shape() }

func (m *Mapped[S, T]) At(idx ...int) T { return m.f(m.parent.At(idx...)) }

func (m *Mapped[S, T]) Set(v T, idx ...int) error {
	if m.finv == nil {
		ndarray.CheckIndex(m.parent.Shape(), idx)
		return ndarray.ErrReadOnly
	}
	return m.parent.Set(m.finv(v), idx...)
}

// Storage is the constraint for raw fixed-point storage words.
type Storage interface {
	uint8 | uint16
}

func storageBits[R Storage]() uint {
	var z R
	if _, ok := any(z).(uint8); ok {
		return 8
	}
	return 16
}

func checkStorage[F fixedpoint.Normed, R Storage]() error {
	var f F
	if f.StorageBits() != storageBits[R]() {
		return fmt.Errorf("%w: %s is %d-bit, raw type is %d-bit",
			ErrStorageMismatch, fixedpoint.TypeName[F](), f.StorageBits(), storageBits[R]())
	}
	return nil
}

// Raw is a fixed-point array seen through its raw storage integers.
type Raw[F fixedpoint.Normed, R Storage] struct {
	parent ndarray.Array[F]
}

// Normed is a raw integer array seen as fixed-point numbers.
type Normed[R Storage, F fixedpoint.Normed] struct {
	parent ndarray.Array[R]
}

// RawView returns a view of a in terms of raw storage: an array of N0f8 acts
// like an array of uint8. If a is a Normed view it returns its parent.
func RawView[F fixedpoint.Normed, R Storage](a ndarray.Array[F]) (ndarray.Array[R], error) {
	if err := checkStorage[F, R](); err != nil {
		return nil, err
	}
	if n, ok := a.(*Normed[R, F]); ok {
		return n.parent, nil
	}
	return &Raw[F, R]{parent: a}, nil
}

// NormedView returns a view of the unsigned array a as fixed-point values of
// F. For uint16 storage, F selects N6f10, N4f12, N2f14 or N0f16. If a is a
// Raw view it returns its parent.
func NormedView[F fixedpoint.Normed, R Storage](a ndarray.Array[R]) (ndarray.Array[F], error) {
	if err := checkStorage[F, R](); err != nil {
		return nil, err
	}
	if r, ok := a.(*Raw[F, R]); ok {
		return r.parent, nil
	}
	return &Normed[R, F]{parent: a}, nil
}

// RawView8 is RawView for N0f8 arrays.
func RawView8(a ndarray.Array[fixedpoint.N0f8]) ndarray.Array[uint8] {
	v, _ := RawView[fixedpoint.N0f8, uint8](a)
	return v
}

// NormedView8 is NormedView for uint8 arrays, the default interpretation of
// 8-bit data.
func NormedView8(a ndarray.Array[uint8]) ndarray.Array[fixedpoint.N0f8] {
	v, _ := NormedView[fixedpoint.N0f8, uint8](a)
	return v
}

// Parent returns the fixed-point array.
func (r *Raw[F, R]) Parent() ndarray.Array[F] { return r.parent }

func (r *Raw[F, R]) Shape() []int { return r.parent.Shape() }

func (r *Raw[F, R]) At(idx ...int) R { return R(r.parent.At(idx...)) }

func (r *Raw[F, R]) Set(v R, idx ...int) error { return r.parent.Set(F(v), idx...) }

// Parent returns the raw integer array.
func (n *Normed[R, F]) Parent() ndarray.Array[R] { return n.parent }

func (n *Normed[R, F]) Shape() []int { return n.parent.Shape() }

func (n *Normed[R, F]) At(idx ...int) F { return F(n.parent.At(idx...)) }

func (n *Normed[R, F]) Set(v F, idx ...int) error { return n.parent.Set(R(v), idx...) }

// PermutedDimsView returns a view of a with its dimensions permuted: dimension
// k of the result is dimension perm[k] of a. Writes are mirrored in a.
func PermutedDimsView[T any](a ndarray.Array[T], perm ...int) (ndarray.Array[T], error) {
	return ndarray.PermuteDims(a, perm...)
}

// imageView adapts a two-dimensional colorant array of shape (h, w) to
// image.Image.
type imageView[C color.Color] struct {
	a    ndarray.Array[C]
	h, w int
}

// AsImage returns an image.Image backed by a, which must have shape (h, w).
// Pixel (x, y) is a.At(y, x).
func AsImage[C color.Color](a ndarray.Array[C]) (image.Image, error) {
	shape := a.Shape()
	if len(shape) != 2 {
		return nil, fmt.Errorf("%w: image needs 2 dimensions, got %v", ndarray.ErrInvalidShape, shape)
	}
	return &imageView[C]{a: a, h: shape[0], w: shape[1]}, nil
}

func (v *imageView[C]) ColorModel() color.Model { return color.NRGBA64Model }

func (v *imageView[C]) Bounds() image.Rectangle { return image.Rect(0, 0, v.w, v.h) }

func (v *imageView[C]) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= v.w || y >= v.h {
		return color.NRGBA64{}
	}
	return v.a.At(y, x)
}
