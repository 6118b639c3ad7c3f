package views

import (
	"fmt"

	"github.com/ironsheep/image-core/internal/ndarray"
)

// Zeros is a read-only array of zero values. A Zeros without a shape is a
// placeholder that Stack resizes to match its neighbours.
type Zeros[T any] struct {
	shape []int
}

// ZeroArray returns a shapeless placeholder for Stack and ColorsOf.
func ZeroArray[T any]() *Zeros[T] {
	return &Zeros[T]{}
}

// NewZeros returns a read-only all-zeros array of the given shape.
func NewZeros[T any](shape ...int) *Zeros[T] {
	if shape == nil {
		shape = []int{}
	}
	return &Zeros[T]{shape: shape}
}

func (z *Zeros[T]) Shape() []int { return z.shape }

func (z *Zeros[T]) At(idx ...int) T {
	ndarray.CheckIndex(z.shape, idx)
	var zero T
	return zero
}

func (z *Zeros[T]) Set(_ T, idx ...int) error {
	ndarray.CheckIndex(z.shape, idx)
	return ndarray.ErrReadOnly
}

func isPlaceholder[T any](a ndarray.Array[T]) bool {
	z, ok := a.(*Zeros[T])
	return ok && z.shape == nil
}

// Stacked presents several arrays of identical shape as slices along a new
// first dimension: s.At(k, idx...) == arrays[k].At(idx...).
type Stacked[T any] struct {
	arrays []ndarray.Array[T]
	shape  []int
}

// Stack builds a Stacked view. Every non-placeholder array must have the same
// shape and at least one must not be a placeholder.
func Stack[T any](arrays ...ndarray.Array[T]) (*Stacked[T], error) {
	var common []int
	found := false
	for _, a := range arrays {
		if isPlaceholder(a) {
			continue
		}
		if !found {
			common, found = a.Shape(), true
			continue
		}
		if !ndarray.SameShape(common, a.Shape()) {
			return nil, fmt.Errorf("%w: %v and %v", ndarray.ErrShapeMismatch, common, a.Shape())
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: no array determines the shape", ndarray.ErrShapeMismatch)
	}

	resolved := make([]ndarray.Array[T], len(arrays))
	for i, a := range arrays {
		if isPlaceholder(a) {
			resolved[i] = NewZeros[T](common...)
			continue
		}
		resolved[i] = a
	}
	shape := append([]int{len(arrays)}, common...)
	return &Stacked[T]{arrays: resolved, shape: shape}, nil
}

// Arrays returns the stacked arrays with placeholders resolved.
func (s *Stacked[T]) Arrays() []ndarray.Array[T] { return s.arrays }

func (s *Stacked[T]) Shape() []int { return s.shape }

func (s *Stacked[T]) At(idx ...int) T {
	ndarray.CheckIndex(s.shape, idx)
	return s.arrays[idx[0]].At(idx[1:]...)
}

func (s *Stacked[T]) Set(v T, idx ...int) error {
	ndarray.CheckIndex(s.shape, idx)
	return s.arrays[idx[0]].Set(v, idx[1:]...)
}
