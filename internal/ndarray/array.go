// Package ndarray provides N-dimensional arrays with shared, strided storage.
//
// Arrays are indexed in row-major order with 0-based indices. An image of
// height h and width w is an array of shape (h, w); a channel-split image has
// shape (c, h, w). Views created from an array (sub-ranges, index slices,
// permutations) share the parent's storage: writing through a view writes the
// parent.
//
// Indexing outside the shape, or with the wrong number of indices, panics in
// the same way slice indexing does. Writing to an array that has no backing
// storage returns ErrReadOnly.
package ndarray

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrReadOnly is returned by Set on arrays that cannot be written.
	ErrReadOnly = errors.New("array is read-only")

	// ErrShapeMismatch is returned when array shapes are incompatible.
	ErrShapeMismatch = errors.New("array shape mismatch")

	// ErrInvalidShape is returned for negative dimensions or storage that
	// cannot back the requested shape.
	ErrInvalidShape = errors.New("invalid array shape")

	// ErrInvalidPermutation is returned when a permutation is not a
	// rearrangement of 0..n-1.
	ErrInvalidPermutation = errors.New("invalid dimension permutation")

	// ErrInvalidRange is returned for empty or out-of-bounds index ranges.
	ErrInvalidRange = errors.New("invalid index range")
)

// Array is an N-dimensional array of T.
type Array[T any] interface {
	// Shape returns the size of each dimension. Callers must not modify
	// the returned slice.
	Shape() []int

	// At returns the element at idx. It panics if idx does not address an
	// element of the array.
	At(idx ...int) T

	// Set writes v at idx. It panics if idx does not address an element
	// and returns ErrReadOnly if the array cannot be written.
	Set(v T, idx ...int) error
}

// Len returns the number of elements in an array of the given shape.
func Len(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}

// NDims returns the number of dimensions of a.
func NDims[T any](a Array[T]) int {
	return len(a.Shape())
}

// SameShape reports whether a and b have the same dimensions.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CheckIndex panics unless idx addresses an element of an array with the
// given shape.
func CheckIndex(shape, idx []int) {
	if len(idx) != len(shape) {
		panic(fmt.Sprintf("ndarray: %d indices for %d-dimensional array", len(idx), len(shape)))
	}
	for d, i := range idx {
		if i < 0 || i >= shape[d] {
			panic(fmt.Sprintf("ndarray: index %v out of range for shape %v", idx, shape))
		}
	}
}

// Indices calls fn for every index of shape in row-major order. The idx slice
// is reused between calls; copy it to retain it.
func Indices(shape []int, fn func(idx []int)) {
	if Len(shape) == 0 {
		return
	}
	idx := make([]int, len(shape))
	for {
		fn(idx)
		d := len(shape) - 1
		for ; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
		}
		if d < 0 {
			return
		}
	}
}

// Each calls fn with every index and element of a in row-major order.
func Each[T any](a Array[T], fn func(idx []int, v T)) {
	Indices(a.Shape(), func(idx []int) {
		fn(idx, a.At(idx...))
	})
}

// Collect copies a into a new contiguous Dense array.
func Collect[T any](a Array[T]) *Dense[T] {
	out := New[T](a.Shape()...)
	i := 0
	Each(a, func(_ []int, v T) {
		out.data[i] = v
		i++
	})
	return out
}

// Equal reports whether a and b have the same shape and elements.
func Equal[T comparable](a, b Array[T]) bool {
	if !SameShape(a.Shape(), b.Shape()) {
		return false
	}
	eq := true
	Indices(a.Shape(), func(idx []int) {
		if eq && a.At(idx...) != b.At(idx...) {
			eq = false
		}
	})
	return eq
}

// Values returns the elements of a in row-major order.
func Values[T any](a Array[T]) []T {
	out := make([]T, 0, Len(a.Shape()))
	Each(a, func(_ []int, v T) {
		out = append(out, v)
	})
	return out
}

// Extrema returns the smallest and largest value of a under f, skipping NaN.
// ok is false when a is empty or holds only NaN.
func Extrema[T any](a Array[T], f func(T) float64) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	Each(a, func(_ []int, v T) {
		x := f(v)
		if math.IsNaN(x) {
			return
		}
		ok = true
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	})
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}
