package ndarray

import "fmt"

// Dense is an array backed by a slice with explicit per-dimension strides.
//
// A freshly allocated Dense is contiguous in row-major order. Sub, Index and
// Permute return Dense views that share the same slice with adjusted offset
// and strides.
type Dense[T any] struct {
	data    []T
	shape   []int
	strides []int
	offset  int
}

// New allocates a zeroed contiguous array of the given shape. It panics if
// any dimension is negative.
func New[T any](shape ...int) *Dense[T] {
	for _, s := range shape {
		if s < 0 {
			panic(fmt.Sprintf("ndarray: negative dimension in shape %v", shape))
		}
	}
	return &Dense[T]{
		data:    make([]T, Len(shape)),
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
	}
}

// FromSlice wraps data as a contiguous array of the given shape without
// copying. len(data) must equal the number of elements in shape.
func FromSlice[T any](data []T, shape ...int) (*Dense[T], error) {
	for _, s := range shape {
		if s < 0 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidShape, shape)
		}
	}
	if len(data) != Len(shape) {
		return nil, fmt.Errorf("%w: %d elements for shape %v", ErrInvalidShape, len(data), shape)
	}
	return &Dense[T]{
		data:    data,
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
	}, nil
}

// FromStrided wraps data with an explicit offset and strides. Strides must be
// non-negative and every addressable element must lie inside data.
//
// This is how interleaved pixel buffers are exposed: the Pix slice of an
// image.NRGBA with stride s is an array of shape (4, h, w) with strides
// (1, s, 4).
func FromStrided[T any](data []T, offset int, shape, strides []int) (*Dense[T], error) {
	if len(shape) != len(strides) {
		return nil, fmt.Errorf("%w: %d strides for %d dimensions", ErrInvalidShape, len(strides), len(shape))
	}
	if offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrInvalidShape, offset)
	}
	last := offset
	for d, s := range shape {
		if s < 0 || strides[d] < 0 {
			return nil, fmt.Errorf("%w: shape %v strides %v", ErrInvalidShape, shape, strides)
		}
		if s == 0 {
			last = -1
			break
		}
		last += (s - 1) * strides[d]
	}
	if last >= len(data) {
		return nil, fmt.Errorf("%w: shape %v strides %v exceed %d elements", ErrInvalidShape, shape, strides, len(data))
	}
	return &Dense[T]{
		data:    data,
		shape:   append([]int(nil), shape...),
		strides: append([]int(nil), strides...),
		offset:  offset,
	}, nil
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = step
		step *= shape[d]
	}
	return strides
}

// Shape returns the dimensions of d.
func (d *Dense[T]) Shape() []int { return d.shape }

// Strides returns the element distance between neighbours along each
// dimension.
func (d *Dense[T]) Strides() []int { return d.strides }

// Data returns the backing slice, including elements d does not address.
func (d *Dense[T]) Data() []T { return d.data }

// Offset returns the position of the first element in Data.
func (d *Dense[T]) Offset() int { return d.offset }

// Len returns the number of elements.
func (d *Dense[T]) Len() int { return Len(d.shape) }

func (d *Dense[T]) pos(idx []int) int {
	CheckIndex(d.shape, idx)
	p := d.offset
	for i, v := range idx {
		p += v * d.strides[i]
	}
	return p
}

// At returns the element at idx.
func (d *Dense[T]) At(idx ...int) T {
	return d.data[d.pos(idx)]
}

// Set writes v at idx. Dense arrays are always writable.
func (d *Dense[T]) Set(v T, idx ...int) error {
	d.data[d.pos(idx)] = v
	return nil
}

// Fill sets every element to v.
func (d *Dense[T]) Fill(v T) {
	Indices(d.shape, func(idx []int) {
		d.data[d.pos(idx)] = v
	})
}

// IsContiguous reports whether the elements of d occupy a gap-free row-major
// block of the backing slice.
func (d *Dense[T]) IsContiguous() bool {
	want := rowMajorStrides(d.shape)
	for i, s := range d.shape {
		if s > 1 && d.strides[i] != want[i] {
			return false
		}
	}
	return true
}

// Contiguous returns d itself when it is contiguous and a contiguous copy
// otherwise.
func (d *Dense[T]) Contiguous() *Dense[T] {
	if d.IsContiguous() {
		return d
	}
	return d.Clone()
}

// Clone returns a contiguous copy of d.
func (d *Dense[T]) Clone() *Dense[T] {
	return Collect[T](d)
}

// Sub returns a view of d restricted to start, start+step, ... (< stop)
// along dim. The dimension is kept.
func (d *Dense[T]) Sub(dim, start, stop, step int) (*Dense[T], error) {
	if dim < 0 || dim >= len(d.shape) {
		return nil, fmt.Errorf("%w: dimension %d of %d", ErrInvalidRange, dim, len(d.shape))
	}
	n, err := rangeLen(d.shape[dim], start, stop, step)
	if err != nil {
		return nil, err
	}
	shape := append([]int(nil), d.shape...)
	strides := append([]int(nil), d.strides...)
	shape[dim] = n
	strides[dim] = d.strides[dim] * step
	return &Dense[T]{
		data:    d.data,
		shape:   shape,
		strides: strides,
		offset:  d.offset + start*d.strides[dim],
	}, nil
}

// Index returns the view of d at position i along dim, with that dimension
// removed.
func (d *Dense[T]) Index(dim, i int) (*Dense[T], error) {
	if dim < 0 || dim >= len(d.shape) {
		return nil, fmt.Errorf("%w: dimension %d of %d", ErrInvalidRange, dim, len(d.shape))
	}
	if i < 0 || i >= d.shape[dim] {
		return nil, fmt.Errorf("%w: index %d of %d along dimension %d", ErrInvalidRange, i, d.shape[dim], dim)
	}
	shape := make([]int, 0, len(d.shape)-1)
	strides := make([]int, 0, len(d.shape)-1)
	shape = append(append(shape, d.shape[:dim]...), d.shape[dim+1:]...)
	strides = append(append(strides, d.strides[:dim]...), d.strides[dim+1:]...)
	return &Dense[T]{
		data:    d.data,
		shape:   shape,
		strides: strides,
		offset:  d.offset + i*d.strides[dim],
	}, nil
}

// Permute returns a view of d whose dimension k is dimension perm[k] of d.
func (d *Dense[T]) Permute(perm ...int) (*Dense[T], error) {
	if err := checkPermutation(perm, len(d.shape)); err != nil {
		return nil, err
	}
	shape := make([]int, len(perm))
	strides := make([]int, len(perm))
	for k, p := range perm {
		shape[k] = d.shape[p]
		strides[k] = d.strides[p]
	}
	return &Dense[T]{data: d.data, shape: shape, strides: strides, offset: d.offset}, nil
}

// Reshape returns a view of d with a new shape holding the same number of
// elements. Only contiguous arrays can be reshaped without copying.
func (d *Dense[T]) Reshape(shape ...int) (*Dense[T], error) {
	if Len(shape) != d.Len() {
		return nil, fmt.Errorf("%w: cannot reshape %v to %v", ErrShapeMismatch, d.shape, shape)
	}
	if !d.IsContiguous() {
		return nil, fmt.Errorf("%w: reshape of non-contiguous array", ErrInvalidShape)
	}
	return &Dense[T]{
		data:    d.data,
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
		offset:  d.offset,
	}, nil
}

func rangeLen(size, start, stop, step int) (int, error) {
	if step <= 0 {
		return 0, fmt.Errorf("%w: step %d must be positive", ErrInvalidRange, step)
	}
	if start < 0 || stop > size || start >= stop {
		return 0, fmt.Errorf("%w: [%d:%d] of %d", ErrInvalidRange, start, stop, size)
	}
	return (stop - start + step - 1) / step, nil
}

func checkPermutation(perm []int, n int) error {
	if len(perm) != n {
		return fmt.Errorf("%w: %v for %d dimensions", ErrInvalidPermutation, perm, n)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return fmt.Errorf("%w: %v", ErrInvalidPermutation, perm)
		}
		seen[p] = true
	}
	return nil
}
