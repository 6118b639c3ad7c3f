package ndarray

import "fmt"

// Permuted is a view of another array with its dimensions reordered.
// Dimension k of the view is dimension Perm()[k] of the parent.
type Permuted[T any] struct {
	parent Array[T]
	perm   []int
	shape  []int
}

// PermuteDims returns a view of a with dimensions permuted as specified by
// perm: dimension k of the result is dimension perm[k] of a. Unlike a
// copying transpose, writes to the result are mirrored in a.
//
// A *Dense input yields a *Dense with permuted strides, and permuting a
// *Permuted composes the two permutations; any other array is wrapped in a
// *Permuted.
func PermuteDims[T any](a Array[T], perm ...int) (Array[T], error) {
	switch p := a.(type) {
	case *Dense[T]:
		d, err := p.Permute(perm...)
		if err != nil {
			return nil, err
		}
		return d, nil
	case *Permuted[T]:
		if err := checkPermutation(perm, len(p.shape)); err != nil {
			return nil, err
		}
		composed := make([]int, len(perm))
		for k, q := range perm {
			composed[k] = p.perm[q]
		}
		return newPermuted(p.parent, composed), nil
	}
	if err := checkPermutation(perm, NDims(a)); err != nil {
		return nil, err
	}
	return newPermuted(a, append([]int(nil), perm...)), nil
}

func newPermuted[T any](a Array[T], perm []int) *Permuted[T] {
	ps := a.Shape()
	shape := make([]int, len(perm))
	for k, p := range perm {
		shape[k] = ps[p]
	}
	return &Permuted[T]{parent: a, perm: perm, shape: shape}
}

// Parent returns the array being viewed.
func (p *Permuted[T]) Parent() Array[T] { return p.parent }

// Perm returns the permutation applied to the parent.
func (p *Permuted[T]) Perm() []int { return p.perm }

func (p *Permuted[T]) Shape() []int { return p.shape }

func (p *Permuted[T]) parentIndex(idx []int) []int {
	CheckIndex(p.shape, idx)
	out := make([]int, len(idx))
	for k, v := range idx {
		out[p.perm[k]] = v
	}
	return out
}

func (p *Permuted[T]) At(idx ...int) T {
	return p.parent.At(p.parentIndex(idx)...)
}

func (p *Permuted[T]) Set(v T, idx ...int) error {
	return p.parent.Set(v, p.parentIndex(idx)...)
}

// Sliced is a view of another array at a fixed position along one
// dimension, with that dimension removed.
type Sliced[T any] struct {
	parent Array[T]
	dim    int
	at     int
	shape  []int
}

// Slice returns the view of a at position i along dim, dropping dim. For a
// *Dense the result is a *Dense sharing storage.
func Slice[T any](a Array[T], dim, i int) (Array[T], error) {
	if d, ok := a.(*Dense[T]); ok {
		v, err := d.Index(dim, i)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	ps := a.Shape()
	if dim < 0 || dim >= len(ps) {
		return nil, fmt.Errorf("%w: dimension %d of %d", ErrInvalidRange, dim, len(ps))
	}
	if i < 0 || i >= ps[dim] {
		return nil, fmt.Errorf("%w: index %d of %d along dimension %d", ErrInvalidRange, i, ps[dim], dim)
	}
	shape := make([]int, 0, len(ps)-1)
	shape = append(append(shape, ps[:dim]...), ps[dim+1:]...)
	return &Sliced[T]{parent: a, dim: dim, at: i, shape: shape}, nil
}

func (s *Sliced[T]) Shape() []int { return s.shape }

func (s *Sliced[T]) parentIndex(idx []int) []int {
	CheckIndex(s.shape, idx)
	out := make([]int, 0, len(idx)+1)
	out = append(out, idx[:s.dim]...)
	out = append(out, s.at)
	return append(out, idx[s.dim:]...)
}

func (s *Sliced[T]) At(idx ...int) T {
	return s.parent.At(s.parentIndex(idx)...)
}

func (s *Sliced[T]) Set(v T, idx ...int) error {
	return s.parent.Set(v, s.parentIndex(idx)...)
}

// Strided is a view of another array restricted to an arithmetic range of
// indices along one dimension.
type Strided[T any] struct {
	parent Array[T]
	dim    int
	start  int
	step   int
	shape  []int
}

// SubRange returns the view of a restricted to start, start+step, ... (< stop)
// along dim. For a *Dense the result is a *Dense sharing storage.
func SubRange[T any](a Array[T], dim, start, stop, step int) (Array[T], error) {
	if d, ok := a.(*Dense[T]); ok {
		v, err := d.Sub(dim, start, stop, step)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	ps := a.Shape()
	if dim < 0 || dim >= len(ps) {
		return nil, fmt.Errorf("%w: dimension %d of %d", ErrInvalidRange, dim, len(ps))
	}
	n, err := rangeLen(ps[dim], start, stop, step)
	if err != nil {
		return nil, err
	}
	shape := append([]int(nil), ps...)
	shape[dim] = n
	return &Strided[T]{parent: a, dim: dim, start: start, step: step, shape: shape}, nil
}

func (s *Strided[T]) Shape() []int { return s.shape }

func (s *Strided[T]) parentIndex(idx []int) []int {
	CheckIndex(s.shape, idx)
	out := append([]int(nil), idx...)
	out[s.dim] = s.start + idx[s.dim]*s.step
	return out
}

func (s *Strided[T]) At(idx ...int) T {
	return s.parent.At(s.parentIndex(idx)...)
}

func (s *Strided[T]) Set(v T, idx ...int) error {
	return s.parent.Set(v, s.parentIndex(idx)...)
}
