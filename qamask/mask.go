package qamask

import (
	"fmt"

	"github.com/robert-malhotra/go-qamask/internal/shape"
)

// Mask is a binary exclusion mask: one flag per element of a shape,
// true meaning "exclude this element".
type Mask struct {
	dims []int
	bits []bool
}

// NewMask creates a mask from a shape and its row-major flags. The
// flags length must equal the product of the dimensions; the slice is
// retained, not copied.
func NewMask(dims []int, bits []bool) (*Mask, error) {
	if err := shape.Validate(dims); err != nil {
		return nil, fmt.Errorf("new mask: %v: %w", err, ErrInvalidInput)
	}
	if want := shape.Elements(dims); len(bits) != want {
		return nil, fmt.Errorf("new mask: %d flags for shape %v (want %d): %w",
			len(bits), dims, want, ErrInvalidInput)
	}
	return &Mask{dims: append([]int(nil), dims...), bits: bits}, nil
}

// BinaryMask converts a raster whose every element is strictly 0 or 1
// into a [Mask]. Any other element value means the raster is a
// multi-valued QA layer rather than a mask, and the conversion fails
// with [ErrNotBinaryMask].
func BinaryMask[Q Number](r *Raster[Q]) (*Mask, error) {
	if r == nil {
		return nil, fmt.Errorf("binary mask: nil raster: %w", ErrInvalidInput)
	}
	bits := make([]bool, len(r.data))
	for i, v := range r.data {
		switch v {
		case 0:
			bits[i] = false
		case 1:
			bits[i] = true
		default:
			return nil, fmt.Errorf("binary mask: element %d is %v, not 0 or 1: %w",
				i, v, ErrNotBinaryMask)
		}
	}
	return &Mask{dims: r.Shape(), bits: bits}, nil
}

// Shape returns a copy of the dimension sizes, outermost first.
func (m *Mask) Shape() []int {
	if len(m.dims) == 0 {
		return nil
	}
	return append([]int(nil), m.dims...)
}

// Rank returns the number of dimensions.
func (m *Mask) Rank() int {
	return len(m.dims)
}

// NumElements returns the total number of flags.
func (m *Mask) NumElements() int {
	return len(m.bits)
}

// Bits returns a copy of the flags in row-major order.
func (m *Mask) Bits() []bool {
	return append([]bool(nil), m.bits...)
}

// CountSet returns the number of excluded (true) flags.
func (m *Mask) CountSet() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Union returns a new mask excluding every element excluded by either
// mask. The shapes must be identical.
func (m *Mask) Union(other *Mask) (*Mask, error) {
	if other == nil {
		return nil, fmt.Errorf("mask union: nil mask: %w", ErrInvalidInput)
	}
	if !shape.Equal(m.dims, other.dims) {
		return nil, fmt.Errorf("mask union: shape %v != shape %v: %w",
			m.dims, other.dims, ErrInvalidInput)
	}
	bits := make([]bool, len(m.bits))
	for i := range bits {
		bits[i] = m.bits[i] || other.bits[i]
	}
	return &Mask{dims: m.Shape(), bits: bits}, nil
}
