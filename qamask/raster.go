package qamask

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/robert-malhotra/go-qamask/internal/shape"
)

// Number constrains raster element types to the numeric kinds a QA or
// data band can carry.
type Number interface {
	constraints.Integer | constraints.Float
}

// Grid is a data array that masking can be applied to: either a plain
// [Raster] or a [Masked] raster that already carries exclusion flags.
// It is implemented only by types in this package.
type Grid[T Number] interface {
	// Shape returns the dimension sizes, outermost first.
	Shape() []int

	// NumElements returns the total number of elements.
	NumElements() int

	raster() *Raster[T]
	exclusion() []bool
}

// Raster is an N-dimensional numeric grid stored in row-major order.
// The empty shape describes a scalar holding a single element.
type Raster[T Number] struct {
	dims []int
	data []T
}

// NewRaster creates a raster from a shape and its row-major values.
// The data length must equal the product of the dimensions and the
// slice is retained, not copied.
func NewRaster[T Number](dims []int, data []T) (*Raster[T], error) {
	if err := shape.Validate(dims); err != nil {
		return nil, fmt.Errorf("new raster: %v: %w", err, ErrInvalidInput)
	}
	if want := shape.Elements(dims); len(data) != want {
		return nil, fmt.Errorf("new raster: %d values for shape %v (want %d): %w",
			len(data), dims, want, ErrInvalidInput)
	}
	return &Raster[T]{dims: append([]int(nil), dims...), data: data}, nil
}

// Shape returns a copy of the dimension sizes, outermost first.
// A scalar raster returns nil.
func (r *Raster[T]) Shape() []int {
	if len(r.dims) == 0 {
		return nil
	}
	return append([]int(nil), r.dims...)
}

// Rank returns the number of dimensions.
func (r *Raster[T]) Rank() int {
	return len(r.dims)
}

// NumElements returns the total number of elements.
func (r *Raster[T]) NumElements() int {
	return len(r.data)
}

// Values returns the backing slice in row-major order. The slice is
// shared with the raster, not copied.
func (r *Raster[T]) Values() []T {
	return r.data
}

// At returns the element at the given coordinates.
func (r *Raster[T]) At(coords ...int) (T, error) {
	off, err := shape.Offset(r.dims, coords)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("raster at: %v: %w", err, ErrInvalidInput)
	}
	return r.data[off], nil
}

func (r *Raster[T]) raster() *Raster[T] { return r }
func (r *Raster[T]) exclusion() []bool  { return nil }
