package shape

import "fmt"

// Validate checks that every dimension size is non-negative.
func Validate(dims []int) error {
	for i, d := range dims {
		if d < 0 {
			return fmt.Errorf("dimension %d is negative: %d", i, d)
		}
	}
	return nil
}

// Elements returns the total number of elements in a shape.
// The empty shape is a scalar and holds one element.
func Elements(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// Equal reports whether two shapes have the same rank and dimensions.
func Equal(a, b []int) bool {
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

// Strides returns the row-major element strides for a shape. The
// innermost dimension has stride 1. A scalar shape yields nil.
func Strides(dims []int) []int {
	n := len(dims)
	if n == 0 {
		return nil
	}
	strides := make([]int, n)
	strides[n-1] = 1
	for d := n - 2; d >= 0; d-- {
		strides[d] = strides[d+1] * dims[d+1]
	}
	return strides
}

// Offset converts row-major coordinates into a flat element index.
// The number of coordinates must equal the rank and each coordinate
// must be within its dimension.
func Offset(dims, coords []int) (int, error) {
	if len(coords) != len(dims) {
		return 0, fmt.Errorf("got %d coordinates for rank-%d shape", len(coords), len(dims))
	}
	off := 0
	strides := Strides(dims)
	for i, c := range coords {
		if c < 0 || c >= dims[i] {
			return 0, fmt.Errorf("coordinate %d out of range: %d not in [0,%d)", i, c, dims[i])
		}
		off += c * strides[i]
	}
	return off, nil
}
