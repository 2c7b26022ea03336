package qamask

import "github.com/robert-malhotra/go-qamask/internal/shape"

// Masked pairs a data raster with per-element exclusion flags. Excluded
// elements keep their stored value but are not semantically valid; it is
// up to downstream consumers to skip them (or use [Masked.Filled] or
// [Masked.Compressed] to resolve them).
type Masked[T Number] struct {
	data     *Raster[T]
	excluded []bool
}

// Shape returns a copy of the dimension sizes, outermost first.
func (m *Masked[T]) Shape() []int {
	return m.data.Shape()
}

// NumElements returns the total number of elements.
func (m *Masked[T]) NumElements() int {
	return len(m.data.data)
}

// Raster returns the underlying value raster, unmasked.
func (m *Masked[T]) Raster() *Raster[T] {
	return m.data
}

// Values returns the backing value slice in row-major order, including
// the values of excluded elements. The slice is shared, not copied.
func (m *Masked[T]) Values() []T {
	return m.data.data
}

// At returns the element at the given coordinates and whether it is
// valid. Excluded elements and out-of-range coordinates report ok=false.
func (m *Masked[T]) At(coords ...int) (T, bool) {
	off, err := shape.Offset(m.data.dims, coords)
	if err != nil {
		var zero T
		return zero, false
	}
	return m.data.data[off], !m.excluded[off]
}

// ExcludedAt reports whether the element at the given coordinates is
// excluded. Out-of-range coordinates report false.
func (m *Masked[T]) ExcludedAt(coords ...int) bool {
	off, err := shape.Offset(m.data.dims, coords)
	if err != nil {
		return false
	}
	return m.excluded[off]
}

// Exclusion returns the exclusion flags as a [Mask].
func (m *Masked[T]) Exclusion() *Mask {
	return &Mask{dims: m.data.Shape(), bits: append([]bool(nil), m.excluded...)}
}

// CountExcluded returns the number of excluded elements.
func (m *Masked[T]) CountExcluded() int {
	n := 0
	for _, b := range m.excluded {
		if b {
			n++
		}
	}
	return n
}

// CountValid returns the number of valid (not excluded) elements.
func (m *Masked[T]) CountValid() int {
	return len(m.excluded) - m.CountExcluded()
}

// Filled returns a new raster with every excluded element replaced by
// fill and every valid element kept.
func (m *Masked[T]) Filled(fill T) *Raster[T] {
	data := make([]T, len(m.data.data))
	for i, v := range m.data.data {
		if m.excluded[i] {
			data[i] = fill
		} else {
			data[i] = v
		}
	}
	return &Raster[T]{dims: m.data.Shape(), data: data}
}

// Compressed returns the valid values in row-major order.
func (m *Masked[T]) Compressed() []T {
	out := make([]T, 0, m.CountValid())
	for i, v := range m.data.data {
		if !m.excluded[i] {
			out = append(out, v)
		}
	}
	return out
}

func (m *Masked[T]) raster() *Raster[T] { return m.data }
func (m *Masked[T]) exclusion() []bool  { return m.excluded }
