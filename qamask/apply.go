package qamask

import (
	"fmt"

	"github.com/robert-malhotra/go-qamask/internal/shape"
)

// ApplyMask applies a binary mask to a data array, returning a [Masked]
// raster whose exclusion flags are set wherever the mask excludes. The
// mask's shape must equal the data shape or broadcast to it. A mask
// with nothing set is rejected with [ErrInvalidMask]: it almost always
// means the wrong array was passed.
//
// If data is already masked, its existing exclusion is unioned with the
// mask; exclusion never shrinks. The data values are shared with the
// result, never copied or modified, and data's own flags are left
// untouched.
func ApplyMask[T Number](data Grid[T], m *Mask) (*Masked[T], error) {
	if data == nil {
		return nil, fmt.Errorf("apply mask: nil data array: %w", ErrInvalidInput)
	}
	if m == nil {
		return nil, fmt.Errorf("apply mask: nil mask: %w", ErrInvalidInput)
	}
	if m.CountSet() == 0 {
		return nil, fmt.Errorf("apply mask: %w", ErrInvalidMask)
	}

	dims := data.Shape()
	excluded, err := shape.Expand(m.bits, m.dims, dims)
	if err != nil {
		return nil, fmt.Errorf("apply mask: broadcasting mask %v to data %v: %v: %w",
			m.dims, dims, err, ErrInvalidInput)
	}

	if prior := data.exclusion(); prior != nil {
		for i := range excluded {
			excluded[i] = excluded[i] || prior[i]
		}
	}
	return &Masked[T]{data: data.raster(), excluded: excluded}, nil
}
