package qamask

import (
	"fmt"
	"slices"
)

// MaskPixels masks the elements of a data array using either a QA layer
// or a pre-built binary mask.
//
// With values, maskOrQA is treated as a QA layer: every requested value
// must actually occur in it ([ErrValueNotFound] otherwise, guarding
// against typos and mismatched QA tables), a mask is built from the
// matching elements and applied to data.
//
// Without values, maskOrQA must itself already be a strict 0/1 mask
// raster; a multi-valued raster is rejected with [ErrNotBinaryMask],
// asking the caller to supply the values to mask instead.
//
// The result always has data's shape, with the original values kept and
// exclusion flags set where the masking criteria matched. Neither input
// is modified.
func MaskPixels[T, Q Number](data Grid[T], maskOrQA *Raster[Q], values ...Q) (*Masked[T], error) {
	if data == nil {
		return nil, fmt.Errorf("mask pixels: nil data array: %w", ErrInvalidInput)
	}
	if maskOrQA == nil {
		return nil, fmt.Errorf("mask pixels: nil mask or QA raster: %w", ErrInvalidInput)
	}

	if len(values) == 0 {
		m, err := BinaryMask(maskOrQA)
		if err != nil {
			return nil, fmt.Errorf("mask pixels: %w", err)
		}
		return ApplyMask(data, m)
	}

	present := make(map[Q]struct{}, len(maskOrQA.data))
	for _, v := range maskOrQA.data {
		present[v] = struct{}{}
	}
	var missing []Q
	for _, v := range values {
		if _, ok := present[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		missing = slices.Compact(missing)
		return nil, fmt.Errorf("mask pixels: values %v do not occur in the QA raster: %w",
			missing, ErrValueNotFound)
	}

	m, err := BuildMask(maskOrQA, values)
	if err != nil {
		return nil, fmt.Errorf("mask pixels: %w", err)
	}
	return ApplyMask(data, m)
}
