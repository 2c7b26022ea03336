package qamask

import (
	"fmt"
	"slices"
)

// BuildMask builds a binary mask from a QA raster and a set of QA code
// values: the mask excludes exactly the elements whose QA value is a
// member of values. Order of values is irrelevant; BuildMask sorts an
// internal copy and never modifies the caller's slice or the QA raster.
// An all-clear mask is a legal result when no element matches.
func BuildMask[Q Number](qa *Raster[Q], values []Q) (*Mask, error) {
	if qa == nil {
		return nil, fmt.Errorf("build mask: nil QA raster: %w", ErrInvalidInput)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("build mask: empty value set: %w", ErrInvalidInput)
	}

	vals := slices.Clone(values)
	slices.Sort(vals)

	bits := make([]bool, len(qa.data))
	for i, v := range qa.data {
		_, bits[i] = slices.BinarySearch(vals, v)
	}
	return &Mask{dims: qa.Shape(), bits: bits}, nil
}
