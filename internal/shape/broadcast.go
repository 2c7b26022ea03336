package shape

import "fmt"

// BroadcastStrides computes the source element strides to use when
// expanding an array of shape src to shape dst, aligned to dst's rank.
// Dimensions are matched from the innermost outwards; a source dimension
// must equal the destination dimension or be 1, and missing leading
// source dimensions count as 1. Replicated dimensions get stride 0 so
// that walking destination coordinates revisits the same source slice.
func BroadcastStrides(src, dst []int) ([]int, error) {
	if len(src) > len(dst) {
		return nil, fmt.Errorf("cannot broadcast rank-%d shape to rank-%d shape", len(src), len(dst))
	}
	srcStrides := Strides(src)
	out := make([]int, len(dst))
	for i := 1; i <= len(dst); i++ {
		di := len(dst) - i
		if i > len(src) {
			out[di] = 0
			continue
		}
		si := len(src) - i
		switch {
		case src[si] == dst[di]:
			out[di] = srcStrides[si]
		case src[si] == 1:
			out[di] = 0
		default:
			return nil, fmt.Errorf("cannot broadcast dimension of size %d to size %d", src[si], dst[di])
		}
	}
	return out, nil
}

// Expand materializes the broadcast of data (shape src, row-major) to
// shape dst. It walks destination coordinates as a row-major odometer,
// accumulating the source offset from the broadcast strides so each
// output element is a single indexed read.
func Expand[T any](data []T, src, dst []int) ([]T, error) {
	if len(data) != Elements(src) {
		return nil, fmt.Errorf("data length %d does not match shape (want %d elements)", len(data), Elements(src))
	}
	strides, err := BroadcastStrides(src, dst)
	if err != nil {
		return nil, err
	}

	total := Elements(dst)
	out := make([]T, total)
	if total == 0 {
		return out, nil
	}
	if len(dst) == 0 {
		out[0] = data[0]
		return out, nil
	}

	coords := make([]int, len(dst))
	srcOff := 0
	for i := 0; i < total; i++ {
		out[i] = data[srcOff]

		// Advance the odometer, innermost dimension first.
		for d := len(dst) - 1; d >= 0; d-- {
			coords[d]++
			srcOff += strides[d]
			if coords[d] < dst[d] {
				break
			}
			coords[d] = 0
			srcOff -= strides[d] * dst[d]
		}
	}
	return out, nil
}
