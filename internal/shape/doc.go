// Package shape provides dimension and broadcasting math for row-major
// N-dimensional arrays.
//
// A shape is a []int of dimension sizes, outermost dimension first. The
// empty shape describes a scalar with exactly one element. All arrays in
// this module store their elements in row-major (C) order, so the stride
// of the innermost dimension is always 1.
//
// # Broadcasting
//
// Broadcasting expands a smaller-shaped array to a larger shape using the
// standard trailing-dimension alignment rules: shapes are compared from
// the innermost dimension outwards, and each source dimension must either
// equal the destination dimension or be 1 (in which case the single slice
// is replicated). Missing leading dimensions are treated as size 1.
//
// [BroadcastStrides] computes per-destination-dimension source strides
// with 0 marking replicated dimensions, and [Expand] materializes the
// broadcast result by walking destination coordinates in row-major order.
//
// # Key Functions
//
//   - [Validate]: Rejects shapes with negative dimensions
//   - [Elements]: Total element count of a shape
//   - [Equal]: Shape equality
//   - [Strides]: Row-major element strides
//   - [BroadcastStrides]: Source strides for broadcasting to a destination shape
//   - [Expand]: Materializes a broadcast slice
package shape
