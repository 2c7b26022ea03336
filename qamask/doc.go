// Package qamask provides quality masking for remote-sensing raster arrays.
//
// Remote-sensing products such as Landsat and MODIS scenes ship with a
// companion quality-assurance (QA) band whose integer codes identify
// unwanted pixel conditions (cloud, cloud shadow, snow, water, fill).
// This package turns a set of QA codes into an exclusion mask and applies
// that mask to a data raster, producing a [Masked] array that keeps the
// original values but flags the excluded elements.
//
// # Types
//
//   - [Raster]: N-dimensional numeric grid (row-major values plus a shape)
//   - [Mask]: binary exclusion mask, true = exclude
//   - [Masked]: data raster paired with per-element exclusion flags
//   - [Grid]: either a [Raster] or a [Masked], accepted wherever a data
//     array may already carry a mask
//
// # Masking
//
// [MaskPixels] is the main entry point. With values it treats the second
// argument as a QA layer and masks every pixel whose QA code is in the
// value set:
//
//	masked, err := qamask.MaskPixels(scene, qa, 352, 368, 416)
//
// Without values the second argument must already be a strict 0/1 mask:
//
//	masked, err := qamask.MaskPixels(scene, maskRaster)
//
// The two halves are also available separately as [BuildMask] and
// [ApplyMask]. Masks broadcast across the data shape with the usual
// trailing-dimension rules, so a single QA plane can mask every band of
// a band stack. When the data array is already masked, the new exclusion
// is unioned with the existing one; exclusion only ever grows.
//
// No function in this package mutates its inputs. QA code tables for
// supported sensors live in the companion pixelqa package.
package qamask
