// Package pixelqa provides the static QA code tables for supported
// remote-sensing sensors.
//
// A pixel_qa band encodes per-pixel quality conditions as integer bit
// patterns. This package maps each supported sensor and condition name
// (cloud, cloud shadow, snow, water, fill, ...) to the list of pixel_qa
// codes that carry it, so a caller can look up the values to pass to
// the qamask package:
//
//	codes, err := pixelqa.Codes(pixelqa.SensorL8, pixelqa.ConditionCloud)
//	masked, err := qamask.MaskPixels(scene, qa, codes...)
//
// The tables are inert reference data embedded at build time; nothing
// here decodes bit fields or inspects rasters.
package pixelqa
