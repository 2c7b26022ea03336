package qamask

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidMask   = errors.New("mask contains no masked elements")
	ErrValueNotFound = errors.New("value not found in QA raster")
	ErrNotBinaryMask = errors.New("raster is not a binary mask")
)
