package tools

import "errors"

// Sentinel errors shared by the tools.
var (
	ErrInputNotFound     = errors.New("input not found")
	ErrUnsupportedInput  = errors.New("unsupported input")
	ErrWriteOutput       = errors.New("failed to write output")
	ErrNoPages           = errors.New("document has no pages")
	ErrRasterize         = errors.New("PDF rasterization failed")
	ErrDecode            = errors.New("image decoding failed")
	ErrBackgroundRemoval = errors.New("background removal failed")
)
