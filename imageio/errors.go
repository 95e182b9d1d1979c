package imageio

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension with no known encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported image format")
	// ErrChannels indicates a grid whose channel count has no image equivalent.
	ErrChannels = errors.New("imageio: grid must have 1, 3 or 4 channels")
)
