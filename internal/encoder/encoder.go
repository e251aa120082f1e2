// Package encoder writes finished wallpapers in lossless formats.
package encoder

import (
	"image"
)

// Encoder encodes an image to a specific lossless format.
type Encoder interface {
	// Format returns the format name (e.g. "png", "tiff", "bmp", "webp").
	Format() string

	// Encode converts the image to bytes. Encoding must not lose pixels.
	Encode(img image.Image) ([]byte, error)

	// Available returns true if the encoder is ready to use.
	// External encoders (cwebp) may not be installed.
	Available() bool

	// Extension returns the file extension without dot.
	Extension() string
}
