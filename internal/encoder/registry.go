package encoder

import (
	"fmt"
	"strings"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = "png"

// priority lists the known formats in display order.
var priority = []string{"png", "webp", "tiff", "bmp"}

// Registry holds all available encoders keyed by format name.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry, probing all encoders for availability.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	// Register all encoders. Only available ones will be used.
	all := []Encoder{
		&PNGEncoder{},
		&WebPEncoder{},
		&TIFFEncoder{},
		&BMPEncoder{},
	}

	for _, enc := range all {
		if enc.Available() {
			r.encoders[enc.Format()] = enc
		}
	}

	return r
}

// Get returns an encoder for the given format, or nil if unavailable.
func (r *Registry) Get(format string) Encoder {
	return r.encoders[normalize(format)]
}

// Resolve returns the encoder for format, falling back to DefaultFormat
// for an empty name.
func (r *Registry) Resolve(format string) (Encoder, error) {
	if format == "" {
		format = DefaultFormat
	}
	if enc := r.Get(format); enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("format %q unavailable (%s)", format, r.String())
}

// Available returns all available format names.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range priority {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}

func normalize(format string) string {
	f := strings.ToLower(strings.TrimPrefix(format, "."))
	if f == "tif" {
		f = "tiff"
	}
	return f
}
