// Package blend defines the closed set of layer blend modes.
//
// Every mode except Normal is a separable per-channel function of the base
// (composition) value and the layer value, both in [0,255]. Normal is
// alpha-over compositing and has no channel function.
package blend

import (
	"fmt"
	"math/rand"
)

// Mode identifies a blend operation.
type Mode uint8

const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	SoftLight
	Add
	Subtract

	numModes
)

// Func combines one base channel with one layer channel.
type Func func(base, layer uint8) uint8

var names = [numModes]string{
	Normal:    "normal",
	Multiply:  "multiply",
	Screen:    "screen",
	Overlay:   "overlay",
	SoftLight: "softlight",
	Add:       "add",
	Subtract:  "subtract",
}

// funcs is indexed by Mode; Normal is nil.
var funcs = [numModes]Func{
	Multiply:  multiply,
	Screen:    screen,
	Overlay:   overlay,
	SoftLight: softLight,
	Add:       add,
	Subtract:  subtract,
}

// All returns every mode in declaration order.
func All() []Mode {
	out := make([]Mode, numModes)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// Random picks a mode uniformly.
func Random(rng *rand.Rand) Mode {
	return Mode(rng.Intn(int(numModes)))
}

// Parse returns the mode with the given name.
func Parse(s string) (Mode, error) {
	for m, n := range names {
		if n == s {
			return Mode(m), nil
		}
	}
	return Normal, fmt.Errorf("unknown blend mode %q", s)
}

func (m Mode) String() string {
	if m < numModes {
		return names[m]
	}
	return fmt.Sprintf("mode(%d)", m)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Func returns the channel function for m, or nil for Normal.
func (m Mode) Func() Func {
	if m < numModes {
		return funcs[m]
	}
	return nil
}

func multiply(a, b uint8) uint8 {
	return uint8(int(a) * int(b) / 255)
}

func screen(a, b uint8) uint8 {
	return uint8(255 - (255-int(a))*(255-int(b))/255)
}

func overlay(a, b uint8) uint8 {
	if a < 128 {
		return uint8(2 * int(a) * int(b) / 255)
	}
	return uint8(255 - 2*(255-int(a))*(255-int(b))/255)
}

// softLight mixes multiply and screen weighted by the base value.
func softLight(a, b uint8) uint8 {
	ia, ib := int(a), int(b)
	v := (255-ia)*ia*ib/(255*255) + ia*int(screen(a, b))/255
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func add(a, b uint8) uint8 {
	if v := int(a) + int(b); v < 255 {
		return uint8(v)
	}
	return 255
}

func subtract(a, b uint8) uint8 {
	if v := int(a) - int(b); v > 0 {
		return uint8(v)
	}
	return 0
}
