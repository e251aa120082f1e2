// Package composer sequences the wallpaper stages:
//
//	seed → size → palette → background → texture → layers → post-fx
//
// Every stage draws from one *rand.Rand owned by the call, so a given
// (size, seed) pair always yields the same pixels and concurrent calls never
// interfere.
package composer

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AnyUserName/wallgen/internal/background"
	"github.com/AnyUserName/wallgen/internal/compositor"
	"github.com/AnyUserName/wallgen/internal/palette"
	"github.com/AnyUserName/wallgen/internal/pattern"
	"github.com/AnyUserName/wallgen/internal/postfx"
	"github.com/AnyUserName/wallgen/internal/profile"
	"github.com/AnyUserName/wallgen/internal/randutil"
	"github.com/AnyUserName/wallgen/internal/texture"
)

var (
	// ErrInvalidSize is returned for non-positive dimensions.
	ErrInvalidSize = errors.New("invalid wallpaper size")
	// ErrUnknownProfile is returned when Options.Profile is not in the catalog.
	ErrUnknownProfile = errors.New("unknown device profile")
)

// Options configures one composition.
type Options struct {
	// Width and Height of the output. Both zero selects a size from the
	// device catalog.
	Width, Height int
	// Profile names a catalog entry to take the size from when Width and
	// Height are zero. Empty picks a random entry.
	Profile string
	// Seed fixes every random decision. Nil seeds from the clock; the seed
	// used is reported in Recipe.Seed either way.
	Seed *int64
	// Generators restricts the pattern layers to choose from. Nil uses the
	// full registry.
	Generators []pattern.Generator
}

// Validate checks the options without drawing anything.
func (o Options) Validate() error {
	if o.Width != 0 || o.Height != 0 {
		if o.Width <= 0 || o.Height <= 0 {
			return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
		}
		return nil
	}
	if o.Profile != "" {
		if _, ok := profile.Get(o.Profile); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownProfile, o.Profile)
		}
	}
	return nil
}

// Result is a finished wallpaper and the decisions that produced it.
type Result struct {
	Image  *image.NRGBA
	Recipe Recipe
}

// Recipe lists every random decision of a composition.
type Recipe struct {
	Seed       int64             `json:"seed"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Profile    string            `json:"profile,omitempty"`
	Palette    []string          `json:"palette"`
	Background BackgroundRecipe  `json:"background"`
	Texture    float64           `json:"texture"`
	Layers     []compositor.Step `json:"layers"`
	Post       postfx.Record     `json:"post"`
}

// BackgroundRecipe describes the gradient choice.
type BackgroundRecipe struct {
	Kind  background.Kind `json:"kind"`
	From  string          `json:"from"`
	To    string          `json:"to"`
	Angle float64         `json:"angle,omitempty"`
}

// Compose runs the whole pipeline. It fails before drawing anything when
// opts are invalid; no stage after validation can fail.
func Compose(opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	rng := randutil.New(seed)
	rec := Recipe{Seed: seed}

	size := image.Pt(opts.Width, opts.Height)
	if opts.Width == 0 && opts.Height == 0 {
		p, ok := profile.Get(opts.Profile)
		if !ok {
			p = profile.Random(rng)
		}
		size = p.Size()
		rec.Profile = p.Name
	}
	rec.Width, rec.Height = size.X, size.Y

	pal := palette.Choose(rng)
	rec.Palette = pal.Hex()

	img, bg := background.Generate(size, pal, rng)
	rec.Background = BackgroundRecipe{
		Kind:  bg.Kind,
		From:  hex(bg.From.R, bg.From.G, bg.From.B),
		To:    hex(bg.To.R, bg.To.G, bg.To.B),
		Angle: bg.Angle,
	}

	rec.Texture = randutil.Uniform(rng, texture.MinStrength, texture.MaxStrength)
	img = texture.Apply(img, rec.Texture, rng)

	img, rec.Layers = compositor.New(opts.Generators).Run(img, pal, rng)
	img, rec.Post = postfx.Apply(img, rng)

	log.Debug().
		Int64("seed", seed).
		Int("width", size.X).
		Int("height", size.Y).
		Str("background", string(bg.Kind)).
		Int("layers", len(rec.Layers)).
		Msg("wallpaper composed")

	return &Result{Image: img, Recipe: rec}, nil
}

func hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
