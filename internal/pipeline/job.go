package pipeline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	"github.com/AnyUserName/wallgen/internal/composer"
	"github.com/AnyUserName/wallgen/internal/hasher"
	"github.com/AnyUserName/wallgen/internal/manifest"
)

// nameHashLen is the number of hash hex chars in an output file name.
const nameHashLen = 8

type job struct {
	index int
	seed  int64
}

type jobResult struct {
	wallpaper manifest.Wallpaper
	err       error
}

// generate composes, encodes and writes a single wallpaper.
func (p *Pipeline) generate(j job) jobResult {
	seed := j.seed
	res, err := composer.Compose(composer.Options{
		Width:      p.cfg.Width,
		Height:     p.cfg.Height,
		Profile:    p.cfg.Profile,
		Seed:       &seed,
		Generators: p.cfg.Generators,
	})
	if err != nil {
		return jobResult{err: fmt.Errorf("compose #%d: %w", j.index, err)}
	}

	data, err := p.enc.Encode(res.Image)
	if err != nil {
		return jobResult{err: fmt.Errorf("encode #%d as %s: %w", j.index, p.enc.Format(), err)}
	}

	hash := hasher.ContentHash(data, 0)
	name := FileName(p.now().Format("20060102_150405"), hash[:nameHashLen], p.enc.Extension())
	path := filepath.Join(p.cfg.OutputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return jobResult{err: fmt.Errorf("write %s: %w", path, err)}
	}

	log.Info().Str("path", path).Int64("seed", seed).Msg("wallpaper saved")

	b := res.Image.Bounds()
	return jobResult{wallpaper: manifest.Wallpaper{
		Path:      name,
		Width:     b.Dx(),
		Height:    b.Dy(),
		Size:      int64(len(data)),
		Hash:      hash,
		PixelHash: hasher.PixelHash(res.Image, 0),
		AvgColor:  AvgColor(res.Image),
		Recipe:    res.Recipe,
	}}
}

// FileName builds "wallpaper_<stamp>_<hash>.<ext>".
func FileName(stamp, hash, ext string) string {
	return fmt.Sprintf("wallpaper_%s_%s.%s", stamp, hash, ext)
}

// AvgColor returns the mean color of img as "#rrggbb".
func AvgColor(img image.Image) string {
	px := imaging.Resize(img, 1, 1, imaging.Box).NRGBAAt(0, 0)
	return fmt.Sprintf("#%02x%02x%02x", px.R, px.G, px.B)
}
