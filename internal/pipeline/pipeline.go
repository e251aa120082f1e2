// Package pipeline generates batches of wallpapers on a bounded worker pool
// and writes them to disk.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/AnyUserName/wallgen/internal/composer"
	"github.com/AnyUserName/wallgen/internal/encoder"
	"github.com/AnyUserName/wallgen/internal/manifest"
	"github.com/AnyUserName/wallgen/internal/pattern"
)

// Config holds all parameters for a batch run.
type Config struct {
	OutputDir string
	Count     int
	Workers   int
	Width     int
	Height    int
	Profile   string
	// Seed of the first wallpaper; wallpaper i uses Seed+i. Nil seeds from
	// the clock.
	Seed       *int64
	Format     string
	Generators []pattern.Generator
}

// Pipeline orchestrates wallpaper generation.
type Pipeline struct {
	cfg Config
	enc encoder.Encoder
	now func() time.Time
}

// New validates cfg and resolves the encoder. It fails before any
// wallpaper is drawn.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Count <= 0 {
		cfg.Count = 1
	}
	opts := composer.Options{Width: cfg.Width, Height: cfg.Height, Profile: cfg.Profile}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	enc, err := encoder.NewRegistry().Resolve(cfg.Format)
	if err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, enc: enc, now: time.Now}, nil
}

// Format returns the name of the resolved output format.
func (p *Pipeline) Format() string {
	return p.enc.Format()
}

// Run generates cfg.Count wallpapers and returns the manifest describing
// the ones that were written. Individual failures are logged; Run fails
// only when nothing could be written.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := p.now().UnixNano()
	if p.cfg.Seed != nil {
		base = *p.cfg.Seed
	}
	log.Debug().
		Int("count", p.cfg.Count).
		Int("workers", p.cfg.Workers).
		Int64("base_seed", base).
		Str("format", p.enc.Format()).
		Msg("starting batch")

	results := make([]jobResult, p.cfg.Count)
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i := 0; i < p.cfg.Count; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = p.generate(job{index: idx, seed: base + int64(idx)})
		}(i)
	}
	wg.Wait()

	m := manifest.New(p.enc.Format())
	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Wallpapers = append(m.Wallpapers, r.wallpaper)
	}

	if len(errs) > 0 {
		for _, e := range errs {
			log.Error().Err(e).Msg("wallpaper failed")
		}
		if len(errs) == p.cfg.Count {
			return nil, fmt.Errorf("all %d wallpapers failed: %w", len(errs), errors.Join(errs...))
		}
		log.Warn().Msgf("%d of %d wallpapers had errors", len(errs), p.cfg.Count)
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:   p.cfg.Workers,
		Requested: p.cfg.Count,
		BaseSeed:  base,
	}
	m.ComputeStats()
	m.Stats.Failed = len(errs)
	return m, nil
}
