package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/AnyUserName/wallgen/internal/manifest"
	"github.com/AnyUserName/wallgen/internal/pattern"
	"github.com/AnyUserName/wallgen/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more wallpapers",
	Long: `Paints wallpapers and writes them as
wallpaper_<YYYYmmdd_HHMMSS>_<hash>.<ext> into the output directory.

Without --w/--h the size comes from --device, or from a random entry of
the device catalog. With --seed S, wallpaper i of the batch uses seed S+i.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.Int("w", 0, "width in pixels (requires --h)")
	f.Int("h", 0, "height in pixels (requires --w)")
	f.StringP("device", "d", "", "device profile for the size (see `wallgen devices`)")
	f.Int64P("seed", "s", 0, "seed of the first wallpaper (default: clock)")
	f.IntP("count", "n", 1, "number of wallpapers")
	f.IntP("workers", "j", 0, "parallel workers (0 = NumCPU)")
	f.StringP("outdir", "o", ".", "output directory")
	f.StringP("format", "f", "png", "output format: png, tiff, bmp, webp")
	f.StringSlice("patterns", nil, "restrict pattern layers (see `wallgen patterns`)")
	f.Bool("manifest", false, "write "+manifest.FileName+" next to the wallpapers")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	start := time.Now()

	seed, err := parseSeed(conf.Seed)
	if err != nil {
		return err
	}
	gens, err := resolvePatterns(conf.Patterns)
	if err != nil {
		return err
	}
	outDir, err := filepath.Abs(conf.OutDir)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}

	p, err := pipeline.New(pipeline.Config{
		OutputDir:  outDir,
		Count:      conf.Count,
		Workers:    conf.Workers,
		Width:      conf.Width,
		Height:     conf.Height,
		Profile:    conf.Device,
		Seed:       seed,
		Format:     conf.Format,
		Generators: gens,
	})
	if err != nil {
		return err
	}

	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	for _, w := range m.Wallpapers {
		fmt.Printf("Saved: %s\n", filepath.Join(outDir, w.Path))
	}

	if conf.Manifest {
		path := filepath.Join(outDir, manifest.FileName)
		if err := manifest.WriteJSON(m, path); err != nil {
			return fmt.Errorf("write manifest: %w", err)
		}
		log.Info().Str("path", path).Msg("manifest written")
	}

	log.Debug().
		Int("written", m.Stats.TotalWallpapers).
		Str("bytes", formatBytes(m.Stats.TotalBytes)).
		Dur("elapsed", time.Since(start).Round(time.Millisecond)).
		Msg("batch complete")

	if m.Stats.Failed > 0 {
		return fmt.Errorf("%d of %d wallpapers failed", m.Stats.Failed, m.BuildInfo.Requested)
	}
	return nil
}

func parseSeed(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", s, err)
	}
	return &v, nil
}

func resolvePatterns(names []string) ([]pattern.Generator, error) {
	if len(names) == 0 {
		return nil, nil
	}
	gens := make([]pattern.Generator, 0, len(names))
	for _, name := range names {
		g, ok := pattern.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown pattern %q (known: %v)", name, pattern.Names())
		}
		gens = append(gens, g)
	}
	return gens, nil
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
