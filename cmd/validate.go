package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	_ "golang.org/x/image/webp"

	"github.com/AnyUserName/wallgen/internal/hasher"
	"github.com/AnyUserName/wallgen/internal/manifest"
)

var validatePixels bool

var validateCmd = &cobra.Command{
	Use:   "validate <manifest_path>",
	Short: "Validate a wallgen manifest and check referenced files",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validatePixels, "pixels", false, "also decode every file and compare pixel hashes")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	manifestPath := args[0]

	m, err := manifest.ReadJSON(manifestPath)
	if err != nil {
		return err
	}

	baseDir := filepath.Dir(manifestPath)
	errors := validateManifest(m, baseDir, validatePixels)

	if len(errors) == 0 {
		fmt.Println("  ✓ Manifest is valid")
		fmt.Printf("  ✓ %d wallpapers, %s — all files present\n",
			m.Stats.TotalWallpapers, formatBytes(m.Stats.TotalBytes))
		return nil
	}

	fmt.Printf("  ✗ Manifest has %d error(s):\n", len(errors))
	for _, e := range errors {
		fmt.Printf("    • %s\n", e)
	}
	return fmt.Errorf("validation failed with %d errors", len(errors))
}

func validateManifest(m *manifest.Manifest, baseDir string, pixels bool) []string {
	var errs []string

	if m.Version != manifest.SupportedManifestVersion {
		errs = append(errs, fmt.Sprintf("unsupported manifest version: %d", m.Version))
	}

	seenPaths := map[string]bool{}
	var totalBytes int64
	for i, w := range m.Wallpapers {
		if w.Width <= 0 || w.Height <= 0 {
			errs = append(errs, fmt.Sprintf("wallpaper[%d]: invalid dimensions %dx%d", i, w.Width, w.Height))
		}
		if w.Recipe.Width != w.Width || w.Recipe.Height != w.Height {
			errs = append(errs, fmt.Sprintf("wallpaper[%d]: recipe size %dx%d does not match %dx%d",
				i, w.Recipe.Width, w.Recipe.Height, w.Width, w.Height))
		}
		if w.Hash == "" {
			errs = append(errs, fmt.Sprintf("wallpaper[%d]: missing hash", i))
		}
		if w.Path == "" {
			errs = append(errs, fmt.Sprintf("wallpaper[%d]: missing path", i))
			continue
		}
		if seenPaths[w.Path] {
			errs = append(errs, fmt.Sprintf("wallpaper[%d]: duplicate path %q", i, w.Path))
		}
		seenPaths[w.Path] = true
		totalBytes += w.Size

		fullPath := filepath.Join(baseDir, w.Path)
		data, err := os.ReadFile(fullPath)
		if err != nil {
			errs = append(errs, fmt.Sprintf("wallpaper[%d]: file not found: %s", i, w.Path))
			continue
		}
		if w.Size > 0 && int64(len(data)) != w.Size {
			errs = append(errs, fmt.Sprintf("wallpaper[%d]: size mismatch: manifest=%d, disk=%d",
				i, w.Size, len(data)))
		}
		if w.Hash != "" && hasher.ContentHash(data, len(w.Hash)) != w.Hash {
			errs = append(errs, fmt.Sprintf("wallpaper[%d]: content hash mismatch for %s", i, w.Path))
		}
		if pixels {
			errs = append(errs, checkPixels(i, fullPath, w)...)
		}
	}

	if m.Stats.TotalWallpapers != len(m.Wallpapers) {
		errs = append(errs, fmt.Sprintf("stats.total_wallpapers mismatch: %d != %d",
			m.Stats.TotalWallpapers, len(m.Wallpapers)))
	}
	if m.Stats.TotalBytes != totalBytes {
		errs = append(errs, fmt.Sprintf("stats.total_bytes mismatch: %d != %d", m.Stats.TotalBytes, totalBytes))
	}

	return errs
}

func checkPixels(i int, path string, w manifest.Wallpaper) []string {
	img, err := imaging.Open(path)
	if err != nil {
		return []string{fmt.Sprintf("wallpaper[%d]: decode %s: %v", i, w.Path, err)}
	}
	b := img.Bounds()
	if b.Dx() != w.Width || b.Dy() != w.Height {
		return []string{fmt.Sprintf("wallpaper[%d]: decoded size %dx%d, manifest says %dx%d",
			i, b.Dx(), b.Dy(), w.Width, w.Height)}
	}
	if w.PixelHash != "" && hasher.PixelHash(imaging.Clone(img), len(w.PixelHash)) != w.PixelHash {
		return []string{fmt.Sprintf("wallpaper[%d]: pixel hash mismatch for %s", i, w.Path)}
	}
	return nil
}
