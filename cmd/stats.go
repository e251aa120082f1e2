package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/wallgen/internal/manifest"
)

var statsCmd = &cobra.Command{
	Use:   "stats <out_dir_or_manifest>",
	Short: "Display statistics for a generated wallpaper directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, args []string) error {
	path := args[0]

	// If path is a directory, look for manifest inside.
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		path = filepath.Join(path, manifest.FileName)
	}

	m, err := manifest.ReadJSON(path)
	if err != nil {
		return err
	}

	printStats(m)
	return nil
}

// usage counts how often each name appears across a run.
type usage map[string]int

func (u usage) sorted() []string {
	keys := make([]string, 0, len(u))
	for k := range u {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if u[keys[i]] != u[keys[j]] {
			return u[keys[i]] > u[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}

func printStats(m *manifest.Manifest) {
	fmt.Println()
	fmt.Printf("  Manifest version: %d\n", m.Version)
	fmt.Printf("  Generated:        %s\n", m.GeneratedAt)
	fmt.Printf("  Format:           %s\n", m.Format)
	if m.BuildInfo != nil {
		fmt.Printf("  Workers:          %d\n", m.BuildInfo.Workers)
		fmt.Printf("  Seeds:            %d … %d\n",
			m.BuildInfo.BaseSeed, m.BuildInfo.BaseSeed+int64(m.BuildInfo.Requested)-1)
	}
	fmt.Println()

	s := m.Stats
	fmt.Printf("  Wallpapers:       %d\n", s.TotalWallpapers)
	if s.Failed > 0 {
		fmt.Printf("  Failed:           %d\n", s.Failed)
	}
	fmt.Printf("  Total size:       %s\n", formatBytes(s.TotalBytes))
	if s.TotalWallpapers > 0 {
		fmt.Printf("  Average size:     %s\n", formatBytes(s.TotalBytes/int64(s.TotalWallpapers)))
	}
	fmt.Println()

	sizes, backgrounds, patterns, modes := usage{}, usage{}, usage{}, usage{}
	var layers int
	for _, w := range m.Wallpapers {
		sizes[fmt.Sprintf("%dx%d", w.Width, w.Height)]++
		backgrounds[string(w.Recipe.Background.Kind)]++
		for _, l := range w.Recipe.Layers {
			patterns[l.Generator]++
			modes[l.Mode.String()]++
			layers++
		}
	}

	printUsage("Size breakdown", sizes)
	printUsage("Backgrounds", backgrounds)
	printUsage("Pattern layers", patterns)
	printUsage("Blend modes", modes)
	if len(m.Wallpapers) > 0 {
		fmt.Printf("  Layers per wallpaper: %.1f\n", float64(layers)/float64(len(m.Wallpapers)))
	}
	fmt.Println()
}

func printUsage(title string, u usage) {
	if len(u) == 0 {
		return
	}
	fmt.Printf("  %s:\n", title)
	for _, k := range u.sorted() {
		fmt.Printf("    %-16s %4d\n", k, u[k])
	}
	fmt.Println()
}
