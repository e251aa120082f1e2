package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// New creates an empty manifest with defaults.
func New(format string) *Manifest {
	return &Manifest{
		Version:     SupportedManifestVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Format:      format,
		BasePath:    "./",
		Wallpapers:  []Wallpaper{},
	}
}

// ComputeStats recalculates aggregate statistics from wallpapers.
// Failed is left as is; only the caller knows about failures.
func (m *Manifest) ComputeStats() {
	m.Stats.TotalWallpapers = len(m.Wallpapers)
	m.Stats.TotalBytes = 0
	for _, w := range m.Wallpapers {
		m.Stats.TotalBytes += w.Size
	}
}

// WriteJSON serializes the manifest to a JSON file with stable ordering.
func WriteJSON(m *Manifest, path string) error {
	m.ComputeStats()
	sort.SliceStable(m.Wallpapers, func(i, j int) bool {
		return m.Wallpapers[i].Path < m.Wallpapers[j].Path
	})

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a manifest from path.
func ReadJSON(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
