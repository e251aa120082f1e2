package manifest

import "github.com/AnyUserName/wallgen/internal/composer"

// Manifest is the top-level record of a wallgen run.
type Manifest struct {
	Version     int         `json:"version"`
	GeneratedAt string      `json:"generated_at"`
	Format      string      `json:"format"`
	BasePath    string      `json:"base_path"`
	BuildInfo   *BuildInfo  `json:"build_info,omitempty"`
	Wallpapers  []Wallpaper `json:"wallpapers"`
	Stats       Stats       `json:"stats"`
}

// BuildInfo captures run parameters for diagnostics.
type BuildInfo struct {
	Workers   int   `json:"workers"`
	Requested int   `json:"requested"`
	BaseSeed  int64 `json:"base_seed"`
}

// Wallpaper describes one written image and how to reproduce it.
type Wallpaper struct {
	Path      string          `json:"path"` // relative to base_path
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Size      int64           `json:"size"` // bytes on disk
	Hash      string          `json:"hash"`       // xxhash64 of the encoded file
	PixelHash string          `json:"pixel_hash"` // xxhash64 of the decoded NRGBA pixels
	AvgColor  string          `json:"avg_color,omitempty"`
	Recipe    composer.Recipe `json:"recipe"` // every random decision, seed included
}

// Stats aggregates run metrics.
type Stats struct {
	TotalWallpapers int   `json:"total_wallpapers"`
	TotalBytes      int64 `json:"total_bytes"`
	Failed          int   `json:"failed,omitempty"`
}

// SupportedManifestVersion is the current schema version.
const SupportedManifestVersion = 1

// FileName is the manifest name inside an output directory.
const FileName = "wallgen.manifest.json"
