// Package profile holds the catalog of phone screen resolutions used when
// no explicit wallpaper size is requested.
package profile

import (
	"image"
	"math/rand"
	"sort"
)

// Profile describes a target phone screen.
type Profile struct {
	Name   string
	Width  int
	Height int
}

// Size returns the profile resolution as (width, height).
func (p Profile) Size() image.Point {
	return image.Pt(p.Width, p.Height)
}

// Built-in profiles. The order is fixed; Random indexes into it.
var profiles = []Profile{
	{Name: "iphone-13", Width: 1170, Height: 2532},
	{Name: "iphone-xs-max", Width: 1242, Height: 2688},
	{Name: "qhd-plus", Width: 1440, Height: 3200},
	{Name: "fhd-plus", Width: 1080, Height: 2400},
	{Name: "iphone-14-pro-max", Width: 1290, Height: 2796},
	{Name: "qhd", Width: 1440, Height: 2560},
}

// All returns the built-in profiles in catalog order.
func All() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Get returns a profile by name and whether it was found.
func Get(name string) (Profile, bool) {
	for _, p := range profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Random picks a catalog profile uniformly.
func Random(rng *rand.Rand) Profile {
	return profiles[rng.Intn(len(profiles))]
}

// Names returns the catalog names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for _, p := range profiles {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}
