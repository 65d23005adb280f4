package launchericon

import (
	"fmt"
	"path/filepath"
	"strings"
)

// StoreListingSize is the pixel size of the store listing icon.
const StoreListingSize = 512

// Density is a named screen pixel density bucket and its launcher icon size.
type Density struct {
	Name string
	Size int
}

// densities is ordered from the lowest to the highest density.
var densities = [...]Density{
	{Name: "mdpi", Size: 48},
	{Name: "hdpi", Size: 72},
	{Name: "xhdpi", Size: 96},
	{Name: "xxhdpi", Size: 144},
	{Name: "xxxhdpi", Size: 192},
}

// Densities returns the launcher densities in ascending order.
// The returned slice is a copy and can be modified freely.
func Densities() []Density {
	return append([]Density(nil), densities[:]...)
}

// Dir returns the resource directory name of the density.
func (d Density) Dir() string {
	return "mipmap-" + d.Name
}

// Variant is a launcher icon flavor. Both variants share the same drawing.
type Variant string

const (
	Standard Variant = "ic_launcher"
	Round    Variant = "ic_launcher_round"
)

// Variants returns the icon variants written for every density.
func Variants() []Variant {
	return []Variant{Standard, Round}
}

// Artifact describes one output file.
type Artifact struct {
	Name string
	Size int
	Path string
	// Intermediate means the icon goes through a temporary PNG before being
	// converted to the final format.
	Intermediate bool
}

// Plan lists every artifact of a run: two variants for each density followed
// by the store listing icon.
func Plan(cfg Config) []Artifact {
	ext := "." + strings.ToLower(string(cfg.Format))
	plan := make([]Artifact, 0, len(densities)*2+1)

	for _, d := range Densities() {
		for _, v := range Variants() {
			plan = append(plan, Artifact{
				Name:         fmt.Sprintf("%s/%s", d.Dir(), v),
				Size:         d.Size,
				Path:         filepath.Join(cfg.ResDir, d.Dir(), string(v)+ext),
				Intermediate: cfg.Format != PNG,
			})
		}
	}
	plan = append(plan, Artifact{
		Name: "store listing",
		Size: StoreListingSize,
		Path: cfg.StoreListingPath,
	})

	return plan
}
