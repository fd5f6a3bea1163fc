// Package config holds the run parameters for slabgen. Lengths are
// kilometers and angles degrees, matching the Slab 1.0 conventions;
// the pipeline converts to mesh-frame meters where needed.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the full parameter set for one generate run.
type Config struct {
	// Contours is the Slab 1.0 input file (plain or gzipped text).
	Contours string `yaml:"contours" validate:"required"`
	// Journal is the output script path.
	Journal string `yaml:"journal" validate:"required"`
	// Projection is the proj4 description of the local mesh frame.
	Projection string `yaml:"projection" validate:"required"`

	// PointsStride decimates points within each contour.
	PointsStride int `yaml:"points_stride" validate:"gte=1"`
	// Spacing selects real contours whose depth is a multiple of it, in km.
	Spacing int `yaml:"spacing" validate:"gte=1"`

	UpDip    UpDip    `yaml:"up_dip"`
	Slab     Slab     `yaml:"slab"`
	Splay    Splay    `yaml:"splay"`
	Surfaces Surfaces `yaml:"surfaces"`
}

// UpDip parameterizes the synthetic up-dip extension.
type UpDip struct {
	Elevation float64 `yaml:"elevation"`                          // km
	Distance  float64 `yaml:"distance" validate:"gt=0"`           // km
	Dip       float64 `yaml:"dip" validate:"gt=0,lt=90"`          // deg
	Strike    float64 `yaml:"strike" validate:"gte=-360,lte=360"` // deg
}

// Slab parameterizes the bottom-surface recipe.
type Slab struct {
	Thickness float64    `yaml:"thickness" validate:"gt=0"` // km
	Normal    [3]float64 `yaml:"normal"`                    // approximate outward normal
}

// Splay parameterizes the splay-fault recipe.
type Splay struct {
	Contour    int        `yaml:"contour"`     // depth key of the reference contour, km
	DepthShift float64    `yaml:"depth_shift"` // km, applied to the deep copy
	Elevation  float64    `yaml:"elevation"`   // km, depth of the shallow copy
	Offset     [2]float64 `yaml:"offset"`      // km, lateral offset of the shallow copy
}

// Surfaces names the exported ACIS files.
type Surfaces struct {
	Top    string `yaml:"top" validate:"required"`
	Bottom string `yaml:"bottom" validate:"required"`
	Splay  string `yaml:"splay" validate:"required"`
}

// Default returns the Cascadia parameter set the tool ships with.
func Default() Config {
	return Config{
		Contours:     "cas_contours_dep.in.txt.gz",
		Journal:      "geometry_surfs.jou",
		Projection:   "+proj=tmerc +lon_0=-122.6765 +lat_0=45.5231 +k=0.9996 +datum=WGS84 +units=m",
		PointsStride: 20,
		Spacing:      10,
		UpDip: UpDip{
			Elevation: 1.0,
			Distance:  600.0,
			Dip:       10.0,
			Strike:    0.0,
		},
		Slab: Slab{
			Thickness: 50.0,
			Normal:    [3]float64{-0.209, 0.016, -0.979},
		},
		Splay: Splay{
			Contour:    15,
			DepthShift: -5.0,
			Elevation:  1.0,
			Offset:     [2]float64{-15.0, 0.0},
		},
		Surfaces: Surfaces{
			Top:    "surf_slabtop.sat",
			Bottom: "surf_slabbot.sat",
			Splay:  "surf_splay.sat",
		},
	}
}

// Load reads a YAML config overlaid on the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	return validator.New().Struct(c)
}
