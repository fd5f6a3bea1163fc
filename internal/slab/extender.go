// Package slab turns a sparse set of slab depth contours into the full
// family of curves needed to skin top and bottom surfaces: it decimates
// point density, projects geographic coordinates into the mesh frame,
// and synthesizes up-dip layers by a geometric-series extension.
package slab

import (
	"fmt"
	"math"

	"slabgen/internal/contour"
)

// Transform maps geographic coordinates to the local mesh frame and back.
type Transform interface {
	Forward(lon, lat float64) (x, y float64, err error)
	Inverse(x, y float64) (lon, lat float64, err error)
}

// GeometryError reports an up-dip extension that is geometrically
// undefined, e.g. a target elevation that does not lie up-dip of the
// shallowest contour.
type GeometryError struct {
	Msg string
}

func (e *GeometryError) Error() string {
	return "slab: " + e.Msg
}

// ExtensionParams describes the synthetic up-dip contour stack.
// Lengths are mesh-frame meters, angles degrees.
type ExtensionParams struct {
	Elev    float64 // elevation of the synthetic layers
	Strike  float64 // approximate fault strike
	Dip     float64 // dip angle at the up-dip edge
	MaxDist float64 // maximum horizontal extension distance
}

// Extender owns one run's contours: the real set read from disk plus
// the synthetic up-dip layers it generates. Real contours use
// non-negative depth keys, synthetic ones 0, -1, -2, ... counting away
// from the trench, so the two key spaces never collide.
type Extender struct {
	real      *contour.Set
	upDip     *contour.Set
	projected bool
}

// NewExtender wraps a freshly read contour set.
func NewExtender(set *contour.Set) *Extender {
	return &Extender{real: set, upDip: contour.NewSet()}
}

// Decimate thins every contour to points 0, stride, 2*stride, ...,
// always keeping the exact last point. A stride of 1 or less keeps
// every point.
func (e *Extender) Decimate(stride int) {
	if stride <= 1 {
		return
	}
	e.real.Each(func(c *contour.Contour) {
		n := len(c.Points)
		if n == 0 {
			return
		}
		kept := make([]contour.Point, 0, (n-1)/stride+2)
		for i := 0; i < n; i += stride {
			kept = append(kept, c.Points[i])
		}
		if (n-1)%stride != 0 {
			kept = append(kept, c.Points[n-1])
		}
		c.Points = kept
	})
}

// ProjectToMeshFrame converts every point from geographic coordinates
// to the local mesh frame and rescales depth from kilometers to meters.
// It must run exactly once per Extender; a second call panics, since a
// doubly scaled depth silently corrupts every downstream surface.
func (e *Extender) ProjectToMeshFrame(t Transform) error {
	if e.projected {
		panic("slab: contours already projected to mesh frame")
	}
	var failed error
	e.real.Each(func(c *contour.Contour) {
		if failed != nil {
			return
		}
		for i, pt := range c.Points {
			x, y, err := t.Forward(pt[0], pt[1])
			if err != nil {
				failed = fmt.Errorf("slab: project contour %d: %w", c.Depth, err)
				return
			}
			c.Points[i] = contour.Point{x, y, pt[2] * 1.0e+3}
		}
	})
	if failed != nil {
		return failed
	}
	e.projected = true
	return nil
}

// ExtendUpDip synthesizes contours up-dip of the shallowest real
// contour. Layer i is a copy of the reference contour's (x, y)
// positions offset by (2^i*dx, 2^i*dy) with depth fixed at p.Elev, so
// spacing grows geometrically away from the fault tip: few layers
// approximate the listric flattening of the slab near the trench.
func (e *Extender) ExtendUpDip(p ExtensionParams) error {
	if !e.projected {
		panic("slab: extend before projecting to mesh frame")
	}
	keys := e.real.Depths()
	if len(keys) == 0 {
		return &GeometryError{Msg: "no contours to extend"}
	}
	top := e.real.At(keys[0])
	if len(top.Points) == 0 {
		return &GeometryError{Msg: fmt.Sprintf("reference contour %d is empty", top.Depth)}
	}
	zTop := top.Points[0][2]

	dip := p.Dip * math.Pi / 180.0
	strike := p.Strike * math.Pi / 180.0
	distHoriz := (p.Elev - zTop) / math.Tan(dip)
	if distHoriz <= 0 {
		return &GeometryError{Msg: fmt.Sprintf("target elevation %g is not up-dip of reference depth %g", p.Elev, zTop)}
	}
	logArg := p.MaxDist/distHoriz + 1
	if logArg <= 0 {
		return &GeometryError{Msg: fmt.Sprintf("extension distance %g yields non-positive log argument", p.MaxDist)}
	}
	dx := -distHoriz * math.Cos(strike)
	dy := distHoriz * math.Sin(strike)

	num := int(math.Ceil(math.Log2(logArg)))
	e.upDip = contour.NewSet()
	for i := 0; i < num; i++ {
		c := top.Clone()
		c.Depth = -i
		scale := float64(int(1) << uint(i))
		for j, pt := range c.Points {
			c.Points[j] = contour.Point{pt[0] + scale*dx, pt[1] + scale*dy, p.Elev}
		}
		e.upDip.Put(c)
	}
	return nil
}

// Contour returns the real contour at the given depth key, or nil.
func (e *Extender) Contour(depth int) *contour.Contour {
	return e.real.At(depth)
}

// Contours returns the real contours whose depth key is an exact
// multiple of spacing, shallowest first.
func (e *Extender) Contours(spacing int) []*contour.Contour {
	var out []*contour.Contour
	for _, k := range e.real.Depths() {
		if spacing > 0 && k%spacing != 0 {
			continue
		}
		out = append(out, e.real.At(k))
	}
	return out
}

// UpDipContours returns the synthetic contours in ascending key order,
// i.e. the layer farthest from the trench first. Skinning needs the
// curves in monotone spatial order, and the key space was chosen so
// that ascending keys walk back toward the real contours.
func (e *Extender) UpDipContours() []*contour.Contour {
	var out []*contour.Contour
	for _, k := range e.upDip.Depths() {
		out = append(out, e.upDip.At(k))
	}
	return out
}

// AllContours is the canonical skinning order for one continuous
// surface: synthetic up-dip layers first, then the real contours at
// the given spacing, shallow to deep.
func (e *Extender) AllContours(spacing int) []*contour.Contour {
	return append(e.UpDipContours(), e.Contours(spacing)...)
}
