// Package proj adapts github.com/ctessum/geom/proj to the pipeline's
// mesh-frame transform: geographic WGS84 longitude/latitude on one
// side, a proj4-described local Cartesian system on the other.
package proj

import (
	"fmt"

	"github.com/ctessum/geom/proj"
)

const geographic = "+proj=longlat +datum=WGS84 +no_defs"

// Mesh is a bidirectional transform between geographic coordinates and
// the local mesh frame. It satisfies slab.Transform.
type Mesh struct {
	forward proj.Transformer
	inverse proj.Transformer
}

// NewMesh builds a transform pair for the mesh coordinate system
// described by the given proj4 string.
func NewMesh(proj4 string) (*Mesh, error) {
	geo, err := proj.Parse(geographic)
	if err != nil {
		return nil, fmt.Errorf("proj: parse geographic SR: %w", err)
	}
	mesh, err := proj.Parse(proj4)
	if err != nil {
		return nil, fmt.Errorf("proj: parse %q: %w", proj4, err)
	}
	fwd, err := geo.NewTransform(mesh)
	if err != nil {
		return nil, fmt.Errorf("proj: forward transform: %w", err)
	}
	inv, err := mesh.NewTransform(geo)
	if err != nil {
		return nil, fmt.Errorf("proj: inverse transform: %w", err)
	}
	return &Mesh{forward: fwd, inverse: inv}, nil
}

// Forward maps longitude/latitude (degrees) to mesh-frame x/y (meters).
func (m *Mesh) Forward(lon, lat float64) (x, y float64, err error) {
	return m.forward(lon, lat)
}

// Inverse maps mesh-frame x/y back to longitude/latitude.
func (m *Mesh) Inverse(x, y float64) (lon, lat float64, err error) {
	return m.inverse(x, y)
}
