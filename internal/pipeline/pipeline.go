// Package pipeline assembles the three slab surfaces from processed
// contours. The recipes are deliberately explicit sequences rather
// than generic machinery: every offset, thickness, and filename comes
// from the run configuration, keeping the geometric engine in
// internal/slab independent of the tectonic scenario.
package pipeline

import (
	"fmt"

	"slabgen/internal/config"
	"slabgen/internal/contour"
	"slabgen/internal/journal"
	"slabgen/internal/slab"
)

const kmToM = 1.0e+3

// Builder drives one surface-generation run. The extender must already
// be decimated, projected, and extended.
type Builder struct {
	ext *slab.Extender
	jou *journal.Writer
	cfg config.Config
}

// New wires a Builder.
func New(ext *slab.Extender, jou *journal.Writer, cfg config.Config) *Builder {
	return &Builder{ext: ext, jou: jou, cfg: cfg}
}

// Run writes the header and builds top, bottom, and splay surfaces in
// order.
func (b *Builder) Run() error {
	if err := b.jou.WriteHeader(); err != nil {
		return err
	}
	if err := b.BuildTop(); err != nil {
		return fmt.Errorf("pipeline: top surface: %w", err)
	}
	if err := b.BuildBottom(); err != nil {
		return fmt.Errorf("pipeline: bottom surface: %w", err)
	}
	if err := b.BuildSplay(); err != nil {
		return fmt.Errorf("pipeline: splay surface: %w", err)
	}
	return nil
}

// BuildTop skins one surface over the canonical contour order: the
// synthetic up-dip layers followed by the real contours, shallow to
// deep.
func (b *Builder) BuildTop() error {
	if err := b.jou.NewSurface(); err != nil {
		return err
	}
	for _, c := range b.ext.AllContours(b.cfg.Spacing) {
		if err := b.jou.AddContour(c.Points); err != nil {
			return err
		}
	}
	return b.jou.SkinSurface(b.cfg.Surfaces.Top)
}

// BuildBottom offsets every contour downward by the slab thickness:
// up-dip layers are clamped to a flat floor, real contours shift along
// the approximate outward normal. Offsets apply to copies; the
// extender's contours are never mutated here.
func (b *Builder) BuildBottom() error {
	if err := b.jou.NewSurface(); err != nil {
		return err
	}
	thickness := b.cfg.Slab.Thickness * kmToM
	for _, c := range b.ext.UpDipContours() {
		cc := c.Clone()
		for i := range cc.Points {
			cc.Points[i][2] = -thickness
		}
		if err := b.jou.AddContour(cc.Points); err != nil {
			return err
		}
	}
	n := b.cfg.Slab.Normal
	for _, c := range b.ext.Contours(b.cfg.Spacing) {
		cc := c.Clone()
		for i, pt := range cc.Points {
			cc.Points[i] = contour.Point{
				pt[0] + n[0]*thickness,
				pt[1] + n[1]*thickness,
				pt[2] + n[2]*thickness,
			}
		}
		if err := b.jou.AddContour(cc.Points); err != nil {
			return err
		}
	}
	return b.jou.SkinSurface(b.cfg.Surfaces.Bottom)
}

// BuildSplay skins a two-curve surface from the designated reference
// contour: one copy shifted deeper, one copy raised to the splay
// elevation and offset laterally toward the trench.
func (b *Builder) BuildSplay() error {
	ref := b.ext.Contour(b.cfg.Splay.Contour)
	if ref == nil {
		return fmt.Errorf("pipeline: no contour at depth %d km for splay", b.cfg.Splay.Contour)
	}
	if err := b.jou.NewSurface(); err != nil {
		return err
	}
	deep := ref.Clone()
	for i := range deep.Points {
		deep.Points[i][2] += b.cfg.Splay.DepthShift * kmToM
	}
	if err := b.jou.AddContour(deep.Points); err != nil {
		return err
	}
	shallow := ref.Clone()
	for i := range shallow.Points {
		shallow.Points[i][0] += b.cfg.Splay.Offset[0] * kmToM
		shallow.Points[i][1] += b.cfg.Splay.Offset[1] * kmToM
		shallow.Points[i][2] = b.cfg.Splay.Elevation * kmToM
	}
	if err := b.jou.AddContour(shallow.Points); err != nil {
		return err
	}
	return b.jou.SkinSurface(b.cfg.Surfaces.Splay)
}
