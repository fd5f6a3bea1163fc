// Package journal writes CUBIT/Trelis journal scripts. The command
// vocabulary is the small subset needed to skin spline curves into
// ACIS NURBS surfaces: vertex creation, spline curves over captured
// vertex ID ranges, surface skinning, and export.
package journal

import (
	"fmt"
	"io"

	"slabgen/internal/contour"
)

// ValidationError reports a contour that cannot be splined.
type ValidationError struct {
	Points int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("journal: contour has %d points, spline needs at least 2", e.Points)
}

// Writer emits journal commands to a single output stream. It is
// stateful only in the trivial sense that the modeler replaying the
// script is: callers must follow the header / new-surface / contours /
// skin ordering.
type Writer struct {
	w io.Writer
}

// New returns a Writer emitting to w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteHeader emits the preamble comment block. Call once, first.
func (j *Writer) WriteHeader() error {
	_, err := io.WriteString(j.w,
		"# CUBIT/Trelis journal file generated by slabgen\n"+
			"#\n"+
			"# Create ACIS NURBS surfaces for top and bottom of slab.\n\n")
	return err
}

// NewSurface resets the modeler's scratch space, starting an
// independent surface-build sequence.
func (j *Writer) NewSurface() error {
	_, err := io.WriteString(j.w, "# New surface.\nreset\n\n")
	return err
}

// AddContour emits one vertex per point, in order, captures the first
// and last vertex IDs, and spans them with a spline curve. Point order
// is load-bearing: reversing it flips the curve orientation, so this
// method never touches it. Fewer than two points is a ValidationError
// and emits nothing.
func (j *Writer) AddContour(points []contour.Point) error {
	if len(points) < 2 {
		return &ValidationError{Points: len(points)}
	}
	if _, err := io.WriteString(j.w, "# Contour\n"); err != nil {
		return err
	}
	if err := j.vertex(points[0]); err != nil {
		return err
	}
	if _, err := io.WriteString(j.w, "${pBegin=Id('vertex')}\n"); err != nil {
		return err
	}
	for _, pt := range points[1:] {
		if err := j.vertex(pt); err != nil {
			return err
		}
	}
	_, err := io.WriteString(j.w,
		"${pEnd=Id('vertex')}\n"+
			"create curve spline vertex {pBegin} to {pEnd} delete\n\n")
	return err
}

func (j *Writer) vertex(pt contour.Point) error {
	_, err := fmt.Fprintf(j.w, "create vertex x %12.6e y %12.6e z %12.6e\n", pt[0], pt[1], pt[2])
	return err
}

// SkinSurface fits one surface across every curve created since the
// last NewSurface, drops the scratch curves, and exports the result to
// filename, overwriting any existing file.
func (j *Writer) SkinSurface(filename string) error {
	_, err := fmt.Fprintf(j.w,
		"# Create surface from curves.\n"+
			"create surface skin curve all\n"+
			"delete curve all\n\n"+
			"# Save surface to ACIS file for later use.\n"+
			"export acis '%s' overwrite\n\n", filename)
	return err
}
