package contour

import "sort"

// Point is one contour vertex: x, y, z. Before projection x/y hold
// longitude/latitude in degrees and z depth in kilometers; after
// projection all three are mesh-frame meters.
type Point [3]float64

// Contour is an ordered polyline at constant depth. Point order runs
// along strike and is load-bearing: every transform must preserve it.
type Contour struct {
	Depth  int // depth key, kilometers; non-positive for synthetic layers
	Points []Point
}

// Clone returns a deep copy so recipe offsets never touch the source.
func (c *Contour) Clone() *Contour {
	pts := make([]Point, len(c.Points))
	copy(pts, c.Points)
	return &Contour{Depth: c.Depth, Points: pts}
}

// Set maps depth keys to contours. Keys are unique.
type Set struct {
	contours map[int]*Contour
}

// NewSet returns an empty contour set.
func NewSet() *Set {
	return &Set{contours: make(map[int]*Contour)}
}

// Put stores c under its depth key, replacing any previous contour.
func (s *Set) Put(c *Contour) {
	s.contours[c.Depth] = c
}

// At returns the contour for the given depth key, or nil.
func (s *Set) At(depth int) *Contour {
	return s.contours[depth]
}

// Len reports the number of contours.
func (s *Set) Len() int {
	return len(s.contours)
}

// Depths returns the depth keys in ascending order. Iteration over the
// underlying map is never used for ordering; this slice is the stitch order.
func (s *Set) Depths() []int {
	keys := make([]int, 0, len(s.contours))
	for k := range s.contours {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// Each calls fn for every contour in ascending depth order.
func (s *Set) Each(fn func(*Contour)) {
	for _, k := range s.Depths() {
		fn(s.contours[k])
	}
}
