package slab

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slabgen/internal/contour"
)

// identity keeps lon/lat as mesh x/y; handy when only depth scaling matters.
type identity struct{}

func (identity) Forward(lon, lat float64) (float64, float64, error) { return lon, lat, nil }
func (identity) Inverse(x, y float64) (float64, float64, error)     { return x, y, nil }

// scale100 multiplies horizontal coordinates by 100.
type scale100 struct{}

func (scale100) Forward(lon, lat float64) (float64, float64, error) { return lon * 100, lat * 100, nil }
func (scale100) Inverse(x, y float64) (float64, float64, error)     { return x / 100, y / 100, nil }

func lineContour(depth, n int) *contour.Contour {
	c := &contour.Contour{Depth: depth}
	for i := 0; i < n; i++ {
		// Slab 1.0 files carry depth as a negative z in km
		c.Points = append(c.Points, contour.Point{float64(i), float64(i) * 2, -float64(depth)})
	}
	return c
}

func singleSet(depth, n int) *contour.Set {
	set := contour.NewSet()
	set.Put(lineContour(depth, n))
	return set
}

func TestDecimate_LengthFormula(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 10, 100} {
		for _, stride := range []int{2, 3, 5, 20} {
			t.Run(fmt.Sprintf("n=%d_stride=%d", n, stride), func(t *testing.T) {
				set := singleSet(10, n)
				first := set.At(10).Points[0]
				last := set.At(10).Points[n-1]

				NewExtender(set).Decimate(stride)

				got := set.At(10).Points
				want := (n-1+stride-1)/stride + 1 // ceil((n-1)/stride) + 1
				assert.Len(t, got, want)
				assert.Equal(t, first, got[0], "first point must survive")
				assert.Equal(t, last, got[len(got)-1], "last point must survive exactly")
			})
		}
	}
}

func TestDecimate_FivePointsStride2(t *testing.T) {
	set := singleSet(10, 5)
	NewExtender(set).Decimate(2)
	got := set.At(10).Points
	require.Len(t, got, 3)
	// indices 0, 2, and 4; never index 3
	assert.Equal(t, 0.0, got[0][0])
	assert.Equal(t, 2.0, got[1][0])
	assert.Equal(t, 4.0, got[2][0])
}

func TestDecimate_StrideOneKeepsAll(t *testing.T) {
	set := singleSet(10, 7)
	NewExtender(set).Decimate(1)
	assert.Len(t, set.At(10).Points, 7)
}

func TestProjectToMeshFrame(t *testing.T) {
	set := contour.NewSet()
	set.Put(&contour.Contour{Depth: 10, Points: []contour.Point{{1, 2, -10}, {3, 4, -10}}})
	ext := NewExtender(set)

	require.NoError(t, ext.ProjectToMeshFrame(scale100{}))

	got := set.At(10).Points
	assert.Equal(t, contour.Point{100, 200, -10000}, got[0])
	assert.Equal(t, contour.Point{300, 400, -10000}, got[1])

	// applying the projection twice corrupts the depth scale; it is a
	// programmer error, not a runtime condition
	require.Panics(t, func() { _ = ext.ProjectToMeshFrame(scale100{}) })
}

func TestExtendUpDip_BeforeProjectPanics(t *testing.T) {
	ext := NewExtender(singleSet(10, 3))
	require.Panics(t, func() {
		_ = ext.ExtendUpDip(ExtensionParams{Elev: 1000, Dip: 10, MaxDist: 600000})
	})
}

func projected(t *testing.T, depths ...int) *Extender {
	t.Helper()
	set := contour.NewSet()
	for _, d := range depths {
		set.Put(lineContour(d, 3))
	}
	ext := NewExtender(set)
	require.NoError(t, ext.ProjectToMeshFrame(identity{}))
	return ext
}

func TestExtendUpDip_GeometricSeries(t *testing.T) {
	// reference depth 10 km -> zTop = -10000 m; dip 45 deg -> tan = 1
	ext := projected(t, 10)
	p := ExtensionParams{Elev: 1000, Strike: 0, Dip: 45, MaxDist: 100000}
	require.NoError(t, ext.ExtendUpDip(p))

	distHoriz := (p.Elev - (-10000.0)) / math.Tan(45*math.Pi/180) // 11000
	layers := ext.UpDipContours()
	n := len(layers)

	// minimal count satisfying the reach requirement
	assert.GreaterOrEqual(t, (math.Pow(2, float64(n))-1)*distHoriz, p.MaxDist)
	assert.Less(t, (math.Pow(2, float64(n-1))-1)*distHoriz, p.MaxDist)

	ref := ext.Contour(10)
	for _, c := range layers {
		i := -c.Depth // layer index: keys 0, -1, -2, ...
		scale := math.Pow(2, float64(i))
		require.Len(t, c.Points, len(ref.Points))
		for j, pt := range c.Points {
			assert.InDelta(t, ref.Points[j][0]-scale*distHoriz, pt[0], 1e-9, "x of layer %d", i)
			assert.InDelta(t, ref.Points[j][1], pt[1], 1e-9, "y of layer %d", i)
			assert.Equal(t, p.Elev, pt[2], "depth of layer %d", i)
		}
	}
}

func TestExtendUpDip_StrikeDecomposition(t *testing.T) {
	ext := projected(t, 10)
	p := ExtensionParams{Elev: 1000, Strike: 30, Dip: 45, MaxDist: 5000}
	require.NoError(t, ext.ExtendUpDip(p))

	distHoriz := 11000.0
	dx := -distHoriz * math.Cos(30*math.Pi/180)
	dy := distHoriz * math.Sin(30*math.Pi/180)

	layers := ext.UpDipContours()
	require.Len(t, layers, 1) // maxDist < distHoriz -> single layer
	ref := ext.Contour(10)
	assert.InDelta(t, ref.Points[0][0]+dx, layers[0].Points[0][0], 1e-9)
	assert.InDelta(t, ref.Points[0][1]+dy, layers[0].Points[0][1], 1e-9)
}

func TestExtendUpDip_GeometryError(t *testing.T) {
	// target elevation below the reference contour: not up-dip
	ext := projected(t, 10)
	err := ext.ExtendUpDip(ExtensionParams{Elev: -20000, Dip: 10, MaxDist: 600000})
	var gerr *GeometryError
	require.ErrorAs(t, err, &gerr)
	assert.Empty(t, ext.UpDipContours())
}

func TestSelectionQueries(t *testing.T) {
	ext := projected(t, 10, 15, 20)

	spaced := ext.Contours(10)
	require.Len(t, spaced, 2)
	assert.Equal(t, 10, spaced[0].Depth)
	assert.Equal(t, 20, spaced[1].Depth)

	all := ext.Contours(0)
	require.Len(t, all, 3)
	assert.Equal(t, 15, all[1].Depth)
}

func TestAllContours_CanonicalOrder(t *testing.T) {
	set := contour.NewSet()
	set.Put(&contour.Contour{Depth: 10, Points: []contour.Point{{0, 0, -10}, {1, 0, -10}}})
	set.Put(&contour.Contour{Depth: 20, Points: []contour.Point{{0, 1, -20}, {1, 1, -20}}})
	ext := NewExtender(set)
	require.NoError(t, ext.ProjectToMeshFrame(identity{}))
	require.NoError(t, ext.ExtendUpDip(ExtensionParams{Elev: 1000, Dip: 45, MaxDist: 5000}))

	all := ext.AllContours(10)
	require.Len(t, all, 3)
	assert.Equal(t, 0, all[0].Depth) // the single synthetic layer
	assert.Equal(t, 10, all[1].Depth)
	assert.Equal(t, 20, all[2].Depth)
}

func TestUpDipContours_FarthestFirst(t *testing.T) {
	set := contour.NewSet()
	set.Put(&contour.Contour{Depth: 10, Points: []contour.Point{{0, 0, -10}}})
	ext := NewExtender(set)
	require.NoError(t, ext.ProjectToMeshFrame(identity{}))
	require.NoError(t, ext.ExtendUpDip(ExtensionParams{Elev: 1000, Dip: 45, MaxDist: 100000}))

	layers := ext.UpDipContours()
	require.Greater(t, len(layers), 1)
	// ascending keys: most distant layer first, layer 0 adjacent to the
	// real contours last
	for i := 1; i < len(layers); i++ {
		assert.Less(t, layers[i-1].Depth, layers[i].Depth)
	}
	assert.Equal(t, 0, layers[len(layers)-1].Depth)
}
