package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_DepthsSorted(t *testing.T) {
	set := NewSet()
	for _, d := range []int{40, -2, 10, 0, 25} {
		set.Put(&Contour{Depth: d, Points: []Point{{0, 0, float64(d)}}})
	}
	assert.Equal(t, []int{-2, 0, 10, 25, 40}, set.Depths())
	assert.Equal(t, 5, set.Len())
	assert.Nil(t, set.At(99))
}

func TestSet_EachAscending(t *testing.T) {
	set := NewSet()
	set.Put(&Contour{Depth: 20})
	set.Put(&Contour{Depth: 10})
	var seen []int
	set.Each(func(c *Contour) { seen = append(seen, c.Depth) })
	assert.Equal(t, []int{10, 20}, seen)
}

func TestContour_CloneIsDeep(t *testing.T) {
	c := &Contour{Depth: 10, Points: []Point{{1, 2, 3}, {4, 5, 6}}}
	cc := c.Clone()
	require.Equal(t, c, cc)

	cc.Points[0][0] = 99
	cc.Depth = -1
	assert.Equal(t, Point{1, 2, 3}, c.Points[0])
	assert.Equal(t, 10, c.Depth)
}
