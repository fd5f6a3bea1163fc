// Package tui is an interactive terminal preview of a parsed contour
// set: a plan view of the depth contours rendered on a braille
// microgrid, with a sidebar for toggling individual depth layers.
package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"slabgen/internal/contour"
)

type bbox struct {
	minX, minY, maxX, maxY float64
}

func (b bbox) valid() bool { return b.maxX > b.minX && b.maxY > b.minY }

func (b *bbox) grow(x, y float64) {
	if x < b.minX {
		b.minX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y > b.maxY {
		b.maxY = y
	}
}

// layer is one depth contour prepared for rendering.
type layer struct {
	depth  int
	points [][2]float64 // lon/lat in along-strike order
	show   bool
}

type Model struct {
	path string

	width  int
	height int

	zoom    float64
	offsetX int
	offsetY int

	showSidebar bool
	helpVisible bool
	status      string

	layers []layer
	bb     bbox
	l      list.Model

	// hover state
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64
}

// New builds a preview model from a parsed contour set.
func New(path string, set *contour.Set) Model {
	m := Model{
		path:        path,
		zoom:        1.0,
		helpVisible: true,
		showSidebar: true,
	}
	total := 0
	set.Each(func(c *contour.Contour) {
		pts := make([][2]float64, len(c.Points))
		for i, p := range c.Points {
			pts[i] = [2]float64{p[0], p[1]}
			if total == 0 {
				m.bb = bbox{minX: p[0], minY: p[1], maxX: p[0], maxY: p[1]}
			}
			m.bb.grow(p[0], p[1])
			total++
		}
		m.layers = append(m.layers, layer{depth: c.Depth, points: pts, show: true})
	})
	m.status = fmt.Sprintf("loaded %s  contours=%d points=%d", path, len(m.layers), total)

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(m.layerItems(), d, 0, 0)
	m.l.Title = "Depths (km)"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	return m
}

func (m Model) Init() tea.Cmd { return nil }
