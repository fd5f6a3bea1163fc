package tui

import "strings"

// renderMap draws every visible contour layer as a polyline on the
// braille microgrid.
func (m Model) renderMap(w, h int) string {
	br := newBrailleBuf(w, h)
	if m.bb.valid() {
		for _, ly := range m.layers {
			if !ly.show {
				continue
			}
			var prev *[2]int
			for _, p := range ly.points {
				mx, my := m.screenXYMicro(p[0], p[1], w, h)
				if prev != nil {
					br.line(prev[0], prev[1], mx, my)
				} else {
					br.setPixel(mx, my)
				}
				prev = &[2]int{mx, my}
			}
		}
	}
	return strings.Join(br.toLines(), "\n")
}

// screenXYMicro maps lon/lat into the 2x4 microgrid, applying zoom
// around the viewport center and the current pan offset.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int) {
	nx := (lon - m.bb.minX) / (m.bb.maxX - m.bb.minX)
	ny := (lat - m.bb.minY) / (m.bb.maxY - m.bb.minY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy
}

// cellToLonLat converts a map cell back to lon/lat using bbox, zoom,
// and pan; used for the hover readout.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !m.bb.valid() || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bb.minX + nx*(m.bb.maxX-m.bb.minX)
	lat := m.bb.minY + ny*(m.bb.maxY-m.bb.minY)
	return lon, lat, true
}
