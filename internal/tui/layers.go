package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
)

type layerItem struct {
	depth int
	count int
	show  bool
}

func (l layerItem) Title() string {
	mark := " "
	if l.show {
		mark = "*"
	}
	return fmt.Sprintf("%s %4d km", mark, l.depth)
}
func (l layerItem) Description() string { return fmt.Sprintf("%d pts", l.count) }
func (l layerItem) FilterValue() string { return fmt.Sprintf("%d", l.depth) }

func (m Model) layerItems() []list.Item {
	items := make([]list.Item, len(m.layers))
	for i, ly := range m.layers {
		items[i] = layerItem{depth: ly.depth, count: len(ly.points), show: ly.show}
	}
	return items
}

// toggleSelected flips visibility of the layer under the list cursor.
func (m *Model) toggleSelected() {
	idx := m.l.Index()
	if idx < 0 || idx >= len(m.layers) {
		return
	}
	m.layers[idx].show = !m.layers[idx].show
	m.l.SetItems(m.layerItems())
	m.l.Select(idx)
	m.status = fmt.Sprintf("layer %d km: %v", m.layers[idx].depth, m.layers[idx].show)
}

// toggleAll shows every layer if any is hidden, else hides all.
func (m *Model) toggleAll() {
	all := true
	for _, ly := range m.layers {
		if !ly.show {
			all = false
			break
		}
	}
	for i := range m.layers {
		m.layers[i].show = !all
	}
	m.l.SetItems(m.layerItems())
	m.status = fmt.Sprintf("all layers: %v", !all)
}
