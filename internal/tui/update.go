package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

const sidebarWidth = 24

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-3)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "r":
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.height-3)
			}
		case "enter", " ":
			if m.showSidebar {
				m.toggleSelected()
			}
		case "a":
			m.toggleAll()
		case "h":
			m.helpVisible = !m.helpVisible
		case "up":
			if m.showSidebar {
				break
			}
			m.offsetY--
		case "down":
			if m.showSidebar {
				break
			}
			m.offsetY++
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		// recompute the map area; must match the View layout
		contentHeight := m.height - 3
		if contentHeight < 4 {
			contentHeight = 4
		}
		contentWidth := max(10, m.width)
		originX := 0
		mapWidth := contentWidth
		if m.showSidebar {
			originX = sidebarWidth + 1
			mapWidth = contentWidth - sidebarWidth - 1
		}
		if mapWidth < 10 {
			mapWidth = 10
		}
		mapW, mapH := max(8, mapWidth), max(4, contentHeight)
		cx := msg.X - originX
		cy := msg.Y - 1 // header row
		if cx >= 0 && cx < mapW && cy >= 0 && cy < mapH {
			if lon, lat, ok := m.cellToLonLat(cx, cy, mapW, mapH); ok {
				m.hoverHasGeo = true
				m.hoverLon = lon
				m.hoverLat = lat
			}
		} else {
			m.hoverHasGeo = false
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}
