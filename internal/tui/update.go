package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"countrymap/internal/boundaries"
	"countrymap/internal/choropleth"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		l := m.computeLayout()
		if m.showSidebar {
			m.countries.SetSize(sidebarWidth-2, l.mapH)
		}
		m.rebuildScene()
		return m, nil

	case boundariesMsg:
		// a superseded load may resolve late; drop the stale result
		if msg.seq != m.loadSeq {
			return m, nil
		}
		if msg.err != nil {
			m.fc = nil
			m.scene = nil
			m.loadErr = fmt.Sprintf("map data for %s could not be loaded", boundaries.DisplayName(msg.country))
			m.status = "load failed"
			return m, nil
		}
		m.fc = msg.fc
		m.loadErr = ""
		m.status = fmt.Sprintf("%s: %d regions", boundaries.DisplayName(msg.country), len(msg.fc.Features))
		m.computeLayout()
		m.rebuildScene()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// sidebar filtering captures keys, as does the open menu
	if m.showSidebar && m.countries.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.countries, cmd = m.countries.Update(msg)
		return m, cmd
	}
	if m.menuVisible {
		switch msg.String() {
		case "esc", "q":
			m.menuVisible = false
			return m, nil
		case "enter":
			if it, ok := m.menu.SelectedItem().(menuItem); ok {
				m.status = it.title
			}
			m.menuVisible = false
			return m, nil
		}
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	if m.showTable {
		switch msg.String() {
		case "esc", "t", "q":
			m.showTable = false
			return m, nil
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			l := m.computeLayout()
			m.countries.SetSize(sidebarWidth-2, l.mapH)
		} else {
			m.computeLayout()
		}
		m.rebuildScene()
	case "t":
		m.showTable = true
		m.refreshTable()
	case "+", "=":
		m.zoomBy(zoomStep)
	case "-", "_":
		m.zoomBy(1 / zoomStep)
	case "up":
		m.panBy(0, panStep)
	case "down":
		m.panBy(0, -panStep)
	case "left":
		m.panBy(panStep, 0)
	case "right":
		m.panBy(-panStep, 0)
	case "enter":
		if m.showSidebar {
			if it, ok := m.countries.SelectedItem().(countryItem); ok {
				return m.loadCountry(it.code)
			}
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.countries, cmd = m.countries.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) loadCountry(code string) (tea.Model, tea.Cmd) {
	if code == m.fd.Country && m.fc != nil {
		return m, nil
	}
	m.fd.Country = code
	m.loadSeq++
	m.hoverISO = ""
	m.hoverTitle = ""
	m.hoverDetail = ""
	m.status = "loading " + boundaries.DisplayName(code)
	return m, m.loadCmd(code, m.loadSeq)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	l := m.computeLayout()
	inMap := m.scene != nil && !m.menuVisible && !m.showTable &&
		msg.X >= l.mapOriginX && msg.X < l.mapOriginX+l.mapW &&
		msg.Y >= l.mapOriginY && msg.Y < l.mapOriginY+l.mapH
	mx := float64((msg.X - l.mapOriginX) * microX)
	my := float64((msg.Y - l.mapOriginY) * microY)

	switch msg.Action {
	case tea.MouseActionMotion:
		if !inMap {
			m.clearHover()
			return m, nil
		}
		r := m.scene.RegionAt(mx, my)
		if r == nil {
			m.clearHover()
			return m, nil
		}
		if r.ISO != m.hoverISO {
			info := choropleth.HoverFor(r, m.fd)
			m.hoverISO = r.ISO
			m.hoverTitle = info.Title
			m.hoverDetail = info.Detail
		}
		return m, nil

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.menuVisible {
				m.menuVisible = false
				return m, nil
			}
			if !inMap {
				return m, nil
			}
			if r := m.scene.RegionAt(mx, my); r != nil {
				m.regionClicked(r.ISO, msg.Shift)
			}
		case tea.MouseButtonRight:
			if !inMap || m.callbacks.OnContextMenu == nil {
				return m, nil
			}
			if r := m.scene.RegionAt(mx, my); r != nil {
				m.openContextMenu(r, msg.X, msg.Y)
			}
		case tea.MouseButtonWheelUp:
			if inMap {
				m.zoomBy(zoomStep)
			}
		case tea.MouseButtonWheelDown:
			if inMap {
				m.zoomBy(1 / zoomStep)
			}
		}
	}
	return m, nil
}

func (m *Model) clearHover() {
	m.hoverISO = ""
	m.hoverTitle = ""
	m.hoverDetail = ""
}

// regionClicked applies the cross-filter toggle: no-op unless
// cross-filtering is enabled and a callback is supplied. Highlighting
// is re-applied immediately after the payload is emitted.
func (m *Model) regionClicked(iso string, shift bool) {
	if !m.fd.EmitCrossFilters || m.callbacks.OnCrossFilter == nil {
		return
	}
	next := choropleth.ToggleSelection(m.selection, iso, shift)
	m.callbacks.OnCrossFilter(choropleth.CrossFilterPayload(m.fd.EntityField, next))
	m.selection = next
	m.rebuildScene()
}

const (
	zoomStep = 1.25
	panStep  = 8.0
)

func (m *Model) zoomBy(factor float64) {
	if m.scene == nil {
		return
	}
	key := choropleth.ChartKey(m.fd)
	tf, ok := m.zooms.Get(key)
	if !ok {
		tf = choropleth.Identity()
	}
	w := float64(m.fd.Width)
	h := float64(m.fd.Height)
	scale := choropleth.ClampScale(tf.Scale * factor)
	// keep the view center fixed while rescaling
	ratio := scale / tf.Scale
	tx := (tf.TX-w/2)*ratio + w/2
	ty := (tf.TY-h/2)*ratio + h/2
	tx, ty = choropleth.ClampTranslate(scale, tx, ty, w, h)
	m.zooms.Put(key, choropleth.Transform{Scale: scale, TX: tx, TY: ty})
	m.status = fmt.Sprintf("zoom %.2fx", scale)
	m.rebuildScene()
}

func (m *Model) panBy(dx, dy float64) {
	if m.scene == nil {
		return
	}
	key := choropleth.ChartKey(m.fd)
	tf, ok := m.zooms.Get(key)
	if !ok {
		tf = choropleth.Identity()
	}
	w := float64(m.fd.Width)
	h := float64(m.fd.Height)
	tx, ty := choropleth.ClampTranslate(tf.Scale, tf.TX+dx, tf.TY+dy, w, h)
	m.zooms.Put(key, choropleth.Transform{Scale: tf.Scale, TX: tx, TY: ty})
	m.rebuildScene()
}
