package tui

// Layout constants shared by Update (mouse hit-testing) and View.
const (
	sidebarWidth = 28
	headerHeight = 1
	tooltipLines = 2
	footerHeight = 2

	// braille micro-pixels per cell
	microX = 2
	microY = 4
)

type layout struct {
	sidebar    int
	mapOriginX int
	mapOriginY int
	mapW       int
	mapH       int
}

// computeLayout derives the map viewport from the window size. The
// tooltip strip sits above the canvas inside the map column.
func (m *Model) computeLayout() layout {
	var l layout
	if m.showSidebar {
		l.sidebar = sidebarWidth
	}
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	l.mapW = contentWidth - l.sidebar
	if l.sidebar > 0 {
		l.mapW--
	}
	if l.mapW < 10 {
		l.mapW = 10
	}
	l.mapH = contentHeight - tooltipLines
	if l.mapH < 4 {
		l.mapH = 4
	}
	l.mapOriginX = l.sidebar
	if l.sidebar > 0 {
		l.mapOriginX++
	}
	l.mapOriginY = headerHeight + tooltipLines
	m.mapW = l.mapW
	m.mapH = l.mapH
	return l
}
