package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.computeLayout()
	contentWidth := max(10, m.width)

	header := titleStyle.Render(" countrymap ─ choropleth country map ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	var sidebar string
	if m.showSidebar {
		m.countries.SetSize(sidebarWidth-2, l.mapH+tooltipLines)
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Render(m.countries.View())
	}

	// tooltip strip: the two overlaid text elements of the hover layer
	tooltip := tooltipStyle.Render(m.hoverTitle)
	detail := dimStyle.Render(m.hoverDetail)
	tooltipBlock := lipgloss.NewStyle().Width(l.mapW).Render(tooltip) + "\n" +
		lipgloss.NewStyle().Width(l.mapW).Render(detail)

	var mapBody string
	switch {
	case m.loadErr != "":
		// load failure replaces the chart content entirely
		box := errStyle.Render(m.loadErr)
		mapBody = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.showTable:
		box := boxStyle.Render(m.tbl.View())
		mapBody = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, box)
	case m.menuVisible:
		box := boxStyle.Render(m.menu.View())
		mapBody = overlay(m.renderScene(), box, l.mapW, l.mapH)
	default:
		mapBody = m.renderScene()
	}
	mapCol := tooltipBlock + "\n" + lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(mapBody)

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapCol)
	} else {
		body = mapCol
	}

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(contentWidth).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}

// overlay centers a box on top of the base block.
func overlay(base, box string, w, h int) string {
	placed := lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(placed, "\n")
	for i := range overLines {
		if i >= len(baseLines) {
			break
		}
		if strings.TrimSpace(overLines[i]) != "" {
			baseLines[i] = overLines[i]
		}
	}
	return strings.Join(baseLines, "\n")
}

func (m Model) renderHelp() string {
	keys := []string{
		"hover inspect",
		"click filter",
		"right-click actions",
		"wheel/+- zoom",
		"↑↓←→ pan",
		"Tab countries",
		"t data",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
