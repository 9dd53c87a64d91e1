package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"countrymap/internal/choropleth"
)

type menuItem struct {
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

func newMenuList() list.Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	l := list.New(nil, d, 34, 12)
	l.Title = "Actions"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return l
}

// openContextMenu suppresses the default action, emits the three
// filter representations for the region at the pointer coordinates,
// and shows the action overlay.
func (m *Model) openContextMenu(r *choropleth.Region, x, y int) {
	m.fd.FilterState.SelectedValues = m.selection
	payload := choropleth.BuildMenuPayload(r.ISO, x, y, m.fd)
	m.callbacks.OnContextMenu(payload)

	items := []list.Item{
		menuItem{
			title: "Drill to detail",
			desc:  fmt.Sprintf("%s == %s", payload.DrillToDetail[0].Col, r.ISO),
		},
		menuItem{
			title: "Drill by entity",
			desc:  fmt.Sprintf("%s == %s", payload.DrillBy.Filters[0].Col, r.ISO),
		},
		menuItem{
			title: "Cross-filter",
			desc:  crossFilterDesc(payload.CrossFilter),
		},
	}
	m.menu.SetItems(items)
	m.menu.Select(0)
	m.menuVisible = true
	m.status = "context menu: " + r.DisplayName()
}

func crossFilterDesc(dm choropleth.DataMask) string {
	if len(dm.ExtraFormData.Filters) == 0 {
		return "clear selection"
	}
	f := dm.ExtraFormData.Filters[0]
	return fmt.Sprintf("%s IN %v", f.Col, f.Val)
}
