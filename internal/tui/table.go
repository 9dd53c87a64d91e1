package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"countrymap/internal/choropleth"
)

// refreshTable rebuilds the data overlay from the current rows: one
// row per datum with its display name and formatted metric.
func (m *Model) refreshTable() {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Region", Width: 24},
		{Title: "Code", Width: 10},
		{Title: "Value", Width: 12},
	}
	names := make(map[string]string)
	if m.fc != nil {
		for _, f := range m.fc.Features {
			if f.Name != "" {
				names[f.ISO] = f.Name
			}
		}
	}
	rows := make([]table.Row, 0, len(m.rows))
	for i, d := range m.rows {
		name := names[d.CountryID]
		if name == "" {
			name = d.CountryID
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			name,
			d.CountryID,
			choropleth.FormatMetric(m.fd, d.Metric),
		})
	}
	height := min(len(rows)+1, max(4, m.mapH-2))
	m.tbl = table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
}
