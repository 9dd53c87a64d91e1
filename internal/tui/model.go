package tui

import (
	"context"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"countrymap/internal/boundaries"
	"countrymap/internal/choropleth"
	"countrymap/internal/geom"
	"countrymap/internal/scheme"
)

// Callbacks connect the chart to its host. Click handling is internal;
// it drives OnCrossFilter with the computed selection payload.
type Callbacks struct {
	OnCrossFilter func(choropleth.DataMask)
	OnContextMenu func(choropleth.MenuPayload)
}

// Options configure a chart instance at start.
type Options struct {
	FormData  choropleth.FormData
	Rows      []choropleth.Datum
	Loader    *boundaries.Loader
	Callbacks Callbacks
}

type Model struct {
	width  int
	height int

	fd     choropleth.FormData
	rows   []choropleth.Datum
	loader *boundaries.Loader

	fc    *geom.FeatureCollection
	scene *choropleth.Scene

	scales *scheme.Store
	zooms  *choropleth.ZoomStore

	// selection mirrors the externally owned filter state; updated
	// from emitted payloads, never mutated in place.
	selection []string
	callbacks Callbacks

	// hover state
	hoverISO    string
	hoverTitle  string
	hoverDetail string

	// context menu overlay
	menu        list.Model
	menuVisible bool

	// country picker sidebar
	showSidebar bool
	countries   list.Model

	// data table overlay
	showTable bool
	tbl       table.Model

	loadErr string
	status  string

	// loadSeq guards against a stale fetch overwriting a newer one.
	loadSeq int

	// last rendered map size in cells
	mapW int
	mapH int
}

func New(opts Options) Model {
	m := Model{
		fd:        opts.FormData,
		rows:      opts.Rows,
		loader:    opts.Loader,
		scales:    scheme.NewStore(),
		zooms:     choropleth.NewZoomStore(),
		selection: opts.FormData.FilterState.SelectedValues,
		callbacks: opts.Callbacks,
		status:    "loading " + boundaries.DisplayName(opts.FormData.Country),
		loadSeq:   1,
	}
	m.countries = newCountryList()
	m.menu = newMenuList()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd(m.fd.Country, m.loadSeq)
}

// boundariesMsg is the completion of one boundary load.
type boundariesMsg struct {
	seq     int
	country string
	fc      *geom.FeatureCollection
	err     error
}

func (m Model) loadCmd(country string, seq int) tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		fc, err := loader.Load(context.Background(), country)
		return boundariesMsg{seq: seq, country: country, fc: fc, err: err}
	}
}

// rebuildScene recomputes the full scene from the current snapshot:
// color map, projection fit, restored zoom, and highlighting.
func (m *Model) rebuildScene() {
	if m.fc == nil || m.mapW <= 0 || m.mapH <= 0 {
		m.scene = nil
		return
	}
	m.fd.Width = m.mapW * microX
	m.fd.Height = m.mapH * microY
	m.fd.FilterState.SelectedValues = m.selection
	m.scene = choropleth.BuildScene(m.fc, m.rows, m.fd, m.scales, m.zooms)
}
