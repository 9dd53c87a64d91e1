// Package choropleth is the chart engine: it turns boundary features,
// metric rows, and form data into a fully repainted scene, and computes
// the hover, click, context-menu, and zoom behavior as pure functions
// over explicit state snapshots. All terminal drawing stays in the tui
// package.
package choropleth

import "fmt"

// Datum is one metric row keyed by an ISO region code.
type Datum struct {
	CountryID string  `json:"country_id"`
	Metric    float64 `json:"metric"`
}

// FilterState is the externally owned selection. The engine only reads
// it and emits mutation payloads; it never mutates it in place.
type FilterState struct {
	SelectedValues []string
}

// Scheme types select which scale colors the regions.
const (
	SchemeTypeLinear      = "linear"
	SchemeTypeCategorical = "categorical"
)

// FormData carries the chart inputs for one render.
type FormData struct {
	Width  int
	Height int

	Country string

	SchemeType        string
	LinearScheme      string
	CategoricalScheme string

	NumberFormat string

	// SliceID identifies the chart instance for zoom persistence and
	// categorical color stability.
	SliceID string

	EmitCrossFilters bool
	FilterState      FilterState

	// EntityField is the logical column name used in emitted filters.
	EntityField string
}

// ChartKey returns the zoom/color identity of a chart instance: the
// slice id when set, else a composite of country and dimensions.
func ChartKey(fd FormData) string {
	if fd.SliceID != "" {
		return fd.SliceID
	}
	return fmt.Sprintf("%s:%dx%d", fd.Country, fd.Width, fd.Height)
}
