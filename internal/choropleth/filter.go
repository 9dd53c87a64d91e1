package choropleth

// FilterClause is the machine representation of one filter.
type FilterClause struct {
	Col string   `json:"col"`
	Op  string   `json:"op"`
	Val []string `json:"val"`
}

// ExtraFormData carries the filter clauses applied to other charts.
type ExtraFormData struct {
	Filters []FilterClause `json:"filters,omitempty"`
}

// FilterStatePayload is the display-oriented side of a filter mutation.
type FilterStatePayload struct {
	Value          []string `json:"value"`
	SelectedValues []string `json:"selectedValues"`
}

// DataMask is the structured cross-filter payload emitted to the host:
// a machine filter clause plus display state. An empty selection is
// represented as a nil clause and nil value, never an empty IN filter.
type DataMask struct {
	ExtraFormData ExtraFormData      `json:"extraFormData"`
	FilterState   FilterStatePayload `json:"filterState"`
}

// CrossFilterPayload builds the mask for a selection over the logical
// entity field.
func CrossFilterPayload(field string, selection []string) DataMask {
	dm := DataMask{}
	dm.FilterState.SelectedValues = selection
	if len(selection) == 0 {
		return dm
	}
	dm.FilterState.Value = selection
	dm.ExtraFormData.Filters = []FilterClause{{Col: field, Op: "IN", Val: selection}}
	return dm
}

// DrillBy is an equality drill labeled with the logical field name.
type DrillBy struct {
	Filters          []FilterClause `json:"filters"`
	GroupbyFieldName string         `json:"groupbyFieldName"`
}

// MenuPayload is emitted on right click at the pointer's screen
// coordinates: three independent filter representations for the
// clicked region. The cross-filter mask is computed, not applied.
type MenuPayload struct {
	X int
	Y int

	DrillToDetail []FilterClause
	DrillBy       DrillBy
	CrossFilter   DataMask
}

// BuildMenuPayload computes the context-menu payload for a click on
// iso given the current selection snapshot.
func BuildMenuPayload(iso string, x, y int, fd FormData) MenuPayload {
	eq := FilterClause{Col: fd.EntityField, Op: "==", Val: []string{iso}}
	return MenuPayload{
		X:             x,
		Y:             y,
		DrillToDetail: []FilterClause{eq},
		DrillBy: DrillBy{
			Filters:          []FilterClause{eq},
			GroupbyFieldName: "entity",
		},
		CrossFilter: CrossFilterPayload(
			fd.EntityField,
			ToggleSelection(fd.FilterState.SelectedValues, iso, false),
		),
	}
}
