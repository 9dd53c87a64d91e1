package choropleth

import (
	"reflect"
	"testing"
)

func TestCrossFilterPayload(t *testing.T) {
	dm := CrossFilterPayload("country_id", []string{"FR-IDF", "FR-NOR"})
	wantFilters := []FilterClause{{Col: "country_id", Op: "IN", Val: []string{"FR-IDF", "FR-NOR"}}}
	if !reflect.DeepEqual(dm.ExtraFormData.Filters, wantFilters) {
		t.Errorf("filters = %+v, want %+v", dm.ExtraFormData.Filters, wantFilters)
	}
	if !reflect.DeepEqual(dm.FilterState.Value, []string{"FR-IDF", "FR-NOR"}) {
		t.Errorf("value = %v", dm.FilterState.Value)
	}
}

func TestCrossFilterPayloadEmptySelection(t *testing.T) {
	dm := CrossFilterPayload("country_id", nil)
	if dm.ExtraFormData.Filters != nil {
		t.Errorf("empty selection must emit nil filters, got %+v", dm.ExtraFormData.Filters)
	}
	if dm.FilterState.Value != nil {
		t.Errorf("empty selection must emit nil value, got %v", dm.FilterState.Value)
	}
}

func TestBuildMenuPayload(t *testing.T) {
	fd := FormData{
		EntityField: "country_id",
		FilterState: FilterState{SelectedValues: []string{"FR-NOR"}},
	}
	p := BuildMenuPayload("FR-IDF", 12, 34, fd)

	if p.X != 12 || p.Y != 34 {
		t.Errorf("coordinates = (%d, %d)", p.X, p.Y)
	}
	wantEq := FilterClause{Col: "country_id", Op: "==", Val: []string{"FR-IDF"}}
	if !reflect.DeepEqual(p.DrillToDetail, []FilterClause{wantEq}) {
		t.Errorf("drill to detail = %+v", p.DrillToDetail)
	}
	if !reflect.DeepEqual(p.DrillBy.Filters, []FilterClause{wantEq}) {
		t.Errorf("drill by filters = %+v", p.DrillBy.Filters)
	}
	if p.DrillBy.GroupbyFieldName != "entity" {
		t.Errorf("groupby field name = %q, want entity", p.DrillBy.GroupbyFieldName)
	}
	// the computed cross-filter applies plain-click toggle semantics
	wantVal := []string{"FR-IDF"}
	if !reflect.DeepEqual(p.CrossFilter.FilterState.SelectedValues, wantVal) {
		t.Errorf("cross-filter selection = %v, want %v", p.CrossFilter.FilterState.SelectedValues, wantVal)
	}
}

func TestBuildMenuPayloadSoleSelectionClears(t *testing.T) {
	fd := FormData{
		EntityField: "country_id",
		FilterState: FilterState{SelectedValues: []string{"FR-IDF"}},
	}
	p := BuildMenuPayload("FR-IDF", 0, 0, fd)
	if p.CrossFilter.ExtraFormData.Filters != nil {
		t.Errorf("sole-selection toggle must clear, got %+v", p.CrossFilter.ExtraFormData.Filters)
	}
}
