package choropleth

import (
	"reflect"
	"testing"
)

func TestToggleSelection(t *testing.T) {
	tests := []struct {
		name      string
		selection []string
		iso       string
		shift     bool
		want      []string
	}{
		{"plain click empty selection", nil, "FR-IDF", false, []string{"FR-IDF"}},
		{"plain click sole selection clears", []string{"FR-IDF"}, "FR-IDF", false, nil},
		{"plain click other selection replaces", []string{"FR-NOR"}, "FR-IDF", false, []string{"FR-IDF"}},
		{"plain click multi selection replaces", []string{"FR-IDF", "FR-NOR"}, "FR-IDF", false, []string{"FR-IDF"}},
		{"shift click adds", []string{"FR-NOR"}, "FR-IDF", true, []string{"FR-NOR", "FR-IDF"}},
		{"shift click removes", []string{"FR-NOR", "FR-IDF"}, "FR-IDF", true, []string{"FR-NOR"}},
		{"shift click empty adds", nil, "FR-IDF", true, []string{"FR-IDF"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ToggleSelection(tc.selection, tc.iso, tc.shift)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ToggleSelection() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestToggleSelectionDoesNotMutateInput(t *testing.T) {
	sel := []string{"a", "b", "c"}
	ToggleSelection(sel, "b", true)
	if !reflect.DeepEqual(sel, []string{"a", "b", "c"}) {
		t.Errorf("input mutated: %v", sel)
	}
}

func TestHighlightFor(t *testing.T) {
	tests := []struct {
		name        string
		selection   []string
		iso         string
		wantOpacity float64
		wantStroke  string
	}{
		{"empty selection", nil, "FR-IDF", 1, BaseStroke},
		{"selected region", []string{"FR-IDF"}, "FR-IDF", 1, SelectedStroke},
		{"unselected region dimmed", []string{"FR-NOR"}, "FR-IDF", DimmedOpacity, BaseStroke},
		{"member of multi selection", []string{"FR-NOR", "FR-IDF"}, "FR-IDF", 1, SelectedStroke},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := HighlightFor(tc.selection, tc.iso)
			if h.Opacity != tc.wantOpacity {
				t.Errorf("opacity = %v, want %v", h.Opacity, tc.wantOpacity)
			}
			if h.Stroke != tc.wantStroke {
				t.Errorf("stroke = %q, want %q", h.Stroke, tc.wantStroke)
			}
		})
	}
}

func TestHighlightSelectedStrokeThicker(t *testing.T) {
	sel := HighlightFor([]string{"x"}, "x")
	base := HighlightFor(nil, "x")
	if sel.StrokeWidth <= base.StrokeWidth {
		t.Errorf("selected stroke width %v not thicker than base %v", sel.StrokeWidth, base.StrokeWidth)
	}
}
