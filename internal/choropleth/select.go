package choropleth

import "slices"

// DimmedOpacity is the fill opacity of unselected regions while a
// selection exists.
const DimmedOpacity = 0.3

// Region stroke styles.
const (
	BaseStroke     = "#ffffff"
	SelectedStroke = "#333333"
)

// Highlight is the selection-driven paint state of one region.
type Highlight struct {
	Opacity     float64
	Stroke      string
	StrokeWidth float64
}

// HighlightFor is a pure function of the externally owned selection:
// opacity is 1 when the selection is empty or includes iso, else
// dimmed; selected regions get the darker, thicker stroke.
func HighlightFor(selection []string, iso string) Highlight {
	selected := slices.Contains(selection, iso)
	h := Highlight{Opacity: 1, Stroke: BaseStroke, StrokeWidth: 1}
	if len(selection) == 0 {
		return h
	}
	if !selected {
		h.Opacity = DimmedOpacity
		return h
	}
	h.Stroke = SelectedStroke
	h.StrokeWidth = 2
	return h
}

// ToggleSelection computes the next selection after a click on iso.
// Shift-click toggles membership; a plain click clears the selection
// when iso is the sole member and otherwise replaces it with iso. The
// input slice is never mutated.
func ToggleSelection(selection []string, iso string, shift bool) []string {
	if shift {
		if i := slices.Index(selection, iso); i >= 0 {
			next := slices.Clone(selection)
			return slices.Delete(next, i, i+1)
		}
		next := slices.Clone(selection)
		return append(next, iso)
	}
	if len(selection) == 1 && selection[0] == iso {
		return nil
	}
	return []string{iso}
}
