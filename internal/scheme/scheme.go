// Package scheme holds the color scheme registry and the scales the
// choropleth renderer colors regions with.
package scheme

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultSequential  = "blue_white_yellow"
	DefaultCategorical = "dashboard"
)

// sequential schemes are ordered stop sequences; a value's position in
// [0,1] is interpolated along the stops.
var sequential = map[string][]string{
	"blue_white_yellow": {"#00d1c1", "#ffffff", "#ffb400"},
	"fire":              {"#ffffff", "#ffb400", "#ff5a5f", "#2b2b2b"},
	"white_black":       {"#ffffff", "#000000"},
	"blues":             {"#f7fbff", "#6baed6", "#08306b"},
	"greens":            {"#f7fcf5", "#74c476", "#00441b"},
}

// categorical palettes assign colors to labels in first-seen order.
var categorical = map[string][]string{
	"dashboard": {
		"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
		"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
	},
	"pastel": {
		"#aec7e8", "#ffbb78", "#98df8a", "#ff9896", "#c5b0d5",
		"#c49c94", "#f7b6d2", "#c7c7c7", "#dbdb8d", "#9edae5",
	},
}

// Sequential returns the stops for a named sequential scheme, falling
// back to the default for unknown names.
func Sequential(name string) []string {
	if stops, ok := sequential[name]; ok {
		return stops
	}
	return sequential[DefaultSequential]
}

// Categorical returns a named palette, falling back to the default.
func Categorical(name string) []string {
	if pal, ok := categorical[name]; ok {
		return pal
	}
	return categorical[DefaultCategorical]
}

// Darken moves a color toward black in Lab space. Hover highlighting
// darkens the resolved fill rather than swapping to a fixed color, so
// relative metric coloring stays readable.
func Darken(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{}
	return c.BlendLab(black, amount).Clamped().Hex()
}

// Dim composites a fill over a background at the given opacity,
// approximating fill-opacity on a terminal cell.
func Dim(hex, bg string, opacity float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return hex
	}
	return b.BlendRgb(c, opacity).Clamped().Hex()
}
