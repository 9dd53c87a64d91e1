package choropleth

import "countrymap/internal/scheme"

// hoverDarken is how far the hovered fill moves toward black.
const hoverDarken = 0.3

// HoverInfo is the rendering instruction for a hovered region: the two
// tooltip text lines and the darkened fill.
type HoverInfo struct {
	Title  string
	Detail string
	Fill   string
}

// HoverFor resolves the hover state for a region. The darkened color
// derives from the region's current fill rather than a fixed highlight,
// preserving relative metric coloring. Regions without a datum get an
// empty detail line.
func HoverFor(r *Region, fd FormData) HoverInfo {
	info := HoverInfo{
		Title: r.DisplayName(),
		Fill:  scheme.Darken(r.Fill, hoverDarken),
	}
	if r.HasMetric {
		info.Detail = FormatMetric(fd, r.Metric)
	}
	return info
}
