package choropleth

import (
	"countrymap/internal/geom"
	"countrymap/internal/scheme"
)

// Region is one painted feature in screen space.
type Region struct {
	ISO  string
	Name string

	HasMetric bool
	Metric    float64

	Fill      string
	Highlight Highlight

	// Polygons hold transformed screen-space rings, grouped per
	// polygon so even-odd filling keeps holes.
	Polygons [][][][2]float64
}

// DisplayName falls back to the raw ISO code when the boundary data
// carries no name property.
func (r *Region) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ISO
}

// Scene is one full repaint: every region's screen geometry, fill, and
// highlight, with the restored zoom transform already applied.
type Scene struct {
	Width     int
	Height    int
	Regions   []Region
	Transform Transform
}

// BuildScene recomputes the whole scene for one draw call. Prior zoom
// state for this chart key, if any, is restored before the first paint.
func BuildScene(fc *geom.FeatureCollection, rows []Datum, fd FormData, scales *scheme.Store, zooms *ZoomStore) *Scene {
	colorMap := BuildColorMap(rows, fd, scales)
	metrics := make(map[string]float64, len(rows))
	for _, r := range rows {
		metrics[r.CountryID] = r.Metric
	}

	proj := Fit(fc, float64(fd.Width), float64(fd.Height))
	tf := Identity()
	if zooms != nil {
		if prior, ok := zooms.Get(ChartKey(fd)); ok {
			tf = prior
		}
	}

	s := &Scene{Width: fd.Width, Height: fd.Height, Transform: tf}
	for _, f := range fc.Features {
		fill, ok := colorMap[f.ISO]
		if !ok {
			fill = FallbackFill
		}
		r := Region{
			ISO:       f.ISO,
			Name:      f.Name,
			Fill:      fill,
			Highlight: HighlightFor(fd.FilterState.SelectedValues, f.ISO),
		}
		if m, ok := metrics[f.ISO]; ok {
			r.HasMetric = true
			r.Metric = m
		}
		r.Polygons = make([][][][2]float64, 0, len(f.Polygons))
		for _, poly := range f.Polygons {
			sp := make([][][2]float64, 0, len(poly))
			for _, ring := range poly {
				sr := make([][2]float64, 0, len(ring))
				for _, pt := range ring {
					x, y := proj.Project(pt[0], pt[1])
					sr = append(sr, [2]float64{
						x*tf.Scale + tf.TX,
						y*tf.Scale + tf.TY,
					})
				}
				sp = append(sp, sr)
			}
			r.Polygons = append(r.Polygons, sp)
		}
		s.Regions = append(s.Regions, r)
	}
	return s
}

// RegionAt hit-tests a screen point against the painted regions using
// the even-odd rule, so clicks inside holes miss.
func (s *Scene) RegionAt(x, y float64) *Region {
	for i := range s.Regions {
		r := &s.Regions[i]
		for _, poly := range r.Polygons {
			if pointInPolygon(x, y, poly) {
				return r
			}
		}
	}
	return nil
}

func pointInPolygon(x, y float64, rings [][][2]float64) bool {
	inside := false
	for _, ring := range rings {
		n := len(ring)
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			xi, yi := ring[i][0], ring[i][1]
			xj, yj := ring[j][0], ring[j][1]
			if (yi > y) != (yj > y) &&
				x < (xj-xi)*(y-yi)/(yj-yi)+xi {
				inside = !inside
			}
		}
	}
	return inside
}
