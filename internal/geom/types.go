package geom

import "math"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b *BBox) extend(lon, lat float64, first bool) {
	if first {
		*b = BBox{MinX: lon, MinY: lat, MaxX: lon, MaxY: lat}
		return
	}
	if lon < b.MinX {
		b.MinX = lon
	}
	if lat < b.MinY {
		b.MinY = lat
	}
	if lon > b.MaxX {
		b.MaxX = lon
	}
	if lat > b.MaxY {
		b.MaxY = lat
	}
}

// Feature is one administrative region: a multipolygon plus the
// properties the renderer cares about.
type Feature struct {
	ISO  string
	Name string

	// Polygons holds one or more polygons, each a list of rings
	// (first outer, following holes), each ring a list of lon/lat.
	Polygons [][][][2]float64

	BBox BBox
}

// FeatureCollection is a parsed boundary document for one country.
type FeatureCollection struct {
	Features []Feature
	BBox     BBox
}

// Centroid returns the area-weighted centroid of all outer rings,
// falling back to the bbox center for degenerate geometry.
func (fc *FeatureCollection) Centroid() (lon, lat float64) {
	var totalArea, cx, cy float64
	for _, f := range fc.Features {
		for _, poly := range f.Polygons {
			if len(poly) == 0 {
				continue
			}
			a, x, y := ringCentroid(poly[0])
			if a == 0 {
				continue
			}
			w := math.Abs(a)
			totalArea += w
			cx += x * w
			cy += y * w
		}
	}
	if totalArea == 0 {
		return (fc.BBox.MinX + fc.BBox.MaxX) / 2, (fc.BBox.MinY + fc.BBox.MaxY) / 2
	}
	return cx / totalArea, cy / totalArea
}

// ringCentroid computes the shoelace area and centroid of a ring.
func ringCentroid(ring [][2]float64) (area, cx, cy float64) {
	n := len(ring)
	if n < 3 {
		return 0, 0, 0
	}
	for i := 0; i < n; i++ {
		p := ring[i]
		q := ring[(i+1)%n]
		cross := p[0]*q[1] - q[0]*p[1]
		area += cross
		cx += (p[0] + q[0]) * cross
		cy += (p[1] + q[1]) * cross
	}
	area /= 2
	if area == 0 {
		return 0, 0, 0
	}
	cx /= 6 * area
	cy /= 6 * area
	return area, cx, cy
}
