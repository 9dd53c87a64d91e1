package choropleth

import (
	"math"

	"countrymap/internal/geom"
)

// baseScale is the fixed projection scale before viewport fitting.
const baseScale = 100

// maxLat clips latitudes the mercator projection cannot represent.
const maxLat = 85.05113

// Projection is a mercator projection centered on a geographic point.
type Projection struct {
	scale    float64
	cLon     float64 // radians
	cLat     float64 // radians
	tx, ty   float64
}

func newProjection(centerLon, centerLat, scale, tx, ty float64) *Projection {
	return &Projection{
		scale: scale,
		cLon:  centerLon * math.Pi / 180,
		cLat:  centerLat * math.Pi / 180,
		tx:    tx,
		ty:    ty,
	}
}

// Project maps lon/lat degrees to screen coordinates.
func (p *Projection) Project(lon, lat float64) (x, y float64) {
	lam := lon*math.Pi/180 - p.cLon
	x = p.scale*lam + p.tx
	y = p.scale*(mercY(p.cLat)-mercY(lat*math.Pi/180)) + p.ty
	return x, y
}

func mercY(phi float64) float64 {
	limit := maxLat * math.Pi / 180
	if phi > limit {
		phi = limit
	}
	if phi < -limit {
		phi = -limit
	}
	return math.Log(math.Tan(math.Pi/4 + phi/2))
}

// Fit builds a projection centered on the collection centroid at the
// base scale, measures the projected bounds, then rescales and
// recenters so the geometry fits and is centered in the w×h viewport.
func Fit(fc *geom.FeatureCollection, w, h float64) *Projection {
	cLon, cLat := fc.Centroid()
	p := newProjection(cLon, cLat, baseScale, w/2, h/2)
	minX, minY, maxX, maxY, ok := projectedBounds(fc, p)
	if !ok || maxX <= minX || maxY <= minY {
		return p
	}
	hscale := baseScale * w / (maxX - minX)
	vscale := baseScale * h / (maxY - minY)
	scale := math.Min(hscale, vscale)

	p = newProjection(cLon, cLat, scale, 0, 0)
	minX, minY, maxX, maxY, _ = projectedBounds(fc, p)
	p.tx = w/2 - (minX+maxX)/2
	p.ty = h/2 - (minY+maxY)/2
	return p
}

func projectedBounds(fc *geom.FeatureCollection, p *Projection) (minX, minY, maxX, maxY float64, ok bool) {
	for _, f := range fc.Features {
		for _, poly := range f.Polygons {
			for _, ring := range poly {
				for _, pt := range ring {
					x, y := p.Project(pt[0], pt[1])
					if !ok {
						minX, maxX, minY, maxY = x, x, y, y
						ok = true
						continue
					}
					minX = math.Min(minX, x)
					minY = math.Min(minY, y)
					maxX = math.Max(maxX, x)
					maxY = math.Max(maxY, y)
				}
			}
		}
	}
	return minX, minY, maxX, maxY, ok
}
