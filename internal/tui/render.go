package tui

import (
	"sort"

	"countrymap/internal/scheme"
)

// renderScene rasterizes the scene: every region's polygons are
// scanline-filled in the resolved fill color, then edged. The whole
// canvas is rebuilt on every draw.
func (m *Model) renderScene() string {
	c := newCanvas(m.mapW, m.mapH)
	if m.scene == nil {
		return c.render()
	}
	for i := range m.scene.Regions {
		r := &m.scene.Regions[i]
		fill := r.Fill
		if r.Highlight.Opacity < 1 {
			fill = scheme.Dim(fill, string(subtleBg), r.Highlight.Opacity)
		}
		if r.ISO != "" && r.ISO == m.hoverISO {
			fill = scheme.Darken(fill, 0.3)
		}
		stroke := r.Highlight.Stroke
		if r.Highlight.Opacity < 1 {
			stroke = scheme.Dim(stroke, string(subtleBg), r.Highlight.Opacity)
		}
		for _, poly := range r.Polygons {
			rings := intRings(poly)
			fillPolygon(c, rings, fill)
			edgePolygon(c, rings, stroke, r.Highlight.StrokeWidth > 1)
		}
	}
	return c.render()
}

func intRings(poly [][][2]float64) [][][2]int {
	out := make([][][2]int, 0, len(poly))
	for _, ring := range poly {
		ir := make([][2]int, 0, len(ring))
		for _, p := range ring {
			ir = append(ir, [2]int{int(p[0]), int(p[1])})
		}
		if len(ir) >= 3 {
			out = append(out, ir)
		}
	}
	return out
}

// fillPolygon scanline-fills using the even-odd rule across all rings,
// so holes stay unpainted.
func fillPolygon(c *canvas, rings [][][2]int, col string) {
	if len(rings) == 0 {
		return
	}
	minY, maxY := rings[0][0][1], rings[0][0][1]
	for _, ring := range rings {
		for _, p := range ring {
			if p[1] < minY {
				minY = p[1]
			}
			if p[1] > maxY {
				maxY = p[1]
			}
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= c.h*microY {
		maxY = c.h*microY - 1
	}
	for y := minY; y <= maxY; y++ {
		var xs []int
		for _, ring := range rings {
			n := len(ring)
			for i := 0; i < n; i++ {
				a := ring[i]
				b := ring[(i+1)%n]
				if a[1] == b[1] {
					continue
				}
				y0, y1 := a[1], b[1]
				x0, x1 := a[0], b[0]
				if (y >= y0 && y < y1) || (y >= y1 && y < y0) {
					t := float64(y-y0) / float64(y1-y0)
					xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
				}
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			for x := max(0, x0); x <= x1; x++ {
				c.set(x, y, col)
			}
		}
	}
}

// edgePolygon draws ring borders; thick strokes get a second pass
// offset by one micro-pixel.
func edgePolygon(c *canvas, rings [][][2]int, col string, thick bool) {
	for _, ring := range rings {
		n := len(ring)
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			c.line(a[0], a[1], b[0], b[1], col)
			if thick {
				c.line(a[0]+1, a[1], b[0]+1, b[1], col)
			}
		}
	}
}
