package choropleth

import "math"

// Zoom scale limits.
const (
	MinScale = 1.0
	MaxScale = 4.0
)

// Transform is the zoom/pan state of one chart instance.
type Transform struct {
	Scale float64
	TX    float64
	TY    float64
}

func Identity() Transform {
	return Transform{Scale: 1}
}

// ClampScale bounds a zoom scale to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// ClampTranslate bounds a translation so scaled content never reveals
// empty space beyond its own edges: per axis the translation stays in
// [min(0, dim - dim*scale), 0].
func ClampTranslate(scale, tx, ty, w, h float64) (float64, float64) {
	minX := math.Min(0, w-w*scale)
	minY := math.Min(0, h-h*scale)
	tx = math.Max(minX, math.Min(0, tx))
	ty = math.Max(minY, math.Min(0, ty))
	return tx, ty
}

// ZoomStore persists zoom/pan per chart key across redraws. It is an
// explicit object created at program start and reset only with it.
type ZoomStore struct {
	m map[string]Transform
}

func NewZoomStore() *ZoomStore {
	return &ZoomStore{m: make(map[string]Transform)}
}

func (z *ZoomStore) Get(key string) (Transform, bool) {
	tf, ok := z.m[key]
	return tf, ok
}

func (z *ZoomStore) Put(key string, tf Transform) {
	z.m[key] = tf
}
