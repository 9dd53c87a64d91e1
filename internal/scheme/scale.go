package scheme

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// LinearScale interpolates a sequential scheme's stops over the extent
// of the observed metric values.
type LinearScale struct {
	min, max float64
	stops    []colorful.Color
}

// NewLinearScale builds a scale over the extent of values using the
// named sequential scheme.
func NewLinearScale(scheme string, values []float64) *LinearScale {
	s := &LinearScale{stops: parseStops(Sequential(scheme))}
	for i, v := range values {
		if i == 0 || v < s.min {
			s.min = v
		}
		if i == 0 || v > s.max {
			s.max = v
		}
	}
	return s
}

// Color returns the hex color at v's position in the domain. Values
// outside the domain clamp to the ends; a single-value domain maps to
// the top stop.
func (s *LinearScale) Color(v float64) string {
	if len(s.stops) == 0 {
		return "#000000"
	}
	pos := 1.0
	if s.max > s.min {
		pos = (v - s.min) / (s.max - s.min)
	}
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	n := len(s.stops)
	if n == 1 {
		return s.stops[0].Hex()
	}
	seg := pos * float64(n-1)
	i := int(seg)
	if i >= n-1 {
		return s.stops[n-1].Hex()
	}
	t := seg - float64(i)
	return s.stops[i].BlendLab(s.stops[i+1], t).Clamped().Hex()
}

// CategoricalScale assigns palette colors to labels in first-seen
// order. One instance exists per (scheme, chart id) pair, so a label
// keeps its color across renders of the same chart.
type CategoricalScale struct {
	palette  []string
	assigned map[string]int
}

func NewCategoricalScale(scheme string) *CategoricalScale {
	return &CategoricalScale{
		palette:  Categorical(scheme),
		assigned: make(map[string]int),
	}
}

func (c *CategoricalScale) Color(label string) string {
	i, ok := c.assigned[label]
	if !ok {
		i = len(c.assigned) % len(c.palette)
		c.assigned[label] = i
	}
	return c.palette[i]
}

// Store hands out categorical scale instances keyed by scheme and
// chart id. It is an explicit object rather than package state so
// tests get fresh assignments.
type Store struct {
	scales map[string]*CategoricalScale
}

func NewStore() *Store {
	return &Store{scales: make(map[string]*CategoricalScale)}
}

func (s *Store) Categorical(scheme, chartKey string) *CategoricalScale {
	key := scheme + "|" + chartKey
	sc, ok := s.scales[key]
	if !ok {
		sc = NewCategoricalScale(scheme)
		s.scales[key] = sc
	}
	return sc
}

func parseStops(hexes []string) []colorful.Color {
	stops := make([]colorful.Color, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		stops = append(stops, c)
	}
	return stops
}
