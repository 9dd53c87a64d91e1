package geom

import (
	"encoding/json"
	"errors"
	"os"
)

// ParseCollection parses a GeoJSON FeatureCollection (or a single
// Feature) into region features. Features without usable polygon
// geometry are skipped; a document with no usable features is an error.
func ParseCollection(data []byte) (*FeatureCollection, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	t, _ := raw["type"].(string)
	fc := &FeatureCollection{}
	switch t {
	case "FeatureCollection":
		fs, ok := raw["features"].([]any)
		if !ok {
			return nil, errors.New("geojson: missing features array")
		}
		for _, f := range fs {
			fm, ok := f.(map[string]any)
			if !ok {
				continue
			}
			fc.addFeature(fm)
		}
	case "Feature":
		fc.addFeature(raw)
	default:
		return nil, errors.New("geojson: unsupported document type: " + t)
	}
	if len(fc.Features) == 0 {
		return nil, errors.New("geojson: no polygon features found")
	}
	return fc, nil
}

// LoadCollection reads and parses a GeoJSON file.
func LoadCollection(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCollection(data)
}

func (fc *FeatureCollection) addFeature(fm map[string]any) {
	g, ok := fm["geometry"].(map[string]any)
	if !ok {
		return
	}
	var polys [][][][2]float64
	gt, _ := g["type"].(string)
	switch gt {
	case "Polygon":
		if poly, ok := parsePolygon(g["coordinates"]); ok {
			polys = append(polys, poly)
		}
	case "MultiPolygon":
		if mp, ok := parseMultiPolygon(g["coordinates"]); ok {
			polys = append(polys, mp...)
		}
	}
	if len(polys) == 0 {
		return
	}
	f := Feature{Polygons: polys}
	if props, ok := fm["properties"].(map[string]any); ok {
		f.ISO, _ = props["ISO"].(string)
		if name, ok := props["NAME_1"].(string); ok && name != "" {
			f.Name = name
		} else if name, ok := props["NAME_2"].(string); ok {
			f.Name = name
		}
	}
	first := len(fc.Features) == 0
	ffirst := true
	for _, poly := range polys {
		for _, ring := range poly {
			for _, p := range ring {
				fc.BBox.extend(p[0], p[1], first)
				f.BBox.extend(p[0], p[1], ffirst)
				first = false
				ffirst = false
			}
		}
	}
	fc.Features = append(fc.Features, f)
}

func parsePoint(v any) (pt [2]float64, ok bool) {
	if a, ok := v.([]any); ok && len(a) >= 2 {
		lon, lok := a[0].(float64)
		lat, aok := a[1].(float64)
		if lok && aok {
			return [2]float64{lon, lat}, true
		}
	}
	return [2]float64{}, false
}

func parseRing(v any) (ring [][2]float64, ok bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	for _, el := range arr {
		if pt, ok := parsePoint(el); ok {
			ring = append(ring, pt)
		}
	}
	return ring, len(ring) >= 3
}

func parsePolygon(v any) (poly [][][2]float64, ok bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	for _, rv := range arr {
		if ring, ok := parseRing(rv); ok {
			poly = append(poly, ring)
		}
	}
	return poly, len(poly) > 0
}

func parseMultiPolygon(v any) (mp [][][][2]float64, ok bool) {
	arr, ok := v.([]any)
	if !ok {
		return nil, false
	}
	for _, el := range arr {
		if poly, ok := parsePolygon(el); ok {
			mp = append(mp, poly)
		}
	}
	return mp, len(mp) > 0
}
