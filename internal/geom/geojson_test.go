package geom

import (
	"testing"
)

const sampleDoc = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"ISO": "FR-IDF", "NAME_1": "Île-de-France"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0,0],[4,0],[4,4],[0,4],[0,0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"ISO": "FR-NOR", "NAME_2": "Normandie"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [[[[4,0],[8,0],[8,4],[4,4],[4,0]]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"ISO": "FR-BAD"},
      "geometry": {"type": "Point", "coordinates": [1, 1]}
    }
  ]
}`

func TestParseCollection(t *testing.T) {
	fc, err := ParseCollection([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("ParseCollection: %v", err)
	}
	if len(fc.Features) != 2 {
		t.Fatalf("got %d features, want 2 (point feature skipped)", len(fc.Features))
	}
	if fc.Features[0].ISO != "FR-IDF" || fc.Features[0].Name != "Île-de-France" {
		t.Errorf("feature 0 = %q/%q", fc.Features[0].ISO, fc.Features[0].Name)
	}
	if fc.Features[1].Name != "Normandie" {
		t.Errorf("NAME_2 fallback: got %q", fc.Features[1].Name)
	}
	want := BBox{MinX: 0, MinY: 0, MaxX: 8, MaxY: 4}
	if fc.BBox != want {
		t.Errorf("bbox = %+v, want %+v", fc.BBox, want)
	}
}

func TestParseCollectionErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{{`},
		{"wrong type", `{"type":"Topology"}`},
		{"no features", `{"type":"FeatureCollection","features":[]}`},
		{"only points", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[0,0]}}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseCollection([]byte(tc.doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	fc, err := ParseCollection([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("ParseCollection: %v", err)
	}
	lon, lat := fc.Centroid()
	// two equal-area squares spanning x 0..8, y 0..4
	if lon < 3.9 || lon > 4.1 || lat < 1.9 || lat > 2.1 {
		t.Errorf("centroid = (%f, %f), want near (4, 2)", lon, lat)
	}
}

func TestCentroidDegenerate(t *testing.T) {
	fc := &FeatureCollection{
		BBox: BBox{MinX: 2, MinY: 4, MaxX: 6, MaxY: 8},
	}
	lon, lat := fc.Centroid()
	if lon != 4 || lat != 6 {
		t.Errorf("degenerate centroid = (%f, %f), want bbox center (4, 6)", lon, lat)
	}
}
