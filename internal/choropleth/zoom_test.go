package choropleth

import (
	"math"
	"testing"
)

func TestClampScale(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 1}, {1, 1}, {2.5, 2.5}, {4, 4}, {9, 4},
	}
	for _, tc := range tests {
		if got := ClampScale(tc.in); got != tc.want {
			t.Errorf("ClampScale(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClampTranslateBounds(t *testing.T) {
	const w, h = 800.0, 600.0
	scales := []float64{1, 1.5, 2, 3, 4}
	raws := [][2]float64{
		{0, 0}, {10, 10}, {-10, -5}, {-10000, -10000}, {500, -200},
	}
	for _, s := range scales {
		for _, raw := range raws {
			tx, ty := ClampTranslate(s, raw[0], raw[1], w, h)
			minX := math.Min(0, w-w*s)
			minY := math.Min(0, h-h*s)
			if tx < minX || tx > 0 {
				t.Errorf("scale %v raw %v: tx = %v outside [%v, 0]", s, raw, tx, minX)
			}
			if ty < minY || ty > 0 {
				t.Errorf("scale %v raw %v: ty = %v outside [%v, 0]", s, raw, ty, minY)
			}
		}
	}
}

func TestClampTranslateIdentityAtScaleOne(t *testing.T) {
	// at scale 1 no translation is allowed at all
	tx, ty := ClampTranslate(1, -50, 25, 800, 600)
	if tx != 0 || ty != 0 {
		t.Errorf("scale 1 translate = (%v, %v), want (0, 0)", tx, ty)
	}
}

func TestZoomStorePersistence(t *testing.T) {
	z := NewZoomStore()
	if _, ok := z.Get("slice-1"); ok {
		t.Fatal("fresh store must be empty")
	}
	want := Transform{Scale: 2, TX: -10, TY: -5}
	z.Put("slice-1", want)
	got, ok := z.Get("slice-1")
	if !ok || got != want {
		t.Errorf("Get = %+v/%v, want %+v", got, ok, want)
	}
	if _, ok := z.Get("slice-2"); ok {
		t.Error("other chart key must stay empty")
	}
}

func TestChartKey(t *testing.T) {
	fd := FormData{SliceID: "slice-42", Country: "france", Width: 80, Height: 24}
	if got := ChartKey(fd); got != "slice-42" {
		t.Errorf("ChartKey = %q, want slice id", got)
	}
	fd.SliceID = ""
	if got := ChartKey(fd); got != "france:80x24" {
		t.Errorf("fallback ChartKey = %q", got)
	}
}
