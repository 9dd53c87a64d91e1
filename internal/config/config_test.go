package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := DefaultConfig()
	if cfg.Chart.Country != def.Chart.Country || cfg.Boundaries.URLTemplate != def.Boundaries.URLTemplate {
		t.Errorf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	doc := `
chart:
  country: japan
  scheme_type: categorical
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Chart.Country != "japan" || cfg.Chart.SchemeType != "categorical" {
		t.Errorf("chart = %+v", cfg.Chart)
	}
	// unset fields keep defaults
	if cfg.Chart.EntityField != "country_id" {
		t.Errorf("entity field = %q, want default", cfg.Chart.EntityField)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "chart: ["},
		{"bad scheme type", "chart:\n  scheme_type: rainbow\n"},
		{"bad url template", "boundaries:\n  url_template: https://example.org/static.geojson\n"},
		{"empty country", "chart:\n  country: \"\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(path, []byte(tc.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidateSentinel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Chart.SchemeType = "rainbow"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate = %v, want ErrInvalidConfig", err)
	}
}
