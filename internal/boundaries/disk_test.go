package boundaries

import (
	"bytes"
	"testing"
)

func TestDiskStoreRoundtrip(t *testing.T) {
	s, err := OpenDiskStore(t.TempDir() + "/cache.db")
	if err != nil {
		t.Fatalf("OpenDiskStore: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Get("france"); err != nil || ok {
		t.Fatalf("empty store Get = %v/%v", ok, err)
	}
	body := []byte(`{"type":"FeatureCollection"}`)
	if err := s.Put("france", body); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := s.Get("france")
	if err != nil || !ok || !bytes.Equal(got, body) {
		t.Fatalf("Get = %q/%v/%v", got, ok, err)
	}

	// Put replaces
	body2 := []byte(`{"type":"FeatureCollection","features":[]}`)
	if err := s.Put("france", body2); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	got, _, _ = s.Get("france")
	if !bytes.Equal(got, body2) {
		t.Errorf("Get after replace = %q", got)
	}
}
