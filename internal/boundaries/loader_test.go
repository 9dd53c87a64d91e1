package boundaries

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

const boundaryDoc = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"ISO": "T-1", "NAME_1": "Testia"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}
    }
  ]
}`

func testServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if strings.Contains(r.URL.Path, "nowhere") {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(boundaryDoc))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadCachesPerCountry(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits)
	l := NewLoader(NewCache(), nil, srv.URL+"/{country}.geojson")

	first, err := l.Load(context.Background(), "testland")
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	second, err := l.Load(context.Background(), "testland")
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("loading the same country twice performed %d fetches, want 1", hits.Load())
	}
	if first != second {
		t.Error("second load must return the cached collection")
	}
	if l.Fetches() != 1 {
		t.Errorf("Fetches() = %d, want 1", l.Fetches())
	}
}

func TestLoadDistinctCountriesFetchSeparately(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits)
	l := NewLoader(NewCache(), nil, srv.URL+"/{country}.geojson")

	if _, err := l.Load(context.Background(), "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Load(context.Background(), "b"); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 2 {
		t.Errorf("got %d fetches, want 2", hits.Load())
	}
}

func TestLoadFailureStatus(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits)
	l := NewLoader(NewCache(), nil, srv.URL+"/{country}.geojson")

	if _, err := l.Load(context.Background(), "nowhere"); err == nil {
		t.Fatal("expected error for missing dataset")
	}
	// failed loads are not cached
	if l.cache.Len() != 0 {
		t.Errorf("cache holds %d entries after failure", l.cache.Len())
	}
}

func TestLoadBadDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not geojson"))
	}))
	t.Cleanup(srv.Close)
	l := NewLoader(NewCache(), nil, srv.URL+"/{country}.geojson")
	if _, err := l.Load(context.Background(), "x"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadUsesDiskStore(t *testing.T) {
	var hits atomic.Int64
	srv := testServer(t, &hits)
	path := t.TempDir() + "/boundaries.db"

	disk, err := OpenDiskStore(path)
	if err != nil {
		t.Fatalf("OpenDiskStore: %v", err)
	}
	l := NewLoader(NewCache(), disk, srv.URL+"/{country}.geojson")
	if _, err := l.Load(context.Background(), "testland"); err != nil {
		t.Fatal(err)
	}
	disk.Close()

	// a fresh process: new cache, same disk store
	disk2, err := OpenDiskStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer disk2.Close()
	l2 := NewLoader(NewCache(), disk2, srv.URL+"/{country}.geojson")
	if _, err := l2.Load(context.Background(), "testland"); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 1 {
		t.Errorf("disk-backed reload performed %d fetches, want 1", hits.Load())
	}
}
