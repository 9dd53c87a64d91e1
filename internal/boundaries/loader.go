package boundaries

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"countrymap/internal/geom"
)

const (
	fetchTimeout = 20 * time.Second

	// countryToken is replaced with the country code in URL templates.
	countryToken = "{country}"
)

// Loader fetches boundary documents by country code, consulting the
// in-process cache first and an optional disk store second.
type Loader struct {
	cache       *Cache
	disk        *DiskStore
	client      *http.Client
	urlTemplate string

	fetches atomic.Int64
}

// NewLoader builds a loader over a cache and an optional disk store.
// urlTemplate must contain the {country} token.
func NewLoader(cache *Cache, disk *DiskStore, urlTemplate string) *Loader {
	return &Loader{
		cache:       cache,
		disk:        disk,
		client:      &http.Client{Timeout: fetchTimeout},
		urlTemplate: urlTemplate,
	}
}

// Load returns the boundary collection for a country. A cached country
// performs no fetch; a disk hit performs no fetch either but populates
// the in-process cache.
func (l *Loader) Load(ctx context.Context, country string) (*geom.FeatureCollection, error) {
	if fc, ok := l.cache.Get(country); ok {
		return fc, nil
	}
	if l.disk != nil {
		if body, ok, err := l.disk.Get(country); err == nil && ok {
			fc, err := geom.ParseCollection(body)
			if err == nil {
				l.cache.Put(country, fc)
				return fc, nil
			}
			// stale/corrupt disk entry: fall through to fetch
		}
	}
	body, err := l.fetch(ctx, country)
	if err != nil {
		return nil, err
	}
	fc, err := geom.ParseCollection(body)
	if err != nil {
		return nil, fmt.Errorf("boundaries: parsing %s: %w", country, err)
	}
	if l.disk != nil {
		// disk layer is best-effort; the in-process cache still works
		if err := l.disk.Put(country, body); err != nil {
			log.Printf("boundaries: disk cache write for %s: %v", country, err)
		}
	}
	l.cache.Put(country, fc)
	return fc, nil
}

// Fetches reports how many network fetches the loader has performed.
func (l *Loader) Fetches() int64 {
	return l.fetches.Load()
}

func (l *Loader) fetch(ctx context.Context, country string) ([]byte, error) {
	l.fetches.Add(1)
	url := strings.ReplaceAll(l.urlTemplate, countryToken, country)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("boundaries: building request for %s: %w", country, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("boundaries: fetching %s: %w", country, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("boundaries: fetching %s: unexpected status %s", country, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("boundaries: reading %s: %w", country, err)
	}
	return body, nil
}
