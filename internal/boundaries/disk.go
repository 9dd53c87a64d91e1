package boundaries

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DiskStore keeps fetched boundary documents in a local sqlite file so
// repeated runs skip the network. It sits under the in-process cache
// and is purely a fetch-avoidance layer.
type DiskStore struct {
	db *sql.DB
}

// OpenDiskStore opens (and if needed initializes) the store at path.
func OpenDiskStore(path string) (*DiskStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("boundaries: opening disk cache: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS boundaries (
		country    TEXT PRIMARY KEY,
		body       BLOB NOT NULL,
		fetched_at INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("boundaries: initializing disk cache: %w", err)
	}
	return &DiskStore{db: db}, nil
}

func (s *DiskStore) Get(country string) (body []byte, ok bool, err error) {
	row := s.db.QueryRow(`SELECT body FROM boundaries WHERE country = ?`, country)
	if err := row.Scan(&body); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("boundaries: reading disk cache: %w", err)
	}
	return body, true, nil
}

func (s *DiskStore) Put(country string, body []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO boundaries (country, body, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(country) DO UPDATE SET body = excluded.body, fetched_at = excluded.fetched_at`,
		country, body, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("boundaries: writing disk cache: %w", err)
	}
	return nil
}

func (s *DiskStore) Close() error {
	return s.db.Close()
}
