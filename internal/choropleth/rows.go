package choropleth

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadRows reads metric rows from a CSV or JSON file.
// CSV column detection: country_id|iso|code and metric|value|count
// (case-insensitive). JSON expects an array of {country_id, metric}.
func LoadRows(path string) ([]Datum, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSVRows(path)
	case ".json":
		return loadJSONRows(path)
	}
	return nil, errors.New("rows: unsupported file: " + filepath.Ext(path))
}

func loadCSVRows(path string) ([]Datum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("rows: empty csv")
	}
	idxID, idxMetric := -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "country_id", "iso", "code":
			if idxID == -1 {
				idxID = i
			}
		case "metric", "value", "count":
			if idxMetric == -1 {
				idxMetric = i
			}
		}
	}
	if idxID == -1 || idxMetric == -1 {
		return nil, errors.New("rows: country_id/metric columns not found")
	}
	var rows []Datum
	for _, rec := range recs[1:] {
		if idxID >= len(rec) || idxMetric >= len(rec) {
			continue
		}
		id := strings.TrimSpace(rec[idxID])
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[idxMetric]), 64)
		if id == "" || err != nil {
			continue
		}
		rows = append(rows, Datum{CountryID: id, Metric: v})
	}
	if len(rows) == 0 {
		return nil, errors.New("rows: no valid rows parsed")
	}
	return rows, nil
}

func loadJSONRows(path string) ([]Datum, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []Datum
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("rows: empty dataset")
	}
	return rows, nil
}
