package choropleth

import "countrymap/internal/scheme"

// FallbackFill is painted for regions with no entry in the color map.
const FallbackFill = "#f7f7f7"

// BuildColorMap resolves one color per ISO code from the datum list.
// It is rebuilt in full on every draw; there is no incremental diffing.
func BuildColorMap(rows []Datum, fd FormData, scales *scheme.Store) map[string]string {
	out := make(map[string]string, len(rows))
	if fd.SchemeType == SchemeTypeCategorical {
		cs := scales.Categorical(fd.CategoricalScheme, ChartKey(fd))
		for _, r := range rows {
			out[r.CountryID] = cs.Color(r.CountryID)
		}
		return out
	}
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = r.Metric
	}
	ls := scheme.NewLinearScale(fd.LinearScheme, values)
	for _, r := range rows {
		out[r.CountryID] = ls.Color(r.Metric)
	}
	return out
}
