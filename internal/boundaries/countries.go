package boundaries

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Country is one selectable boundary dataset.
type Country struct {
	Code string
	Name string
}

// names maps country codes to English display names for the countries
// with published boundary datasets.
var names = map[string]string{
	"argentina":      "Argentina",
	"australia":      "Australia",
	"austria":        "Austria",
	"belgium":        "Belgium",
	"brazil":         "Brazil",
	"bulgaria":       "Bulgaria",
	"canada":         "Canada",
	"chile":          "Chile",
	"china":          "China",
	"colombia":       "Colombia",
	"czech_republic": "Czech Republic",
	"denmark":        "Denmark",
	"egypt":          "Egypt",
	"estonia":        "Estonia",
	"finland":        "Finland",
	"france":         "France",
	"germany":        "Germany",
	"greece":         "Greece",
	"hungary":        "Hungary",
	"iceland":        "Iceland",
	"india":          "India",
	"indonesia":      "Indonesia",
	"iran":           "Iran",
	"ireland":        "Ireland",
	"israel":         "Israel",
	"italy":          "Italy",
	"japan":          "Japan",
	"kenya":          "Kenya",
	"korea":          "South Korea",
	"liechtenstein":  "Liechtenstein",
	"lithuania":      "Lithuania",
	"malaysia":       "Malaysia",
	"mexico":         "Mexico",
	"morocco":        "Morocco",
	"myanmar":        "Myanmar",
	"netherlands":    "Netherlands",
	"nigeria":        "Nigeria",
	"norway":         "Norway",
	"pakistan":       "Pakistan",
	"peru":           "Peru",
	"philippines":    "Philippines",
	"poland":         "Poland",
	"portugal":       "Portugal",
	"russia":         "Russia",
	"saudi_arabia":   "Saudi Arabia",
	"singapore":      "Singapore",
	"slovenia":       "Slovenia",
	"spain":          "Spain",
	"sweden":         "Sweden",
	"switzerland":    "Switzerland",
	"syria":          "Syria",
	"thailand":       "Thailand",
	"timorleste":     "Timor-Leste",
	"turkey":         "Turkey",
	"uk":             "United Kingdom",
	"ukraine":        "Ukraine",
	"uruguay":        "Uruguay",
	"usa":            "United States",
	"vietnam":        "Vietnam",
	"zambia":         "Zambia",
}

// Name returns the display name registered for a country code.
func Name(code string) (string, bool) {
	n, ok := names[code]
	return n, ok
}

// DisplayName returns the registered name, falling back to the raw
// code when no mapping exists.
func DisplayName(code string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return code
}

// All lists every registered country sorted by display name.
func All() []Country {
	out := make([]Country, 0, len(names))
	for code, name := range names {
		out = append(out, Country{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Search fuzzy-matches registered country names.
func Search(query string, limit int) []Country {
	all := All()
	if query == "" {
		if limit > 0 && len(all) > limit {
			return all[:limit]
		}
		return all
	}
	haystack := make([]string, len(all))
	for i, c := range all {
		haystack[i] = c.Name
	}
	matches := fuzzy.Find(query, haystack)
	out := make([]Country, 0, len(matches))
	for _, m := range matches {
		out = append(out, all[m.Index])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}
