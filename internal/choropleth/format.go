package choropleth

import (
	"math"
	"strconv"
	"strings"
)

// DefaultNumberFormat matches the chart's default metric format.
const DefaultNumberFormat = ".3s"

// FormatNumber renders v using a d3-format style specifier. Supported:
// "d" (integer, "," for thousands grouping), ".Nf" (fixed), ".N%"
// (percentage of 1), ".Ns" (SI prefix with N significant digits).
// Unknown specifiers fall back to plain formatting.
func FormatNumber(format string, v float64) string {
	if format == "" {
		format = DefaultNumberFormat
	}
	spec := format
	grouped := strings.HasPrefix(spec, ",")
	spec = strings.TrimPrefix(spec, ",")

	prec := -1
	if strings.HasPrefix(spec, ".") && len(spec) > 1 {
		rest := spec[1 : len(spec)-1]
		if n, err := strconv.Atoi(rest); err == nil {
			prec = n
		}
	}
	if spec == "" {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	switch spec[len(spec)-1] {
	case 'd':
		s := strconv.FormatInt(int64(math.Round(v)), 10)
		if grouped {
			s = groupThousands(s)
		}
		return s
	case 'f':
		if prec < 0 {
			prec = 6
		}
		s := strconv.FormatFloat(v, 'f', prec, 64)
		if grouped {
			if dot := strings.IndexByte(s, '.'); dot >= 0 {
				s = groupThousands(s[:dot]) + s[dot:]
			} else {
				s = groupThousands(s)
			}
		}
		return s
	case '%':
		if prec < 0 {
			prec = 0
		}
		return strconv.FormatFloat(v*100, 'f', prec, 64) + "%"
	case 's':
		if prec <= 0 {
			prec = 3
		}
		return formatSI(v, prec)
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}

var siSuffixes = map[int]string{
	-6: "µ", -3: "m", 0: "", 3: "k", 6: "M", 9: "G", 12: "T",
}

func formatSI(v float64, sig int) string {
	if v == 0 {
		return strconv.FormatFloat(0, 'f', sig-1, 64)
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	p := int(math.Floor(float64(exp)/3)) * 3
	if p < -6 {
		p = -6
	}
	if p > 12 {
		p = 12
	}
	scaled := v / math.Pow(10, float64(p))
	digits := sig - 1 - int(math.Floor(math.Log10(math.Abs(scaled))))
	if digits < 0 {
		digits = 0
	}
	return strconv.FormatFloat(scaled, 'f', digits, 64) + siSuffixes[p]
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	out := b.String()
	if neg {
		return "-" + out
	}
	return out
}

// FormatMetric renders a region's hover detail line.
func FormatMetric(fd FormData, metric float64) string {
	return FormatNumber(fd.NumberFormat, metric)
}
