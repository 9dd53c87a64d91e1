package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"countrymap/internal/boundaries"
	"countrymap/internal/choropleth"
	"countrymap/internal/config"
	"countrymap/internal/tui"
)

var (
	flagConfig            string
	flagCountry           string
	flagSchemeType        string
	flagLinearScheme      string
	flagCategoricalScheme string
	flagFormat            string
	flagEntity            string
	flagSliceID           string
	flagNoCrossFilter     bool
	flagWidth             int
	flagHeight            int
)

var rootCmd = &cobra.Command{
	Use:   "countrymap [data-file]",
	Short: "Render an interactive choropleth country map in the terminal",
	Long: `countrymap colors a country's administrative regions by a metric and
wires up hover, click-to-filter, context-menu, and zoom interactions.
Metric rows come from a CSV (country_id,metric) or JSON file; without a
data file a demo dataset is generated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", config.ConfigFileName, "config file path")
	rootCmd.Flags().StringVar(&flagCountry, "country", "", "country code to render")
	rootCmd.Flags().StringVar(&flagSchemeType, "scheme-type", "", "color scale type: linear or categorical")
	rootCmd.Flags().StringVar(&flagLinearScheme, "linear-scheme", "", "sequential color scheme name")
	rootCmd.Flags().StringVar(&flagCategoricalScheme, "categorical-scheme", "", "categorical color scheme name")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "metric number format (d3 style, e.g. .3s)")
	rootCmd.Flags().StringVar(&flagEntity, "entity", "", "logical field name used in emitted filters")
	rootCmd.Flags().StringVar(&flagSliceID, "slice-id", "", "chart instance identifier")
	rootCmd.Flags().BoolVar(&flagNoCrossFilter, "no-cross-filter", false, "disable click-to-filter emission")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "headless mode: render once at this width (cells) and exit")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "headless mode: render once at this height (cells) and exit")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cfg)

	var rows []choropleth.Datum
	if len(args) == 1 {
		rows, err = choropleth.LoadRows(args[0])
		if err != nil {
			return err
		}
	}

	var disk *boundaries.DiskStore
	if cfg.Boundaries.CachePath != "" {
		disk, err = boundaries.OpenDiskStore(cfg.Boundaries.CachePath)
		if err != nil {
			return err
		}
		defer disk.Close()
	}
	loader := boundaries.NewLoader(boundaries.NewCache(), disk, cfg.Boundaries.URLTemplate)

	fd := choropleth.FormData{
		Country:           cfg.Chart.Country,
		SchemeType:        cfg.Chart.SchemeType,
		LinearScheme:      cfg.Chart.LinearScheme,
		CategoricalScheme: cfg.Chart.CategoricalScheme,
		NumberFormat:      cfg.Chart.NumberFormat,
		SliceID:           flagSliceID,
		EmitCrossFilters:  cfg.Chart.CrossFilter,
		EntityField:       cfg.Chart.EntityField,
	}
	if rows == nil {
		rows = demoRows(fd.Country)
	}

	opts := tui.Options{
		FormData: fd,
		Rows:     rows,
		Loader:   loader,
		Callbacks: tui.Callbacks{
			OnCrossFilter: logCrossFilter,
			OnContextMenu: logContextMenu,
		},
	}

	if flagWidth > 0 && flagHeight > 0 {
		frame, err := tui.RenderOnce(cmd.Context(), opts, flagWidth, flagHeight)
		if err != nil {
			return err
		}
		fmt.Println(frame)
		return nil
	}

	_, err = tea.NewProgram(tui.New(opts), tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func applyFlags(cfg *config.Config) {
	if flagCountry != "" {
		cfg.Chart.Country = flagCountry
	}
	if flagSchemeType != "" {
		cfg.Chart.SchemeType = flagSchemeType
	}
	if flagLinearScheme != "" {
		cfg.Chart.LinearScheme = flagLinearScheme
	}
	if flagCategoricalScheme != "" {
		cfg.Chart.CategoricalScheme = flagCategoricalScheme
	}
	if flagFormat != "" {
		cfg.Chart.NumberFormat = flagFormat
	}
	if flagEntity != "" {
		cfg.Chart.EntityField = flagEntity
	}
	if flagNoCrossFilter {
		cfg.Chart.CrossFilter = false
	}
}

// logCrossFilter stands in for the host dashboard's filter store when
// countrymap runs standalone.
func logCrossFilter(dm choropleth.DataMask) {
	payload, err := json.Marshal(dm)
	if err != nil {
		return
	}
	log.Printf("cross-filter: %s", payload)
}

func logContextMenu(p choropleth.MenuPayload) {
	log.Printf("context menu at (%d,%d): entity %v", p.X, p.Y, p.DrillBy.Filters[0].Val)
}

// demoRows synthesizes a deterministic metric per region index so the
// chart is viewable without a dataset.
func demoRows(country string) []choropleth.Datum {
	n := 12
	rows := make([]choropleth.Datum, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, choropleth.Datum{
			CountryID: fmt.Sprintf("%s-%02d", country, i+1),
			Metric:    math.Round(1000 * (1 + math.Sin(float64(i)))),
		})
	}
	return rows
}
