package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nqsmap/internal/derive"
	"nqsmap/internal/exitcode"
	"nqsmap/internal/filter"
	"nqsmap/internal/logging"
	"nqsmap/internal/model"
	"nqsmap/internal/table"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Dry-run load, filter and derivation stats (no map written)",
	RunE:  runInspect,
}

func init() {
	f := inspectCmd.Flags()
	f.StringVar(&cfg.InputPath, "input", "", "Path to the services export (required)")
	f.StringVar(&cfg.Filter, "filter", "", "Boolean filter expression over column values (SQL WHERE syntax)")
	_ = inspectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if cfgFile != "" {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			log.Error().Err(err).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	t, err := table.Read(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to load table")
		os.Exit(exitcode.IOError)
	}
	if err := t.RequireColumns(cfg.RequiredHeaders()...); err != nil {
		log.Error().Err(err).Msg("schema validation failed")
		os.Exit(exitcode.SchemaError)
	}
	rowsRead := len(t.Rows)

	if cfg.Filter != "" {
		if t, err = filter.Apply(t, cfg.Filter); err != nil {
			log.Error().Err(err).Msg("filter failed")
			os.Exit(exitcode.FilterError)
		}
	}

	res := derive.Records(t, cfg.Columns)

	// Rating distribution in canonical order, extras after
	counts := make(map[string]int)
	var extras []string
	for i := range res.Records {
		name := res.Records[i].Rating
		if counts[name] == 0 {
			if _, canonical := model.RatingByName(name); !canonical {
				extras = append(extras, name)
			}
		}
		counts[name]++
	}

	providers := make(map[string]struct{})
	for i := range res.Records {
		if k := res.Records[i].ProviderKey(); k != "" {
			providers[k] = struct{}{}
		}
	}

	fmt.Println("=== nqsmap inspect ===")
	fmt.Printf("File:          %s\n", cfg.InputPath)
	fmt.Printf("Rows read:     %d\n", rowsRead)
	if cfg.Filter != "" {
		fmt.Printf("After filter:  %d\n", len(t.Rows))
	}
	fmt.Printf("Dropped:       %d (missing or non-numeric coordinates)\n", res.RowsDropped)
	fmt.Printf("Plottable:     %d\n", len(res.Records))
	fmt.Printf("Providers:     %d\n", len(providers))
	fmt.Println()
	fmt.Println("Rating distribution:")
	for _, r := range model.AllRatings {
		if n := counts[r.Name]; n > 0 {
			fmt.Printf("  %-35s %6d\n", r.Name, n)
		}
	}
	for _, name := range extras {
		fmt.Printf("  %-35s %6d (unrecognized)\n", name, counts[name])
	}

	if len(res.Records) > 0 {
		minLat, maxLat := res.Records[0].Lat, res.Records[0].Lat
		minLng, maxLng := res.Records[0].Lng, res.Records[0].Lng
		var sumLat, sumLng float64
		for i := range res.Records {
			r := &res.Records[i]
			sumLat += r.Lat
			sumLng += r.Lng
			minLat, maxLat = min(minLat, r.Lat), max(maxLat, r.Lat)
			minLng, maxLng = min(minLng, r.Lng), max(maxLng, r.Lng)
		}
		n := float64(len(res.Records))
		fmt.Println()
		fmt.Printf("Bounds:   [%.5f, %.5f] – [%.5f, %.5f]\n", minLat, minLng, maxLat, maxLng)
		fmt.Printf("Centroid: [%.5f, %.5f]\n", sumLat/n, sumLng/n)
	}

	return nil
}
