package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nqsmap/internal/exitcode"
	"nqsmap/internal/filter"
	"nqsmap/internal/htmlmap"
	"nqsmap/internal/logging"
	"nqsmap/internal/pipeline"
	"nqsmap/internal/table"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the interactive map from a services export",
	RunE:  runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringVar(&cfg.InputPath, "input", "", "Path to the services export (required)")
	f.StringVar(&cfg.OutputPath, "out", envOr("NQSMAP_OUT", "nqs_map.html"), "Output HTML map path")
	f.IntVar(&cfg.Zoom, "zoom", 11, "Initial zoom level")
	f.StringSliceVar(&cfg.Facets, "facet", nil, "Facet dimension: jurisdiction, rating or type (first recognized wins)")
	f.StringVar(&cfg.Filter, "filter", "", "Boolean filter expression over column values (SQL WHERE syntax)")
	f.StringVar(&cfg.ExportPath, "export-filtered", "", "Also write the filtered table to this path")
	f.BoolVar(&cfg.Fast, "fast", false, "Bulk point rendering: circle markers without rich popups")
	f.BoolVar(&cfg.Fullscreen, "fullscreen", false, "Add a fullscreen control")
	f.BoolVar(&cfg.Search, "search", false, "Add an address search control")
	f.BoolVar(&cfg.Locate, "locate", false, "Add a locate-me control")
	_ = buildCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if cfgFile != "" {
		if err := cfg.LoadFromFile(cfgFile); err != nil {
			log.Error().Err(err).Msg("config load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.ValidateForBuild(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := pipeline.Run(log, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("build failed")
		os.Exit(exitFor(err))
	}

	fmt.Printf("Done. Open: %s (%d markers in %d groups, %.1fs)\n",
		summary.OutputPath, summary.RowsRendered, summary.Groups,
		summary.DurationTotal.Seconds())
	return nil
}

// exitFor maps the error taxonomy to exit codes; anything else is an I/O
// failure.
func exitFor(err error) int {
	var schemaErr *table.SchemaError
	var filterErr *filter.FilterError
	var emptyErr *htmlmap.EmptyDatasetError
	switch {
	case errors.As(err, &schemaErr):
		return exitcode.SchemaError
	case errors.As(err, &filterErr):
		return exitcode.FilterError
	case errors.As(err, &emptyErr):
		return exitcode.EmptyDataset
	default:
		return exitcode.IOError
	}
}
