package main

import (
	"os"

	"github.com/spf13/cobra"

	"nqsmap/internal/config"
)

var (
	cfg     config.Config
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "nqsmap",
	Short: "Plot ACECQA / NQS childcare services onto an interactive map",
	Long: "Reads a services export (CSV, TSV, XLSX or Parquet) and writes a single " +
		"self-contained HTML map with clustered, color-coded markers and rich popups.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", envOr("NQSMAP_LOG_FORMAT", "text"), "Log format: text or json")
	pf.StringVar(&cfgFile, "config", "", "Optional YAML config with column-name overrides")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
