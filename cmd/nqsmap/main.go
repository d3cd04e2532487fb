package main

import (
	"os"

	"github.com/joho/godotenv"

	"nqsmap/internal/exitcode"
)

func main() {
	_ = godotenv.Load() // optional .env for NQSMAP_* defaults

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
