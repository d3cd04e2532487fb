package model

import "time"

// BuildSummary captures metrics from a single map build run.
type BuildSummary struct {
	InputPath  string
	OutputPath string
	ExportPath string
	BuildID    string

	RowsRead     int
	RowsFiltered int
	RowsDropped  int
	RowsRendered int
	Groups       int

	DurationLoad     time.Duration
	DurationDerive   time.Duration
	DurationAssemble time.Duration
	DurationTotal    time.Duration
}
