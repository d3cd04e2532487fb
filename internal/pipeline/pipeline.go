// Package pipeline runs the one-shot build: load → filter → derive →
// group → assemble → write. Each phase fully consumes the previous one;
// the first unrecoverable error aborts the run.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"nqsmap/internal/config"
	"nqsmap/internal/derive"
	"nqsmap/internal/facet"
	"nqsmap/internal/filter"
	"nqsmap/internal/htmlmap"
	"nqsmap/internal/model"
	"nqsmap/internal/table"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full build pipeline and returns its summary.
func Run(log zerolog.Logger, cfg *config.Config) (*model.BuildSummary, error) {
	totalStart := time.Now()
	buildID := uuid.New().String()
	log.Info().Str("build_id", buildID).Str("input", cfg.InputPath).Msg("starting build")

	// Load
	loadStart := time.Now()
	t, err := table.Read(cfg.InputPath)
	if err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}
	if err := t.RequireColumns(cfg.RequiredHeaders()...); err != nil {
		return nil, &PipelineError{Phase: "load", Err: err}
	}
	rowsRead := len(t.Rows)
	log.Info().Int("rows", rowsRead).Int("columns", len(t.Columns)).Msg("table loaded")

	// Filter
	if cfg.Filter != "" {
		t, err = filter.Apply(t, cfg.Filter)
		if err != nil {
			return nil, &PipelineError{Phase: "filter", Err: err}
		}
		log.Info().Int("rows_kept", len(t.Rows)).Str("filter", cfg.Filter).Msg("filter applied")
	}
	rowsFiltered := len(t.Rows)

	// Side export of the filtered table, verbatim
	if cfg.ExportPath != "" {
		if err := table.Write(t, cfg.ExportPath); err != nil {
			return nil, &PipelineError{Phase: "export", Err: err}
		}
		log.Info().Str("path", cfg.ExportPath).Int("rows", len(t.Rows)).Msg("filtered table exported")
	}
	durLoad := time.Since(loadStart)

	// Derive
	deriveStart := time.Now()
	res := derive.Records(t, cfg.Columns)
	if res.RowsDropped > 0 {
		log.Warn().Int("rows_dropped", res.RowsDropped).Msg("rows without numeric coordinates dropped")
	}
	durDerive := time.Since(deriveStart)

	// Group
	key := facet.Pick(cfg.Facets)
	groups := facet.Partition(res.Records, key)
	if key != facet.None {
		log.Info().Str("facet", string(key)).Int("groups", len(groups)).Msg("records grouped")
	}

	// Assemble and write
	assembleStart := time.Now()
	doc, err := htmlmap.Assemble(groups, htmlmap.Options{
		Title:       "NQS services",
		Zoom:        cfg.Zoom,
		Fast:        cfg.Fast,
		Fullscreen:  cfg.Fullscreen,
		Search:      cfg.Search,
		Locate:      cfg.Locate,
		BuildID:     buildID,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		return nil, &PipelineError{Phase: "assemble", Err: err}
	}
	durAssemble := time.Since(assembleStart)

	if err := htmlmap.Write(doc, cfg.OutputPath); err != nil {
		return nil, &PipelineError{Phase: "write", Err: err}
	}

	summary := &model.BuildSummary{
		InputPath:        cfg.InputPath,
		OutputPath:       cfg.OutputPath,
		ExportPath:       cfg.ExportPath,
		BuildID:          buildID,
		RowsRead:         rowsRead,
		RowsFiltered:     rowsFiltered,
		RowsDropped:      res.RowsDropped,
		RowsRendered:     doc.MarkerCount,
		Groups:           len(doc.Layers),
		DurationLoad:     durLoad,
		DurationDerive:   durDerive,
		DurationAssemble: durAssemble,
		DurationTotal:    time.Since(totalStart),
	}

	log.Info().
		Int("rows_read", summary.RowsRead).
		Int("rows_rendered", summary.RowsRendered).
		Int("groups", summary.Groups).
		Str("output", summary.OutputPath).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("build pipeline complete")

	return summary, nil
}
