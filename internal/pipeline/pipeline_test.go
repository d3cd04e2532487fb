package pipeline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"nqsmap/internal/config"
	"nqsmap/internal/filter"
	"nqsmap/internal/htmlmap"
	"nqsmap/internal/table"
)

const sampleCSV = `Service Name,Overall Rating,Latitude,Longitude,Address State,Provider Approval Number
Acme North,Meeting NQS,-31.90,115.80,WA,PR-1
Acme South,Exceeding NQS,-32.10,115.90,WA,PR-1
Harbour Kids,Working Towards NQS,-33.85,151.20,NSW,PR-2
No Coords,Meeting NQS,,,WA,PR-1
`

func writeSample(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "services.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		InputPath:  writeSample(t, dir),
		OutputPath: filepath.Join(dir, "map.html"),
		Zoom:       11,
		Facets:     []string{"jurisdiction"},
	}

	summary, err := Run(zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RowsRead != 4 || summary.RowsFiltered != 4 {
		t.Errorf("rows read/filtered = %d/%d", summary.RowsRead, summary.RowsFiltered)
	}
	if summary.RowsDropped != 1 || summary.RowsRendered != 3 {
		t.Errorf("rows dropped/rendered = %d/%d", summary.RowsDropped, summary.RowsRendered)
	}
	if summary.Groups != 2 {
		t.Errorf("groups = %d, want WA and NSW", summary.Groups)
	}
	if summary.BuildID == "" {
		t.Error("summary missing build id")
	}

	data, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	html := string(data)
	for _, want := range []string{"Acme North", "Harbour Kids", summary.BuildID} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRun_FilterAndExport(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		InputPath:  writeSample(t, dir),
		OutputPath: filepath.Join(dir, "map.html"),
		ExportPath: filepath.Join(dir, "filtered.csv"),
		Zoom:       11,
		Filter:     `"Address State" = 'WA'`,
	}

	summary, err := Run(zerolog.Nop(), cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.RowsFiltered != 3 || summary.RowsRendered != 2 {
		t.Errorf("rows filtered/rendered = %d/%d", summary.RowsFiltered, summary.RowsRendered)
	}

	// export holds the filtered rows verbatim, including the one later
	// dropped for missing coordinates
	exported, err := table.Read(cfg.ExportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if len(exported.Rows) != 3 {
		t.Errorf("exported rows = %d, want 3", len(exported.Rows))
	}
	if got := exported.Cell(2, "Service Name"); got != "No Coords" {
		t.Errorf("exported row 2 = %q", got)
	}
}

func TestRun_MissingColumnsIsSchemaError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("Service Name,Latitude\nA,-31.9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{InputPath: path, OutputPath: filepath.Join(dir, "map.html"), Zoom: 11}

	_, err := Run(zerolog.Nop(), cfg)
	var schema *table.SchemaError
	if !errors.As(err, &schema) {
		t.Fatalf("err = %v, want SchemaError", err)
	}
	var perr *PipelineError
	if !errors.As(err, &perr) || perr.Phase != "load" {
		t.Errorf("err = %v, want load phase", err)
	}
}

func TestRun_BadFilterExpression(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		InputPath:  writeSample(t, dir),
		OutputPath: filepath.Join(dir, "map.html"),
		Zoom:       11,
		Filter:     "this is not sql",
	}

	_, err := Run(zerolog.Nop(), cfg)
	var ferr *filter.FilterError
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want FilterError", err)
	}
}

func TestRun_NoValidCoordinates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	csv := "Service Name,Overall Rating,Latitude,Longitude\nA,Meeting NQS,,\nB,Meeting NQS,x,y\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{InputPath: path, OutputPath: filepath.Join(dir, "map.html"), Zoom: 11}

	_, err := Run(zerolog.Nop(), cfg)
	var empty *htmlmap.EmptyDatasetError
	if !errors.As(err, &empty) {
		t.Fatalf("err = %v, want EmptyDatasetError", err)
	}
	if _, statErr := os.Stat(cfg.OutputPath); !os.IsNotExist(statErr) {
		t.Error("no output artifact should exist after an empty-dataset failure")
	}
}
