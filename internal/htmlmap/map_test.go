package htmlmap

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"nqsmap/internal/facet"
	"nqsmap/internal/model"
)

func point(name string, lat, lng float64) model.Record {
	return model.Record{
		ServiceName: name,
		Rating:      "Meeting NQS",
		Color:       "blue",
		Lat:         lat,
		Lng:         lng,
		StableID:    "id_" + name,
	}
}

func TestAssemble_ViewportFromCoordinates(t *testing.T) {
	groups := []facet.Group{
		{Name: "All services", Records: []model.Record{
			point("A", -31.0, 115.0),
			point("B", -33.0, 117.0),
			point("C", -32.0, 116.0),
		}},
	}
	doc, err := Assemble(groups, Options{Zoom: 11, Fast: true})
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if math.Abs(doc.CenterLat - -32.0) > 1e-9 || math.Abs(doc.CenterLng-116.0) > 1e-9 {
		t.Errorf("center = (%v, %v)", doc.CenterLat, doc.CenterLng)
	}
	if doc.MinLat != -33.0 || doc.MaxLat != -31.0 || doc.MinLng != 115.0 || doc.MaxLng != 117.0 {
		t.Errorf("bounds = (%v..%v, %v..%v)",
			doc.MinLat, doc.MaxLat, doc.MinLng, doc.MaxLng)
	}
	if doc.MarkerCount != 3 {
		t.Errorf("MarkerCount = %d", doc.MarkerCount)
	}
}

func TestAssemble_EmptyGroupsIsError(t *testing.T) {
	_, err := Assemble(nil, Options{Zoom: 11})
	var empty *EmptyDatasetError
	if !errors.As(err, &empty) {
		t.Fatalf("err = %v, want EmptyDatasetError", err)
	}

	_, err = Assemble([]facet.Group{{Name: "WA"}}, Options{Zoom: 11})
	if !errors.As(err, &empty) {
		t.Fatalf("err = %v, want EmptyDatasetError", err)
	}
}

func TestAssemble_FastModeSkipsPopups(t *testing.T) {
	groups := []facet.Group{{Name: "All services", Records: []model.Record{point("A", -31, 115)}}}

	doc, err := Assemble(groups, Options{Zoom: 11, Fast: true})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Layers[0].Markers[0].Popup != "" {
		t.Error("fast mode must not render popups")
	}

	doc, err = Assemble(groups, Options{Zoom: 11})
	if err != nil {
		t.Fatal(err)
	}
	if doc.Layers[0].Markers[0].Popup == "" {
		t.Error("default mode must render popups")
	}
}

func TestAssemble_LegendIsFixed(t *testing.T) {
	groups := []facet.Group{{Name: "All services", Records: []model.Record{point("A", -31, 115)}}}
	doc, err := Assemble(groups, Options{Zoom: 11, Fast: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Legend) != len(model.AllRatings) {
		t.Fatalf("legend entries = %d, want %d", len(doc.Legend), len(model.AllRatings))
	}
	last := doc.Legend[len(doc.Legend)-1]
	if last.Label != "Not Rated / Unknown" {
		t.Errorf("last legend label = %q", last.Label)
	}
	if doc.Legend[0].Swatch != model.AllRatings[0].Swatch {
		t.Errorf("legend swatch = %q", doc.Legend[0].Swatch)
	}
}

func TestPopup_EscapesValues(t *testing.T) {
	r := &model.Record{
		ServiceName: `Kids <b>&</b> Co "North"`,
		Rating:      "Meeting NQS",
	}
	html, err := Popup(r)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<b>&</b>") {
		t.Error("markup in source values must be escaped")
	}
	if !strings.Contains(html, "Kids &lt;b&gt;&amp;&lt;/b&gt; Co") {
		t.Errorf("escaped name missing from popup:\n%s", html)
	}
}

func TestPopup_EmptyValuesRenderDash(t *testing.T) {
	r := &model.Record{ServiceName: "A", Rating: "Not Rated"}
	html, err := Popup(r)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "<b>Phone</b>: —") {
		t.Errorf("empty phone should render a dash:\n%s", html)
	}
	if strings.Contains(html, "(services:") {
		t.Error("zero provider count must not render a services suffix")
	}
}

func TestPopup_QualityAreaRowsFollowCatalogOrder(t *testing.T) {
	r := &model.Record{
		ServiceName: "A",
		Rating:      "Meeting NQS",
		QualityAreas: map[string]string{
			"Quality Area 5": "Exceeding NQS",
			"Quality Area 1": "Meeting NQS",
		},
	}
	html, err := Popup(r)
	if err != nil {
		t.Fatal(err)
	}
	qa1 := strings.Index(html, "QA1")
	qa5 := strings.Index(html, "QA5")
	if qa1 < 0 || qa5 < 0 || qa1 > qa5 {
		t.Errorf("QA rows out of order (qa1=%d qa5=%d):\n%s", qa1, qa5, html)
	}
	if strings.Contains(html, "QA2") {
		t.Error("absent quality area must not render a row")
	}
}

func TestWrite_ProducesSelfContainedDocument(t *testing.T) {
	groups := []facet.Group{
		{Name: "WA", Records: []model.Record{point("A", -31, 115)}},
		{Name: "NSW", Records: []model.Record{point("B", -33, 151)}},
	}
	doc, err := Assemble(groups, Options{
		Title:       "NQS services",
		Zoom:        11,
		BuildID:     "test-build-id",
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.html")
	if err := Write(doc, path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"test-build-id",
		"leaflet.markercluster",
		"featuregroup.subgroup",
		`"WA"`,
		`"NSW"`,
		"NQS services",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWrite_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	groups := []facet.Group{{Name: "All services", Records: []model.Record{point("A", -31, 115)}}}
	doc, err := Assemble(groups, Options{Zoom: 11, Fast: true, GeneratedAt: time.Now()})
	if err != nil {
		t.Fatal(err)
	}
	if err := Write(doc, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("previous content survived the write")
	}
}
