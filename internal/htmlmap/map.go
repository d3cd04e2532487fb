// Package htmlmap assembles the record groups into a single
// self-contained Leaflet document: clustered, color-coded markers with
// rich popups, one togglable layer per group, a fixed rating legend and
// a viewport fitted to the data.
package htmlmap

import (
	"time"

	"nqsmap/internal/facet"
	"nqsmap/internal/model"
)

// EmptyDatasetError reports that no record survived coordinate
// validation, so there is nothing to plot.
type EmptyDatasetError struct{}

func (*EmptyDatasetError) Error() string {
	return "no records with valid coordinates to plot"
}

// Marker is one rendered point. Popup is pre-rendered HTML and empty in
// fast mode.
type Marker struct {
	ID      string  `json:"id"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Tooltip string  `json:"tooltip"`
	Color   string  `json:"color"`
	Popup   string  `json:"popup,omitempty"`
}

// Layer is one togglable group of markers. All layers feed the same
// cluster, so zoomed-out views merge nearby markers across groups.
type Layer struct {
	Name    string   `json:"name"`
	Markers []Marker `json:"markers"`
}

// LegendEntry is one swatch row of the static rating legend.
type LegendEntry struct {
	Label  string
	Swatch string
}

// Options control document assembly.
type Options struct {
	Title       string
	Zoom        int
	Fast        bool
	Fullscreen  bool
	Search      bool
	Locate      bool
	BuildID     string
	GeneratedAt time.Time
}

// Document is the fully assembled map, ready to render.
type Document struct {
	Options

	CenterLat float64
	CenterLng float64
	MinLat    float64
	MinLng    float64
	MaxLat    float64
	MaxLng    float64

	Layers   []Layer
	Legend   []LegendEntry
	Swatches map[string]string

	MarkerCount int
}

// Assemble builds the document from the faceted groups: one layer per
// group, viewport centered on the coordinate mean and bounded by the
// min/max box. Returns EmptyDatasetError when the groups hold no records.
func Assemble(groups []facet.Group, opts Options) (*Document, error) {
	doc := &Document{
		Options:  opts,
		Legend:   legend(),
		Swatches: model.ColorSwatches(),
	}

	var sumLat, sumLng float64
	first := true
	for _, g := range groups {
		layer := Layer{Name: g.Name, Markers: make([]Marker, 0, len(g.Records))}
		for i := range g.Records {
			r := &g.Records[i]

			sumLat += r.Lat
			sumLng += r.Lng
			if first || r.Lat < doc.MinLat {
				doc.MinLat = r.Lat
			}
			if first || r.Lat > doc.MaxLat {
				doc.MaxLat = r.Lat
			}
			if first || r.Lng < doc.MinLng {
				doc.MinLng = r.Lng
			}
			if first || r.Lng > doc.MaxLng {
				doc.MaxLng = r.Lng
			}
			first = false

			m := Marker{
				ID:      r.StableID,
				Lat:     r.Lat,
				Lng:     r.Lng,
				Tooltip: r.ServiceName,
				Color:   r.Color,
			}
			if !opts.Fast {
				popup, err := Popup(r)
				if err != nil {
					return nil, err
				}
				m.Popup = popup
			}
			layer.Markers = append(layer.Markers, m)
			doc.MarkerCount++
		}
		doc.Layers = append(doc.Layers, layer)
	}

	if doc.MarkerCount == 0 {
		return nil, &EmptyDatasetError{}
	}
	doc.CenterLat = sumLat / float64(doc.MarkerCount)
	doc.CenterLng = sumLng / float64(doc.MarkerCount)
	return doc, nil
}

// legend returns the fixed six-entry rating legend. The Not Rated swatch
// doubles for unrecognized rating literals, which share its color.
func legend() []LegendEntry {
	entries := make([]LegendEntry, 0, len(model.AllRatings))
	for _, r := range model.AllRatings {
		label := r.Name
		if r.Name == model.NotRated {
			label = "Not Rated / Unknown"
		}
		entries = append(entries, LegendEntry{Label: label, Swatch: r.Swatch})
	}
	return entries
}
