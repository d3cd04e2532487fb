package model

// NotRated is the normalized rating for services with a blank overall rating.
const NotRated = "Not Rated"

// FallbackColor is the marker color for rating literals outside the
// canonical set.
const FallbackColor = "gray"

// Rating describes one canonical overall-rating literal: its marker color
// token (Leaflet.awesome-markers palette) and the hex swatch used in the
// legend and in bulk-render mode.
type Rating struct {
	Name   string
	Color  string
	Swatch string
}

// AllRatings lists the canonical overall ratings in display order,
// best to worst, with Not Rated last.
var AllRatings = []Rating{
	{Name: "Excellent", Color: "darkgreen", Swatch: "#1e5a3a"},
	{Name: "Exceeding NQS", Color: "green", Swatch: "#2e8b57"},
	{Name: "Meeting NQS", Color: "blue", Swatch: "#3388ff"},
	{Name: "Working Towards NQS", Color: "orange", Swatch: "#f39c12"},
	{Name: "Significant Improvement Required", Color: "red", Swatch: "#d9534f"},
	{Name: NotRated, Color: FallbackColor, Swatch: "#9e9e9e"},
}

// RatingColor returns the marker color for a normalized rating.
// Unrecognized literals map to FallbackColor.
func RatingColor(name string) string {
	for _, r := range AllRatings {
		if r.Name == name {
			return r.Color
		}
	}
	return FallbackColor
}

// RatingByName returns the Rating for the given literal, or ok=false.
func RatingByName(name string) (Rating, bool) {
	for _, r := range AllRatings {
		if r.Name == name {
			return r, true
		}
	}
	return Rating{}, false
}

// ColorSwatches maps each marker color token to its hex swatch.
func ColorSwatches() map[string]string {
	m := make(map[string]string, len(AllRatings))
	for _, r := range AllRatings {
		m[r.Color] = r.Swatch
	}
	return m
}
