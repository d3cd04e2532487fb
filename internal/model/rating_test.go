package model

import "testing"

func TestRatingColor(t *testing.T) {
	want := map[string]string{
		"Excellent":                        "darkgreen",
		"Exceeding NQS":                    "green",
		"Meeting NQS":                      "blue",
		"Working Towards NQS":              "orange",
		"Significant Improvement Required": "red",
		NotRated:                           "gray",
	}
	for name, color := range want {
		if got := RatingColor(name); got != color {
			t.Errorf("RatingColor(%q) = %q, want %q", name, got, color)
		}
	}
}

func TestRatingColor_Fallback(t *testing.T) {
	for _, name := range []string{"Provisional", "meeting nqs", "??", ""} {
		if got := RatingColor(name); got != FallbackColor {
			t.Errorf("RatingColor(%q) = %q, want fallback", name, got)
		}
	}
}

func TestAllRatings_Order(t *testing.T) {
	if len(AllRatings) != 6 {
		t.Fatalf("expected 6 canonical ratings, got %d", len(AllRatings))
	}
	if AllRatings[0].Name != "Excellent" || AllRatings[len(AllRatings)-1].Name != NotRated {
		t.Errorf("canonical order broken: %q ... %q", AllRatings[0].Name, AllRatings[len(AllRatings)-1].Name)
	}
}

func TestColorSwatches(t *testing.T) {
	sw := ColorSwatches()
	if sw[FallbackColor] == "" {
		t.Fatal("fallback color has no swatch")
	}
	for _, r := range AllRatings {
		if sw[r.Color] != r.Swatch {
			t.Errorf("swatch mismatch for %s", r.Color)
		}
	}
}
