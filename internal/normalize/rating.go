package normalize

import (
	"strings"

	"nqsmap/internal/model"
)

// Rating trims the raw overall rating and maps blanks to Not Rated.
// Anything else passes through verbatim: there is no fuzzy matching, and
// unrecognized literals keep their text but fall back to the gray marker.
func Rating(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.NotRated
	}
	return s
}
