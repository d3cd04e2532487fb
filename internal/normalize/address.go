package normalize

import (
	"regexp"
	"strings"
)

var multiSpace = regexp.MustCompile(`\s+`)

// collapse trims the input and squeezes internal whitespace runs to a
// single space.
func collapse(s string) string {
	return multiSpace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// Address assembles a display address from its components. The two
// address lines stand alone; suburb, state and postcode are space-joined
// into one trailing segment. Empty components are skipped, so the result
// never contains dangling commas or doubled spaces. All components empty
// yields "".
func Address(line1, line2, suburb, state, postcode string) string {
	var parts []string
	for _, p := range []string{line1, line2} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	var tail []string
	for _, p := range []string{suburb, state, postcode} {
		if p = collapse(p); p != "" {
			tail = append(tail, p)
		}
	}
	if len(tail) > 0 {
		parts = append(parts, strings.Join(tail, " "))
	}

	return strings.Join(parts, ", ")
}
