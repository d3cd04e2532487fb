package normalize

import "testing"

func TestAddress(t *testing.T) {
	cases := []struct {
		name                                 string
		line1, line2, suburb, state, pc, want string
	}{
		{"full", "12 Oak St", "", "Perth", "WA", "6000", "12 Oak St, Perth WA 6000"},
		{"both lines", "Unit 3", "12 Oak St", "Perth", "WA", "6000", "Unit 3, 12 Oak St, Perth WA 6000"},
		{"tail only", "", "", "Perth", "WA", "6000", "Perth WA 6000"},
		{"no postcode", "12 Oak St", "", "Perth", "WA", "", "12 Oak St, Perth WA"},
		{"all empty", "", "", "", "", "", ""},
		{"whitespace collapsed", "12 Oak St", "", "  South   Perth ", " WA ", "6151", "12 Oak St, South Perth WA 6151"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Address(c.line1, c.line2, c.suburb, c.state, c.pc)
			if got != c.want {
				t.Errorf("Address = %q, want %q", got, c.want)
			}
		})
	}
}
