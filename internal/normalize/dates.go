package normalize

import (
	"strings"
	"time"
)

// Day-first date formats seen in ACECQA exports, e.g. "23/06/2021" or "1/01/2012".
var dateFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02/01/06",
	"2/1/06",
	"2006-01-02",
}

// ReportDate parses a day-first report date and returns it as an ISO 8601
// date string. Empty or unparseable input yields "".
func ReportDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, fmt := range dateFormats {
		if t, err := time.Parse(fmt, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}
