package models

import "time"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// ParseTime parses the date formats the spreadsheet emits. Unparseable or
// empty values yield the zero time so sorts push them last instead of failing.
func ParseTime(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
