package utils

import (
	"strconv"
	"time"
)

// fechaLayouts are the accepted formats for the fecha query parameter,
// tried in order
var fechaLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseID converts a path segment to an int64 id
func ParseID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

// ParseFecha parses a date query parameter. Returns the zero time
// when the value matches no accepted layout.
func ParseFecha(value string) (time.Time, bool) {
	for _, layout := range fechaLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
