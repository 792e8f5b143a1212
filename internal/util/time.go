package util

import (
	"time"
)

// Timestamp layouts accepted in exported payloads. Backends disagree
// on sub-second precision, so both RFC3339 variants are tried.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseTimestamp parses an event timestamp, returning the zero time
// when no layout matches.
func ParseTimestamp(value string) time.Time {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
