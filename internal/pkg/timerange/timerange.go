// Package timerange validates time-of-day ranges for section meetings.
package timerange

import (
	"fmt"
	"time"
)

// Accepted clock formats, tried in order. The date component is irrelevant:
// only the time of day is compared.
var layouts = []string{"15:04:05", "15:04", "3:04 PM", "3:04:05 PM"}

// ParseClock parses a time-of-day string such as "12:30:00" or "8:00 AM".
func ParseClock(value string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time of day: %q", value)
}

// IsValid reports whether startTime strictly precedes endTime as times of
// day. Unparseable values are invalid.
func IsValid(startTime, endTime string) bool {
	start, err := ParseClock(startTime)
	if err != nil {
		return false
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return false
	}
	return start.Before(end)
}
