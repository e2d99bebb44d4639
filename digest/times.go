package digest

import (
	"fmt"
	"time"
)

// TimeParseError reports an event timestamp that no known layout matched.
type TimeParseError struct {
	Value string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("unparseable timestamp %q", e.Value)
}

// Layouts the schedule API has been seen to emit. Zoneless layouts are
// interpreted as UTC.
var zonedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
}

var zonelessLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseEventTime parses an event timestamp and converts it to loc for
// display. Timestamps without an explicit offset are taken as UTC.
func ParseEventTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, &TimeParseError{Value: value}
}
