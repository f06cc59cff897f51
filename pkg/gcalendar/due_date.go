package gcalendar

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseDueDate interprets a task due date. A bare date yields an all-day slot.
// Timestamps without an offset are read in loc.
func ParseDueDate(raw string, loc *time.Location) (t time.Time, allDay bool, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false, false
	}
	if loc == nil {
		loc = time.UTC
	}

	if d, err := time.ParseInLocation(dateLayout, raw, loc); err == nil {
		return d, true, true
	}
	for _, layout := range dateTimeLayouts {
		if d, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return d, false, true
		}
	}
	return time.Time{}, false, false
}
