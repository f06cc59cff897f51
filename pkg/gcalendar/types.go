package gcalendar

import (
	"context"
	"time"
)

// Calendar is the subset of the Calendar API the planner mirrors saved tasks into.
type Calendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Berlin"

	// AllDay creates a date-only event spanning StartTime's calendar day.
	AllDay bool
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
	AllDay    bool
}
