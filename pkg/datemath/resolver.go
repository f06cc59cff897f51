// Package datemath resolves relative due-date phrases such as "tomorrow" or
// "next friday" to a calendar day.
package datemath

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	inDurationRe = regexp.MustCompile(`^in (\d+|a|an|one) (day|week|month)s?$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Resolver maps phrases to the start of a day in its location.
type Resolver struct {
	loc *time.Location
}

// NewResolver returns a Resolver for loc. A nil loc means UTC.
func NewResolver(loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{loc: loc}
}

// Resolve returns midnight of the day the phrase points to, counted from base.
// ok is false for anything it does not recognize.
func (r *Resolver) Resolve(phrase string, base time.Time) (day time.Time, ok bool) {
	phrase = strings.Join(strings.Fields(strings.ToLower(phrase)), " ")
	today := r.startOfDay(base)

	switch phrase {
	case "today", "tonight":
		return today, true
	case "tomorrow":
		return today.AddDate(0, 0, 1), true
	case "next week":
		return today.AddDate(0, 0, 7), true
	case "end of week", "end of the week", "this weekend":
		return r.upcoming(today, time.Sunday, true), true
	case "end of month", "end of the month":
		return time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, r.loc), true
	}

	if m := inDurationRe.FindStringSubmatch(phrase); m != nil {
		n := 1
		if v, err := strconv.Atoi(m[1]); err == nil {
			n = v
		}
		switch m[2] {
		case "day":
			return today.AddDate(0, 0, n), true
		case "week":
			return today.AddDate(0, 0, 7*n), true
		default:
			return today.AddDate(0, n, 0), true
		}
	}

	if rest, found := strings.CutPrefix(phrase, "next "); found {
		if wd, ok := weekdays[rest]; ok {
			return r.upcoming(today, wd, false), true
		}
		return time.Time{}, false
	}

	rest := strings.TrimPrefix(phrase, "this ")
	rest = strings.TrimPrefix(rest, "on ")
	if wd, ok := weekdays[rest]; ok {
		return r.upcoming(today, wd, true), true
	}

	return time.Time{}, false
}

// upcoming finds the next wd after today, or today itself when inclusive.
func (r *Resolver) upcoming(today time.Time, wd time.Weekday, inclusive bool) time.Time {
	days := int(wd - today.Weekday())
	if days < 0 || (days == 0 && !inclusive) {
		days += 7
	}
	return today.AddDate(0, 0, days)
}

func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.loc)
}
