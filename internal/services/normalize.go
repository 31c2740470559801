package services

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"campusevents/internal/domain"
)

// dateLayout is the wire format for event calendar dates.
const dateLayout = "2006-01-02"

// timeOfDayRegex matches a zero-padded 24-hour "HH:MM" string.
var timeOfDayRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// NormalizeEvent converts an event's date and time-of-day fields into a
// timeline entry with UTC start and end instants. The instants are built from
// the parsed date's own calendar fields, never by re-parsing a re-serialized
// string, so a UTC-parsed date cannot shift to an adjacent local day.
// EndTime lexically before StartTime means the range crosses midnight and the
// end instant lands on the next day. A missing or malformed time-of-day still
// yields a valid entry, anchored at midnight and flagged TimeTBD. Only an
// unparseable date is an error; callers drop such records and keep going.
func NormalizeEvent(e *domain.Event) (*domain.TimelineEntry, error) {
	day, err := time.Parse(dateLayout, e.Date)
	if err != nil {
		return nil, fmt.Errorf("parse event date %q: %w", e.Date, err)
	}
	y, m, d := day.Date()

	entry := &domain.TimelineEntry{Title: e.Title, Event: e}

	startOK := timeOfDayRegex.MatchString(e.StartTime)
	endOK := timeOfDayRegex.MatchString(e.EndTime)

	if startOK {
		hh, mm := splitTimeOfDay(e.StartTime)
		entry.StartsAt = time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
	} else {
		entry.StartsAt = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	if startOK && endOK {
		hh, mm := splitTimeOfDay(e.EndTime)
		entry.EndsAt = time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
		if e.EndTime < e.StartTime {
			// Lexical HH:MM comparison: the event spans midnight.
			entry.EndsAt = entry.EndsAt.AddDate(0, 0, 1)
		}
	} else {
		entry.TimeTBD = true
		entry.EndsAt = entry.StartsAt
	}

	return entry, nil
}

// splitTimeOfDay assumes s already matched timeOfDayRegex.
func splitTimeOfDay(s string) (hour, minute int) {
	hour, _ = strconv.Atoi(s[:2])
	minute, _ = strconv.Atoi(s[3:])
	return hour, minute
}
