// Package calendar maps assembled event records onto the Google Calendar
// API boundary and submits them.
package calendar

import (
	"time"

	"github.com/flyercal-app/flyercal/internal/extract"
)

// UnknownLocation is the placeholder presented to the calendar when no
// location resolved. It exists only at this boundary; EventRecord keeps
// absence as absence.
const UnknownLocation = "TBD"

// EventPayload is the external-API-shaped event, derived one-way from an
// EventRecord and never mapped back.
type EventPayload struct {
	Summary     string
	Location    string
	Description string

	// All-day events carry bare dates; timed events carry zoned instants.
	AllDay    bool
	StartDate string // 2006-01-02
	EndDate   string
	Start     time.Time
	End       time.Time
	TimeZone  string
}

// BuildPayload maps an EventRecord into the calendar payload shape. Pure
// and deterministic: no I/O, identical inputs yield identical payloads.
// The time zone comes from configuration, never from flyer text.
func BuildPayload(rec extract.EventRecord, loc *time.Location) EventPayload {
	if loc == nil {
		loc = time.UTC
	}

	p := EventPayload{
		Summary:     rec.Title,
		Location:    rec.Location,
		Description: describe(rec),
		AllDay:      rec.AllDay,
		TimeZone:    loc.String(),
	}
	if p.Location == "" {
		p.Location = UnknownLocation
	}

	if rec.AllDay {
		p.StartDate = rec.StartDate.Format("2006-01-02")
		p.EndDate = rec.EndDate.Format("2006-01-02")
		return p
	}

	p.Start = atClock(rec.StartDate, *rec.StartTime, loc)
	p.End = atClock(rec.EndDate, *rec.EndTime, loc)
	return p
}

func atClock(date time.Time, clock extract.ClockTime, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, clock.Hour, clock.Minute, 0, 0, loc)
}

func describe(rec extract.EventRecord) string {
	desc := rec.Description
	if rec.Hosts != "" {
		if desc != "" {
			desc += "\n\n"
		}
		desc += "Hosts: " + rec.Hosts
	}
	return desc
}
