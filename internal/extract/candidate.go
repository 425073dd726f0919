package extract

import (
	"fmt"
	"time"
)

// Kind identifies the semantic field a candidate was extracted for.
type Kind string

const (
	KindTitle    Kind = "title"
	KindDate     Kind = "date"
	KindTime     Kind = "time"
	KindEndTime  Kind = "end_time"
	KindLocation Kind = "location"
	KindHost     Kind = "host"
)

// Line is one logical line of normalized OCR text. Index is the position of
// the line in the raw OCR output, counted before empty lines were dropped,
// so positional heuristics (title-is-first-line) keep working.
type Line struct {
	Index int
	Text  string
}

// ClockTime is a time of day without a date or zone.
type ClockTime struct {
	Hour   int
	Minute int
}

// Minutes returns minutes since midnight.
func (c ClockTime) Minutes() int { return c.Hour*60 + c.Minute }

func (c ClockTime) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// ParseClock parses the stored "15:04" form back into a ClockTime.
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return ClockTime{}, fmt.Errorf("bad clock %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ClockTime{}, fmt.Errorf("clock out of range: %q", s)
	}
	return ClockTime{Hour: h, Minute: m}, nil
}

// Candidate is one plausible extracted value for a field, with a heuristic
// confidence in [0,1]. Candidates are immutable once produced by a matcher;
// resolution selects among them and never edits them.
type Candidate struct {
	Kind       Kind
	Raw        string // matched substring (cleaned value for text kinds)
	Line       int    // source line index, used as a salience tie-break
	Confidence float32

	// Parsed value, populated per kind.
	Date  time.Time // date candidates: midnight, zone-free
	Clock ClockTime // time and end-time candidates
}

// makeDate builds a zone-free date and rejects values that the calendar
// normalizes away (Feb 30 and the like).
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return time.Time{}, false
	}
	dt := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if dt.Month() != month || dt.Day() != day {
		return time.Time{}, false
	}
	return dt, true
}

// dateOnly strips the time-of-day and zone from a reference instant.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// nextOccurrence resolves a year-less month/day against the reference time:
// this year if the date has not passed yet, otherwise next year.
func nextOccurrence(month time.Month, day int, now time.Time) (time.Time, bool) {
	dt, ok := makeDate(now.Year(), month, day)
	if !ok {
		return time.Time{}, false
	}
	if dt.Before(dateOnly(now)) {
		next, ok := makeDate(now.Year()+1, month, day)
		if !ok {
			// Feb 29 with no occurrence next year
			return time.Time{}, false
		}
		dt = next
	}
	return dt, true
}

func clampConfidence(c float32) float32 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
