package extract

import "time"

const (
	// DefaultTitle is used when no title candidate resolved.
	DefaultTitle = "Untitled Event"
	// DefaultDuration is applied when a start time is known but no end
	// time was found.
	DefaultDuration = time.Hour

	minutesPerDay = 24 * 60
)

// EventRecord is the assembled extraction result. It is always fully
// populated: title and start date fall back to defaults, optional fields
// stay zero when absent. Location deliberately has no placeholder here -
// presentation defaults like "TBD" belong to the payload boundary.
type EventRecord struct {
	Title     string
	StartDate time.Time // zone-free date at midnight
	EndDate   time.Time
	StartTime *ClockTime // nil means all-day
	EndTime   *ClockTime
	AllDay    bool

	Location    string
	Hosts       string
	Description string

	// Confidence summarizes the required fields: the minimum of the title
	// and date confidences, with 0 substituted for unresolved ones. Time
	// and location are optional and do not gate the summary.
	Confidence float32
}

// Assemble merges resolved fields into an EventRecord, applying defaults
// for everything unresolved. Never fails.
func Assemble(res Resolution, now time.Time) EventRecord {
	rec := EventRecord{Title: DefaultTitle}

	var titleConf, dateConf float32
	if c, ok := res[KindTitle]; ok {
		rec.Title = c.Raw
		titleConf = c.Confidence
	}

	if c, ok := res[KindDate]; ok {
		rec.StartDate = c.Date
		dateConf = c.Confidence
	} else {
		rec.StartDate = dateOnly(now)
	}
	rec.EndDate = rec.StartDate

	if c, ok := res[KindTime]; ok {
		start := c.Clock
		rec.StartTime = &start
		end, nextDay := endOf(start, res)
		rec.EndTime = &end
		if nextDay {
			rec.EndDate = rec.StartDate.AddDate(0, 0, 1)
		}
	} else {
		rec.AllDay = true
	}

	if c, ok := res[KindLocation]; ok {
		rec.Location = c.Raw
	}
	if c, ok := res[KindHost]; ok {
		rec.Hosts = c.Raw
	}

	rec.Confidence = titleConf
	if dateConf < titleConf {
		rec.Confidence = dateConf
	}
	return rec
}

// endOf picks the resolved end time when a range produced one, else start
// plus the default duration. The second return reports midnight roll-over.
func endOf(start ClockTime, res Resolution) (ClockTime, bool) {
	if c, ok := res[KindEndTime]; ok {
		return c.Clock, c.Clock.Minutes() <= start.Minutes()
	}
	mins := start.Minutes() + int(DefaultDuration.Minutes())
	if mins >= minutesPerDay {
		mins -= minutesPerDay
		return ClockTime{Hour: mins / 60, Minute: mins % 60}, true
	}
	return ClockTime{Hour: mins / 60, Minute: mins % 60}, false
}
