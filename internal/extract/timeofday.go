package extract

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	confTimeRangeStart   float32 = 0.85 // start carries its own am/pm
	confTimeRangeEnd     float32 = 0.80
	confTimeRangeNoMer   float32 = 0.75 // start inherits the end's am/pm
	confTime12           float32 = 0.85
	confTime12NoMinutes  float32 = 0.70
	confTime24           float32 = 0.60 // no am/pm at all
)

var (
	// "7-9pm", "7:00 PM - 9:00 PM", "7pm to 10pm". The closing am/pm is
	// required so date-like spans ("July 20-21") are not consumed.
	reTimeRange = regexp.MustCompile(
		`(?i)\b(\d{1,2})(?::([0-5]\d))?\s*(am|pm)?\s*(?:-|–|—|to)\s*(\d{1,2})(?::([0-5]\d))?\s*(am|pm)\b`)

	reTime12 = regexp.MustCompile(`(?i)\b(\d{1,2})(?::([0-5]\d))?\s*(am|pm)\b`)

	reTime24 = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)

	reTrailingMeridiem = regexp.MustCompile(`(?i)^\s*(?:am|pm)`)
)

type timeMatcher func(ln Line) []Candidate

var timeMatchers = []timeMatcher{
	matchTimeRange,
	matchTime12,
	matchTime24,
}

// matchTimeRange emits a start-time candidate plus an implicit end-time
// candidate for spans like "7-9pm".
func matchTimeRange(ln Line) []Candidate {
	var out []Candidate
	for _, m := range reTimeRange.FindAllStringSubmatch(ln.Text, -1) {
		startMer := m[3]
		endMer := m[6]
		if startMer == "" {
			startMer = endMer
		}

		start, ok := clockFrom(m[1], m[2], startMer)
		if !ok {
			continue
		}
		end, ok := clockFrom(m[4], m[5], endMer)
		if !ok {
			continue
		}

		startConf := confTimeRangeStart
		if m[3] == "" {
			startConf = confTimeRangeNoMer
		}
		out = append(out,
			Candidate{Kind: KindTime, Raw: m[0], Line: ln.Index, Confidence: startConf, Clock: start},
			Candidate{Kind: KindEndTime, Raw: m[0], Line: ln.Index, Confidence: confTimeRangeEnd, Clock: end},
		)
	}
	return out
}

func matchTime12(ln Line) []Candidate {
	var out []Candidate
	for _, m := range reTime12.FindAllStringSubmatch(ln.Text, -1) {
		clock, ok := clockFrom(m[1], m[2], m[3])
		if !ok {
			continue
		}
		conf := confTime12
		if m[2] == "" {
			conf = confTime12NoMinutes
		}
		out = append(out, Candidate{
			Kind: KindTime, Raw: m[0], Line: ln.Index, Confidence: conf, Clock: clock,
		})
	}
	return out
}

// matchTime24 handles bare HH:MM. Skips matches that are followed by an
// am/pm marker; those belong to the 12-hour matcher.
func matchTime24(ln Line) []Candidate {
	var out []Candidate
	for _, idx := range reTime24.FindAllStringSubmatchIndex(ln.Text, -1) {
		if reTrailingMeridiem.MatchString(ln.Text[idx[1]:]) {
			continue
		}
		clock, ok := clockFrom(ln.Text[idx[2]:idx[3]], ln.Text[idx[4]:idx[5]], "")
		if !ok {
			continue
		}
		out = append(out, Candidate{
			Kind: KindTime, Raw: ln.Text[idx[0]:idx[1]], Line: ln.Index,
			Confidence: confTime24, Clock: clock,
		})
	}
	return out
}

// clockFrom parses hour/minute strings plus an optional meridiem into a
// ClockTime. An empty meridiem means 24-hour reading.
func clockFrom(hourStr, minStr, meridiem string) (ClockTime, bool) {
	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return ClockTime{}, false
	}
	minute := 0
	if minStr != "" {
		minute, err = strconv.Atoi(minStr)
		if err != nil {
			return ClockTime{}, false
		}
	}
	if minute > 59 {
		return ClockTime{}, false
	}

	switch strings.ToLower(meridiem) {
	case "":
		if hour > 23 {
			return ClockTime{}, false
		}
	case "am":
		if hour < 1 || hour > 12 {
			return ClockTime{}, false
		}
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour < 1 || hour > 12 {
			return ClockTime{}, false
		}
		if hour < 12 {
			hour += 12
		}
	default:
		return ClockTime{}, false
	}
	return ClockTime{Hour: hour, Minute: minute}, true
}
