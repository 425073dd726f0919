package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Confidence assigned per date pattern. Unambiguous formats score high;
// year-less and ambiguous numeric forms score low on purpose so the
// resolver has to defend the pick.
const (
	confDateISO         float32 = 0.95
	confDateMonthYear   float32 = 0.90
	confDateNumericYear float32 = 0.75
	confDateMonthNoYear float32 = 0.60
	confDateBareNumeric float32 = 0.55
)

var (
	reISODate = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)

	reMonthNameDate = regexp.MustCompile(
		`(?i)\b(jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s*(\d{4})?\b`)

	reNumericDate = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4}|\d{2})\b`)

	reBareNumericDate = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)

	reWeekday = regexp.MustCompile(`(?i)\b(sunday|monday|tuesday|wednesday|thursday|friday|saturday)\b`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var weekdaysByName = map[string]time.Weekday{
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday,
	"friday": time.Friday, "saturday": time.Saturday,
}

type dateMatcher func(ln Line, now time.Time) []Candidate

// Ordered: unambiguous formats first. Each matcher is independent and may
// return zero candidates.
var dateMatchers = []dateMatcher{
	matchISODate,
	matchMonthNameDate,
	matchNumericDate,
	matchBareNumericDate,
}

func matchISODate(ln Line, _ time.Time) []Candidate {
	var out []Candidate
	for _, m := range reISODate.FindAllStringSubmatch(ln.Text, -1) {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		dt, ok := makeDate(year, time.Month(month), day)
		if !ok {
			continue
		}
		out = append(out, Candidate{
			Kind: KindDate, Raw: m[0], Line: ln.Index,
			Confidence: confDateISO, Date: dt,
		})
	}
	return out
}

func matchMonthNameDate(ln Line, now time.Time) []Candidate {
	var out []Candidate
	for _, m := range reMonthNameDate.FindAllStringSubmatch(ln.Text, -1) {
		month, ok := monthFromName(m[1])
		if !ok {
			continue
		}
		day, _ := strconv.Atoi(m[2])

		if m[3] != "" {
			year, _ := strconv.Atoi(m[3])
			dt, ok := makeDate(year, month, day)
			if !ok {
				continue
			}
			out = append(out, Candidate{
				Kind: KindDate, Raw: m[0], Line: ln.Index,
				Confidence: confDateMonthYear, Date: dt,
			})
			continue
		}

		dt, ok := nextOccurrence(month, day, now)
		if !ok {
			continue
		}
		out = append(out, Candidate{
			Kind: KindDate, Raw: m[0], Line: ln.Index,
			Confidence: confDateMonthNoYear, Date: dt,
		})
	}
	return out
}

func matchNumericDate(ln Line, _ time.Time) []Candidate {
	var out []Candidate
	for _, m := range reNumericDate.FindAllStringSubmatch(ln.Text, -1) {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		dt, ok := makeDate(year, time.Month(month), day)
		if !ok {
			continue
		}
		out = append(out, Candidate{
			Kind: KindDate, Raw: m[0], Line: ln.Index,
			Confidence: confDateNumericYear, Date: dt,
		})
	}
	return out
}

// matchBareNumericDate handles year-less M/D tokens. The day/month order is
// genuinely ambiguous (3/4 may be March 4 or April 3), so both readings are
// emitted at equal, low confidence and the resolver breaks the tie.
func matchBareNumericDate(ln Line, now time.Time) []Candidate {
	var out []Candidate
	for _, idx := range reBareNumericDate.FindAllStringSubmatchIndex(ln.Text, -1) {
		if adjacentToDateRun(ln.Text, idx[0], idx[1]) {
			continue
		}
		raw := ln.Text[idx[0]:idx[1]]
		first, _ := strconv.Atoi(ln.Text[idx[2]:idx[3]])
		second, _ := strconv.Atoi(ln.Text[idx[4]:idx[5]])

		if dt, ok := nextOccurrence(time.Month(first), second, now); ok && first <= 12 {
			out = append(out, Candidate{
				Kind: KindDate, Raw: raw, Line: ln.Index,
				Confidence: confDateBareNumeric, Date: dt,
			})
		}
		if first != second && second <= 12 {
			if dt, ok := nextOccurrence(time.Month(second), first, now); ok {
				out = append(out, Candidate{
					Kind: KindDate, Raw: raw, Line: ln.Index,
					Confidence: confDateBareNumeric, Date: dt,
				})
			}
		}
	}
	return out
}

// adjacentToDateRun reports whether an M/D match is really part of a longer
// M/D/Y token (which the numeric matcher already handled).
func adjacentToDateRun(s string, start, end int) bool {
	if start > 0 {
		prev := s[start-1]
		if prev == '/' || (prev >= '0' && prev <= '9') {
			return true
		}
	}
	if end < len(s) {
		next := s[end]
		if next == '/' || (next >= '0' && next <= '9') {
			return true
		}
	}
	return false
}

func monthFromName(name string) (time.Month, bool) {
	name = strings.ToLower(strings.TrimSuffix(name, "."))
	if len(name) < 3 {
		return 0, false
	}
	m, ok := monthsByPrefix[name[:3]]
	return m, ok
}

// WeekdayHints collects standalone weekday mentions from the text. The
// resolver uses them to break day/month order ties: the reading whose
// weekday matches a mentioned name wins.
func WeekdayHints(lines []Line) []time.Weekday {
	var out []time.Weekday
	seen := map[time.Weekday]bool{}
	for _, ln := range lines {
		for _, m := range reWeekday.FindAllString(ln.Text, -1) {
			wd, ok := weekdaysByName[strings.ToLower(m)]
			if !ok || seen[wd] {
				continue
			}
			seen[wd] = true
			out = append(out, wd)
		}
	}
	return out
}
