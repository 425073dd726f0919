package extract

import (
	"sort"
	"time"
)

// Thresholds are the per-field minimum confidences a top-ranked candidate
// must clear to resolve. They are design parameters, tuned via
// configuration, never derived.
type Thresholds struct {
	Title    float32
	Date     float32
	Time     float32
	Location float32
	Host     float32
}

// DefaultThresholds returns the stock tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Title:    0.2,
		Date:     0.5,
		Time:     0.4,
		Location: 0.3,
		Host:     0.3,
	}
}

// For returns the threshold that applies to a field kind. End times share
// the time threshold.
func (t Thresholds) For(k Kind) float32 {
	switch k {
	case KindTitle:
		return t.Title
	case KindDate:
		return t.Date
	case KindTime, KindEndTime:
		return t.Time
	case KindLocation:
		return t.Location
	case KindHost:
		return t.Host
	}
	return 1
}

// Resolution maps each field kind to its chosen candidate. A missing key
// means no candidate cleared the threshold.
type Resolution map[Kind]Candidate

// Resolve ranks candidates per kind by confidence (descending) with the
// earlier source line as tie-break - earlier text is presumed more salient
// on a flyer - and selects the top candidate when it clears the per-kind
// threshold. Dates get an extra disambiguation pass for day/month order.
// Deterministic: identical inputs resolve identically; the only time
// dependence is the explicit now parameter.
func Resolve(cands []Candidate, hints []time.Weekday, now time.Time, th Thresholds) Resolution {
	byKind := make(map[Kind][]Candidate)
	for _, c := range cands {
		byKind[c.Kind] = append(byKind[c.Kind], c)
	}

	res := make(Resolution, len(byKind))
	for kind, list := range byKind {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Confidence != list[j].Confidence {
				return list[i].Confidence > list[j].Confidence
			}
			return list[i].Line < list[j].Line
		})

		top := list[0]
		if kind == KindDate {
			top = pickDate(list, hints, now)
		}
		if top.Confidence >= th.For(kind) {
			res[kind] = top
		}
	}
	return res
}

// pickDate applies the day/month ambiguity rules to the top confidence
// group: a reading whose weekday matches a weekday named elsewhere in the
// text wins outright; otherwise prefer the nearest reading that is not in
// the past relative to now.
func pickDate(sorted []Candidate, hints []time.Weekday, now time.Time) Candidate {
	top := sorted[0]
	today := dateOnly(now)

	for _, other := range sorted[1:] {
		if other.Confidence != top.Confidence {
			break
		}
		if !transposedDates(top.Date, other.Date) {
			continue
		}

		if wd, ok := matchesHint(hints, top.Date, other.Date); ok {
			if other.Date.Weekday() == wd && top.Date.Weekday() != wd {
				top = other
			}
			continue
		}

		topPast := top.Date.Before(today)
		otherPast := other.Date.Before(today)
		switch {
		case topPast && !otherPast:
			top = other
		case !topPast && !otherPast && other.Date.Before(top.Date):
			top = other
		}
	}
	return top
}

// transposedDates reports whether two dates differ only by swapping the
// day and month numbers (the 3/4 vs 4/3 case). Years may differ because
// year-less readings roll forward independently.
func transposedDates(a, b time.Time) bool {
	return int(a.Month()) == b.Day() && a.Day() == int(b.Month()) &&
		!(a.Month() == b.Month() && a.Day() == b.Day())
}

func matchesHint(hints []time.Weekday, a, b time.Time) (time.Weekday, bool) {
	for _, wd := range hints {
		if a.Weekday() == wd || b.Weekday() == wd {
			return wd, true
		}
	}
	return 0, false
}
