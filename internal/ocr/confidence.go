package ocr

import (
	"regexp"
	"strings"
)

var (
	reDateish = regexp.MustCompile(`\b(20\d{2})\b|\b\d{1,2}/\d{1,2}\b|\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\b`)
	reTimeish = regexp.MustCompile(`\b\d{1,2}(:\d{2})?\s*(am|pm)\b|\b([01]?\d|2[0-3]):[0-5]\d\b`)
	reVenuish = regexp.MustCompile(`\b(at|club|hall|center|centre|park|street|ave|theatre|theater)\b|@`)
)

func hasDatePattern(s string) bool  { return reDateish.MatchString(s) }
func hasTimePattern(s string) bool  { return reTimeish.MatchString(s) }
func hasVenuePattern(s string) bool { return reVenuish.MatchString(s) }

// naive heuristic confidence based on decoded text characteristics
func heuristicConfidence(txt string) float32 {
	// very simple: boost if we see common flyer artifacts
	// (date-ish, time-ish, venue-ish). Each adds a fixed bump.
	txtL := strings.ToLower(txt)
	score := float32(0.2) // base
	if hasDatePattern(txtL) {
		score += 0.2
	}
	if hasTimePattern(txtL) {
		score += 0.15
	}
	if hasVenuePattern(txtL) {
		score += 0.15
	}
	if len(txt) > 80 {
		score += 0.1
	} // enough content
	if score > 1.0 {
		score = 1.0
	}
	return score
}
