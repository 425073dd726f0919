package extract

import (
	"regexp"
	"strings"
)

const (
	confLocationAddress   float32 = 0.80 // street-number pattern present
	confLocationAtVenue   float32 = 0.70 // "at"/"@" plus a venue-indicator word
	confLocationAt        float32 = 0.55 // "at"/"@" plus a capitalized phrase
	confLocationVenueLine float32 = 0.40 // venue-indicator word alone
)

var (
	reStreetAddress = regexp.MustCompile(
		`(?i)\b\d+\s+[A-Za-z0-9'. -]+?\s(street|st|avenue|ave|road|rd|boulevard|blvd|lane|ln|drive|dr|court|ct|plaza|square|sq|parkway|pkwy|broadway|highway|hwy)\b`)

	// Capitalized start keeps "doors at 8pm" out of the location pool.
	reAtVenue = regexp.MustCompile(`(?:\b[aA][tT]\b|@)\s*([A-Z][A-Za-z0-9&'. -]{2,})`)

	reVenueWord = regexp.MustCompile(
		`(?i)\b(club|venue|bar|lounge|hall|center|centre|theatre|theater|arena|stadium|gallery|museum|cafe|restaurant|park|garden|library|church|school|ballroom|rooftop|brewery)\b`)

	reTrailingPunct = regexp.MustCompile(`[\s,.;:!-]+$`)
)

type locationMatcher func(ln Line) []Candidate

var locationMatchers = []locationMatcher{
	matchStreetAddress,
	matchAtVenue,
	matchVenueLine,
}

func matchStreetAddress(ln Line) []Candidate {
	var out []Candidate
	for _, m := range reStreetAddress.FindAllString(ln.Text, -1) {
		out = append(out, Candidate{
			Kind: KindLocation, Raw: cleanPhrase(m), Line: ln.Index,
			Confidence: confLocationAddress,
		})
	}
	return out
}

func matchAtVenue(ln Line) []Candidate {
	var out []Candidate
	for _, m := range reAtVenue.FindAllStringSubmatch(ln.Text, -1) {
		phrase := cleanPhrase(m[1])
		if phrase == "" {
			continue
		}
		conf := confLocationAt
		// cut the phrase right after the venue word; anything beyond it is
		// usually tagline text
		if loc := reVenueWord.FindStringIndex(phrase); loc != nil {
			phrase = cleanPhrase(phrase[:loc[1]])
			conf = confLocationAtVenue
		}
		out = append(out, Candidate{
			Kind: KindLocation, Raw: phrase, Line: ln.Index, Confidence: conf,
		})
	}
	return out
}

// matchVenueLine flags lines that mention a venue-indicator word without an
// "at" marker. Weak signal; the whole line becomes the candidate.
func matchVenueLine(ln Line) []Candidate {
	if !reVenueWord.MatchString(ln.Text) {
		return nil
	}
	if reAtVenue.MatchString(ln.Text) || reStreetAddress.MatchString(ln.Text) {
		// a stronger matcher already produced a candidate from this line
		return nil
	}
	return []Candidate{{
		Kind: KindLocation, Raw: cleanPhrase(ln.Text), Line: ln.Index,
		Confidence: confLocationVenueLine,
	}}
}

func cleanPhrase(s string) string {
	return reTrailingPunct.ReplaceAllString(strings.TrimSpace(s), "")
}
