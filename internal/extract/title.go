package extract

import (
	"strings"
	"unicode"
)

const (
	confTitleFirstLine  float32 = 0.50
	confTitleWordy      float32 = 0.55 // first line that reads like a headline
	confTitleAllCaps    float32 = 0.70 // flyers shout their titles
	maxShoutingWords            = 8
)

// titleCandidates applies positional heuristics over the whole line set:
// the first non-empty line is the primary candidate, and short all-caps
// lines (a text-only stand-in for large print) get elevated confidence.
func titleCandidates(lines []Line) []Candidate {
	var out []Candidate
	for i, ln := range lines {
		if i == 0 {
			conf := confTitleFirstLine
			if len(strings.Fields(ln.Text)) > 2 && len(ln.Text) > 10 {
				conf = confTitleWordy
			}
			out = append(out, Candidate{
				Kind: KindTitle, Raw: ln.Text, Line: ln.Index, Confidence: conf,
			})
		}
		if i > 0 && isShouting(ln.Text) {
			out = append(out, Candidate{
				Kind: KindTitle, Raw: ln.Text, Line: ln.Index, Confidence: confTitleAllCaps,
			})
		}
	}
	return out
}

// isShouting reports whether a line is entirely upper-case letters, short
// enough to be a headline, and free of digits (dates, times and addresses
// carry digits and should not win the title).
func isShouting(s string) bool {
	letters := 0
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			if !unicode.IsUpper(r) {
				return false
			}
			letters++
		case unicode.IsDigit(r):
			return false
		}
	}
	if letters < 4 {
		return false
	}
	return len(strings.Fields(s)) <= maxShoutingWords
}
