package extract

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reBoxNoise   = regexp.MustCompile(`^[_\-=~]{3,}$`)

	// Word runs of digits and their common OCR look-alikes. A run qualifies
	// for correction only when it already contains at least one real digit.
	reDigitRun = regexp.MustCompile(`\b[0-9OoIlSs]*[0-9][0-9OoIlSs]*\b`)
)

// Fixed confusion table, applied only inside digit-heavy runs so ordinary
// words are left alone.
var confusables = map[rune]rune{
	'O': '0',
	'o': '0',
	'I': '1',
	'l': '1',
	'S': '5',
	's': '5',
}

// Normalize splits raw OCR output into trimmed, non-empty lines and fixes
// common digit/letter confusions inside digit-heavy runs. The original line
// index of each surviving line is preserved. Never fails: empty or
// all-whitespace input yields an empty slice.
func Normalize(raw string) []Line {
	if raw == "" {
		return nil
	}
	s := reCRLF.ReplaceAllString(raw, "\n")
	s = reTabs.ReplaceAllString(s, " ")

	rawLines := strings.Split(s, "\n")
	out := make([]Line, 0, len(rawLines))
	for i, ln := range rawLines {
		ln = strings.TrimSpace(ln)
		ln = reMultiSpace.ReplaceAllString(ln, " ")
		if ln == "" || reBoxNoise.MatchString(ln) {
			continue
		}
		ln = reDigitRun.ReplaceAllStringFunc(ln, fixDigitRun)
		out = append(out, Line{Index: i, Text: ln})
	}
	return out
}

func fixDigitRun(run string) string {
	digits := 0
	for _, r := range run {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	// only rewrite runs that are mostly digits already
	if digits*2 < len(run) {
		return run
	}
	return strings.Map(func(r rune) rune {
		if fixed, ok := confusables[r]; ok {
			return fixed
		}
		return r
	}, run)
}
