package extract

import "time"

// Scan runs every matcher list over the normalized lines and collects all
// field candidates. Matchers are independent; overlapping matches are
// allowed and left for the resolver to rank. No match for a field kind is
// not a failure - absence is a valid outcome.
func Scan(lines []Line, now time.Time) []Candidate {
	var out []Candidate

	out = append(out, titleCandidates(lines)...)
	for _, ln := range lines {
		for _, match := range dateMatchers {
			out = append(out, match(ln, now)...)
		}
		for _, match := range timeMatchers {
			out = append(out, match(ln)...)
		}
		for _, match := range locationMatchers {
			out = append(out, match(ln)...)
		}
		for _, match := range hostMatchers {
			out = append(out, match(ln)...)
		}
	}

	for i := range out {
		out[i].Confidence = clampConfidence(out[i].Confidence)
	}
	return out
}
