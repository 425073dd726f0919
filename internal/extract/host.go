package extract

import "regexp"

const (
	confHostPresenter float32 = 0.60 // "presented by" / "hosted by"
	confHostBilling   float32 = 0.50 // "DJ" / "featuring"
)

var (
	reHostPresenter = regexp.MustCompile(`(?i)\b(?:presented by|hosted by)\s+([A-Za-z0-9&'. -]{2,})`)
	reHostBilling   = regexp.MustCompile(`(?i)\b(?:dj|featuring|feat\.?)\s+([A-Za-z0-9&'. -]{2,})`)
)

type hostMatcher func(ln Line) []Candidate

var hostMatchers = []hostMatcher{
	matchHostPresenter,
	matchHostBilling,
}

func matchHostPresenter(ln Line) []Candidate {
	return hostsFrom(ln, reHostPresenter, confHostPresenter)
}

func matchHostBilling(ln Line) []Candidate {
	return hostsFrom(ln, reHostBilling, confHostBilling)
}

func hostsFrom(ln Line, re *regexp.Regexp, conf float32) []Candidate {
	var out []Candidate
	for _, m := range re.FindAllStringSubmatch(ln.Text, -1) {
		name := cleanPhrase(m[1])
		if name == "" {
			continue
		}
		out = append(out, Candidate{
			Kind: KindHost, Raw: name, Line: ln.Index, Confidence: conf,
		})
	}
	return out
}
