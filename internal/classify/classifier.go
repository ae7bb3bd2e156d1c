package classify

import (
	"net/url"
	"strings"
)

// Label is the per-page verdict category.
type Label string

const (
	LabelStudy       Label = "study"
	LabelDistraction Label = "distraction"
	LabelNeutral     Label = "neutral"
)

// Source identifies which rule produced a verdict.
type Source string

const (
	SourceDomainPrior   Source = "domain_prior"
	SourceTitleOverride Source = "title_override"
	SourceSemantic      Source = "semantic"
	SourceTrajectory    Source = "trajectory"
)

// Verdict is the result of classifying a single page view.
// Recomputed on every check; never persisted.
type Verdict struct {
	Label      Label
	Source     Source
	Confidence float64
}

// Classify maps a (domain, title) pair to a study/distraction/neutral verdict.
// Title keywords always override the domain prior: a known-distraction domain
// with a study title is study, and vice versa. Pure function of its inputs
// and the static reference tables in domains.go and keywords.go.
func Classify(domain, title string) Verdict {
	domain = NormalizeDomain(domain)
	prior, priorConf := domainPrior(domain)

	// Adult content short-circuits everything.
	if prior == LabelDistraction && priorConf >= 1.0 {
		return Verdict{Label: LabelDistraction, Source: SourceDomainPrior, Confidence: 1.0}
	}
	if adultTitle(title) {
		return Verdict{Label: LabelDistraction, Source: SourceTitleOverride, Confidence: 1.0}
	}

	studyHits := countMatches(studyPatterns, title)
	distractionHits := countMatches(distractionPatterns, title)

	switch {
	case studyHits > distractionHits:
		conf := minF(0.95, 0.5+0.15*float64(studyHits))
		if prior == LabelStudy {
			// Title agrees with the prior; the prior is the cheaper signal.
			return Verdict{Label: LabelStudy, Source: SourceDomainPrior, Confidence: maxF(conf, priorConf)}
		}
		return Verdict{Label: LabelStudy, Source: SourceTitleOverride, Confidence: conf}
	case distractionHits > studyHits:
		conf := minF(0.95, 0.5+0.15*float64(distractionHits))
		if prior == LabelDistraction {
			return Verdict{Label: LabelDistraction, Source: SourceDomainPrior, Confidence: maxF(conf, priorConf)}
		}
		return Verdict{Label: LabelDistraction, Source: SourceTitleOverride, Confidence: conf}
	case studyHits > 0:
		// Both keyword sets matched with equal strength.
		return Verdict{Label: LabelNeutral, Source: SourceTitleOverride, Confidence: 0.5}
	}

	// No title signal at all: the domain prior decides.
	if prior == LabelNeutral {
		return Verdict{Label: LabelNeutral, Source: SourceDomainPrior, Confidence: 0.5}
	}
	return Verdict{Label: prior, Source: SourceDomainPrior, Confidence: priorConf}
}

// ExtractDomain pulls the bare lowercase hostname out of a URL,
// stripping any leading "www.". Returns "" when the URL is unusable.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return NormalizeDomain(u.Hostname())
}

// NormalizeDomain lowercases a domain and strips any leading "www.", so
// that every caller keys domain tables the same way.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimPrefix(domain, "www.")
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
