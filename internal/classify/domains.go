package classify

// Domain prior tables. These are static reference data: how they are
// authored or updated is outside this package's concern.

var studyDomains = map[string]struct{}{
	// Academic
	"scholar.google.com": {}, "arxiv.org": {}, "ieee.org": {},
	"ieeexplore.ieee.org": {}, "acm.org": {}, "dl.acm.org": {},
	"researchgate.net": {}, "semanticscholar.org": {},
	"sciencedirect.com": {}, "springer.com": {}, "jstor.org": {},
	// Development
	"github.com": {}, "gitlab.com": {}, "stackoverflow.com": {},
	"stackexchange.com": {}, "developer.mozilla.org": {},
	"docs.python.org": {}, "devdocs.io": {},
	// Productivity
	"docs.google.com": {}, "sheets.google.com": {}, "slides.google.com": {},
	"notion.so": {}, "overleaf.com": {}, "sharelatex.com": {},
	// Learning platforms
	"coursera.org": {}, "edx.org": {}, "udemy.com": {},
	"khanacademy.org": {}, "leetcode.com": {}, "hackerrank.com": {},
	"geeksforgeeks.org": {},
	// Universities
	"mit.edu": {}, "ocw.mit.edu": {}, "stanford.edu": {}, "harvard.edu": {},
	"ox.ac.uk": {}, "cam.ac.uk": {}, "berkeley.edu": {},
}

// mixedDomains host both study and leisure content; the title decides.
var mixedDomains = map[string]struct{}{
	"youtube.com": {}, "reddit.com": {}, "medium.com": {},
	"quora.com": {}, "twitter.com": {}, "x.com": {},
}

var distractionDomains = map[string]struct{}{
	"facebook.com": {}, "instagram.com": {}, "tiktok.com": {},
	"netflix.com": {}, "hulu.com": {}, "twitch.tv": {},
	"9gag.com": {}, "buzzfeed.com": {}, "disneyplus.com": {},
	"primevideo.com": {},
}

var adultDomains = map[string]struct{}{
	"pornhub.com": {}, "xvideos.com": {}, "xnxx.com": {},
	"xhamster.com": {}, "redtube.com": {}, "youporn.com": {},
	"chaturbate.com": {}, "onlyfans.com": {},
}

// domainPrior looks up the domain's default label. Exact matches win over
// suffix matches; suffix matches carry lower confidence. Unknown domains
// are neutral. Mixed domains (YouTube, Reddit) stay neutral so the title
// can decide. Adult domains return distraction with confidence 1.0, which
// the classifier treats as non-overridable.
func domainPrior(domain string) (Label, float64) {
	if domain == "" {
		return LabelNeutral, 0.5
	}
	if _, ok := adultDomains[domain]; ok {
		return LabelDistraction, 1.0
	}
	if _, ok := studyDomains[domain]; ok {
		return LabelStudy, 0.8
	}
	if _, ok := mixedDomains[domain]; ok {
		return LabelNeutral, 0.5
	}
	if _, ok := distractionDomains[domain]; ok {
		return LabelDistraction, 0.8
	}
	if suffixMatch(adultDomains, domain) {
		return LabelDistraction, 1.0
	}
	if suffixMatch(studyDomains, domain) {
		return LabelStudy, 0.6
	}
	if suffixMatch(mixedDomains, domain) {
		return LabelNeutral, 0.5
	}
	if suffixMatch(distractionDomains, domain) {
		return LabelDistraction, 0.6
	}
	return LabelNeutral, 0.5
}

// IsMixedDomain reports whether the domain needs title context to classify.
// Used by the ingest path to decide when semantic enrichment is worthwhile.
func IsMixedDomain(domain string) bool {
	domain = NormalizeDomain(domain)
	if _, ok := mixedDomains[domain]; ok {
		return true
	}
	return suffixMatch(mixedDomains, domain)
}

func suffixMatch(table map[string]struct{}, domain string) bool {
	for d := range table {
		if len(domain) > len(d)+1 && domain[len(domain)-len(d)-1] == '.' &&
			domain[len(domain)-len(d):] == d {
			return true
		}
	}
	return false
}
