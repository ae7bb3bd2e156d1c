package classify

import "strings"

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "in": {}, "on": {}, "at": {}, "to": {},
	"for": {}, "of": {}, "and": {}, "or": {}, "is": {}, "it": {}, "with": {},
	"-": {}, "|": {},
}

// TopicRelevance scores keyword overlap between the active study topic and
// a page title, in [0,1]. Stop words are ignored.
func TopicRelevance(topic, title string) float64 {
	topicWords := tokenSet(topic)
	if len(topicWords) == 0 {
		return 0
	}
	titleWords := tokenSet(title)

	overlap := 0
	for w := range topicWords {
		if _, ok := titleWords[w]; ok {
			overlap++
		}
	}
	return float64(overlap) / float64(len(topicWords))
}

// ClassifyWithTopic applies topic relevance on top of Classify: a title
// strongly relevant to the declared study topic upgrades the verdict to
// study even on a distraction-prior domain. Adult verdicts are final.
func ClassifyWithTopic(domain, title, topic string) Verdict {
	v := Classify(domain, title)
	if topic == "" || v.Label == LabelStudy || v.Confidence >= 1.0 {
		return v
	}
	if TopicRelevance(topic, title) > 0.3 {
		return Verdict{Label: LabelStudy, Source: SourceTitleOverride, Confidence: 0.7}
	}
	return v
}

// TrajectoryScore rates the recent browsing direction from the last domains
// visited, in [-1,1]. Recent domains weigh more. Positive means the trend is
// toward study content.
func TrajectoryScore(recentDomains []string) float64 {
	if len(recentDomains) == 0 {
		return 0
	}
	if len(recentDomains) > 5 {
		recentDomains = recentDomains[len(recentDomains)-5:]
	}

	var weighted, maxWeight float64
	for i, d := range recentDomains {
		w := float64(i + 1)
		maxWeight += w
		switch prior, _ := domainPrior(NormalizeDomain(d)); prior {
		case LabelStudy:
			weighted += w
		case LabelDistraction:
			weighted -= w
		}
	}
	return weighted / maxWeight
}

func tokenSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if _, stop := stopWords[w]; !stop {
			out[w] = struct{}{}
		}
	}
	return out
}
