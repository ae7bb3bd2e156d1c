package classify

import "regexp"

// Title keyword patterns, compiled once at init. Case-insensitive.

var studyPatterns = compileAll([]string{
	`\b(algorithm|data\s*structure|machine\s*learning|deep\s*learning|neural\s*network)s?\b`,
	`\b(research|paper|thesis|dissertation|survey|abstract)s?\b`,
	`\b(programming|coding|software|developer|engineering)s?\b`,
	`\b(lecture|tutorial|course|lesson|class|assignment|homework|syllabus)s?\b`,
	`\b(database|network|security|system\s*design|architecture)s?\b`,
	`\b(python|java|javascript|typescript|rust|golang|react|node)s?\b`,
	`\b(ieee|acm|arxiv|conference|journal|proceedings)s?\b`,
	`\b(exam|quiz|study|review|notes|textbook)s?\b`,
	`\b(math|calculus|algebra|statistics|probability|physics|chemistry|biology)s?\b`,
	`\b(MIT|Stanford|Harvard|Oxford|Cambridge|Berkeley)\b`,
	`\b(CS\s?\d|CS\d{2,3}|COMP\s?\d|EE\s?\d|MATH\s?\d)\b`,
	`\b(introduction\s+to|fundamentals\s+of|principles\s+of|learn)\b`,
	`\bhow\s+to\s+(code|program|build|implement|solve|debug)\b`,
	`\b(documentation|docs|reference|guide|manual|handbook|API)s?\b`,
	`\b(open\s*courseware|OCW|MOOC|coursework|curriculum)s?\b`,
	`\b(analysis|computing|informatics|data\s*science|AI|NLP)\b`,
})

var distractionPatterns = compileAll([]string{
	`\b(viral|meme|celebrity|gossip|prank|fails?|bloopers?)\b`,
	`\b(gaming|gameplay|twitch|lets?\s*play|walkthrough|speedrun)s?\b`,
	`\b(funny|comedy|entertainment|trending|reaction)s?\b`,
	`\b(shopping|sale|discount|deal|coupon|unboxing)s?\b`,
	`\b(drama|reality\s*TV|vlog|mukbang|ASMR|compilation)s?\b`,
	`\b(shorts|reel|tiktok|snap)s?\b`,
})

var adultPatterns = compileAll([]string{
	`\b(porn|porno|pornography|xxx|nsfw|camgirl|adult\s*video)s?\b`,
})

func compileAll(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

func countMatches(patterns []*regexp.Regexp, title string) int {
	if title == "" {
		return 0
	}
	n := 0
	for _, re := range patterns {
		if re.MatchString(title) {
			n++
		}
	}
	return n
}

func adultTitle(title string) bool {
	return countMatches(adultPatterns, title) > 0
}
