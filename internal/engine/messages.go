package engine

import (
	"fmt"
	"strings"

	"github.com/adaptifocus/adaptifocus/internal/pattern"
)

var nudgeMessages = []string{
	"Gentle reminder — you're in a study session. Ready to refocus?",
	"Quick check-in: is this helping you with your study goal?",
	"You started a focused session. Want to get back on track?",
}

var warnMessages = []string{
	"You've been on a distracting site for %s. Your focus score is dropping.",
	"Focus alert: %s on non-study content. Your study session goal is at risk.",
}

var softBlockMessages = []string{
	"Extended distraction detected (%s). Take a breath — this page unlocks in 15 seconds if you choose.",
	"Focus pause: you've spent %s away from your study topic. Continuing in 15 seconds...",
}

var hardBlockMessages = []string{
	"Maximum distraction threshold reached (%s). This site is blocked for the rest of your study session. Use Override if you genuinely need access.",
}

// messageFor picks a rotating template for a level, keyed by how many
// interventions have already fired so repeated nudges don't read identically.
func messageFor(level pattern.Level, fired, dwellSeconds int) string {
	dur := formatDuration(dwellSeconds)
	pick := func(msgs []string) string {
		m := msgs[fired%len(msgs)]
		if strings.Contains(m, "%s") {
			return fmt.Sprintf(m, dur)
		}
		return m
	}
	switch level {
	case pattern.LevelNudge:
		return pick(nudgeMessages)
	case pattern.LevelWarn:
		return pick(warnMessages)
	case pattern.LevelSoftBlock:
		return pick(softBlockMessages)
	case pattern.LevelHardBlock:
		return pick(hardBlockMessages)
	default:
		return ""
	}
}

func formatDuration(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	m, s := seconds/60, seconds%60
	if s == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dm %ds", m, s)
}
