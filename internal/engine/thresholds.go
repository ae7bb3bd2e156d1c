package engine

import (
	"time"

	"github.com/adaptifocus/adaptifocus/internal/pattern"
)

// Threshold is one rung of the escalation ladder: both the effective score
// and the dwell time on the current page must reach it.
type Threshold struct {
	Score        float64
	DwellSeconds int
}

// Config holds the tunable shape of the decision engine. The four
// thresholds must ascend; the exact numbers are configuration, not part of
// the decision contract.
type Config struct {
	Nudge     Threshold
	Warn      Threshold
	SoftBlock Threshold
	HardBlock Threshold

	// SessionTighten scales dwell thresholds down during a declared
	// study session.
	SessionTighten float64

	// HardCeiling is the effective score at which the engine escalates
	// straight to hard_block regardless of the current level.
	HardCeiling float64

	// Cooldowns per fired level; must increase with severity.
	NudgeCooldown     time.Duration
	WarnCooldown      time.Duration
	SoftBlockCooldown time.Duration
	HardBlockCooldown time.Duration
}

// DefaultConfig returns the standard escalation tuning. Dwell thresholds
// follow the field-tested 30/120/300/600 second ladder.
func DefaultConfig() Config {
	return Config{
		Nudge:     Threshold{Score: 0.35, DwellSeconds: 30},
		Warn:      Threshold{Score: 0.50, DwellSeconds: 120},
		SoftBlock: Threshold{Score: 0.65, DwellSeconds: 300},
		HardBlock: Threshold{Score: 0.80, DwellSeconds: 600},

		SessionTighten: 0.7,
		HardCeiling:    0.95,

		NudgeCooldown:     60 * time.Second,
		WarnCooldown:      2 * time.Minute,
		SoftBlockCooldown: 5 * time.Minute,
		HardBlockCooldown: 15 * time.Minute,
	}
}

// Cooldown returns the cooldown duration for a fired level.
func (c Config) Cooldown(level pattern.Level) time.Duration {
	switch level {
	case pattern.LevelNudge:
		return c.NudgeCooldown
	case pattern.LevelWarn:
		return c.WarnCooldown
	case pattern.LevelSoftBlock:
		return c.SoftBlockCooldown
	case pattern.LevelHardBlock:
		return c.HardBlockCooldown
	default:
		return 0
	}
}

// threshold returns the ladder rung for a level above idle.
func (c Config) threshold(level pattern.Level) Threshold {
	switch level {
	case pattern.LevelNudge:
		return c.Nudge
	case pattern.LevelWarn:
		return c.Warn
	case pattern.LevelSoftBlock:
		return c.SoftBlock
	default:
		return c.HardBlock
	}
}
