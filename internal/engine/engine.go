// Package engine implements the graduated intervention state machine.
//
// Each user walks a ladder of idle → nudge → warn → soft_block → hard_block.
// Escalation is bounded to one level per check (with a safety ceiling that
// may jump straight to hard_block), de-escalation steps down one level per
// clean check, and every fired intervention opens an absolute cooldown
// during which no further intervention fires.
package engine

import (
	"time"

	"github.com/adaptifocus/adaptifocus/internal/classify"
	"github.com/adaptifocus/adaptifocus/internal/pattern"
)

// Decision is the outcome of one intervention check. Ephemeral; fired
// decisions are persisted separately as intervention records.
type Decision struct {
	ShouldIntervene  bool
	Level            pattern.Level
	Message          string
	DistractionScore float64
	EffectiveScore   float64
}

// Input carries the per-check evidence into Decide.
type Input struct {
	Verdict       classify.Verdict
	Score         float64 // distraction propensity from the scorer, [0,1]
	DwellSeconds  int     // time on the current page
	Domain        string
	SessionActive bool
	Now           time.Time
}

// Engine evaluates intervention decisions. Stateless apart from its config;
// all mutable state lives in the per-user pattern.State passed to Decide.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Decide runs one step of the escalation machine against the user's state.
// It mutates only the passed state (level, cooldown, intervention counters)
// and returns the decision. Callers must hold the user's serialization lock.
func (e *Engine) Decide(s *pattern.State, in Input) Decision {
	effective := clamp01(in.Score + s.SensitivityBias())

	// Absolute cooldown: nothing fires and the ladder does not move.
	if s.CooldownUntil.After(in.Now) {
		return Decision{
			ShouldIntervene:  false,
			Level:            pattern.LevelIdle,
			DistractionScore: in.Score,
			EffectiveScore:   effective,
		}
	}

	// Non-distracting activity de-escalates one level per clean check.
	// Never idle straight from hard_block.
	if in.Verdict.Label != classify.LabelDistraction {
		if s.Level > pattern.LevelIdle {
			s.Level--
		}
		return Decision{
			ShouldIntervene:  false,
			Level:            pattern.LevelIdle,
			DistractionScore: in.Score,
			EffectiveScore:   effective,
		}
	}

	target := e.targetLevel(s, effective, in)
	if target == pattern.LevelIdle {
		return Decision{
			ShouldIntervene:  false,
			Level:            pattern.LevelIdle,
			DistractionScore: in.Score,
			EffectiveScore:   effective,
		}
	}

	// Bounded escalation: at most one level up per check, unless the
	// effective score breaches the safety ceiling.
	next := target
	if next > s.Level+1 && effective < e.cfg.HardCeiling {
		next = s.Level + 1
	}
	if effective >= e.cfg.HardCeiling {
		next = pattern.LevelHardBlock
	}

	s.Level = next
	s.LastInterventionAt = in.Now
	s.LastInterventionLevel = next
	s.CooldownUntil = in.Now.Add(e.cfg.Cooldown(next))
	s.InterventionsFired++
	if in.SessionActive {
		s.SessionInterventions++
	}

	return Decision{
		ShouldIntervene:  true,
		Level:            next,
		Message:          messageFor(next, s.InterventionsFired-1, in.DwellSeconds),
		DistractionScore: in.Score,
		EffectiveScore:   effective,
	}
}

// targetLevel finds the highest ladder rung whose score and dwell
// requirements are both met, after tightening for active sessions and
// risky domains.
func (e *Engine) targetLevel(s *pattern.State, effective float64, in Input) pattern.Level {
	// Risky domains shorten the dwell ladder; a domain the user always
	// loses time on gets at most half the usual allowance.
	riskMult := 1.0 - s.DomainRisk(in.Domain)*0.5
	if riskMult < 0.5 {
		riskMult = 0.5
	}
	if in.SessionActive {
		riskMult *= e.cfg.SessionTighten
	}

	target := pattern.LevelIdle
	for lvl := pattern.LevelNudge; lvl <= pattern.LevelHardBlock; lvl++ {
		th := e.cfg.threshold(lvl)
		dwell := int(float64(th.DwellSeconds) * riskMult)
		if effective >= th.Score && in.DwellSeconds >= dwell {
			target = lvl
		}
	}
	return target
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
