package engine

import (
	"testing"
	"time"

	"github.com/adaptifocus/adaptifocus/internal/classify"
	"github.com/adaptifocus/adaptifocus/internal/pattern"
)

var distraction = classify.Verdict{Label: classify.LabelDistraction, Source: classify.SourceDomainPrior, Confidence: 0.8}
var study = classify.Verdict{Label: classify.LabelStudy, Source: classify.SourceDomainPrior, Confidence: 0.8}

func baseTime() time.Time {
	return time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
}

func distractionInput(score float64, dwell int, now time.Time) Input {
	return Input{
		Verdict:      distraction,
		Score:        score,
		DwellSeconds: dwell,
		Domain:       "netflix.com",
		Now:          now,
	}
}

func TestNoInterventionBelowThresholds(t *testing.T) {
	e := New(DefaultConfig())
	s := pattern.NewState("u1")

	d := e.Decide(s, distractionInput(0.2, 10, baseTime()))
	if d.ShouldIntervene {
		t.Errorf("intervened at score 0.2, dwell 10s")
	}
	if s.Level != pattern.LevelIdle {
		t.Errorf("level = %v, want idle", s.Level)
	}
}

func TestStudyVerdictNeverIntervenes(t *testing.T) {
	e := New(DefaultConfig())
	s := pattern.NewState("u1")

	d := e.Decide(s, Input{Verdict: study, Score: 0.99, DwellSeconds: 10000, Now: baseTime()})
	if d.ShouldIntervene {
		t.Error("intervened on a study verdict")
	}
}

func TestEscalationOneLevelPerCheck(t *testing.T) {
	e := New(DefaultConfig())
	s := pattern.NewState("u1")
	now := baseTime()

	// Score and dwell qualify for soft_block immediately, but the ladder
	// must climb one rung at a time.
	d := e.Decide(s, distractionInput(0.7, 400, now))
	if !d.ShouldIntervene || d.Level != pattern.LevelNudge {
		t.Fatalf("first check: got (%v, %v), want (true, nudge)", d.ShouldIntervene, d.Level)
	}

	now = s.CooldownUntil.Add(time.Second)
	d = e.Decide(s, distractionInput(0.7, 800, now))
	if d.Level != pattern.LevelWarn {
		t.Fatalf("second check: level = %v, want warn", d.Level)
	}

	now = s.CooldownUntil.Add(time.Second)
	d = e.Decide(s, distractionInput(0.7, 1200, now))
	if d.Level != pattern.LevelSoftBlock {
		t.Fatalf("third check: level = %v, want soft_block", d.Level)
	}
}

func TestHardCeilingOverride(t *testing.T) {
	e := New(DefaultConfig())
	s := pattern.NewState("u1")

	d := e.Decide(s, distractionInput(0.99, 700, baseTime()))
	if d.Level != pattern.LevelHardBlock {
		t.Errorf("level = %v, want hard_block via safety ceiling", d.Level)
	}
}

func TestCooldownBlocksRefire(t *testing.T) {
	e := New(DefaultConfig())
	s := pattern.NewState("u1")
	now := baseTime()

	d := e.Decide(s, distractionInput(0.9, 60, now))
	if !d.ShouldIntervene {
		t.Fatal("expected initial intervention")
	}

	// Still in cooldown: further distraction does not fire or escalate.
	d = e.Decide(s, distractionInput(0.95, 120, now.Add(10*time.Second)))
	if d.ShouldIntervene {
		t.Error("intervened during cooldown")
	}

	// After the cooldown expires it may fire again.
	d = e.Decide(s, distractionInput(0.9, 300, s.CooldownUntil.Add(time.Second)))
	if !d.ShouldIntervene {
		t.Error("expected intervention after cooldown expiry")
	}
}

func TestCooldownSpacing(t *testing.T) {
	cfg := DefaultConfig()
	e := New(cfg)
	s := pattern.NewState("u1")
	now := baseTime()

	var fired []time.Time
	var levels []pattern.Level
	for i := 0; i < 600; i++ {
		d := e.Decide(s, distractionInput(0.7, 60+i*10, now))
		if d.ShouldIntervene {
			fired = append(fired, now)
			levels = append(levels, d.Level)
		}
		now = now.Add(10 * time.Second)
	}

	if len(fired) < 2 {
		t.Fatalf("fired %d interventions, want at least 2", len(fired))
	}
	for i := 1; i < len(fired); i++ {
		gap := fired[i].Sub(fired[i-1])
		if min := cfg.Cooldown(levels[i-1]); gap < min {
			t.Errorf("interventions %d and %d are %v apart, want >= %v (level %v)",
				i-1, i, gap, min, levels[i-1])
		}
	}
}

func TestDeEscalationStepwise(t *testing.T) {
	e := New(DefaultConfig())
	s := pattern.NewState("u1")
	s.Level = pattern.LevelHardBlock

	now := baseTime()
	want := []pattern.Level{pattern.LevelSoftBlock, pattern.LevelWarn, pattern.LevelNudge, pattern.LevelIdle, pattern.LevelIdle}
	for i, w := range want {
		d := e.Decide(s, Input{Verdict: study, Score: 0.1, Now: now})
		if d.ShouldIntervene {
			t.Fatalf("check %d: intervened during de-escalation", i)
		}
		if s.Level != w {
			t.Errorf("check %d: level = %v, want %v", i, s.Level, w)
		}
		now = now.Add(10 * time.Second)
	}
}

func TestSessionTightensThresholds(t *testing.T) {
	e := New(DefaultConfig())
	now := baseTime()

	// Below the untightened nudge dwell cutoff for an unknown-risk domain
	// (30 * 0.75 = 22s), but above the session-tightened one (~15s).
	relaxed := pattern.NewState("u1")
	d := e.Decide(relaxed, Input{Verdict: distraction, Score: 0.5, DwellSeconds: 18, Domain: "netflix.com", Now: now})
	if d.ShouldIntervene {
		t.Error("intervened outside a session at 18s dwell")
	}

	inSession := pattern.NewState("u2")
	d = e.Decide(inSession, Input{Verdict: distraction, Score: 0.5, DwellSeconds: 18, Domain: "netflix.com", SessionActive: true, Now: now})
	if !d.ShouldIntervene {
		t.Error("expected intervention at 18s dwell during an active session")
	}
}

func TestSensitivityBiasShiftsDecision(t *testing.T) {
	e := New(DefaultConfig())
	now := baseTime()

	// Score just under the nudge threshold: only an override-heavy
	// history should tip it over.
	passive := pattern.NewState("u1")
	d := e.Decide(passive, distractionInput(0.35-0.01, 60, now))
	if d.ShouldIntervene {
		t.Error("intervened with neutral bias below threshold")
	}

	pushy := pattern.NewState("u2")
	pushy.OverrideCount = 3 // bias +0.15
	d = e.Decide(pushy, distractionInput(0.35-0.01, 60, now))
	if !d.ShouldIntervene {
		t.Error("expected intervention with override-raised bias")
	}

	forgiving := pattern.NewState("u3")
	forgiving.ComplianceCount = 5 // bias -0.15
	d = e.Decide(forgiving, distractionInput(0.45, 60, now))
	if d.ShouldIntervene {
		t.Error("intervened despite compliance-lowered bias")
	}
}

func TestScenarioStudyCheck(t *testing.T) {
	// reddit.com + "python tutorial" classifies as study; the check must
	// not intervene no matter the propensity score.
	v := classify.Classify("reddit.com", "python tutorial")
	if v.Label != classify.LabelStudy {
		t.Fatalf("verdict = %q, want study", v.Label)
	}

	e := New(DefaultConfig())
	s := pattern.NewState("u1")
	d := e.Decide(s, Input{Verdict: v, Score: 0.4, DwellSeconds: 10, Domain: "reddit.com", Now: baseTime()})
	if d.ShouldIntervene {
		t.Error("intervened on a study-classified page")
	}
}

func TestScenarioSessionEscalatesToSoftBlock(t *testing.T) {
	e := New(DefaultConfig())
	s := pattern.NewState("u1")
	now := baseTime()

	// 20 minutes of distraction checks every 30s during an active session,
	// with a steadily high propensity score.
	var last Decision
	dwell := 0
	for now.Before(baseTime().Add(20 * time.Minute)) {
		d := e.Decide(s, Input{
			Verdict:       distraction,
			Score:         0.7,
			DwellSeconds:  dwell,
			Domain:        "netflix.com",
			SessionActive: true,
			Now:           now,
		})
		if d.ShouldIntervene {
			last = d
		}
		now = now.Add(30 * time.Second)
		dwell += 30
	}

	if !last.ShouldIntervene || last.Level != pattern.LevelSoftBlock {
		t.Fatalf("final intervention = (%v, %v), want (true, soft_block)", last.ShouldIntervene, last.Level)
	}

	// Immediate re-check lands inside the soft_block cooldown.
	d := e.Decide(s, Input{Verdict: distraction, Score: 0.7, DwellSeconds: dwell, Domain: "netflix.com", SessionActive: true, Now: now})
	if d.ShouldIntervene {
		t.Error("intervened during the soft_block cooldown")
	}
}

func TestMessageFormatting(t *testing.T) {
	if got := formatDuration(45); got != "45s" {
		t.Errorf("formatDuration(45) = %q, want 45s", got)
	}
	if got := formatDuration(120); got != "2m" {
		t.Errorf("formatDuration(120) = %q, want 2m", got)
	}
	if got := formatDuration(150); got != "2m 30s" {
		t.Errorf("formatDuration(150) = %q, want \"2m 30s\"", got)
	}

	if msg := messageFor(pattern.LevelWarn, 0, 130); msg == "" {
		t.Error("empty warn message")
	}
}
