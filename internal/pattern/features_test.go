package pattern

import (
	"testing"
	"time"

	"github.com/adaptifocus/adaptifocus/internal/classify"
)

var distractionVerdict = classify.Verdict{Label: classify.LabelDistraction, Source: classify.SourceDomainPrior, Confidence: 0.8}
var studyVerdict = classify.Verdict{Label: classify.LabelStudy, Source: classify.SourceDomainPrior, Confidence: 0.8}

func testNow() time.Time {
	return time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
}

func TestUpdateAccumulatesCounters(t *testing.T) {
	x := NewExtractor(DefaultWindowConfig())
	s := NewState("u1")
	now := testNow()

	x.Update(s, Event{Domain: "netflix.com", StartedAt: now.Add(-60 * time.Second), DurationSeconds: 60}, distractionVerdict, now)
	if s.DistractionSeconds != 60 {
		t.Errorf("DistractionSeconds = %d, want 60", s.DistractionSeconds)
	}
	if s.DistractionStreakSeconds != 60 {
		t.Errorf("streak = %d, want 60", s.DistractionStreakSeconds)
	}

	fv := x.Update(s, Event{Domain: "github.com", StartedAt: now, DurationSeconds: 120}, studyVerdict, now.Add(2*time.Minute))
	if s.FocusSeconds != 120 {
		t.Errorf("FocusSeconds = %d, want 120", s.FocusSeconds)
	}
	if s.DistractionStreakSeconds != 0 {
		t.Errorf("streak = %d, want 0 after non-distraction verdict", s.DistractionStreakSeconds)
	}
	if want := 60.0 / 180.0; fv.DistractionRatio != want {
		t.Errorf("DistractionRatio = %v, want %v", fv.DistractionRatio, want)
	}
}

func TestStreakNeverExceedsWallClock(t *testing.T) {
	x := NewExtractor(DefaultWindowConfig())
	s := NewState("u1")
	now := testNow()

	// Event claims 10 minutes of dwell but the streak began 2 minutes ago.
	x.Update(s, Event{Domain: "tiktok.com", StartedAt: now.Add(-2 * time.Minute), DurationSeconds: 600}, distractionVerdict, now)
	if s.DistractionStreakSeconds > 120 {
		t.Errorf("streak = %d, want <= 120 (wall-clock bound)", s.DistractionStreakSeconds)
	}
}

func TestNegativeDurationClamped(t *testing.T) {
	x := NewExtractor(DefaultWindowConfig())
	s := NewState("u1")
	now := testNow()

	x.Update(s, Event{Domain: "netflix.com", StartedAt: now, DurationSeconds: -30}, distractionVerdict, now)
	if s.DistractionSeconds != 0 {
		t.Errorf("DistractionSeconds = %d, want 0 for negative duration", s.DistractionSeconds)
	}
	if len(s.Window) != 1 {
		t.Errorf("window length = %d, want 1", len(s.Window))
	}
}

func TestWindowEviction(t *testing.T) {
	x := NewExtractor(WindowConfig{Horizon: 10 * time.Minute, MaxEvents: 100})
	s := NewState("u1")
	now := testNow()

	x.Update(s, Event{Domain: "netflix.com", StartedAt: now.Add(-20 * time.Minute), DurationSeconds: 60}, distractionVerdict, now.Add(-20*time.Minute))
	x.Update(s, Event{Domain: "github.com", StartedAt: now, DurationSeconds: 60}, studyVerdict, now)

	if len(s.Window) != 1 {
		t.Fatalf("window length = %d, want 1 after horizon eviction", len(s.Window))
	}
	if s.Window[0].Domain != "github.com" {
		t.Errorf("surviving event = %q, want github.com", s.Window[0].Domain)
	}
	if s.DistractionSeconds != 0 {
		t.Errorf("DistractionSeconds = %d, want 0 after evicting the distraction event", s.DistractionSeconds)
	}
}

func TestWindowMaxEvents(t *testing.T) {
	x := NewExtractor(WindowConfig{Horizon: time.Hour, MaxEvents: 3})
	s := NewState("u1")
	now := testNow()

	for i := 0; i < 5; i++ {
		ev := Event{Domain: "github.com", StartedAt: now.Add(time.Duration(i) * time.Second), DurationSeconds: 1}
		x.Update(s, ev, studyVerdict, now.Add(time.Duration(i)*time.Second))
	}
	if len(s.Window) != 3 {
		t.Errorf("window length = %d, want 3", len(s.Window))
	}
}

func TestHourHistogram(t *testing.T) {
	x := NewExtractor(DefaultWindowConfig())
	s := NewState("u1")
	now := testNow() // 14:00

	x.Update(s, Event{Domain: "netflix.com", StartedAt: now, DurationSeconds: 90}, distractionVerdict, now)
	x.Update(s, Event{Domain: "github.com", StartedAt: now, DurationSeconds: 30}, studyVerdict, now)

	if got := s.Hourly[14].TotalSeconds; got != 120 {
		t.Errorf("hour 14 total = %d, want 120", got)
	}
	if got := s.Hourly[14].DistractionSeconds; got != 90 {
		t.Errorf("hour 14 distraction = %d, want 90", got)
	}
	if got := s.HourVulnerability(14); got != 0.75 {
		t.Errorf("HourVulnerability(14) = %v, want 0.75", got)
	}
	if got := s.HourVulnerability(3); got != 0 {
		t.Errorf("HourVulnerability(3) = %v, want 0 with no data", got)
	}
}

func TestSwitchRateAndUniqueDomains(t *testing.T) {
	x := NewExtractor(DefaultWindowConfig())
	s := NewState("u1")
	now := testNow()

	domains := []string{"a.com", "b.com", "b.com", "c.com"}
	var fv FeatureVector
	for i, d := range domains {
		ts := now.Add(time.Duration(i) * time.Minute)
		fv = x.Update(s, Event{Domain: d, StartedAt: ts, DurationSeconds: 60}, studyVerdict, ts)
	}

	if fv.UniqueDomains != 3 {
		t.Errorf("UniqueDomains = %v, want 3", fv.UniqueDomains)
	}
	// Two switches (a->b, b->c) over a 3-minute span.
	if want := 2.0 / 3.0; fv.SwitchRate != want {
		t.Errorf("SwitchRate = %v, want %v", fv.SwitchRate, want)
	}
}

func TestFeatureOrderMatchesNames(t *testing.T) {
	fv := FeatureVector{
		DistractionRatio:         1,
		StreakSeconds:            2,
		SessionDistractionRatio:  3,
		SwitchRate:               4,
		HourVulnerability:        5,
		SessionInterventions:     6,
		SecondsSinceIntervention: 7,
		UniqueDomains:            8,
		EventCount:               9,
		MeanDwellSeconds:         10,
	}
	values := fv.Values()
	if len(values) != len(FeatureNames) {
		t.Fatalf("len(values) = %d, want %d", len(values), len(FeatureNames))
	}
	for i, v := range values {
		if v != float64(i+1) {
			t.Errorf("values[%d] (%s) = %v, want %v", i, FeatureNames[i], v, float64(i+1))
		}
	}
}

func TestSensitivityBiasBounds(t *testing.T) {
	s := NewState("u1")
	s.OverrideCount = 100
	if got := s.SensitivityBias(); got != MaxSensitivityBias {
		t.Errorf("bias = %v, want capped at %v", got, MaxSensitivityBias)
	}
	s.OverrideCount = 0
	s.ComplianceCount = 100
	if got := s.SensitivityBias(); got != -MaxSensitivityBias {
		t.Errorf("bias = %v, want floored at %v", got, -MaxSensitivityBias)
	}
	s.ComplianceCount = 0
	if got := s.SensitivityBias(); got != 0 {
		t.Errorf("bias = %v, want 0", got)
	}
}

func TestRecordResponse(t *testing.T) {
	s := NewState("u1")
	s.RecordResponse("complied")
	s.RecordResponse("overrode")
	s.RecordResponse("dismissed")
	if s.ComplianceCount != 1 || s.OverrideCount != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", s.ComplianceCount, s.OverrideCount)
	}
}
