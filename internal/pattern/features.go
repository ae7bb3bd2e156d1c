package pattern

import (
	"time"

	"github.com/adaptifocus/adaptifocus/internal/classify"
)

// FeatureNames is the fixed, ordered schema of the behavioral feature
// vector. The trained scorer model is bound to this exact order; any
// drift here requires a new model artifact major version.
var FeatureNames = []string{
	"distraction_ratio",
	"streak_seconds",
	"session_distraction_ratio",
	"switch_rate",
	"hour_vulnerability",
	"interventions_this_session",
	"seconds_since_intervention",
	"unique_domains",
	"event_count",
	"mean_dwell_seconds",
}

// FeatureVector is a named, ordered view of the current behavioral state.
type FeatureVector struct {
	DistractionRatio         float64
	StreakSeconds            float64
	SessionDistractionRatio  float64
	SwitchRate               float64
	HourVulnerability        float64
	SessionInterventions     float64
	SecondsSinceIntervention float64
	UniqueDomains            float64
	EventCount               float64
	MeanDwellSeconds         float64
}

// Values returns the features in FeatureNames order.
func (fv FeatureVector) Values() []float64 {
	return []float64{
		fv.DistractionRatio,
		fv.StreakSeconds,
		fv.SessionDistractionRatio,
		fv.SwitchRate,
		fv.HourVulnerability,
		fv.SessionInterventions,
		fv.SecondsSinceIntervention,
		fv.UniqueDomains,
		fv.EventCount,
		fv.MeanDwellSeconds,
	}
}

// Extractor maintains rolling per-user state and derives feature vectors.
// It owns no locking; the coordinator serializes access per user.
type Extractor struct {
	cfg WindowConfig
}

// NewExtractor creates an Extractor with the given window bounds.
func NewExtractor(cfg WindowConfig) *Extractor {
	if cfg.Horizon <= 0 {
		cfg.Horizon = DefaultHorizon
	}
	if cfg.MaxEvents <= 0 {
		cfg.MaxEvents = DefaultMaxEvents
	}
	return &Extractor{cfg: cfg}
}

// Update folds one event and its verdict into the state and returns the
// refreshed feature vector. Out-of-order or negative durations are clamped
// to zero rather than corrupting counters; the streak never exceeds
// wall-clock time since it began.
func (x *Extractor) Update(s *State, ev Event, verdict classify.Verdict, now time.Time) FeatureVector {
	if ev.DurationSeconds < 0 {
		ev.DurationSeconds = 0
	}
	if ev.StartedAt.IsZero() || ev.StartedAt.After(now) {
		ev.StartedAt = now
	}
	ev.Distraction = verdict.Label == classify.LabelDistraction

	if ev.Distraction {
		s.DistractionSeconds += ev.DurationSeconds
		if s.StreakStartedAt.IsZero() {
			s.StreakStartedAt = ev.StartedAt
		}
		s.DistractionStreakSeconds += ev.DurationSeconds
		// Clamp to wall-clock elapsed since the streak began.
		if elapsed := int(now.Sub(s.StreakStartedAt).Seconds()); elapsed >= 0 && s.DistractionStreakSeconds > elapsed {
			s.DistractionStreakSeconds = elapsed
		}
	} else {
		s.DistractionStreakSeconds = 0
		s.StreakStartedAt = time.Time{}
		// Neutral time counts with focus: only distraction time is held
		// against the user in the window ratio.
		s.FocusSeconds += ev.DurationSeconds
	}

	hour := ev.StartedAt.Hour()
	s.Hourly[hour].TotalSeconds += ev.DurationSeconds
	if ev.Distraction {
		s.Hourly[hour].DistractionSeconds += ev.DurationSeconds
	}

	if ev.Domain != "" {
		if s.Domains == nil {
			s.Domains = make(map[string]*DomainStat)
		}
		st, ok := s.Domains[ev.Domain]
		if !ok {
			st = &DomainStat{}
			s.Domains[ev.Domain] = st
		}
		st.TotalSeconds += ev.DurationSeconds
		if ev.Distraction {
			st.DistractionSeconds += ev.DurationSeconds
		}
	}

	s.appendEvent(ev, x.cfg, now)

	return x.Features(s, ev.SessionID != "", now)
}

// Features derives the vector from the current state without mutating it.
func (x *Extractor) Features(s *State, sessionActive bool, now time.Time) FeatureVector {
	fv := FeatureVector{
		DistractionRatio:  s.DistractionRatio(),
		StreakSeconds:     float64(s.DistractionStreakSeconds),
		HourVulnerability: s.HourVulnerability(now.Hour()),
		EventCount:        float64(len(s.Window)),
	}

	if sessionActive {
		fv.SessionDistractionRatio = s.DistractionRatio()
		fv.SessionInterventions = float64(s.SessionInterventions)
	}

	fv.SwitchRate = float64(s.switchCount()) / s.windowSpanMinutes(now)

	if !s.LastInterventionAt.IsZero() {
		fv.SecondsSinceIntervention = now.Sub(s.LastInterventionAt).Seconds()
		if fv.SecondsSinceIntervention < 0 {
			fv.SecondsSinceIntervention = 0
		}
	}

	seen := make(map[string]struct{}, len(s.Window))
	var totalDwell int
	for _, ev := range s.Window {
		if ev.Domain != "" {
			seen[ev.Domain] = struct{}{}
		}
		totalDwell += ev.DurationSeconds
	}
	fv.UniqueDomains = float64(len(seen))
	if n := len(s.Window); n > 0 {
		fv.MeanDwellSeconds = float64(totalDwell) / float64(n)
	}

	return fv
}
