package pattern

import "time"

// Event is a single page-view observation from the tab tracker.
// Immutable once recorded.
type Event struct {
	Domain          string    `json:"domain"`
	Title           string    `json:"title"`
	URL             string    `json:"url,omitempty"`
	StartedAt       time.Time `json:"started_at"`
	DurationSeconds int       `json:"duration_seconds"`
	SessionID       string    `json:"session_id,omitempty"`
	Distraction     bool      `json:"distraction"`
}

// HourBucket accumulates per-hour activity for the vulnerability histogram.
type HourBucket struct {
	TotalSeconds       int `json:"total_seconds"`
	DistractionSeconds int `json:"distraction_seconds"`
}

// DomainStat tracks cumulative time per domain for risk scoring.
type DomainStat struct {
	TotalSeconds       int `json:"total_seconds"`
	DistractionSeconds int `json:"distraction_seconds"`
}

// State is the rolling behavioral state for one user. It is the only
// mutable shared entity in the system; the coordinator serializes all
// access per user. The zero value (via NewState) is a valid fresh state,
// which is also what a check falls back to when the store is unreachable.
type State struct {
	UserID string `json:"user_id"`

	// Rolling window of recent events, oldest first.
	Window []Event `json:"window"`

	// Cumulative counters over the window horizon.
	FocusSeconds             int `json:"focus_seconds"`
	DistractionSeconds       int `json:"distraction_seconds"`
	DistractionStreakSeconds int `json:"distraction_streak_seconds"`

	// streakStartedAt bounds the streak to wall-clock elapsed time.
	StreakStartedAt time.Time `json:"streak_started_at,omitempty"`

	// Hour-of-day vulnerability histogram, fixed 24 buckets.
	Hourly [24]HourBucket `json:"hourly"`

	// Per-domain dwell accounting for risk-tightened thresholds.
	Domains map[string]*DomainStat `json:"domains,omitempty"`

	// Intervention bookkeeping.
	Level                 Level     `json:"level"`
	LastInterventionAt    time.Time `json:"last_intervention_at,omitempty"`
	LastInterventionLevel Level     `json:"last_intervention_level"`
	CooldownUntil         time.Time `json:"cooldown_until,omitempty"`
	SessionInterventions  int       `json:"session_interventions"`
	InterventionsFired    int       `json:"interventions_fired"`

	// User response history driving the sensitivity bias.
	OverrideCount   int `json:"override_count"`
	ComplianceCount int `json:"compliance_count"`

	// Live-dwell tracker for the page currently under repeated checks.
	// Checks report cumulative dwell; only the delta since the previous
	// report is folded into the counters.
	CurrentPageKey   string `json:"current_page_key,omitempty"`
	CurrentPageDwell int    `json:"current_page_dwell,omitempty"`

	// Events dropped by the persistence layer, either at enqueue time
	// when the queue is full or by the worker after retry exhaustion.
	LostEvents int `json:"lost_events"`
}

// Level is an escalation stage of the intervention state machine.
type Level int

const (
	LevelIdle Level = iota
	LevelNudge
	LevelWarn
	LevelSoftBlock
	LevelHardBlock
)

var levelNames = [...]string{"none", "nudge", "warn", "soft_block", "hard_block"}

func (l Level) String() string {
	if l < LevelIdle || l > LevelHardBlock {
		return "none"
	}
	return levelNames[l]
}

// ParseLevel maps a wire-format level name back to a Level.
// Unknown names map to LevelIdle.
func ParseLevel(s string) Level {
	for i, name := range levelNames {
		if s == name {
			return Level(i)
		}
	}
	return LevelIdle
}

// NewState returns a fresh idle state for a user.
func NewState(userID string) *State {
	return &State{
		UserID:  userID,
		Domains: make(map[string]*DomainStat),
	}
}

// DistractionRatio is distraction time over total tracked time in the window.
func (s *State) DistractionRatio() float64 {
	total := s.FocusSeconds + s.DistractionSeconds
	if total == 0 {
		return 0
	}
	return float64(s.DistractionSeconds) / float64(total)
}

// HourVulnerability is the historical distraction ratio for the given hour.
func (s *State) HourVulnerability(hour int) float64 {
	if hour < 0 || hour > 23 {
		return 0
	}
	b := s.Hourly[hour]
	if b.TotalSeconds == 0 {
		return 0
	}
	return float64(b.DistractionSeconds) / float64(b.TotalSeconds)
}

// DomainRisk is the distraction share of time spent on a domain, defaulting
// to 0.5 for unseen domains (no evidence either way).
func (s *State) DomainRisk(domain string) float64 {
	st, ok := s.Domains[domain]
	if !ok || st.TotalSeconds == 0 {
		return 0.5
	}
	return float64(st.DistractionSeconds) / float64(st.TotalSeconds)
}

// SensitivityBias converts the compliance/override history into a signed
// score adjustment. Overrides make the engine more eager, compliance less.
// Bounded so the bias alone can never flip a decision at the extremes.
func (s *State) SensitivityBias() float64 {
	bias := 0.05*float64(s.OverrideCount) - 0.03*float64(s.ComplianceCount)
	if bias > MaxSensitivityBias {
		return MaxSensitivityBias
	}
	if bias < -MaxSensitivityBias {
		return -MaxSensitivityBias
	}
	return bias
}

// MaxSensitivityBias bounds the adjustment range of SensitivityBias.
const MaxSensitivityBias = 0.15

// RecentDomains returns the last n distinct-position domains in the window,
// oldest first, for trajectory scoring.
func (s *State) RecentDomains(n int) []string {
	start := len(s.Window) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, 0, n)
	for _, ev := range s.Window[start:] {
		if ev.Domain != "" {
			out = append(out, ev.Domain)
		}
	}
	return out
}

// RecordResponse folds a user's reaction to an intervention into the
// history that drives the sensitivity bias. The current escalation level
// is never changed here; only future decisions see the effect.
func (s *State) RecordResponse(response string) {
	switch response {
	case "complied":
		s.ComplianceCount++
	case "overrode":
		s.OverrideCount++
	}
	// "dismissed" is recorded on the InterventionRecord but is neutral
	// for sensitivity purposes.
}
