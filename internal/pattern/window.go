package pattern

import "time"

const (
	// DefaultHorizon is how far back the rolling window reaches.
	DefaultHorizon = 30 * time.Minute

	// DefaultMaxEvents caps the window regardless of horizon.
	DefaultMaxEvents = 500
)

// WindowConfig bounds the rolling event window.
type WindowConfig struct {
	Horizon   time.Duration
	MaxEvents int
}

// DefaultWindowConfig returns the standard window bounds.
func DefaultWindowConfig() WindowConfig {
	return WindowConfig{Horizon: DefaultHorizon, MaxEvents: DefaultMaxEvents}
}

// appendEvent adds an event to the window and evicts entries that fell out
// of the horizon or exceed the cap. Eviction is monotonic from the front,
// so the amortized cost per event is O(1). Evicted events also leave the
// cumulative counters, keeping ratios scoped to the window.
func (s *State) appendEvent(ev Event, cfg WindowConfig, now time.Time) {
	s.Window = append(s.Window, ev)

	cutoff := now.Add(-cfg.Horizon)
	drop := 0
	for drop < len(s.Window) && s.Window[drop].StartedAt.Before(cutoff) {
		drop++
	}
	if over := len(s.Window) - cfg.MaxEvents; over > drop {
		drop = over
	}
	if drop == 0 {
		return
	}
	for _, old := range s.Window[:drop] {
		s.retireEvent(old)
	}
	s.Window = append(s.Window[:0], s.Window[drop:]...)
}

// retireEvent removes an evicted event's contribution from the window
// counters. The hour histogram and domain stats are long-term memory and
// are deliberately not rewound.
func (s *State) retireEvent(ev Event) {
	if ev.Distraction {
		s.DistractionSeconds -= ev.DurationSeconds
		if s.DistractionSeconds < 0 {
			s.DistractionSeconds = 0
		}
		return
	}
	s.FocusSeconds -= ev.DurationSeconds
	if s.FocusSeconds < 0 {
		s.FocusSeconds = 0
	}
}

// switchCount counts domain changes between adjacent window events.
func (s *State) switchCount() int {
	switches := 0
	for i := 1; i < len(s.Window); i++ {
		a, b := s.Window[i-1].Domain, s.Window[i].Domain
		if a != "" && b != "" && a != b {
			switches++
		}
	}
	return switches
}

// windowSpanMinutes is the elapsed time covered by the window, floored at
// one minute to keep rate features stable with few events.
func (s *State) windowSpanMinutes(now time.Time) float64 {
	if len(s.Window) == 0 {
		return 1
	}
	span := now.Sub(s.Window[0].StartedAt).Minutes()
	if span < 1 {
		return 1
	}
	return span
}
