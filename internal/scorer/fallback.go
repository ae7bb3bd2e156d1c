package scorer

import "github.com/adaptifocus/adaptifocus/internal/pattern"

// RuleScorer is the deterministic fallback: a weighted sum over the
// interpretable features, normalized to [0,1]. It is monotonically
// non-decreasing in each input feature, which keeps its decisions
// explainable and is relied on by tests.
type RuleScorer struct {
	ratioWeight  float64
	streakWeight float64
	switchWeight float64
}

// NewRuleScorer returns the fallback scorer with standard weights.
func NewRuleScorer() *RuleScorer {
	return &RuleScorer{
		ratioWeight:  0.5,
		streakWeight: 0.35,
		switchWeight: 0.15,
	}
}

func (r *RuleScorer) Name() string { return "rules" }

// Score never fails; the error return satisfies the Scorer interface.
func (r *RuleScorer) Score(fv pattern.FeatureVector) (float64, error) {
	ratio := clamp01(fv.DistractionRatio)

	// Saturating normalization: 10 minutes of streak reads as ~0.5,
	// approaching 1.0 asymptotically.
	streak := fv.StreakSeconds
	if streak < 0 {
		streak = 0
	}
	streakNorm := streak / (streak + 600)

	// Above two switches per minute is treated as fully restless.
	switchNorm := clamp01(fv.SwitchRate / 2.0)

	score := r.ratioWeight*ratio + r.streakWeight*streakNorm + r.switchWeight*switchNorm
	return clamp01(score), nil
}
