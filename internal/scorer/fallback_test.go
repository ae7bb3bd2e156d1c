package scorer

import (
	"testing"

	"github.com/adaptifocus/adaptifocus/internal/pattern"
)

func TestRuleScorerRange(t *testing.T) {
	r := NewRuleScorer()

	zero, err := r.Score(pattern.FeatureVector{})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if zero != 0 {
		t.Errorf("empty features score = %v, want 0", zero)
	}

	extreme, _ := r.Score(pattern.FeatureVector{
		DistractionRatio: 1,
		StreakSeconds:    1e9,
		SwitchRate:       100,
	})
	if extreme < 0 || extreme > 1 {
		t.Errorf("extreme score = %v, want within [0,1]", extreme)
	}
	if extreme < 0.9 {
		t.Errorf("extreme score = %v, want near 1", extreme)
	}
}

// Increasing any single feature, holding the others fixed, must never
// decrease the fallback score.
func TestRuleScorerMonotonic(t *testing.T) {
	r := NewRuleScorer()
	base := pattern.FeatureVector{
		DistractionRatio: 0.3,
		StreakSeconds:    120,
		SwitchRate:       0.5,
	}

	mutations := []struct {
		name  string
		apply func(fv pattern.FeatureVector, v float64) pattern.FeatureVector
		steps []float64
	}{
		{
			"distraction_ratio",
			func(fv pattern.FeatureVector, v float64) pattern.FeatureVector { fv.DistractionRatio = v; return fv },
			[]float64{0, 0.1, 0.3, 0.5, 0.8, 1.0},
		},
		{
			"streak_seconds",
			func(fv pattern.FeatureVector, v float64) pattern.FeatureVector { fv.StreakSeconds = v; return fv },
			[]float64{0, 30, 120, 600, 1800, 7200},
		},
		{
			"switch_rate",
			func(fv pattern.FeatureVector, v float64) pattern.FeatureVector { fv.SwitchRate = v; return fv },
			[]float64{0, 0.5, 1, 2, 5},
		},
	}

	for _, mut := range mutations {
		prev := -1.0
		for _, v := range mut.steps {
			score, err := r.Score(mut.apply(base, v))
			if err != nil {
				t.Fatalf("%s=%v: %v", mut.name, v, err)
			}
			if score < prev {
				t.Errorf("%s=%v: score %v < previous %v, monotonicity broken", mut.name, v, score, prev)
			}
			prev = score
		}
	}
}
