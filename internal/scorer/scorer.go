package scorer

import "github.com/adaptifocus/adaptifocus/internal/pattern"

// Scorer turns a behavioral feature vector into a distraction propensity
// in [0,1]. Implementations are stateless between calls and never mutate
// pattern state.
type Scorer interface {
	Name() string
	Score(fv pattern.FeatureVector) (float64, error)
}

// Chain tries scorers in priority order and falls back on error. The last
// scorer in a well-formed chain is the rule-based fallback, which cannot
// fail, so Score always produces a usable value.
type Chain struct {
	scorers []Scorer
}

// NewChain builds a scorer chain. With no arguments the chain holds only
// the rule-based fallback.
func NewChain(scorers ...Scorer) *Chain {
	if len(scorers) == 0 {
		scorers = []Scorer{NewRuleScorer()}
	}
	return &Chain{scorers: scorers}
}

// Score returns the first successful scorer's output along with the name
// of the scorer that produced it.
func (c *Chain) Score(fv pattern.FeatureVector) (float64, string) {
	var score float64
	name := "none"
	for _, s := range c.scorers {
		v, err := s.Score(fv)
		if err != nil {
			continue
		}
		score, name = v, s.Name()
		break
	}
	return clamp01(score), name
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
