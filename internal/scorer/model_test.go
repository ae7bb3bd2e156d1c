package scorer

import (
	"errors"
	"testing"

	"github.com/adaptifocus/adaptifocus/internal/pattern"
)

// validArtifact builds a two-tree ensemble splitting on distraction_ratio.
func validArtifact() *Artifact {
	return &Artifact{
		Version:  "1.2.0",
		Features: append([]string(nil), pattern.FeatureNames...),
		Trees: []Tree{
			{Nodes: []Node{
				{Feature: 0, Threshold: 0.5, Left: 1, Right: 2},
				{Leaf: true, Value: 0.2},
				{Leaf: true, Value: 0.9},
			}},
			{Nodes: []Node{
				{Feature: 0, Threshold: 0.3, Left: 1, Right: 2},
				{Leaf: true, Value: 0.1},
				{Leaf: true, Value: 0.7},
			}},
		},
	}
}

func TestModelScorerInference(t *testing.T) {
	m, err := NewModelScorer(validArtifact())
	if err != nil {
		t.Fatalf("NewModelScorer: %v", err)
	}

	low, err := m.Score(pattern.FeatureVector{DistractionRatio: 0.1})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if want := (0.2 + 0.1) / 2; low != want {
		t.Errorf("low score = %v, want %v", low, want)
	}

	high, _ := m.Score(pattern.FeatureVector{DistractionRatio: 0.8})
	if want := (0.9 + 0.7) / 2; high != want {
		t.Errorf("high score = %v, want %v", high, want)
	}
}

func TestModelScorerVersionGate(t *testing.T) {
	art := validArtifact()
	art.Version = "2.0.0"
	if _, err := NewModelScorer(art); err == nil {
		t.Fatal("expected version mismatch error")
	} else {
		var mi *ErrModelInput
		if !errors.As(err, &mi) {
			t.Errorf("error type = %T, want *ErrModelInput", err)
		}
	}

	art.Version = "not-a-version"
	if _, err := NewModelScorer(art); err == nil {
		t.Fatal("expected invalid version error")
	}
}

func TestModelScorerSchemaMismatch(t *testing.T) {
	art := validArtifact()
	art.Features[0] = "unknown_feature"
	_, err := NewModelScorer(art)
	var mi *ErrModelInput
	if !errors.As(err, &mi) {
		t.Fatalf("error = %v, want *ErrModelInput", err)
	}

	art = validArtifact()
	art.Features = art.Features[:3]
	if _, err := NewModelScorer(art); err == nil {
		t.Fatal("expected feature count mismatch error")
	}
}

func TestModelScorerBrokenTree(t *testing.T) {
	art := validArtifact()
	art.Trees[0].Nodes[0].Left = 99
	m, err := NewModelScorer(art)
	if err != nil {
		t.Fatalf("NewModelScorer: %v", err)
	}
	_, err = m.Score(pattern.FeatureVector{DistractionRatio: 0.1})
	var mi *ErrModelInput
	if !errors.As(err, &mi) {
		t.Fatalf("error = %v, want *ErrModelInput on bad child index", err)
	}
}

func TestChainFallsBack(t *testing.T) {
	art := validArtifact()
	art.Trees[0].Nodes[0].Left = 99 // model errors at scoring time
	broken, err := NewModelScorer(art)
	if err != nil {
		t.Fatalf("NewModelScorer: %v", err)
	}

	chain := NewChain(broken, NewRuleScorer())
	score, name := chain.Score(pattern.FeatureVector{DistractionRatio: 0.6})
	if name != "rules" {
		t.Errorf("scorer name = %q, want rules after model failure", name)
	}
	if score <= 0 {
		t.Errorf("score = %v, want > 0", score)
	}
}

func TestChainPrefersModel(t *testing.T) {
	m, err := NewModelScorer(validArtifact())
	if err != nil {
		t.Fatalf("NewModelScorer: %v", err)
	}
	chain := NewChain(m, NewRuleScorer())
	_, name := chain.Score(pattern.FeatureVector{DistractionRatio: 0.6})
	if name != "model:1.2.0" {
		t.Errorf("scorer name = %q, want model:1.2.0", name)
	}
}
