package scorer

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/mod/semver"

	"github.com/adaptifocus/adaptifocus/internal/pattern"
)

// supportedModelMajor is the artifact schema generation this build can run.
const supportedModelMajor = "v1"

// Artifact is the on-disk form of a trained behavioral model: an ensemble
// of decision trees over the named feature schema. Training happens offline;
// this package only performs inference. The artifact is versioned and
// swappable without a rebuild.
type Artifact struct {
	Version  string   `json:"version"`
	Features []string `json:"features"`
	Trees    []Tree   `json:"trees"`
}

// Tree is one member of the ensemble. Nodes are stored flat; index 0 is the
// root. A node with Leaf set contributes Value directly.
type Tree struct {
	Nodes []Node `json:"nodes"`
}

// Node is a binary threshold split on one feature, or a leaf.
type Node struct {
	Feature   int     `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
	Leaf      bool    `json:"leaf,omitempty"`
	Value     float64 `json:"value,omitempty"`
}

// ModelScorer runs inference over a loaded ensemble artifact.
type ModelScorer struct {
	artifact *Artifact
}

// LoadModel reads and validates an artifact from disk.
func LoadModel(path string) (*ModelScorer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var art Artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	return NewModelScorer(&art)
}

// NewModelScorer validates the artifact against the live feature schema.
// Any mismatch yields *ErrModelInput so the caller can fall back.
func NewModelScorer(art *Artifact) (*ModelScorer, error) {
	version := art.Version
	if version != "" && version[0] != 'v' {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return nil, &ErrModelInput{Reason: fmt.Sprintf("invalid artifact version %q", art.Version)}
	}
	if semver.Major(version) != supportedModelMajor {
		return nil, &ErrModelInput{Reason: fmt.Sprintf(
			"artifact version %s is not %s.x", version, supportedModelMajor)}
	}
	if len(art.Features) != len(pattern.FeatureNames) {
		return nil, &ErrModelInput{Reason: fmt.Sprintf(
			"artifact expects %d features, runtime has %d",
			len(art.Features), len(pattern.FeatureNames))}
	}
	for i, name := range art.Features {
		if name != pattern.FeatureNames[i] {
			return nil, &ErrModelInput{Reason: fmt.Sprintf(
				"feature %d is %q in artifact, %q in runtime schema",
				i, name, pattern.FeatureNames[i])}
		}
	}
	if len(art.Trees) == 0 {
		return nil, &ErrModelInput{Reason: "artifact has no trees"}
	}
	for ti, tree := range art.Trees {
		if len(tree.Nodes) == 0 {
			return nil, &ErrModelInput{Reason: fmt.Sprintf("tree %d is empty", ti)}
		}
	}
	return &ModelScorer{artifact: art}, nil
}

// Version returns the artifact's declared version.
func (m *ModelScorer) Version() string { return m.artifact.Version }

// TreeCount returns the ensemble size.
func (m *ModelScorer) TreeCount() int { return len(m.artifact.Trees) }

func (m *ModelScorer) Name() string { return "model:" + m.artifact.Version }

// Score averages the leaf values reached in each tree and clamps to [0,1].
// A structurally broken tree (bad child index, no leaf within bounds)
// surfaces as *ErrModelInput; it never panics the check path.
func (m *ModelScorer) Score(fv pattern.FeatureVector) (float64, error) {
	values := fv.Values()
	var sum float64
	for ti := range m.artifact.Trees {
		v, err := m.walk(&m.artifact.Trees[ti], values)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return clamp01(sum / float64(len(m.artifact.Trees))), nil
}

func (m *ModelScorer) walk(tree *Tree, values []float64) (float64, error) {
	idx := 0
	// A tree deeper than its node count has a cycle.
	for steps := 0; steps <= len(tree.Nodes); steps++ {
		if idx < 0 || idx >= len(tree.Nodes) {
			return 0, &ErrModelInput{Reason: fmt.Sprintf("node index %d out of range", idx)}
		}
		n := tree.Nodes[idx]
		if n.Leaf {
			return n.Value, nil
		}
		if n.Feature < 0 || n.Feature >= len(values) {
			return 0, &ErrModelInput{Reason: fmt.Sprintf("split on unknown feature %d", n.Feature)}
		}
		if values[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, &ErrModelInput{Reason: "tree walk did not terminate"}
}
