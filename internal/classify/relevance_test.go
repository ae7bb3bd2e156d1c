package classify

import (
	"math"
	"testing"
)

func TestTopicRelevance(t *testing.T) {
	tests := []struct {
		topic string
		title string
		want  float64
	}{
		{"graph algorithms", "Dijkstra graph algorithms explained", 1.0},
		{"graph algorithms", "cooking pasta at home", 0.0},
		{"machine learning", "machine shop tour", 0.5},
		{"", "anything", 0.0},
	}
	for _, tt := range tests {
		got := TopicRelevance(tt.topic, tt.title)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("TopicRelevance(%q, %q) = %v, want %v", tt.topic, tt.title, got, tt.want)
		}
	}
}

func TestClassifyWithTopicUpgrade(t *testing.T) {
	// Instagram is a distraction prior, but the title matches the topic.
	v := ClassifyWithTopic("instagram.com", "operating systems scheduling diagrams", "operating systems")
	if v.Label != LabelStudy {
		t.Errorf("got %q, want study via topic relevance", v.Label)
	}

	// Adult content never upgrades.
	v = ClassifyWithTopic("pornhub.com", "operating systems", "operating systems")
	if v.Label != LabelDistraction {
		t.Errorf("got %q, want distraction", v.Label)
	}
}

func TestTrajectoryScore(t *testing.T) {
	if got := TrajectoryScore(nil); got != 0 {
		t.Errorf("empty trajectory = %v, want 0", got)
	}
	pos := TrajectoryScore([]string{"github.com", "arxiv.org", "stackoverflow.com"})
	if pos != 1.0 {
		t.Errorf("all-study trajectory = %v, want 1.0", pos)
	}
	neg := TrajectoryScore([]string{"netflix.com", "tiktok.com"})
	if neg != -1.0 {
		t.Errorf("all-distraction trajectory = %v, want -1.0", neg)
	}
	// Most recent domain dominates.
	mixed := TrajectoryScore([]string{"netflix.com", "github.com"})
	if mixed <= 0 {
		t.Errorf("recent-study trajectory = %v, want > 0", mixed)
	}
}
