package semantic

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adaptifocus/adaptifocus/internal/classify"
)

func TestResolverStudyVerdict(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueJSON(`{"label":"study","confidence":0.85}`)
	r := NewResolver(mock, time.Second)

	v, err := r.Resolve(context.Background(), "youtube.com", "Linear Algebra Lecture 12 - Eigenvalues")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if v.Label != classify.LabelStudy {
		t.Errorf("label = %q, want study", v.Label)
	}
	if v.Source != classify.SourceSemantic {
		t.Errorf("source = %q, want semantic", v.Source)
	}
	if v.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", v.Confidence)
	}
}

func TestResolverCachesVerdicts(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueJSON(`{"label":"distraction","confidence":0.9}`)
	r := NewResolver(mock, time.Second)
	ctx := context.Background()

	v1, err := r.Resolve(ctx, "reddit.com", "the front page")
	if err != nil {
		t.Fatalf("resolve 1: %v", err)
	}

	// Second call hits the cache; the mock queue is empty so a real
	// call would fail.
	v2, err := r.Resolve(ctx, "reddit.com", "The Front Page  ")
	if err != nil {
		t.Fatalf("resolve 2: %v", err)
	}
	if v1 != v2 {
		t.Errorf("cached verdict differs: %+v vs %+v", v1, v2)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
	if r.CacheSize() != 1 {
		t.Errorf("cache size = %d, want 1", r.CacheSize())
	}
}

func TestResolverSendsDomainAndTitle(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueJSON(`{"label":"neutral","confidence":0.5}`)
	r := NewResolver(mock, time.Second)

	if _, err := r.Resolve(context.Background(), "youtube.com", "some video"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	p := mock.Prompts[0]
	if p.Schema == nil || p.Schema.Name != "title-verdict" {
		t.Fatalf("schema = %+v, want title-verdict", p.Schema)
	}
	if p.Input != "Domain: youtube.com\nTitle: some video" {
		t.Errorf("input = %q", p.Input)
	}
}

func TestResolverUnknownLabelRejected(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueJSON(`{"label":"sideways","confidence":0.5}`)
	r := NewResolver(mock, time.Second)

	_, err := r.Resolve(context.Background(), "youtube.com", "something")
	var bad *ErrBadOutput
	if !errors.As(err, &bad) {
		t.Fatalf("err = %T, want *ErrBadOutput", err)
	}
}

func TestResolverProviderErrorPropagates(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueError(&ErrUnavailable{Err: errors.New("down")})
	r := NewResolver(mock, time.Second)

	_, err := r.Resolve(context.Background(), "youtube.com", "something")
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("err = %T, want *ErrUnavailable", err)
	}
}

func TestResolverConfidenceClamped(t *testing.T) {
	mock := NewMockProvider()
	mock.QueueJSON(`{"label":"study","confidence":1.7}`)
	r := NewResolver(mock, time.Second)

	v, err := r.Resolve(context.Background(), "youtube.com", "lecture")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if v.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", v.Confidence)
	}
}
