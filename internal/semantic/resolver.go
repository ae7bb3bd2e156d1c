// Package semantic resolves ambiguous page titles with an LLM.
//
// The rule classifier handles clear-cut domains on its own. Mixed
// domains (youtube.com, reddit.com) whose titles match no keyword
// pattern get a second opinion here: a small structured-output request
// asking the model whether the title looks like study material or a
// distraction. Resolution runs off the ingest path and its verdicts
// enrich stored events; the synchronous classify path never waits on
// the network.
package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/adaptifocus/adaptifocus/internal/classify"
)

// titleSchema is the structured output contract for title resolution.
var titleSchema = &Schema{
	Name:        "title-verdict",
	Description: "Verdict on whether a browser tab title is study material or a distraction",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{
				"type": "string",
				"enum": []any{"study", "distraction", "neutral"},
			},
			"confidence": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
		},
		"required":             []any{"label", "confidence"},
		"additionalProperties": false,
	},
}

const titleSystemPrompt = `You judge browser tab titles. Given the domain and title of a page the user is viewing, decide whether the content is study material (educational, technical, reference), a distraction (entertainment, social feeds, gossip), or neutral (utilities, email, ambiguous). Respond with JSON only.`

// maxCacheEntries bounds the verdict cache. Titles repeat heavily in
// practice (the same tab re-focused many times), so a small cache
// absorbs most lookups.
const maxCacheEntries = 2048

// Resolver classifies ambiguous titles via an LLM provider, caching
// verdicts per (domain, title) pair.
type Resolver struct {
	provider Provider
	timeout  time.Duration

	mu    sync.Mutex
	cache map[string]classify.Verdict
}

// NewResolver creates a Resolver on top of the given provider.
func NewResolver(p Provider, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Resolver{
		provider: p,
		timeout:  timeout,
		cache:    make(map[string]classify.Verdict),
	}
}

// Resolve returns the LLM's verdict for the given domain and title.
// Cached verdicts are returned without a network call.
func (r *Resolver) Resolve(ctx context.Context, domain, title string) (classify.Verdict, error) {
	key := cacheKey(domain, title)

	r.mu.Lock()
	if v, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return v, nil
	}
	r.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	ctx = WithPurpose(ctx, "title-resolution")

	resp, err := r.provider.Complete(ctx, Prompt{
		System:    titleSystemPrompt,
		Input:     fmt.Sprintf("Domain: %s\nTitle: %s", domain, title),
		Schema:    titleSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return classify.Verdict{}, fmt.Errorf("resolve title: %w", err)
	}

	var out struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal(resp.JSON, &out); err != nil {
		return classify.Verdict{}, &ErrBadOutput{Raw: resp.JSON, Err: err}
	}

	label, ok := parseLabel(out.Label)
	if !ok {
		return classify.Verdict{}, &ErrBadOutput{
			Raw: resp.JSON,
			Err: fmt.Errorf("unknown label %q", out.Label),
		}
	}

	v := classify.Verdict{
		Label:      label,
		Source:     classify.SourceSemantic,
		Confidence: clamp01(out.Confidence),
	}

	r.mu.Lock()
	if len(r.cache) >= maxCacheEntries {
		// Full reset is simpler than LRU and fine at this size.
		r.cache = make(map[string]classify.Verdict)
	}
	r.cache[key] = v
	r.mu.Unlock()

	return v, nil
}

// ResolveCached returns the cached verdict for the pair, if any. It
// never triggers a network call, so it is safe on latency-sensitive
// paths.
func (r *Resolver) ResolveCached(domain, title string) (classify.Verdict, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.cache[cacheKey(domain, title)]
	return v, ok
}

// CacheSize returns the number of cached verdicts.
func (r *Resolver) CacheSize() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cache)
}

func cacheKey(domain, title string) string {
	return strings.ToLower(domain) + "\x00" + strings.ToLower(strings.TrimSpace(title))
}

func parseLabel(s string) (classify.Label, bool) {
	switch s {
	case "study":
		return classify.LabelStudy, true
	case "distraction":
		return classify.LabelDistraction, true
	case "neutral":
		return classify.LabelNeutral, true
	}
	return "", false
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
