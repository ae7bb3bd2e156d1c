package semantic

import (
	"context"
	"encoding/json"
)

// Provider answers one structured classification prompt. Title
// resolution is always a single user turn, so there is no conversation
// state to carry.
type Provider interface {
	// Complete sends the prompt and returns the model's JSON output.
	// When the prompt carries a Schema the output is validated against
	// it before being returned.
	Complete(ctx context.Context, p Prompt) (*Completion, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Prompt is a single-turn structured output request.
type Prompt struct {
	// System sets the model's role and constraints.
	System string

	// Input is the user turn.
	Input string

	// Schema, when set, is the JSON Schema the output must conform to.
	// Providers use their native structured output mechanism.
	Schema *Schema

	// MaxTokens caps the output length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Schema names a JSON Schema definition. The name doubles as the
// structured output identifier for providers that require one.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Completion is the model's output plus accounting.
type Completion struct {
	// JSON is the generated output. Validated when the prompt carried
	// a Schema.
	JSON json.RawMessage

	// Model is the model that actually served the request.
	Model string

	// TokensIn and TokensOut report token consumption.
	TokensIn  int
	TokensOut int
}
