package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// maxBodyBytes bounds request bodies; ingest batches stay well under this.
const maxBodyBytes = 1 << 20

// Request payload schemas, compiled once at startup. Validation happens
// before any handler logic so rejected requests never touch user state.
var (
	classifySchema = mustCompileSchema("classify", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url":    map[string]any{"type": "string"},
			"domain": map[string]any{"type": "string"},
			"title":  map[string]any{"type": "string"},
			"topic":  map[string]any{"type": "string"},
		},
		"additionalProperties": false,
	})

	checkSchema = mustCompileSchema("check", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url":           map[string]any{"type": "string"},
			"domain":        map[string]any{"type": "string"},
			"title":         map[string]any{"type": "string"},
			"dwell_seconds": map[string]any{"type": "integer"},
		},
		"additionalProperties": false,
	})

	responseSchema = mustCompileSchema("response", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"response": map[string]any{
				"type": "string",
				"enum": []any{"complied", "dismissed", "overrode"},
			},
		},
		"required":             []any{"response"},
		"additionalProperties": false,
	})

	ingestSchema = mustCompileSchema("ingest", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"events": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"url":              map[string]any{"type": "string"},
						"domain":           map[string]any{"type": "string"},
						"title":            map[string]any{"type": "string"},
						"duration_seconds": map[string]any{"type": "integer"},
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"events"},
		"additionalProperties": false,
	})

	sessionSchema = mustCompileSchema("session", map[string]any{
		"type": "object",
		"properties": map[string]any{
			"topic": map[string]any{"type": "string"},
			"planned_duration_minutes": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
		},
		"additionalProperties": false,
	})
)

// mustCompileSchema compiles a schema definition or panics. Definitions
// are static, so a failure here is a programming error caught at startup.
func mustCompileSchema(name string, def map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(def)
	if err != nil {
		panic(fmt.Sprintf("marshal %s schema: %v", name, err))
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		panic(fmt.Sprintf("parse %s schema: %v", name, err))
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(url, parsed); err != nil {
		panic(fmt.Sprintf("add %s schema: %v", name, err))
	}
	compiled, err := c.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile %s schema: %v", name, err))
	}
	return compiled
}

// decodeBody reads, schema-validates, and unmarshals a request body into
// dst. Returns a client-facing error message on failure.
func decodeBody(r *http.Request, schema *jsonschema.Schema, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(body) == 0 {
		body = []byte("{}")
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	return json.Unmarshal(body, dst)
}
