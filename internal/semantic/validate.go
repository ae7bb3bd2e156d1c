package semantic

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Compiled schemas, keyed by Schema.Name. Compilation happens once per
// schema for the process lifetime.
var (
	schemaMu       sync.Mutex
	schemaCompiled = map[string]*jsonschema.Schema{}
)

// checkOutput validates model output against the schema. A nil schema
// accepts anything. Failures come back as *ErrBadOutput.
func checkOutput(s *Schema, raw json.RawMessage) error {
	if s == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return &ErrBadOutput{Raw: raw, Err: fmt.Errorf("not JSON: %w", err)}
	}

	compiled, err := compiledSchema(s)
	if err != nil {
		return &ErrBadOutput{Raw: raw, Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return &ErrBadOutput{Raw: raw, Err: fmt.Errorf("schema %s: %w", s.Name, err)}
	}
	return nil
}

func compiledSchema(s *Schema) (*jsonschema.Schema, error) {
	schemaMu.Lock()
	defer schemaMu.Unlock()

	if c, ok := schemaCompiled[s.Name]; ok {
		return c, nil
	}

	// The compiler wants a parsed document, not a Go map with typed
	// values, so round-trip the definition through JSON.
	b, err := json.Marshal(s.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", s.Name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", s.Name, err)
	}

	compiler := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.Name)
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register schema %s: %w", s.Name, err)
	}
	c, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", s.Name, err)
	}

	schemaCompiled[s.Name] = c
	return c, nil
}
