package semantic

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestCheckOutputAcceptsValidVerdict(t *testing.T) {
	raw := json.RawMessage(`{"label":"study","confidence":0.8}`)
	if err := checkOutput(titleSchema, raw); err != nil {
		t.Fatalf("checkOutput: %v", err)
	}
}

func TestCheckOutputRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing confidence", `{"label":"study"}`},
		{"label outside enum", `{"label":"procrastination","confidence":0.8}`},
		{"confidence above max", `{"label":"study","confidence":1.5}`},
		{"extra property", `{"label":"study","confidence":0.8,"reason":"because"}`},
		{"not json", `{not json}`},
		{"empty", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkOutput(titleSchema, json.RawMessage(tc.raw))
			if err == nil {
				t.Fatal("want error")
			}
			var bad *ErrBadOutput
			if !errors.As(err, &bad) {
				t.Fatalf("err = %T, want *ErrBadOutput", err)
			}
		})
	}
}

func TestCheckOutputNilSchemaAcceptsAnything(t *testing.T) {
	if err := checkOutput(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("checkOutput: %v", err)
	}
}

func TestCheckOutputCompilesOnce(t *testing.T) {
	raw := json.RawMessage(`{"label":"neutral","confidence":0.5}`)
	for i := 0; i < 3; i++ {
		if err := checkOutput(titleSchema, raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	schemaMu.Lock()
	_, ok := schemaCompiled[titleSchema.Name]
	schemaMu.Unlock()
	if !ok {
		t.Fatal("compiled schema not cached")
	}
}
