package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func answerSchema() *Schema {
	return &Schema{
		Name: "test-answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer": map[string]any{"type": "string"},
				"score":  map[string]any{"type": "integer"},
			},
			"required":             []any{"answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"answer":"42","score":3}`)
	if err := validateResponse(answerSchema(), raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsSchemaViolation(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"missing required", `{"score":3}`},
		{"wrong type", `{"answer":7}`},
		{"extra property", `{"answer":"42","bogus":true}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateResponse(answerSchema(), json.RawMessage(tc.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want ErrInvalidResponse", err)
			}
			if string(invalid.Content) != tc.raw {
				t.Errorf("Content = %s, want %s", invalid.Content, tc.raw)
			}
		})
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	err := validateResponse(answerSchema(), json.RawMessage(`{"answer":`))
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}
