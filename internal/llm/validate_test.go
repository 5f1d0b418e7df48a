package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var verdictSchema = &Schema{
	Name:        "test-verdict",
	Description: "Evaluation verdict for tests",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"is_correct": map[string]any{"type": "boolean"},
			"confidence": map[string]any{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			},
		},
		"required":             []any{"is_correct", "confidence"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"is_correct": true, "confidence": 0.9}`)
	if err := validateResponse(verdictSchema, raw); err != nil {
		t.Errorf("expected valid, got: %v", err)
	}
}

func TestValidateResponse_NilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should pass anything, got: %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(verdictSchema, json.RawMessage(`{"is_correct": tru`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	err := validateResponse(verdictSchema, json.RawMessage(`{"is_correct": true}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse for missing field", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	err := validateResponse(verdictSchema, json.RawMessage(`{"is_correct": "yes", "confidence": 0.5}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse for wrong type", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	err := validateResponse(verdictSchema, json.RawMessage(`{"is_correct": true, "confidence": 1.5}`))
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("err = %v, want ErrInvalidResponse for out-of-range confidence", err)
	}
}
