package validation

import (
	"errors"
	"strings"
	"testing"
)

func newsletterSchema(t *testing.T) *Schema {
	t.Helper()
	schema, err := Compile("newsletter", Required("email", 320), Optional("name", 10))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return schema
}

func TestSchemaAcceptsValidPayload(t *testing.T) {
	schema := newsletterSchema(t)
	if err := schema.Validate(map[string]any{"email": "a@example.com", "name": "Ada"}); err != nil {
		t.Fatalf("expected payload to validate, got %v", err)
	}
}

func TestSchemaReportsIssues(t *testing.T) {
	schema := newsletterSchema(t)

	err := schema.Validate(map[string]any{"name": 3, "extra": "x"})
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	if issues := Issues(err); len(issues) < 2 {
		t.Fatalf("expected an issue per violation, got %v", issues)
	}
	var payloadErr *PayloadError
	if !errors.As(err, &payloadErr) || payloadErr.Schema != "newsletter" {
		t.Fatalf("expected payload error for newsletter schema, got %v", err)
	}
}

func TestSchemaEnforcesLengths(t *testing.T) {
	schema := newsletterSchema(t)
	if err := schema.Validate(map[string]any{"email": "a@example.com", "name": strings.Repeat("x", 11)}); err == nil {
		t.Fatalf("expected max length violation")
	}
	if err := schema.Validate(map[string]any{"email": ""}); err == nil {
		t.Fatalf("expected empty required field to be rejected")
	}
}

func TestCompileRejectsEmptySchema(t *testing.T) {
	if _, err := Compile("empty"); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
	if _, err := Compile("unnamed", Optional(" ", 0)); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid for unnamed field, got %v", err)
	}
}
