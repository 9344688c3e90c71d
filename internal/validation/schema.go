// Package validation checks form payloads against JSON schemas before they
// are sent to the CMS.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("validation: schema invalid")
	ErrSchemaValidation = errors.New("validation: payload rejected")
)

// Field declares one string property of a form payload.
type Field struct {
	Name      string
	Required  bool
	MaxLength int
}

// Required declares a mandatory field.
func Required(name string, maxLength int) Field {
	return Field{Name: name, Required: true, MaxLength: maxLength}
}

// Optional declares a field that may be omitted.
func Optional(name string, maxLength int) Field {
	return Field{Name: name, MaxLength: maxLength}
}

// Issue is one schema violation.
type Issue struct {
	Location string
	Message  string
}

// PayloadError reports every violation found in a payload.
type PayloadError struct {
	Schema string
	Issues []Issue
}

func (e *PayloadError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := issue.Location
		if location == "" {
			location = "/"
		}
		parts = append(parts, location+": "+issue.Message)
	}
	return fmt.Sprintf("%s schema: %s", e.Schema, strings.Join(parts, "; "))
}

func (e *PayloadError) Unwrap() error { return ErrSchemaValidation }

// Issues returns the violations carried by err, if any.
func Issues(err error) []Issue {
	var payloadErr *PayloadError
	if errors.As(err, &payloadErr) {
		return payloadErr.Issues
	}
	return nil
}

// Schema is a compiled payload schema. Properties not declared are rejected.
type Schema struct {
	name     string
	compiled *jsonschema.Schema
}

// Compile builds the object schema for fields.
func Compile(name string, fields ...Field) (*Schema, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %s declares no fields", ErrSchemaInvalid, name)
	}

	properties := make(map[string]any, len(fields))
	required := []string{}
	for _, field := range fields {
		if strings.TrimSpace(field.Name) == "" {
			return nil, fmt.Errorf("%w: %s has an unnamed field", ErrSchemaInvalid, name)
		}
		property := map[string]any{"type": "string"}
		if field.Required {
			property["minLength"] = 1
			required = append(required, field.Name)
		}
		if field.MaxLength > 0 {
			property["maxLength"] = field.MaxLength
		}
		properties[field.Name] = property
	}

	document, err := json.Marshal(map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}

	resource := name + ".json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(resource, bytes.NewReader(document)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{name: name, compiled: compiled}, nil
}

// MustCompile panics when Compile fails. Used for package level schemas.
func MustCompile(name string, fields ...Field) *Schema {
	schema, err := Compile(name, fields...)
	if err != nil {
		panic(err)
	}
	return schema
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Validate checks payload. Violations are returned as *PayloadError.
func (s *Schema) Validate(payload map[string]any) error {
	if payload == nil {
		payload = map[string]any{}
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("validation: encode %s payload: %w", s.name, err)
	}
	var instance any
	if err := json.Unmarshal(encoded, &instance); err != nil {
		return fmt.Errorf("validation: decode %s payload: %w", s.name, err)
	}

	err = s.compiled.Validate(instance)
	if err == nil {
		return nil
	}
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return err
	}
	return &PayloadError{Schema: s.name, Issues: leaves(validationErr, nil)}
}

func leaves(node *jsonschema.ValidationError, issues []Issue) []Issue {
	if len(node.Causes) == 0 {
		return append(issues, Issue{
			Location: node.InstanceLocation,
			Message:  node.Message,
		})
	}
	for _, cause := range node.Causes {
		issues = leaves(cause, issues)
	}
	return issues
}
