package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-consulting-site/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "site.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerAnnotatesModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = StrapiLogger(provider)

	if len(provider.requested) != 1 || provider.requested[0] != strapiModule {
		t.Fatalf("expected module %s, got %v", strapiModule, provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != strapiModule {
		t.Fatalf("expected module field %s, got %v", strapiModule, rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestWithFormTypeSkipsBlankValues(t *testing.T) {
	rec := &recordingLogger{}

	WithFormType(rec, "   ")
	if len(rec.fields) != 0 {
		t.Fatalf("expected blank form type to be ignored, got %v", rec.fields)
	}

	WithFormType(rec, " Contact ")
	if len(rec.fields) != 1 || rec.fields[0][fieldFormType] != "Contact" {
		t.Fatalf("expected trimmed form type field, got %v", rec.fields)
	}
}

func TestContextFieldsMerge(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "a", "route": "/"})
	ctx = ContextWithFields(ctx, map[string]any{"route": "/about"})

	fields := ContextFields(ctx)
	if fields["request_id"] != "a" || fields["route"] != "/about" {
		t.Fatalf("unexpected merged fields: %v", fields)
	}

	fields["request_id"] = "mutated"
	if ContextFields(ctx)["request_id"] != "a" {
		t.Fatalf("expected context fields to be copied")
	}
}

func TestFromContextAppliesFields(t *testing.T) {
	rec := &recordingLogger{}
	ctx := ContextWithFields(context.Background(), map[string]any{"request_id": "abc"})

	FromContext(ctx, rec)

	if len(rec.contexts) != 1 {
		t.Fatalf("expected context to be attached")
	}
	if len(rec.fields) != 1 || rec.fields[0]["request_id"] != "abc" {
		t.Fatalf("expected request_id field, got %v", rec.fields)
	}
}
