package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-consulting-site/pkg/interfaces"
)

const (
	rootModule     = "site"
	strapiModule   = "site.strapi"
	pagesModule    = "site.pages"
	formsModule    = "site.forms"
	insightsModule = "site.insights"
	richtextModule = "site.richtext"
	httpModule     = "site.http"
	ledgerModule   = "site.ledger"
)

const (
	fieldResource = "resource"
	fieldFormType = "form_type"
	fieldRoute    = "route"
)

// ModuleLogger returns a logger for module, falling back to NoOp when no
// provider is configured. Every returned logger carries a "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// StrapiLogger is used by the CMS client.
func StrapiLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, strapiModule)
}

// PagesLogger is used by page loaders.
func PagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pagesModule)
}

// FormsLogger is used by form submission handlers.
func FormsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, formsModule)
}

// InsightsLogger is used by the latest insights aggregation.
func InsightsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, insightsModule)
}

// RichTextLogger is used by the markdown and block renderer.
func RichTextLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, richtextModule)
}

// HTTPLogger is used by the site handlers and middleware.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// LedgerLogger is used by the submission ledger.
func LedgerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, ledgerModule)
}

// WithResource tags entries with the CMS resource being read or written.
func WithResource(logger interfaces.Logger, resource string) interfaces.Logger {
	return withTrimmed(logger, fieldResource, resource)
}

// WithFormType tags entries with a submission form type.
func WithFormType(logger interfaces.Logger, formType string) interfaces.Logger {
	return withTrimmed(logger, fieldFormType, formType)
}

// WithRoute tags entries with the page route that produced them.
func WithRoute(logger interfaces.Logger, route string) interfaces.Logger {
	return withTrimmed(logger, fieldRoute, route)
}

func withTrimmed(logger interfaces.Logger, key, value string) interfaces.Logger {
	value = strings.TrimSpace(value)
	if value == "" {
		return logger
	}
	return WithFields(logger, map[string]any{key: value})
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
