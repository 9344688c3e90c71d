package richtext

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"

	"github.com/goliatone/go-consulting-site/internal/format"
	"github.com/goliatone/go-consulting-site/internal/logging"
)

// Renderer turns Content into HTML or plain text. It is safe for concurrent
// use.
type Renderer struct {
	engine       goldmark.Markdown
	resolveImage func(string) string
	logger       logging.Logger
}

// Option configures a Renderer.
type Option func(*rendererConfig)

type rendererConfig struct {
	engine       EngineOptions
	resolveImage func(string) string
	logger       logging.Logger
}

// WithEngineOptions overrides the goldmark configuration.
func WithEngineOptions(opts EngineOptions) Option {
	return func(cfg *rendererConfig) {
		cfg.engine = opts
	}
}

// WithImageResolver rewrites image sources found in Markdown and block
// trees, normally with media.Resolver.Resolve.
func WithImageResolver(fn func(string) string) Option {
	return func(cfg *rendererConfig) {
		cfg.resolveImage = fn
	}
}

// WithLogger sets the logger used to report render failures.
func WithLogger(logger logging.Logger) Option {
	return func(cfg *rendererConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// NewRenderer builds a renderer. Soft line breaks become <br> unless the
// engine options say otherwise.
func NewRenderer(opts ...Option) *Renderer {
	cfg := rendererConfig{
		engine: EngineOptions{HardWraps: true},
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Renderer{
		engine:       newEngine(cfg.engine, cfg.resolveImage),
		resolveImage: cfg.resolveImage,
		logger:       cfg.logger,
	}
}

// RenderMarkdown converts Markdown to HTML. Empty input yields "". When the
// engine fails the raw input is returned and the failure is logged.
func (r *Renderer) RenderMarkdown(input string) (out string) {
	if strings.TrimSpace(input) == "" {
		return ""
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.Warn("richtext.markdown.panic", "error", recovered)
			out = input
		}
	}()

	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(input), &buf); err != nil {
		r.logger.Warn("richtext.markdown.failed", "error", err)
		return input
	}
	return buf.String()
}

// RenderContent renders either representation to HTML. Empty and
// unresolved content render as "".
func (r *Renderer) RenderContent(c Content) string {
	switch c.kind {
	case KindMarkdown:
		return r.RenderMarkdown(c.text)
	case KindBlocks:
		var b strings.Builder
		r.writeNodes(&b, c.blocks)
		return b.String()
	case KindUnresolved:
		r.logger.Debug("richtext.unresolved", "raw", string(c.raw))
		return ""
	default:
		return ""
	}
}

// ExtractText returns the visible text of c with markup removed and
// whitespace collapsed. The result contains no angle brackets, and feeding
// it back as Markdown yields the same string.
func (r *Renderer) ExtractText(c Content) string {
	switch c.kind {
	case KindMarkdown:
		return r.settle(c.text)
	case KindBlocks:
		return r.settle(collapse(stripTags(r.RenderContent(c))))
	default:
		return ""
	}
}

// Excerpt is ExtractText truncated to width display columns.
func (r *Renderer) Excerpt(c Content, width int) string {
	return format.Truncate(r.ExtractText(c), width)
}

// settle re-renders text until stripping markup no longer changes it, so
// that escaped Markdown characters left behind by one pass cannot be
// interpreted by the next caller. A pass never grows the text; if one does,
// or a pass repeats an earlier result, the previous text is kept.
func (r *Renderer) settle(source string) string {
	current := source
	seen := map[string]struct{}{}
	for {
		next := collapse(stripTags(r.RenderMarkdown(current)))
		if next == current {
			return current
		}
		switch size, prev := utf8.RuneCountInString(next), utf8.RuneCountInString(current); {
		case size > prev:
			return current
		case size < prev:
			clear(seen)
		}
		if _, ok := seen[next]; ok {
			return current
		}
		seen[next] = struct{}{}
		current = next
	}
}
