package richtext

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// EngineOptions controls the goldmark configuration.
type EngineOptions struct {
	// HardWraps renders soft line breaks as <br>.
	HardWraps bool
	// AllowRawHTML passes inline HTML from the source through untouched.
	AllowRawHTML bool
}

func newEngine(opts EngineOptions, resolveImage func(string) string) goldmark.Markdown {
	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}
	if resolveImage != nil {
		parserOptions = append(parserOptions,
			parser.WithASTTransformers(util.Prioritized(imageTransformer{resolve: resolveImage}, 100)))
	}

	var rendererOptions []renderer.Option
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.AllowRawHTML {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.TaskList),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	return goldmark.New(engineOptions...)
}

// imageTransformer rewrites image destinations so relative upload paths in
// Markdown resolve against the CMS host.
type imageTransformer struct {
	resolve func(string) string
}

func (t imageTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if image, ok := n.(*ast.Image); ok {
			if resolved := t.resolve(string(image.Destination)); resolved != "" {
				image.Destination = []byte(resolved)
			}
		}
		return ast.WalkContinue, nil
	})
}
