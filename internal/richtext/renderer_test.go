package richtext

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderMarkdownEmptyInput(t *testing.T) {
	r := NewRenderer()
	if got := r.RenderMarkdown(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
	if got := r.RenderMarkdown("  \n "); got != "" {
		t.Fatalf("expected whitespace input to render empty, got %q", got)
	}
}

func TestRenderMarkdownGFMAndSoftBreaks(t *testing.T) {
	r := NewRenderer()

	got := r.RenderMarkdown("**bold** and ~~gone~~\nnext line")
	for _, want := range []string{"<strong>bold</strong>", "<del>gone</del>", "<br"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}

	table := r.RenderMarkdown("| a | b |\n|---|---|\n| 1 | 2 |")
	if !strings.Contains(table, "<table>") {
		t.Fatalf("expected GFM table, got %q", table)
	}
}

func TestRenderMarkdownOmitsRawHTMLByDefault(t *testing.T) {
	r := NewRenderer()
	got := r.RenderMarkdown("hello <script>alert(1)</script>")
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected raw html to be omitted, got %q", got)
	}
}

func TestRenderMarkdownResolvesImages(t *testing.T) {
	r := NewRenderer(WithImageResolver(func(path string) string {
		return "https://cms.example.com" + path
	}))
	got := r.RenderMarkdown("![chart](/uploads/chart.png)")
	if !strings.Contains(got, `src="https://cms.example.com/uploads/chart.png"`) {
		t.Fatalf("expected resolved image source, got %q", got)
	}
}

func TestRenderContentBlocks(t *testing.T) {
	r := NewRenderer()

	cases := []struct {
		name  string
		nodes []Node
		want  string
	}{
		{
			name:  "bold paragraph",
			nodes: []Node{Paragraph(Node{Type: "text", Text: "x", Bold: true})},
			want:  "<p><strong>x</strong></p>",
		},
		{
			name:  "heading level",
			nodes: []Node{Heading(3, Text("Title"))},
			want:  "<h3>Title</h3>",
		},
		{
			name:  "ordered list",
			nodes: []Node{List(true, ListItem(Text("one")), ListItem(Text("two")))},
			want:  "<ol><li>one</li><li>two</li></ol>",
		},
		{
			name:  "unordered list",
			nodes: []Node{List(false, ListItem(Text("a")))},
			want:  "<ul><li>a</li></ul>",
		},
		{
			name:  "link",
			nodes: []Node{Paragraph(Link("https://example.com?a=1&b=2", Text("site")))},
			want:  `<p><a href="https://example.com?a=1&amp;b=2">site</a></p>`,
		},
		{
			name:  "unsafe link keeps text",
			nodes: []Node{Paragraph(Link("javascript:alert(1)", Text("click")))},
			want:  "<p>click</p>",
		},
		{
			name:  "quote",
			nodes: []Node{Quote(Text("wise words"))},
			want:  "<blockquote>wise words</blockquote>",
		},
		{
			name:  "combined marks",
			nodes: []Node{Paragraph(Node{Type: "text", Text: "a<b", Bold: true, Italic: true, Code: true})},
			want:  "<p><strong><em><code>a&lt;b</code></em></strong></p>",
		},
		{
			name:  "unknown node",
			nodes: []Node{{Type: "carousel", Children: []Node{Text("hidden")}}},
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.RenderContent(Blocks(tc.nodes)); got != tc.want {
				t.Fatalf("RenderContent = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderContentUnresolvedAndEmpty(t *testing.T) {
	r := NewRenderer()
	if got := r.RenderContent(Content{}); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
	if got := r.RenderContent(Unresolved([]byte("true"))); got != "" {
		t.Fatalf("expected unresolved render to be empty, got %q", got)
	}
}

func TestContentDecodesEitherShape(t *testing.T) {
	var payload struct {
		Markdown  Content `json:"markdown"`
		Blocks    Content `json:"blocks"`
		Flag      Content `json:"flag"`
		Missing   Content `json:"missing"`
		Null      Content `json:"null"`
		Malformed Content `json:"malformed"`
	}
	body := `{
		"markdown": "# Hello",
		"blocks": [{"type":"paragraph","children":[{"type":"text","text":"hi"}]}],
		"flag": true,
		"null": null,
		"malformed": [1, 2]
	}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if payload.Markdown.Kind() != KindMarkdown || payload.Markdown.Source() != "# Hello" {
		t.Fatalf("expected markdown, got %v", payload.Markdown.Kind())
	}
	if payload.Blocks.Kind() != KindBlocks || len(payload.Blocks.Nodes()) != 1 {
		t.Fatalf("expected blocks, got %v", payload.Blocks.Kind())
	}
	if !payload.Flag.IsUnresolved() || string(payload.Flag.Raw()) != "true" {
		t.Fatalf("expected boolean to be unresolved, got %v", payload.Flag.Kind())
	}
	if !payload.Missing.IsZero() || !payload.Null.IsZero() {
		t.Fatalf("expected missing and null to be empty")
	}
	if !payload.Malformed.IsUnresolved() {
		t.Fatalf("expected malformed block list to be unresolved")
	}
}

func TestContentRoundTripsThroughJSON(t *testing.T) {
	original := Blocks([]Node{Paragraph(Text("hello"))})
	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded Content
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if NewRenderer().RenderContent(decoded) != "<p>hello</p>" {
		t.Fatalf("unexpected round trip: %s", data)
	}
}

func TestContentOr(t *testing.T) {
	fallback := Markdown("fallback")
	if got := Unresolved([]byte("false")).Or(fallback); got.Source() != "fallback" {
		t.Fatalf("expected unresolved to fall back")
	}
	if got := Markdown("cms").Or(fallback); got.Source() != "cms" {
		t.Fatalf("expected markdown to win")
	}
}

func TestExtractText(t *testing.T) {
	r := NewRenderer()

	if got := r.ExtractText(Markdown("# Title\n\nSome **bold**   text")); got != "Title Some bold text" {
		t.Fatalf("ExtractText markdown = %q", got)
	}

	blocks := Blocks([]Node{
		Heading(2, Text("Results")),
		Paragraph(Text("Cut costs "), Node{Type: "text", Text: "40%", Bold: true}),
	})
	if got := r.ExtractText(blocks); got != "Results Cut costs 40%" {
		t.Fatalf("ExtractText blocks = %q", got)
	}

	if got := r.ExtractText(Unresolved([]byte("true"))); got != "" {
		t.Fatalf("expected unresolved text to be empty, got %q", got)
	}
}

func TestExtractTextIsStable(t *testing.T) {
	r := NewRenderer()
	inputs := []Content{
		Markdown(`\*not emphasis\*`),
		Markdown("1. step one\n2. step two"),
		Markdown("&amp;amp; entities"),
		Markdown("<b>raw</b> html and a < b > c"),
		Markdown("> quoted\n\n- item\n- [link](https://example.com)"),
		Markdown("`code` and ``` fences ```"),
		Blocks([]Node{Paragraph(Text("# not a heading *really*"))}),
		Blocks([]Node{Quote(Text("<tag> & more"))}),
		Markdown(strings.Repeat("\\", 1024) + "x"),
	}

	for _, input := range inputs {
		once := r.ExtractText(input)
		if strings.ContainsAny(once, "<>") {
			t.Fatalf("expected no angle brackets in %q", once)
		}
		if once != strings.TrimSpace(once) || strings.Contains(once, "  ") {
			t.Fatalf("expected collapsed whitespace in %q", once)
		}
		twice := r.ExtractText(Markdown(once))
		if twice != once {
			t.Fatalf("expected stable extraction, first %q then %q", once, twice)
		}
	}
}

func TestExcerpt(t *testing.T) {
	r := NewRenderer()
	got := r.Excerpt(Markdown("A fairly long paragraph about supply chain resilience"), 16)
	if !strings.HasSuffix(got, "…") || len([]rune(got)) > 16 {
		t.Fatalf("unexpected excerpt %q", got)
	}
}
