package richtext

import (
	"html"
	"net/url"
	"strconv"
	"strings"
)

func (r *Renderer) writeNodes(b *strings.Builder, nodes []Node) {
	for _, node := range nodes {
		r.writeNode(b, node)
	}
}

func (r *Renderer) writeNode(b *strings.Builder, node Node) {
	switch node.Type {
	case nodeParagraph:
		r.wrap(b, "p", node.Children)
	case nodeHeading:
		r.wrap(b, "h"+strconv.Itoa(headingLevel(node.Level)), node.Children)
	case nodeList:
		tag := "ul"
		if node.Format == "ordered" {
			tag = "ol"
		}
		r.wrap(b, tag, node.Children)
	case nodeListItem:
		r.wrap(b, "li", node.Children)
	case nodeQuote:
		r.wrap(b, "blockquote", node.Children)
	case nodeLink:
		href, ok := safeHref(node.URL)
		if !ok {
			r.writeNodes(b, node.Children)
			return
		}
		b.WriteString(`<a href="`)
		b.WriteString(html.EscapeString(href))
		b.WriteString(`">`)
		r.writeNodes(b, node.Children)
		b.WriteString("</a>")
	case nodeCode:
		b.WriteString("<pre><code>")
		b.WriteString(html.EscapeString(plainChildren(node.Children)))
		b.WriteString("</code></pre>")
	case nodeImage:
		r.writeImage(b, node.Image)
	case nodeText:
		writeText(b, node)
	}
}

func (r *Renderer) wrap(b *strings.Builder, tag string, children []Node) {
	b.WriteString("<" + tag + ">")
	r.writeNodes(b, children)
	b.WriteString("</" + tag + ">")
}

func (r *Renderer) writeImage(b *strings.Builder, image *Image) {
	if image == nil {
		return
	}
	src := image.URL
	if r.resolveImage != nil {
		src = r.resolveImage(src)
	}
	if src == "" {
		return
	}
	b.WriteString(`<img src="`)
	b.WriteString(html.EscapeString(src))
	b.WriteString(`" alt="`)
	b.WriteString(html.EscapeString(image.AlternativeText))
	b.WriteString(`">`)
}

// writeText emits a leaf, innermost formatting first, so bold wraps italic
// wraps underline wraps strikethrough wraps code.
func writeText(b *strings.Builder, node Node) {
	value := strings.ReplaceAll(html.EscapeString(node.Text), "\n", "<br>")
	if node.Code {
		value = "<code>" + value + "</code>"
	}
	if node.Strikethrough {
		value = "<s>" + value + "</s>"
	}
	if node.Underline {
		value = "<u>" + value + "</u>"
	}
	if node.Italic {
		value = "<em>" + value + "</em>"
	}
	if node.Bold {
		value = "<strong>" + value + "</strong>"
	}
	b.WriteString(value)
}

func plainChildren(children []Node) string {
	var b strings.Builder
	for _, child := range children {
		if child.Type == nodeText {
			b.WriteString(child.Text)
			continue
		}
		b.WriteString(plainChildren(child.Children))
	}
	return b.String()
}

func headingLevel(level int) int {
	if level < 1 || level > 6 {
		return 2
	}
	return level
}

// safeHref accepts relative references and the http, https, mailto and tel
// schemes.
func safeHref(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "", "http", "https", "mailto", "tel":
		return raw, true
	default:
		return "", false
	}
}
