package richtext

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

var blockTags = map[string]bool{
	"p": true, "br": true, "div": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "table": true, "tr": true, "td": true,
	"th": true, "hr": true, "img": true,
}

var skippedTags = map[string]bool{"script": true, "style": true}

// stripTags drops every tag from markup and returns its decoded text. Block
// level tags become spaces so adjacent blocks do not run together.
func stripTags(markup string) string {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(markup))
	var b strings.Builder
	skipping := 0

	for {
		token := tokenizer.Next()
		switch token {
		case xhtml.ErrorToken:
			return b.String()
		case xhtml.TextToken:
			if skipping == 0 {
				b.Write(tokenizer.Text())
			}
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if skippedTags[string(name)] && token == xhtml.StartTagToken {
				skipping++
			}
			if blockTags[string(name)] {
				b.WriteByte(' ')
			}
		case xhtml.EndTagToken:
			name, _ := tokenizer.TagName()
			if skippedTags[string(name)] && skipping > 0 {
				skipping--
			}
			if blockTags[string(name)] {
				b.WriteByte(' ')
			}
		}
	}
}

// collapse removes angle brackets and folds whitespace runs into one space.
func collapse(value string) string {
	value = strings.Map(func(r rune) rune {
		if r == '<' || r == '>' {
			return ' '
		}
		return r
	}, value)
	return strings.Join(strings.Fields(value), " ")
}
