package richtext

// Node is one element of a Strapi blocks tree. Text leaves carry Text and
// the formatting flags; containers carry Children.
type Node struct {
	Type          string `json:"type" yaml:"type"`
	Level         int    `json:"level,omitempty" yaml:"level,omitempty"`
	Format        string `json:"format,omitempty" yaml:"format,omitempty"`
	URL           string `json:"url,omitempty" yaml:"url,omitempty"`
	Text          string `json:"text,omitempty" yaml:"text,omitempty"`
	Bold          bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Underline     bool   `json:"underline,omitempty" yaml:"underline,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Code          bool   `json:"code,omitempty" yaml:"code,omitempty"`
	Image         *Image `json:"image,omitempty" yaml:"image,omitempty"`
	Children      []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Image is the payload of an "image" block.
type Image struct {
	URL             string `json:"url" yaml:"url"`
	AlternativeText string `json:"alternativeText,omitempty" yaml:"alternativeText,omitempty"`
	Width           int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height          int    `json:"height,omitempty" yaml:"height,omitempty"`
}

const (
	nodeParagraph = "paragraph"
	nodeHeading   = "heading"
	nodeList      = "list"
	nodeListItem  = "list-item"
	nodeLink      = "link"
	nodeQuote     = "quote"
	nodeCode      = "code"
	nodeImage     = "image"
	nodeText      = "text"
)

// Paragraph, Heading, Text and friends build trees in code, mostly for
// fallback content and tests.
func Paragraph(children ...Node) Node { return Node{Type: nodeParagraph, Children: children} }

func Heading(level int, children ...Node) Node {
	return Node{Type: nodeHeading, Level: level, Children: children}
}

func List(ordered bool, items ...Node) Node {
	format := "unordered"
	if ordered {
		format = "ordered"
	}
	return Node{Type: nodeList, Format: format, Children: items}
}

func ListItem(children ...Node) Node { return Node{Type: nodeListItem, Children: children} }

func Link(url string, children ...Node) Node {
	return Node{Type: nodeLink, URL: url, Children: children}
}

func Quote(children ...Node) Node { return Node{Type: nodeQuote, Children: children} }

func Text(value string) Node { return Node{Type: nodeText, Text: value} }
