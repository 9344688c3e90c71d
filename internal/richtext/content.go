package richtext

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind tags the representation held by Content.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindMarkdown
	KindBlocks
	// KindUnresolved marks a value whose JSON shape is neither a string nor
	// a block list, for example a boolean where text was expected.
	KindUnresolved
)

func (k Kind) String() string {
	switch k {
	case KindMarkdown:
		return "markdown"
	case KindBlocks:
		return "blocks"
	case KindUnresolved:
		return "unresolved"
	default:
		return "empty"
	}
}

// Content is a rich text value decoded once at the CMS boundary.
type Content struct {
	kind   Kind
	text   string
	blocks []Node
	raw    json.RawMessage
}

// Markdown wraps a Markdown source string.
func Markdown(source string) Content {
	if source == "" {
		return Content{}
	}
	return Content{kind: KindMarkdown, text: source}
}

// Blocks wraps a Strapi blocks tree.
func Blocks(nodes []Node) Content {
	if len(nodes) == 0 {
		return Content{}
	}
	return Content{kind: KindBlocks, blocks: nodes}
}

// Unresolved keeps a value of unexpected shape so callers can detect it.
func Unresolved(raw []byte) Content {
	return Content{kind: KindUnresolved, raw: append(json.RawMessage(nil), raw...)}
}

func (c Content) Kind() Kind           { return c.kind }
func (c Content) Source() string       { return c.text }
func (c Content) Nodes() []Node        { return c.blocks }
func (c Content) Raw() json.RawMessage { return c.raw }
func (c Content) IsZero() bool         { return c.kind == KindEmpty }
func (c Content) IsUnresolved() bool   { return c.kind == KindUnresolved }

// Or returns c unless it is empty or unresolved, in which case it returns
// alternative.
func (c Content) Or(alternative Content) Content {
	if c.kind == KindEmpty || c.kind == KindUnresolved {
		return alternative
	}
	return c
}

func (c *Content) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = Content{}
		return nil
	}

	switch trimmed[0] {
	case '"':
		var source string
		if err := json.Unmarshal(trimmed, &source); err != nil {
			return fmt.Errorf("richtext: decode markdown: %w", err)
		}
		*c = Markdown(source)
	case '[':
		var nodes []Node
		if err := json.Unmarshal(trimmed, &nodes); err != nil {
			*c = Unresolved(trimmed)
			return nil
		}
		*c = Blocks(nodes)
	default:
		*c = Unresolved(trimmed)
	}
	return nil
}

func (c Content) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case KindMarkdown:
		return json.Marshal(c.text)
	case KindBlocks:
		return json.Marshal(c.blocks)
	case KindUnresolved:
		return c.raw, nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalYAML decodes embedded fallback data, where rich text is written
// as a Markdown scalar or as a block sequence.
func (c *Content) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		switch value.Tag {
		case "!!null":
			*c = Content{}
		case "!!str", "":
			*c = Markdown(value.Value)
		default:
			raw := []byte(value.Value)
			if !json.Valid(raw) {
				quoted, err := json.Marshal(value.Value)
				if err != nil {
					return err
				}
				raw = quoted
			}
			*c = Unresolved(raw)
		}
	case yaml.SequenceNode:
		var nodes []Node
		if err := value.Decode(&nodes); err != nil {
			return fmt.Errorf("richtext: decode blocks: %w", err)
		}
		*c = Blocks(nodes)
	default:
		return fmt.Errorf("richtext: unsupported yaml node kind %d", value.Kind)
	}
	return nil
}
