package richtext

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestContentDecodesYAML(t *testing.T) {
	var doc struct {
		Body    Content `yaml:"body"`
		Flag    Content `yaml:"flag"`
		Outline Content `yaml:"outline"`
	}
	source := `
body: |
  We help **teams** ship.
flag: false
outline:
  - type: heading
    level: 2
    children:
      - type: text
        text: Approach
`
	if err := yaml.Unmarshal([]byte(source), &doc); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if doc.Body.Kind() != KindMarkdown {
		t.Fatalf("expected markdown body, got %v", doc.Body.Kind())
	}
	if !doc.Flag.IsUnresolved() || string(doc.Flag.Raw()) != "false" {
		t.Fatalf("expected unresolved flag, got %v %s", doc.Flag.Kind(), doc.Flag.Raw())
	}
	if got := NewRenderer().RenderContent(doc.Outline); got != "<h2>Approach</h2>" {
		t.Fatalf("unexpected outline render %q", got)
	}
}

func TestKindString(t *testing.T) {
	if KindBlocks.String() != "blocks" || Kind(42).String() != "empty" {
		t.Fatalf("unexpected kind names")
	}
}
