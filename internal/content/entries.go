package content

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-consulting-site/internal/richtext"
)

// Collection names one of the published content collections.
type Collection string

const (
	CollectionBlogs       Collection = "blogs"
	CollectionArticles    Collection = "articles"
	CollectionCaseStudies Collection = "case-studies"
)

// Collections lists the insight collections in display order.
func Collections() []Collection {
	return []Collection{CollectionBlogs, CollectionArticles, CollectionCaseStudies}
}

// ParseCollection matches a URL segment to a collection.
func ParseCollection(value string) (Collection, bool) {
	switch Collection(strings.ToLower(strings.TrimSpace(value))) {
	case CollectionBlogs:
		return CollectionBlogs, true
	case CollectionArticles:
		return CollectionArticles, true
	case CollectionCaseStudies, "case_studies", "casestudies":
		return CollectionCaseStudies, true
	default:
		return "", false
	}
}

// Label is the singular display name ("Blog", "Article", "Case Study").
func (c Collection) Label() string {
	switch c {
	case CollectionBlogs:
		return "Blog"
	case CollectionArticles:
		return "Article"
	case CollectionCaseStudies:
		return "Case Study"
	default:
		return ""
	}
}

// Plural is the heading used on listing pages.
func (c Collection) Plural() string {
	switch c {
	case CollectionBlogs:
		return "Blogs"
	case CollectionArticles:
		return "Articles"
	case CollectionCaseStudies:
		return "Case Studies"
	default:
		return ""
	}
}

// Byline is an author name. The CMS sends either a plain string or an
// author relation; both decode to the display name.
type Byline string

func (b *Byline) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*b = ""
		return nil
	}
	if data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*b = Byline(strings.TrimSpace(name))
		return nil
	}
	var relation struct {
		Name     string `json:"name"`
		FullName string `json:"fullName"`
	}
	if err := json.Unmarshal(data, &relation); err != nil {
		*b = ""
		return nil
	}
	name := relation.FullName
	if name == "" {
		name = relation.Name
	}
	*b = Byline(strings.TrimSpace(name))
	return nil
}

// Entry holds the fields shared by blogs, articles and case studies.
type Entry struct {
	ID              int              `json:"id" yaml:"id,omitempty"`
	DocumentID      string           `json:"documentId" yaml:"documentId,omitempty"`
	Title           string           `json:"title" yaml:"title"`
	Slug            string           `json:"slug" yaml:"slug"`
	Excerpt         string           `json:"excerpt" yaml:"excerpt"`
	Content         richtext.Content `json:"content" yaml:"content"`
	PublicationDate Date             `json:"publicationDate" yaml:"publicationDate"`
	IsPublished     bool             `json:"isPublished" yaml:"isPublished"`
	FeaturedImage   *Media           `json:"featuredImage" yaml:"featuredImage"`
	Author          Byline           `json:"author" yaml:"author"`
	Category        string           `json:"category" yaml:"category"`
}

// Base returns the shared fields. Blog, Article and CaseStudy promote it, so
// generic listing code can work on any of them through Item.
func (e Entry) Base() Entry { return e }

func (e *Entry) MediaRefs() []*Media {
	return []*Media{e.FeaturedImage}
}

// Item is implemented by every insight record.
type Item interface {
	Base() Entry
}

type Blog struct {
	Entry `yaml:",inline"`
}

type Article struct {
	Entry        `yaml:",inline"`
	ResearchType string  `json:"researchType" yaml:"researchType"`
	Attachments  []Media `json:"attachments" yaml:"attachments"`
}

func (a *Article) MediaRefs() []*Media {
	refs := a.Entry.MediaRefs()
	for i := range a.Attachments {
		refs = append(refs, &a.Attachments[i])
	}
	return refs
}

type CaseStudy struct {
	Entry      `yaml:",inline"`
	ClientName string           `json:"clientName" yaml:"clientName"`
	Industry   string           `json:"industry" yaml:"industry"`
	Challenge  richtext.Content `json:"challenge" yaml:"challenge"`
	Solution   richtext.Content `json:"solution" yaml:"solution"`
	Results    richtext.Content `json:"results" yaml:"results"`
	ClientLogo *Media           `json:"clientLogo" yaml:"clientLogo"`
}

func (c *CaseStudy) MediaRefs() []*Media {
	return append(c.Entry.MediaRefs(), c.ClientLogo)
}

// Feature is a bullet on a service or industry page. The CMS stores these
// either as plain strings or as {title, description} components.
type Feature struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (f *Feature) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var title string
		if err := json.Unmarshal(data, &title); err != nil {
			return err
		}
		*f = Feature{Title: title}
		return nil
	}
	type plain Feature
	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*f = Feature(decoded)
	return nil
}

func (f *Feature) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*f = Feature{Title: value.Value}
		return nil
	}
	type plain Feature
	var decoded plain
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*f = Feature(decoded)
	return nil
}
