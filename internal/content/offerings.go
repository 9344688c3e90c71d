package content

import "github.com/goliatone/go-consulting-site/internal/richtext"

type Service struct {
	ID               int              `json:"id" yaml:"id,omitempty"`
	DocumentID       string           `json:"documentId" yaml:"documentId,omitempty"`
	Name             string           `json:"name" yaml:"name"`
	Slug             string           `json:"slug" yaml:"slug"`
	ShortDescription string           `json:"shortDescription" yaml:"shortDescription"`
	Description      richtext.Content `json:"description" yaml:"description"`
	Features         []Feature        `json:"features" yaml:"features"`
	Icon             string           `json:"icon" yaml:"icon"`
	FeaturedImage    *Media           `json:"featuredImage" yaml:"featuredImage"`
	IsActive         bool             `json:"isActive" yaml:"isActive"`
	OrderIndex       int              `json:"orderIndex" yaml:"orderIndex"`
}

func (s *Service) MediaRefs() []*Media { return []*Media{s.FeaturedImage} }

type Industry struct {
	ID               int              `json:"id" yaml:"id,omitempty"`
	DocumentID       string           `json:"documentId" yaml:"documentId,omitempty"`
	Name             string           `json:"name" yaml:"name"`
	Slug             string           `json:"slug" yaml:"slug"`
	ShortDescription string           `json:"shortDescription" yaml:"shortDescription"`
	Description      richtext.Content `json:"description" yaml:"description"`
	Challenges       []Feature        `json:"challenges" yaml:"challenges"`
	Solutions        []Feature        `json:"solutions" yaml:"solutions"`
	Icon             string           `json:"icon" yaml:"icon"`
	FeaturedImage    *Media           `json:"featuredImage" yaml:"featuredImage"`
	IsActive         bool             `json:"isActive" yaml:"isActive"`
	OrderIndex       int              `json:"orderIndex" yaml:"orderIndex"`
}

func (i *Industry) MediaRefs() []*Media { return []*Media{i.FeaturedImage} }

type Testimonial struct {
	ID          int    `json:"id" yaml:"id,omitempty"`
	DocumentID  string `json:"documentId" yaml:"documentId,omitempty"`
	Quote       string `json:"quote" yaml:"quote"`
	AuthorName  string `json:"authorName" yaml:"authorName"`
	AuthorTitle string `json:"authorTitle" yaml:"authorTitle"`
	Company     string `json:"company" yaml:"company"`
	Rating      int    `json:"rating" yaml:"rating"`
	Photo       *Media `json:"photo" yaml:"photo"`
	IsActive    bool   `json:"isActive" yaml:"isActive"`
	OrderIndex  int    `json:"orderIndex" yaml:"orderIndex"`
}

func (t *Testimonial) MediaRefs() []*Media { return []*Media{t.Photo} }
