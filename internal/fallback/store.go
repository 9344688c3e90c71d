// Package fallback holds the canonical content shown when the CMS cannot
// supply it, and the policy helpers pages use to choose between the two.
package fallback

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-slug"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/identity"
	"github.com/goliatone/go-consulting-site/internal/richtext"
)

//go:embed data
var embedded embed.FS

var (
	ErrInsightRefUnknown = errors.New("fallback: latest insight references an unknown entry")
	ErrLatestIncomplete  = errors.New("fallback: latest insights need exactly three entries")
)

// Insight pairs an entry with the collection it belongs to.
type Insight struct {
	Collection content.Collection
	Entry      content.Entry
}

// Store is the canonical fallback table. Accessors return copies.
type Store struct {
	settings     content.GlobalSettings
	navigation   content.Navigation
	hero         content.HomepageHero
	stats        content.HomepageStats
	about        content.AboutOverview
	team         []content.TeamMember
	jobs         []content.Job
	services     []content.Service
	industries   []content.Industry
	testimonials []content.Testimonial
	blogs        []content.Blog
	articles     []content.Article
	caseStudies  []content.CaseStudy
	stockImages  map[content.Collection]string
	latest       []Insight
}

type siteDocument struct {
	Settings     content.GlobalSettings `yaml:"settings"`
	Navigation   content.Navigation     `yaml:"navigation"`
	Hero         content.HomepageHero   `yaml:"hero"`
	Stats        content.HomepageStats  `yaml:"stats"`
	About        content.AboutOverview  `yaml:"about"`
	Team         []content.TeamMember   `yaml:"team"`
	Jobs         []content.Job          `yaml:"jobs"`
	Services     []content.Service      `yaml:"services"`
	Industries   []content.Industry     `yaml:"industries"`
	Testimonials []content.Testimonial  `yaml:"testimonials"`
	StockImages  map[string]string      `yaml:"stockImages"`
	Latest       []insightRef           `yaml:"latest"`
}

type insightRef struct {
	Collection string `yaml:"collection"`
	Slug       string `yaml:"slug"`
}

// insightDocument is the front matter of one markdown insight. The body
// becomes Entry.Content.
type insightDocument struct {
	content.Entry `yaml:",inline"`
	ResearchType  string           `yaml:"researchType"`
	ClientName    string           `yaml:"clientName"`
	Industry      string           `yaml:"industry"`
	Challenge     richtext.Content `yaml:"challenge"`
	Solution      richtext.Content `yaml:"solution"`
	Results       richtext.Content `yaml:"results"`
	ClientLogo    *content.Media   `yaml:"clientLogo"`
}

var frontMatterYAML = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

var defaultStore = sync.OnceValues(func() (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
})

// Default returns the store built from the embedded data. The embedded data
// is covered by tests, so a failure here is a build defect and panics.
func Default() *Store {
	store, err := defaultStore()
	if err != nil {
		panic(err)
	}
	return store
}

// Load reads site.yaml and insights/<collection>/*.md from fsys.
func Load(fsys fs.FS) (*Store, error) {
	raw, err := fs.ReadFile(fsys, "site.yaml")
	if err != nil {
		return nil, fmt.Errorf("fallback: read site.yaml: %w", err)
	}
	var doc siteDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("fallback: decode site.yaml: %w", err)
	}

	s := &Store{
		settings:     doc.Settings,
		navigation:   doc.Navigation,
		hero:         doc.Hero,
		stats:        doc.Stats,
		about:        doc.About,
		team:         doc.Team,
		jobs:         doc.Jobs,
		services:     doc.Services,
		industries:   doc.Industries,
		testimonials: doc.Testimonials,
		stockImages:  map[content.Collection]string{},
	}
	for key, url := range doc.StockImages {
		if collection, ok := content.ParseCollection(key); ok {
			s.stockImages[collection] = url
		}
	}
	s.assignIdentities()

	for _, collection := range content.Collections() {
		if err := s.loadInsights(fsys, collection); err != nil {
			return nil, err
		}
	}
	if err := s.resolveLatest(doc.Latest); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) assignIdentities() {
	for i := range s.team {
		m := &s.team[i]
		m.DocumentID = orDefault(m.DocumentID, identity.DocumentID("team-members", m.FullName))
		m.ID = orDefaultInt(m.ID, identity.NumericID("team-members", m.FullName))
	}
	for i := range s.jobs {
		j := &s.jobs[i]
		key := slugFor("", j.Title)
		j.DocumentID = orDefault(j.DocumentID, identity.DocumentID("jobs", key))
		j.ID = orDefaultInt(j.ID, identity.NumericID("jobs", key))
	}
	for i := range s.services {
		svc := &s.services[i]
		svc.Slug = slugFor(svc.Slug, svc.Name)
		svc.DocumentID = orDefault(svc.DocumentID, identity.DocumentID("services", svc.Slug))
		svc.ID = orDefaultInt(svc.ID, identity.NumericID("services", svc.Slug))
	}
	for i := range s.industries {
		ind := &s.industries[i]
		ind.Slug = slugFor(ind.Slug, ind.Name)
		ind.DocumentID = orDefault(ind.DocumentID, identity.DocumentID("industries", ind.Slug))
		ind.ID = orDefaultInt(ind.ID, identity.NumericID("industries", ind.Slug))
	}
	for i := range s.testimonials {
		t := &s.testimonials[i]
		t.DocumentID = orDefault(t.DocumentID, identity.DocumentID("testimonials", t.AuthorName))
		t.ID = orDefaultInt(t.ID, identity.NumericID("testimonials", t.AuthorName))
	}
}

func (s *Store) loadInsights(fsys fs.FS, collection content.Collection) error {
	dir := path.Join("insights", string(collection))
	names, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return fmt.Errorf("fallback: list %s: %w", dir, err)
	}
	slices.Sort(names)

	for _, name := range names {
		doc, err := readInsight(fsys, name)
		if err != nil {
			return err
		}
		doc.Slug = slugFor(doc.Slug, strings.TrimSuffix(path.Base(name), ".md"))
		doc.DocumentID = orDefault(doc.DocumentID, identity.DocumentID(string(collection), doc.Slug))
		doc.ID = orDefaultInt(doc.ID, identity.NumericID(string(collection), doc.Slug))
		doc.IsPublished = true
		if err := validateEntry(doc.Entry); err != nil {
			return fmt.Errorf("fallback: %s: %w", name, err)
		}

		switch collection {
		case content.CollectionBlogs:
			s.blogs = append(s.blogs, content.Blog{Entry: doc.Entry})
		case content.CollectionArticles:
			s.articles = append(s.articles, content.Article{Entry: doc.Entry, ResearchType: doc.ResearchType})
		case content.CollectionCaseStudies:
			s.caseStudies = append(s.caseStudies, content.CaseStudy{
				Entry:      doc.Entry,
				ClientName: doc.ClientName,
				Industry:   doc.Industry,
				Challenge:  doc.Challenge,
				Solution:   doc.Solution,
				Results:    doc.Results,
				ClientLogo: doc.ClientLogo,
			})
		}
	}

	sortNewest(s.blogs)
	sortNewest(s.articles)
	sortNewest(s.caseStudies)
	return nil
}

func readInsight(fsys fs.FS, name string) (insightDocument, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return insightDocument{}, fmt.Errorf("fallback: read %s: %w", name, err)
	}
	var doc insightDocument
	body, err := frontmatter.MustParse(bytes.NewReader(raw), &doc, frontMatterYAML)
	if err != nil {
		return insightDocument{}, fmt.Errorf("fallback: front matter %s: %w", name, err)
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		doc.Content = richtext.Markdown(text)
	}
	return doc, nil
}

func validateEntry(entry content.Entry) error {
	return validation.ValidateStruct(&entry,
		validation.Field(&entry.Title, validation.Required),
		validation.Field(&entry.Slug, validation.Required),
		validation.Field(&entry.Excerpt, validation.Required),
		validation.Field(&entry.FeaturedImage, validation.Required),
		validation.Field(&entry.PublicationDate, validation.By(func(any) error {
			if entry.PublicationDate.IsZero() {
				return errors.New("cannot be blank")
			}
			return nil
		})),
	)
}

func (s *Store) resolveLatest(refs []insightRef) error {
	if len(refs) != 3 {
		return ErrLatestIncomplete
	}
	for _, ref := range refs {
		collection, ok := content.ParseCollection(ref.Collection)
		if !ok {
			return fmt.Errorf("%w: collection %q", ErrInsightRefUnknown, ref.Collection)
		}
		item, ok := s.Entry(collection, ref.Slug)
		if !ok {
			return fmt.Errorf("%w: %s/%s", ErrInsightRefUnknown, collection, ref.Slug)
		}
		s.latest = append(s.latest, Insight{Collection: collection, Entry: item.Base()})
	}
	return nil
}

func sortNewest[T content.Item](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return b.Base().PublicationDate.Compare(a.Base().PublicationDate.Time)
	})
}

func slugFor(explicit, source string) string {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit
	}
	normalized, err := slug.Normalize(source)
	if err != nil || normalized == "" {
		return strings.ToLower(strings.Join(strings.Fields(source), "-"))
	}
	return normalized
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func orDefaultInt(value, fallback int) int {
	if value != 0 {
		return value
	}
	return fallback
}
