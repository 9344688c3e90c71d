package views

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-consulting-site/internal/content"
	"github.com/goliatone/go-consulting-site/internal/forms"
	"github.com/goliatone/go-consulting-site/internal/pages"
)

// Meta describes the document head of one page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	NoIndex     bool
}

const stylesheet = `
body{margin:0;font-family:system-ui,sans-serif;color:#1f2933;line-height:1.6}
a{color:#1d4ed8}
.container{max-width:72rem;margin:0 auto;padding:0 1.25rem}
.site-nav,.site-footer{background:#0f172a;color:#e2e8f0}
.site-nav a,.site-footer a{color:inherit;text-decoration:none}
.site-nav .container{display:flex;align-items:center;gap:1.5rem;padding:1rem 1.25rem}
.nav-items{display:flex;gap:1rem;list-style:none;margin:0;padding:0;flex:1}
.grid{display:grid;gap:1.5rem;grid-template-columns:repeat(auto-fill,minmax(16rem,1fr))}
.card{border:1px solid #e2e8f0;border-radius:.5rem;padding:1.25rem;background:#fff}
.card img{width:100%;height:auto;border-radius:.25rem}
.hero{position:relative;overflow:hidden;padding:4rem 0;background:#f1f5f9}
.hero-background{position:absolute;inset:0;width:100%;height:100%;object-fit:cover;z-index:0}
.hero>.container{position:relative}
.section{padding:3rem 0}
.alert{padding:.75rem 1rem;border-radius:.25rem;margin-bottom:1rem}
.alert-success{background:#dcfce7}
.alert-error{background:#fee2e2}
.field-error{color:#b91c1c;font-size:.875rem}
.pagination{display:flex;gap:.5rem;list-style:none;padding:0}
`

// Layout wraps body in the shared document: head, navigation bar and
// footer with the newsletter form.
func (v *View) Layout(meta Meta, chrome pages.Chrome, body ...g.Node) g.Node {
	siteName := chrome.Settings.SiteName
	title := siteName
	if meta.Title != "" && meta.Title != siteName {
		title = meta.Title + " | " + siteName
	}
	description := meta.Description
	if description == "" {
		description = chrome.Settings.Tagline
	}

	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: description,
		Language:    "en",
		Head: []g.Node{
			g.If(meta.Canonical != "", h.Link(h.Rel("canonical"), h.Href(meta.Canonical))),
			g.If(meta.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex"))),
			g.El("style", g.Raw(stylesheet)),
		},
		Body: []g.Node{
			v.navBar(chrome),
			h.Main(h.ID("main"), g.Group(body)),
			v.footer(chrome),
		},
	})
}

func (v *View) navBar(chrome pages.Chrome) g.Node {
	nav := chrome.Navigation
	return h.Header(h.Class("site-nav"),
		h.Nav(h.Class("container"), h.Aria("label", "Main"),
			h.A(h.Class("brand"), h.Href(v.routes.HomePath()),
				g.Iff(chrome.Settings.Logo != nil && chrome.Settings.Logo.URL != "", func() g.Node {
					return image(chrome.Settings.Logo, chrome.Settings.SiteName, "logo")
				}),
				h.Strong(g.Text(chrome.Settings.SiteName)),
			),
			h.Ul(h.Class("nav-items"), g.Map(nav.Items, navItem)),
			g.El("form", h.Class("nav-search"), h.Action(v.routes.SearchPath("")), h.Method("get"), h.Role("search"),
				h.Input(h.Type("search"), h.Name("q"), h.Placeholder("Search insights"), h.Aria("label", "Search insights")),
			),
			g.Iff(nav.CTA != nil && nav.CTA.URL != "", func() g.Node {
				return h.A(h.Class("button nav-cta"), h.Href(nav.CTA.URL), g.Text(nav.CTA.Label))
			}),
		),
	)
}

func navItem(item content.NavItem) g.Node {
	return h.Li(
		navLink(item),
		g.If(len(item.Children) > 0, h.Ul(h.Class("nav-children"), g.Map(item.Children, navItem))),
	)
}

func navLink(item content.NavItem) g.Node {
	return h.A(h.Href(item.URL),
		g.If(item.External, g.Group{h.Target("_blank"), h.Rel("noopener noreferrer")}),
		g.Text(item.Label),
	)
}

func (v *View) footer(chrome pages.Chrome) g.Node {
	settings := chrome.Settings
	year := strconv.Itoa(v.now().Year())
	return h.Footer(h.Class("site-footer"),
		h.Div(h.Class("container grid"),
			h.Div(
				h.Strong(g.Text(settings.SiteName)),
				g.If(settings.Tagline != "", h.P(g.Text(settings.Tagline))),
				h.Address(
					g.If(settings.ContactEmail != "", h.P(h.A(h.Href("mailto:"+settings.ContactEmail), g.Text(settings.ContactEmail)))),
					g.If(settings.ContactPhone != "", h.P(h.A(h.Href("tel:"+telephone(settings.ContactPhone)), g.Text(settings.ContactPhone)))),
					g.If(settings.Address != "", h.P(g.Text(settings.Address))),
				),
			),
			h.Div(
				h.H2(g.Text("Explore")),
				h.Ul(
					h.Li(h.A(h.Href(v.routes.ServicesPath()), g.Text("Services"))),
					h.Li(h.A(h.Href(v.routes.IndustriesPath()), g.Text("Industries"))),
					h.Li(h.A(h.Href(v.routes.InsightsPath()), g.Text("Insights"))),
					h.Li(h.A(h.Href(v.routes.CareersPath()), g.Text("Careers"))),
					h.Li(h.A(h.Href(v.routes.ContactPath()), g.Text("Contact"))),
				),
				g.If(len(settings.Social) > 0, h.Ul(h.Class("social"), g.Map(settings.Social, func(link content.SocialLink) g.Node {
					return h.Li(h.A(h.Href(link.URL), h.Rel("noopener noreferrer"), h.Target("_blank"), g.Text(link.Platform)))
				}))),
			),
			h.Div(
				h.H2(g.Text("Newsletter")),
				v.NewsletterForm(forms.Snapshot{}),
			),
		),
		h.P(h.Class("container copyright"),
			g.Textf("© %s %s. ", year, settings.SiteName),
			g.If(settings.FooterText != "", g.Text(settings.FooterText)),
		),
	)
}

func telephone(number string) string {
	return strings.Map(func(r rune) rune {
		if r == '+' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, number)
}
