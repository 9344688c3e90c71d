package views

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-consulting-site/internal/pages"
)

// NotFoundPage tells the visitor nothing matched and links back to the
// closest listing.
func (v *View) NotFoundPage(chrome pages.Chrome, title, message, backHref, backLabel string) g.Node {
	if backHref == "" {
		backHref, backLabel = v.routes.HomePath(), "Back to the home page"
	}
	return v.Layout(Meta{Title: title, NoIndex: true}, chrome,
		section("not-found", "",
			h.H1(g.Text(title)),
			h.P(g.Text(message)),
			h.P(h.A(h.Class("button"), h.Href(backHref), g.Text(backLabel))),
		),
	)
}

// ErrorPage is the generic page shown when rendering a request failed.
func (v *View) ErrorPage(chrome pages.Chrome) g.Node {
	return v.Layout(Meta{Title: "Something went wrong", NoIndex: true}, chrome,
		section("error", "",
			h.H1(g.Text("Something went wrong")),
			h.P(g.Text("We could not load this page. Please try again in a moment.")),
			h.P(h.A(h.Class("button"), h.Href(v.routes.HomePath()), g.Text("Back to the home page"))),
		),
	)
}
