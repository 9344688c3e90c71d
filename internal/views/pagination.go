package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/goliatone/go-consulting-site/internal/pagination"
)

// Pager renders previous, numbered and next links. href builds the link
// for a page number. A single page renders nothing.
func Pager[T any](page pagination.Page[T], href func(number int) string) g.Node {
	if page.TotalPages <= 1 {
		return nil
	}
	return h.Nav(h.Class("pager"), h.Aria("label", "Pagination"),
		h.Ul(h.Class("pagination"),
			g.If(page.HasPrev(), h.Li(h.A(h.Rel("prev"), h.Href(href(page.Number-1)), g.Text("Previous")))),
			g.Map(page.Numbers(), func(number int) g.Node {
				current := number == page.Number
				return h.Li(c.Classes{"current": current},
					h.A(h.Href(href(number)),
						g.If(current, h.Aria("current", "page")),
						g.Text(strconv.Itoa(number)),
					),
				)
			}),
			g.If(page.HasNext(), h.Li(h.A(h.Rel("next"), h.Href(href(page.Number+1)), g.Text("Next")))),
		),
	)
}
