// Package views renders view models into HTML with gomponents. Every
// function here is a pure function of its arguments and the View's
// collaborators; nothing reads from the CMS.
package views

import (
	"io"
	"time"

	g "maragu.dev/gomponents"

	"github.com/goliatone/go-consulting-site/internal/richtext"
	"github.com/goliatone/go-consulting-site/internal/routes"
)

// View holds what rendering needs besides the view model.
type View struct {
	routes   *routes.Manager
	richtext *richtext.Renderer
	now      func() time.Time
}

// Option configures a View.
type Option func(*View)

// WithClock overrides the clock used for relative dates.
func WithClock(now func() time.Time) Option {
	return func(v *View) {
		if now != nil {
			v.now = now
		}
	}
}

// New creates a View. Nil collaborators get defaults.
func New(manager *routes.Manager, renderer *richtext.Renderer, opts ...Option) *View {
	if manager == nil {
		manager = routes.New("", "")
	}
	if renderer == nil {
		renderer = richtext.NewRenderer()
	}
	v := &View{routes: manager, richtext: renderer, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// Routes exposes the route table used for links.
func (v *View) Routes() *routes.Manager { return v.routes }

// Render writes node to w.
func Render(w io.Writer, node g.Node) error {
	return node.Render(w)
}
