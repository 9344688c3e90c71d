// Package media turns CMS media references into absolute URLs. Every image
// or attachment URL the site emits is produced here.
package media

import (
	"strings"

	"github.com/goliatone/go-consulting-site/internal/content"
)

// DefaultUploadsPath prefixes bare file names.
const DefaultUploadsPath = "/uploads"

// Resolver resolves media paths against the CMS base URL.
type Resolver struct {
	base    string
	uploads string
}

// NewResolver builds a resolver for baseURL. An empty uploadsPath falls back
// to DefaultUploadsPath.
func NewResolver(baseURL, uploadsPath string) *Resolver {
	uploads := strings.TrimSpace(uploadsPath)
	if uploads == "" {
		uploads = DefaultUploadsPath
	}
	uploads = "/" + strings.Trim(uploads, "/")
	return &Resolver{
		base:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		uploads: uploads,
	}
}

// Resolve maps path to an absolute URL:
//
//	""                 -> ""
//	"https://x/a.png"  -> unchanged
//	"//cdn/a.png"      -> unchanged
//	"/uploads/a.png"   -> base + path
//	"a.png"            -> base + "/uploads/" + path
func (r *Resolver) Resolve(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if isAbsolute(path) {
		return path
	}
	if strings.HasPrefix(path, "/") {
		return r.base + path
	}
	return r.base + r.uploads + "/" + path
}

// ResolveMedia resolves a media reference; nil yields "".
func (r *Resolver) ResolveMedia(m *content.Media) string {
	if m == nil {
		return ""
	}
	return r.Resolve(m.URL)
}

// Apply rewrites every media reference held by carrier in place.
func (r *Resolver) Apply(carrier content.MediaCarrier) {
	if carrier == nil {
		return
	}
	for _, ref := range carrier.MediaRefs() {
		if ref == nil {
			continue
		}
		ref.URL = r.Resolve(ref.URL)
		for key, variant := range ref.Formats {
			variant.URL = r.Resolve(variant.URL)
			ref.Formats[key] = variant
		}
	}
}

func isAbsolute(path string) bool {
	return strings.HasPrefix(strings.ToLower(path), "http") || strings.HasPrefix(path, "//")
}
