// Package http serves the public site on a standard library mux.
//
// Routes:
//   - Pages: /, /about, /careers, /careers/{id}, /contact, /consultation,
//     /services, /services/{slug}, /industries, /industries/{slug}
//   - Insights: /insights, /insights/{collection}, /insights/{collection}/{slug}, /search
//   - Form posts: /careers/{id}/apply, /contact, /consultation, /newsletter
//   - JSON: /api/insights/latest, /healthz
//
// Host applications can register the handlers on their own mux as needed.
package http
