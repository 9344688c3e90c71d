// Package richtext normalises CMS rich text. Fields arrive either as a
// Markdown string or as a Strapi blocks tree; both decode into Content and
// render to HTML or plain text through a Renderer.
package richtext
