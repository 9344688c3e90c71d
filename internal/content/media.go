package content

// Media is an uploaded asset. URL is a raw CMS path until media.Resolver
// rewrites it.
type Media struct {
	ID              int                    `json:"id,omitempty" yaml:"id,omitempty"`
	DocumentID      string                 `json:"documentId,omitempty" yaml:"documentId,omitempty"`
	Name            string                 `json:"name,omitempty" yaml:"name,omitempty"`
	URL             string                 `json:"url" yaml:"url"`
	AlternativeText string                 `json:"alternativeText,omitempty" yaml:"alternativeText,omitempty"`
	Caption         string                 `json:"caption,omitempty" yaml:"caption,omitempty"`
	Width           int                    `json:"width,omitempty" yaml:"width,omitempty"`
	Height          int                    `json:"height,omitempty" yaml:"height,omitempty"`
	Mime            string                 `json:"mime,omitempty" yaml:"mime,omitempty"`
	Formats         map[string]MediaFormat `json:"formats,omitempty" yaml:"formats,omitempty"`
}

// MediaFormat is one responsive variant generated by the CMS.
type MediaFormat struct {
	URL    string `json:"url" yaml:"url"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
}

// Alt returns the alternative text, or fallback when none was authored.
func (m *Media) Alt(fallback string) string {
	if m == nil || m.AlternativeText == "" {
		return fallback
	}
	return m.AlternativeText
}

// MediaCarrier is implemented by records holding media references so the
// resolver can rewrite them after decoding.
type MediaCarrier interface {
	MediaRefs() []*Media
}
