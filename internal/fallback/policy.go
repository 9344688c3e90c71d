package fallback

import "github.com/goliatone/go-consulting-site/internal/strapi"

// Origin records where a value came from.
type Origin int

const (
	OriginCMS Origin = iota
	OriginFallback
)

func (o Origin) String() string {
	if o == OriginFallback {
		return "fallback"
	}
	return "cms"
}

// Outcome is the result of a detail lookup.
type Outcome int

const (
	FromCMS Outcome = iota
	FromFallback
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case FromCMS:
		return "cms"
	case FromFallback:
		return "fallback"
	default:
		return "not-found"
	}
}

// Found reports whether the outcome carries a value.
func (o Outcome) Found() bool { return o != NotFound }

// Collection returns the CMS data unless the read failed or came back
// empty, in which case literal is used.
func Collection[T any](env strapi.Envelope[[]T], literal []T) ([]T, Origin) {
	if env.Failed() || len(env.Data) == 0 {
		return literal, OriginFallback
	}
	return env.Data, OriginCMS
}

// Single does the same for single types.
func Single[T any](env strapi.Envelope[*T], literal T) (T, Origin) {
	if env.Failed() || env.Data == nil {
		return literal, OriginFallback
	}
	return *env.Data, OriginCMS
}

// Detail picks the first CMS match, then the fallback table, and otherwise
// reports NotFound. A failed read and an empty result are treated alike.
func Detail[T any](env strapi.Envelope[[]T], lookup func() (T, bool)) (T, Outcome) {
	if !env.Failed() && len(env.Data) > 0 {
		return env.Data[0], FromCMS
	}
	if lookup != nil {
		if v, ok := lookup(); ok {
			return v, FromFallback
		}
	}
	var zero T
	return zero, NotFound
}
