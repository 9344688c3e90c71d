// Package pagination slices listings into pages.
package pagination

// DefaultSize is used when a non-positive size is requested.
const DefaultSize = 6

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	Total      int
	TotalPages int
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// Numbers lists the page numbers 1..TotalPages.
func (p Page[T]) Numbers() []int {
	out := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		out = append(out, i)
	}
	return out
}

// Paginate returns page k of items. k is clamped to [1, TotalPages] and an
// empty listing yields page 1 of 0. Items keep their source order.
func Paginate[T any](items []T, k, size int) Page[T] {
	if size <= 0 {
		size = DefaultSize
	}
	total := len(items)
	pages := (total + size - 1) / size

	if k > pages {
		k = pages
	}
	if k < 1 {
		k = 1
	}

	start := (k - 1) * size
	end := min(start+size, total)
	if start > total {
		start = total
	}
	return Page[T]{
		Items:      items[start:end:end],
		Number:     k,
		Size:       size,
		Total:      total,
		TotalPages: pages,
	}
}
