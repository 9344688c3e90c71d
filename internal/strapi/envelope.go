package strapi

// Pagination mirrors meta.pagination in Strapi responses.
type Pagination struct {
	Page      int `json:"page,omitempty"`
	PageSize  int `json:"pageSize,omitempty"`
	PageCount int `json:"pageCount,omitempty"`
	Start     int `json:"start,omitempty"`
	Limit     int `json:"limit,omitempty"`
	Total     int `json:"total"`
}

// Meta is the meta object of a response. It is empty on failure.
type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Envelope is the result of every read. Reads never return Go errors:
// failures leave Data at its zero value and describe the problem in Error.
type Envelope[T any] struct {
	Data  T      `json:"data"`
	Meta  Meta   `json:"meta"`
	Error string `json:"error,omitempty"`
}

// Failed reports whether the read failed.
func (e Envelope[T]) Failed() bool {
	return e.Error != ""
}

func failed[T any](err error) Envelope[T] {
	return Envelope[T]{Error: err.Error()}
}
