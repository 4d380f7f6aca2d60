package rynko

// PaginationMeta describes the position of a page within a listing.
type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListResponse is one page of a paginated listing. The API serves two
// envelope shapes ({data, meta} and {<items>, total}); both normalize to
// this one.
type ListResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// HasMore reports whether pages beyond this one exist.
func (r *ListResponse[T]) HasMore() bool {
	return r.Meta.Page < r.Meta.TotalPages
}

// newListResponse normalizes an items-plus-total envelope into a
// ListResponse, computing the page metadata the server left implicit.
func newListResponse[T any](items []T, total, page, limit int) *ListResponse[T] {
	totalPages := 1
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &ListResponse[T]{
		Data: items,
		Meta: PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}
