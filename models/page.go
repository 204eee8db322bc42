package models

// Page is the paginated envelope used by every list endpoint of the backend.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// HasNext reports whether more items exist after this page.
func (p Page[T]) HasNext() bool {
	if p.PageSize <= 0 {
		return false
	}
	return p.Page*p.PageSize < p.Total
}
