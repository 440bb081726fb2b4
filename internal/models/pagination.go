package models

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 100000
)

type PaginatedResponse struct {
	Data     any `json:"data"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// Pagination is zero-based: page 0 is the first page.
type Pagination struct {
	Page int
	Size int
}

func (p Pagination) Offset() int {
	return p.Page * p.Size
}
