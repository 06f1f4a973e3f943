// Package pagination holds the page request/response shapes shared by the
// catalog service and its repositories.
package pagination

import "strings"

// Order is a single sort directive, e.g. {Field: "price", Desc: true}.
type Order struct {
	Field string
	Desc  bool
}

// Request is an offset-based page request. Page is zero-based.
type Request struct {
	Page int
	Size int
	Sort []Order
}

const (
	DefaultSize = 20
	MaxSize     = 100
)

// ParseSort parses repeated sort params of the form "field" or
// "field,asc" / "field,desc" into Orders. Empty entries are skipped.
func ParseSort(params []string) []Order {
	orders := make([]Order, 0, len(params))
	for _, p := range params {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		field, dir, _ := strings.Cut(p, ",")
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		orders = append(orders, Order{
			Field: field,
			Desc:  strings.EqualFold(strings.TrimSpace(dir), "desc"),
		})
	}
	return orders
}

// Offset returns the row offset for the request.
func (r Request) Offset() int { return r.Page * r.Size }

// Page is one page of content plus the paging metadata clients need to
// iterate the full result set.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage assembles a Page from content and the total row count.
func NewPage[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}
