package listing

// DefaultPageSize is the list view's fixed page length.
const DefaultPageSize = 20

// Page is one slice of a paginated sequence plus the footer metadata.
// RangeStart and RangeEnd are 1-based and both 0 for an empty page.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalItems int  `json:"totalItems"`
	TotalPages int  `json:"totalPages"`
	RangeStart int  `json:"rangeStart"`
	RangeEnd   int  `json:"rangeEnd"`
	HasPrev    bool `json:"hasPrev"`
	HasNext    bool `json:"hasNext"`
}

// Paginate returns page number page (1-based) of items. A page past the end yields
// no items. Page values below 1 are read as 1 and a non-positive size as DefaultPageSize.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	total := len(items)
	totalPages := (total + size - 1) / size

	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}

	if page > totalPages {
		return p
	}
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	p.Items = append(p.Items, items[start:end]...)
	p.RangeStart = start + 1
	p.RangeEnd = end
	return p
}

// ClampPage pins page into [1, totalPages]. With no pages it returns 1.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
