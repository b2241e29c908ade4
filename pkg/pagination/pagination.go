// Package pagination provides page-number based pagination helpers shared by
// the list endpoints.
package pagination

const (
	DefaultPageSize = 10
	MaxPageSize     = 100

	// WindowWidth is how many page numbers are shown on each side of the
	// current page in the page link window.
	WindowWidth = 3
)

// Params holds normalized pagination parameters.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps the parameters to sane values. Page numbers start at 1.
func Normalize(page, pageSize int) Params {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the number of items to skip for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page describes one page of items together with its metadata.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Window     []int `json:"window"`
}

// NewPage builds page metadata for items fetched with p and the total row
// count reported by the store.
func NewPage[T any](items []T, p Params, total int) Page[T] {
	totalPages := (total + p.PageSize - 1) / p.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := p.Page
	if page > totalPages {
		page = totalPages
	}

	return Page[T]{
		Items:      items,
		Page:       page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		Window:     PageWindow(page, totalPages, WindowWidth),
	}
}

// Paginate slices an in-memory list into the requested page. Used where the
// result set is already loaded, e.g. report summaries.
func Paginate[T any](items []T, p Params) Page[T] {
	total := len(items)

	start := p.Offset()
	if start > total {
		start = total
	}
	end := start + p.PageSize
	if end > total {
		end = total
	}

	out := NewPage(items[start:end], p, total)
	return out
}

// PageWindow returns the page numbers to display around current, at most
// width pages on each side, clamped to [1, totalPages].
func PageWindow(current, totalPages, width int) []int {
	if totalPages < 1 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}

	lo := current - width
	if lo < 1 {
		lo = 1
	}
	hi := current + width
	if hi > totalPages {
		hi = totalPages
	}

	window := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		window = append(window, n)
	}
	return window
}
