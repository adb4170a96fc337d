package common

// DefaultPageSize is the page size views fall back to when the caller
// supplies none.
const DefaultPageSize = 10

// PageSizeOptions enumerates the page sizes the UI offers.
var PageSizeOptions = []int{5, 10, 20, 50}

// Page represents one page of a collection plus its metadata
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// HasNext reports whether a later page exists
func (p Page[T]) HasNext() bool {
	return p.PageNumber < p.TotalPages
}

// HasPrev reports whether an earlier page exists
func (p Page[T]) HasPrev() bool {
	return p.PageNumber > 1
}

// CalculateTotalPages computes the page count with a floor of one, so
// an empty collection still has a valid page 1
func CalculateTotalPages(total, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces a requested page number into [1, totalPages].
// Out-of-range requests never error, they silently clamp.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate slices items into the requested fixed-size page. A pageSize
// below one falls back to the default. The input is never mutated; the
// returned slice aliases it.
func Paginate[T any](items []T, pageNumber, pageSize int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	totalPages := CalculateTotalPages(len(items), pageSize)
	pageNumber = ClampPage(pageNumber, totalPages)

	start := (pageNumber - 1) * pageSize
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: len(items),
	}
}
