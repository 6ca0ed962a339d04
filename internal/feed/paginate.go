package feed

// DefaultPageSize is the listing length used on every paginated page.
const DefaultPageSize = 10

// Page is one bounded slice of an ordered result set plus the navigation
// metadata the client needs to render pager controls.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Number      int   `json:"number"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// totalPages never reports zero pages: an empty result set still has a valid
// (empty) page 1.
func totalPages(totalItems int64, size int) int {
	pages := int((totalItems + int64(size) - 1) / int64(size))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// clampPage snaps an out-of-range page number into [1, last] instead of
// erroring. Requests below range get page 1, beyond range the last page.
func clampPage(number, last int) int {
	if number < 1 {
		return 1
	}
	if number > last {
		return last
	}
	return number
}

func newPage[T any](items []T, number int, totalItems int64, size int) Page[T] {
	if items == nil {
		items = []T{}
	}
	last := totalPages(totalItems, size)
	return Page[T]{
		Items:       items,
		Number:      number,
		TotalItems:  totalItems,
		TotalPages:  last,
		HasNext:     number < last,
		HasPrevious: number > 1,
	}
}

// Paginate slices items into the requested 1-indexed page of the given size.
func Paginate[T any](items []T, number, size int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	total := int64(len(items))
	number = clampPage(number, totalPages(total, size))

	start := (number - 1) * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return newPage(items[start:end], number, total, size)
}
