package entity

// Page addresses one page of a listing. Numbers start at 1.
type Page struct {
	Number int
	Size   int
}

// Valid reports whether the page can address any rows at all.
func (p Page) Valid() bool {
	return p.Number > 0 && p.Size > 0
}

// Offset returns the number of rows skipped before this page.
func (p Page) Offset() int {
	if !p.Valid() {
		return 0
	}

	return (p.Number - 1) * p.Size
}

// PageResult is one page of items plus the size of the whole listing.
type PageResult[T any] struct {
	Items []T
	Page  int
	Total int64
	Size  int
}

// HasNext reports whether another page follows.
func (r PageResult[T]) HasNext() bool {
	return r.Page > 0 && int64(r.Page*r.Size) < r.Total
}
