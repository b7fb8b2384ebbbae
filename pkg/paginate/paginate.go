// Package paginate slices filtered collections into fixed-size pages for the
// list views.
package paginate

// Page returns the pageIndex-th slice of items and the total page count.
// The count is never zero: an empty collection still renders as one empty
// page. A pageIndex past the end yields an empty slice, not a panic.
func Page[T any](items []T, pageIndex, pageSize int) ([]T, int) {
	if pageSize <= 0 {
		return items, 1
	}
	totalPages := (len(items) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	start := pageIndex * pageSize
	if pageIndex < 0 || start >= len(items) {
		return nil, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// View owns the page cursor for one list screen. Replacing the backing items
// or resizing the page snaps the cursor back to the first page, which is the
// reset every filter change requires.
type View[T any] struct {
	items     []T
	pageIndex int
	pageSize  int
}

// NewView builds a view over an initial collection.
func NewView[T any](items []T, pageSize int) *View[T] {
	return &View[T]{items: items, pageSize: pageSize}
}

// SetItems swaps in a newly filtered collection and resets to page zero.
func (v *View[T]) SetItems(items []T) {
	v.items = items
	v.pageIndex = 0
}

// SetPageSize changes the page size and resets to page zero.
func (v *View[T]) SetPageSize(size int) {
	v.pageSize = size
	v.pageIndex = 0
}

// Page returns the visible slice and the total page count.
func (v *View[T]) Page() ([]T, int) {
	return Page(v.items, v.pageIndex, v.pageSize)
}

// PageIndex returns the zero-based cursor.
func (v *View[T]) PageIndex() int {
	return v.pageIndex
}

// Next advances one page when there is one; it reports whether it moved.
func (v *View[T]) Next() bool {
	_, total := v.Page()
	if v.pageIndex+1 >= total {
		return false
	}
	v.pageIndex++
	return true
}

// Prev steps back one page when there is one; it reports whether it moved.
func (v *View[T]) Prev() bool {
	if v.pageIndex == 0 {
		return false
	}
	v.pageIndex--
	return true
}

// Len returns the size of the backing collection.
func (v *View[T]) Len() int {
	return len(v.items)
}
