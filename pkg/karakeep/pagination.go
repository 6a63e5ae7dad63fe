package karakeep

import (
	"context"
	"errors"
)

// PageFunc fetches one page of a cursor-paginated collection. It receives
// the cursor from the previous page ("" for the first page) and returns
// the page's items and the next cursor, nil on the last page.
type PageFunc[T any] func(ctx context.Context, cursor string) ([]T, *string, error)

// PaginationOptions tune the page-draining helpers.
type PaginationOptions struct {
	// MaxPages bounds how many pages are fetched. Zero means no bound.
	MaxPages int
}

// PageIterator walks a cursor-paginated collection item by item. Cursor
// pagination is inherently sequential: each fetch depends on the cursor
// returned by the previous one.
type PageIterator[T any] struct {
	ctx    context.Context
	fetch  PageFunc[T]
	items  []T
	cursor string
	done   bool
}

// NewPageIterator creates an iterator over the pages produced by fetch.
func NewPageIterator[T any](ctx context.Context, fetch PageFunc[T]) *PageIterator[T] {
	return &PageIterator[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

// HasNext reports whether another item may be available. Before the first
// fetch it is always true; afterwards it reflects the buffered items and
// the presence of a next cursor.
func (it *PageIterator[T]) HasNext() bool {
	return len(it.items) > 0 || !it.done
}

// Next returns the next item, fetching pages as needed. It returns
// ErrNoMoreItems once the collection is exhausted.
func (it *PageIterator[T]) Next() (T, error) {
	var zero T

	for len(it.items) == 0 {
		if it.done {
			return zero, ErrNoMoreItems
		}

		items, next, err := it.fetch(it.ctx, it.cursor)
		if err != nil {
			return zero, err
		}

		it.items = items

		if next == nil {
			it.done = true
		} else {
			it.cursor = *next
		}
	}

	item := it.items[0]
	it.items = it.items[1:]

	return item, nil
}

// All drains the remaining pages and returns every item.
func (it *PageIterator[T]) All() ([]T, error) {
	var all []T

	for {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return all, nil
			}

			return all, err
		}

		all = append(all, item)
	}
}

// ForEach applies fn to each remaining item, stopping at the first error.
func (it *PageIterator[T]) ForEach(fn func(T) error) error {
	for {
		item, err := it.Next()
		if err != nil {
			if errors.Is(err, ErrNoMoreItems) {
				return nil
			}

			return err
		}

		if err := fn(item); err != nil {
			return err
		}
	}
}

// FetchAllPages drains fetch into a single slice, honoring
// opts.MaxPages when set.
func FetchAllPages[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) ([]T, error) {
	var (
		all    []T
		cursor string
		pages  int
	)

	for {
		items, next, err := fetch(ctx, cursor)
		if err != nil {
			return all, err
		}

		all = append(all, items...)
		pages++

		if next == nil {
			return all, nil
		}

		if opts != nil && opts.MaxPages > 0 && pages >= opts.MaxPages {
			return all, nil
		}

		cursor = *next
	}
}
