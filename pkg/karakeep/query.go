package karakeep

import (
	"net/url"
	"strconv"
)

// SortOrder orders listing and search results.
type SortOrder string

const (
	SortOrderAsc       SortOrder = "asc"
	SortOrderDesc      SortOrder = "desc"
	SortOrderRelevance SortOrder = "relevance"
)

// ListBookmarksOptions are the query parameters of the bookmark listing.
// Nil pointer fields are omitted from the query entirely.
type ListBookmarksOptions struct {
	Archived   *bool
	Favourited *bool
	SortOrder  SortOrder
	Limit      int
	Cursor     string

	// IncludeContent asks the service to inline bookmark content. The
	// service defaults to true; the client defaults to false to keep list
	// pages small.
	IncludeContent bool
}

// NewListBookmarksOptions returns options with the client defaults.
func NewListBookmarksOptions() *ListBookmarksOptions {
	return &ListBookmarksOptions{}
}

// WithArchived filters by archived status.
func (o *ListBookmarksOptions) WithArchived(archived bool) *ListBookmarksOptions {
	o.Archived = &archived

	return o
}

// WithFavourited filters by favourited status.
func (o *ListBookmarksOptions) WithFavourited(favourited bool) *ListBookmarksOptions {
	o.Favourited = &favourited

	return o
}

// WithSortOrder sets the sort order.
func (o *ListBookmarksOptions) WithSortOrder(order SortOrder) *ListBookmarksOptions {
	o.SortOrder = order

	return o
}

// WithLimit sets the page size.
func (o *ListBookmarksOptions) WithLimit(limit int) *ListBookmarksOptions {
	o.Limit = limit

	return o
}

// WithCursor sets the pagination cursor.
func (o *ListBookmarksOptions) WithCursor(cursor string) *ListBookmarksOptions {
	o.Cursor = cursor

	return o
}

// WithContent asks for inlined bookmark content.
func (o *ListBookmarksOptions) WithContent() *ListBookmarksOptions {
	o.IncludeContent = true

	return o
}

// ToValues converts the options to URL query values. Absent optional
// parameters are stripped rather than sent empty.
func (o *ListBookmarksOptions) ToValues() url.Values {
	values := url.Values{}

	if o.Archived != nil {
		values.Set("archived", strconv.FormatBool(*o.Archived))
	}

	if o.Favourited != nil {
		values.Set("favourited", strconv.FormatBool(*o.Favourited))
	}

	if o.SortOrder != "" {
		values.Set("sortOrder", string(o.SortOrder))
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Cursor != "" {
		values.Set("cursor", o.Cursor)
	}

	values.Set("includeContent", strconv.FormatBool(o.IncludeContent))

	return values
}

// GetBookmarkOptions are the query parameters of the single-bookmark
// fetch.
type GetBookmarkOptions struct {
	// IncludeContent defaults to true, matching the service.
	IncludeContent bool
}

// NewGetBookmarkOptions returns options with the service defaults.
func NewGetBookmarkOptions() *GetBookmarkOptions {
	return &GetBookmarkOptions{IncludeContent: true}
}

// ToValues converts the options to URL query values.
func (o *GetBookmarkOptions) ToValues() url.Values {
	values := url.Values{}
	values.Set("includeContent", strconv.FormatBool(o.IncludeContent))

	return values
}

// SearchBookmarksOptions are the query parameters of the bookmark search,
// minus the query string itself.
type SearchBookmarksOptions struct {
	SortOrder SortOrder
	Limit     int
	Cursor    string

	// IncludeContent defaults to true, matching the service.
	IncludeContent bool
}

// NewSearchBookmarksOptions returns options with the service defaults.
func NewSearchBookmarksOptions() *SearchBookmarksOptions {
	return &SearchBookmarksOptions{IncludeContent: true}
}

// WithSortOrder sets the sort order; SortOrderRelevance is valid here.
func (o *SearchBookmarksOptions) WithSortOrder(order SortOrder) *SearchBookmarksOptions {
	o.SortOrder = order

	return o
}

// WithLimit sets the page size.
func (o *SearchBookmarksOptions) WithLimit(limit int) *SearchBookmarksOptions {
	o.Limit = limit

	return o
}

// WithCursor sets the pagination cursor.
func (o *SearchBookmarksOptions) WithCursor(cursor string) *SearchBookmarksOptions {
	o.Cursor = cursor

	return o
}

// ToValues converts the options to URL query values. The query string is
// set by the search operation itself.
func (o *SearchBookmarksOptions) ToValues() url.Values {
	values := url.Values{}

	if o.SortOrder != "" {
		values.Set("sortOrder", string(o.SortOrder))
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Cursor != "" {
		values.Set("cursor", o.Cursor)
	}

	values.Set("includeContent", strconv.FormatBool(o.IncludeContent))

	return values
}

// ListHighlightsOptions are the query parameters of the highlight
// listing.
type ListHighlightsOptions struct {
	Limit  int
	Cursor string
}

// ToValues converts the options to URL query values.
func (o *ListHighlightsOptions) ToValues() url.Values {
	values := url.Values{}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.Cursor != "" {
		values.Set("cursor", o.Cursor)
	}

	return values
}
