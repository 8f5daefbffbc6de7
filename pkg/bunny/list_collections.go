package bunny

import (
	"context"
	"net/http"
)

// ListCollectionsOptions narrows a collection listing. Paging defaults
// to the first page with 100 items.
type ListCollectionsOptions struct {
	// Search matches against collection names.
	Search string
	// OrderBy sorts the listing, e.g. "date".
	OrderBy string
	// IncludeThumbnails adds preview thumbnail URLs to each entry.
	IncludeThumbnails bool

	Page         int
	ItemsPerPage int
}

// ListCollections lists the collections of the library, paginated.
func (c *Client) ListCollections(ctx context.Context, opts *ListCollectionsOptions) (JSON, error) {
	if opts == nil {
		opts = &ListCollectionsOptions{}
	}
	page := opts.Page
	if page <= 0 {
		page = 1
	}
	itemsPerPage := opts.ItemsPerPage
	if itemsPerPage <= 0 {
		itemsPerPage = 100
	}

	query := newParams()
	query.setInt("page", page)
	query.setInt("itemsPerPage", itemsPerPage)
	query.setString("search", opts.Search)
	query.setString("orderBy", opts.OrderBy)
	query.setBool("includeThumbnails", opts.IncludeThumbnails)

	return c.do(ctx, http.MethodGet, "collections", callOptions{
		query:   query.Values,
		failMsg: "failed to list collections",
	})
}
