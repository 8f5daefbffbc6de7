package bunny

import (
	"context"
	"net/http"
)

// ListVideosOptions narrows a video listing. Zero values are omitted
// from the query, except paging which defaults to the first page with
// 100 items.
type ListVideosOptions struct {
	// Search matches against video titles.
	Search string
	// Collection restricts the listing to one collection GUID.
	Collection string
	// OrderBy sorts the listing, e.g. "date" or "title".
	OrderBy string

	Page         int
	ItemsPerPage int
}

// ListVideos lists the videos of the library, paginated.
func (c *Client) ListVideos(ctx context.Context, opts *ListVideosOptions) (JSON, error) {
	if opts == nil {
		opts = &ListVideosOptions{}
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
	query.setString("collection", opts.Collection)
	query.setString("orderBy", opts.OrderBy)

	return c.do(ctx, http.MethodGet, "videos", callOptions{
		query:   query.Values,
		failMsg: "failed to list videos",
	})
}
