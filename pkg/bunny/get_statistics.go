package bunny

import (
	"context"
	"net/http"
)

// StatisticsOptions filter the library's play statistics. Filters is
// merged into the query verbatim for parameters this struct does not
// name.
type StatisticsOptions struct {
	// VideoID narrows the statistics to one video.
	VideoID string
	// DateFrom and DateTo bound the reporting window, formatted as the
	// API expects, e.g. "2026-08-01".
	DateFrom string
	DateTo   string
	// Hourly switches the resolution of the returned chart data. Nil
	// leaves it to the service default.
	Hourly *bool

	Filters map[string]string
}

// GetStatistics fetches play statistics for the library, optionally
// narrowed to one video or a date window.
func (c *Client) GetStatistics(ctx context.Context, opts *StatisticsOptions) (JSON, error) {
	query := newParams()
	if opts != nil {
		query.setString("videoId", opts.VideoID)
		query.setString("dateFrom", opts.DateFrom)
		query.setString("dateTo", opts.DateTo)
		if opts.Hourly != nil {
			query.setBool("hourly", *opts.Hourly)
		}
		for key, value := range opts.Filters {
			query.Set(key, value)
		}
	}

	return c.do(ctx, http.MethodGet, "statistics", callOptions{
		query:   query.Values,
		failMsg: "failed to get statistics",
	})
}
