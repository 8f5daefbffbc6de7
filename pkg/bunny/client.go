package bunny

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the public Bunny Stream API host.
const DefaultEndpoint = "https://video.bunnycdn.com"

// embedHost serves the iframe player for public playback links.
const embedHost = "https://iframe.mediadelivery.net"

const defaultTimeout = 30 * time.Second

type Options struct {
	// AccessKey is the Stream API key of the library. It is sent as
	// the AccessKey header on every request.
	AccessKey string

	// LibraryID is the video library all requests are scoped to.
	LibraryID string

	// Endpoint overrides the API host, mainly for tests. Defaults to
	// DefaultEndpoint.
	Endpoint string

	// Timeout bounds every request end to end. Defaults to 30s when no
	// HTTPClient is supplied; when set it also overrides the timeout of
	// a supplied HTTPClient.
	Timeout time.Duration

	// HTTPClient replaces the underlying transport. The client keeps a
	// copy, so redirect handling on the original is left untouched.
	HTTPClient *http.Client
}

// Client is a thin wrapper around the Bunny Stream HTTP API. It keeps
// no state besides its configuration and is safe for concurrent use.
type Client struct {
	opts       Options
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Stream API client for one video library.
func NewClient(opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}

	httpClient := &http.Client{Timeout: defaultTimeout}
	if opts.HTTPClient != nil {
		clone := *opts.HTTPClient
		httpClient = &clone
	}
	if opts.Timeout > 0 {
		httpClient.Timeout = opts.Timeout
	}
	// The API answers redirects with signed URLs in some setups; the
	// caller must see the 3xx rather than have it silently followed.
	httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Client{
		opts:       opts,
		baseURL:    strings.TrimSuffix(opts.Endpoint, "/") + "/library/" + url.PathEscape(opts.LibraryID),
		httpClient: httpClient,
	}
}

// LibraryID returns the library this client is scoped to.
func (c *Client) LibraryID() string {
	return c.opts.LibraryID
}

// EmbedURL returns the public iframe player URL for a video of this
// library. It issues no request.
func (c *Client) EmbedURL(videoID string) string {
	return embedHost + "/play/" + url.PathEscape(c.opts.LibraryID) + "/" + url.PathEscape(videoID)
}
