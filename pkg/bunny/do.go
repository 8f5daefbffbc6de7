package bunny

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// JSON is a decoded API response, handed to callers exactly as the
// service sent it. Object bodies decode to map[string]any, arrays to
// []any. The API's payload shapes change without notice, so the client
// deliberately does not model them.
type JSON = any

// callOptions describes one request to the Stream API.
type callOptions struct {
	query url.Values

	// body is JSON encoded into the request body when non-nil.
	body any

	// raw is streamed verbatim as the request body. Used by uploads.
	// Mutually exclusive with body.
	raw io.Reader

	// failMsg is the message a RequestError carries for status codes
	// the error taxonomy does not single out.
	failMsg string

	// notFoundRef is the resource ID a 404 is reported against. When
	// empty, a 404 maps to the generic NotFoundError.
	notFoundRef string
}

// do runs one request against the library-scoped API and decodes the
// response. Every operation of the client funnels through here, so the
// error contract is uniform across them.
func (c *Client) do(ctx context.Context, method, path string, opts callOptions) (JSON, error) {
	endpoint := c.baseURL + "/" + path
	if len(opts.query) > 0 {
		endpoint += "?" + opts.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case opts.raw != nil:
		body = opts.raw
		contentType = "application/octet-stream"
	case opts.body != nil:
		encoded, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	request.Header.Set("AccessKey", c.opts.AccessKey)
	request.Header.Set("Accept", "application/json")
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		_ = response.Body.Close()
	}()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, c.classify(response.StatusCode, path, raw, opts)
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var result JSON
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return result, nil
}

// classify maps a non-2xx response onto the typed error taxonomy.
func (c *Client) classify(status int, path string, raw []byte, opts callOptions) error {
	switch status {
	case http.StatusUnauthorized:
		return &AuthenticationError{AccessKey: maskAccessKey(c.opts.AccessKey)}
	case http.StatusNotFound:
		if opts.notFoundRef == "" {
			return &NotFoundError{Path: path}
		}
		// Video and collection 404s look identical on the wire; the
		// request path decides which resource the caller asked for.
		if strings.Contains(path, "collections") {
			return &CollectionNotFoundError{ID: opts.notFoundRef}
		}
		return &VideoNotFoundError{ID: opts.notFoundRef}
	case http.StatusBadRequest:
		return &BadRequestError{Status: status, Message: badRequestMessage(raw)}
	default:
		return &RequestError{Status: status, Message: opts.failMsg, Body: string(raw)}
	}
}

// badRequestMessage composes the message of a 400 response: the body's
// message field, suffixed with any entries found under data.errorList.
func badRequestMessage(raw []byte) string {
	message := "Bad Request"

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return message
	}
	if m, ok := body["message"].(string); ok && m != "" {
		message = m
	}

	data, ok := body["data"].(map[string]any)
	if !ok {
		return message
	}
	list, ok := data["errorList"].([]any)
	if !ok || len(list) == 0 {
		return message
	}
	entries := make([]string, 0, len(list))
	for _, entry := range list {
		entries = append(entries, fmt.Sprint(entry))
	}
	return message + " - " + strings.Join(entries, ", ")
}
