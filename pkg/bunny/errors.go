package bunny

import (
	"fmt"
	"strings"
)

// TransportError reports a request that never produced an HTTP
// response: DNS failure, refused connection, timeout. The client does
// not retry; the caller decides.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("stream api request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// AuthenticationError reports a 401 from the API. AccessKey carries a
// masked form of the rejected key, safe to log.
type AuthenticationError struct {
	AccessKey string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: access key %s was rejected", e.AccessKey)
}

// VideoNotFoundError reports a 404 for a video the caller referenced.
type VideoNotFoundError struct {
	ID string
}

func (e *VideoNotFoundError) Error() string {
	return fmt.Sprintf("video %s not found", e.ID)
}

// CollectionNotFoundError reports a 404 for a collection the caller
// referenced.
type CollectionNotFoundError struct {
	ID string
}

func (e *CollectionNotFoundError) Error() string {
	return fmt.Sprintf("collection %s not found", e.ID)
}

// NotFoundError reports a 404 on a request that referenced no specific
// resource.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.Path)
}

// BadRequestError reports a 400. Message is the message field of the
// response body, suffixed with the entries of data.errorList when the
// API provides them.
type BadRequestError struct {
	Status  int
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

// RequestError reports any non-2xx status the other error types do not
// single out. Body preserves the raw response for diagnostics.
type RequestError struct {
	Status  int
	Message string
	Body    string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// LocalFileError reports a local file that could not be read. It is
// returned before any request is issued.
type LocalFileError struct {
	Path string
	Err  error
}

func (e *LocalFileError) Error() string {
	return fmt.Sprintf("cannot read local file %s: %v", e.Path, e.Err)
}

func (e *LocalFileError) Unwrap() error { return e.Err }

// ValidationError reports an argument rejected client side, before any
// request is issued.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// UploadError reports a content upload that failed after the video
// record was already created. The record is left behind; VideoGUID
// identifies it so the caller can retry the upload or delete it.
type UploadError struct {
	VideoGUID string
	Err       error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed for created video %s: %v", e.VideoGUID, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// maskAccessKey keeps enough of a key to recognize it in logs without
// reproducing the secret.
func maskAccessKey(key string) string {
	const visible = 6
	runes := []rune(key)
	if len(runes) <= visible {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:visible]) + strings.Repeat("*", len(runes)-visible)
}
