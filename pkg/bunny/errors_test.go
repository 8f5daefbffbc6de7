package bunny

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	inner := fmt.Errorf("connection refused")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"transport",
			&TransportError{Err: inner},
			"stream api request failed: connection refused",
		},
		{
			"authentication",
			&AuthenticationError{AccessKey: "abc123****"},
			"authentication failed: access key abc123**** was rejected",
		},
		{
			"video not found",
			&VideoNotFoundError{ID: "abc123"},
			"video abc123 not found",
		},
		{
			"collection not found",
			&CollectionNotFoundError{ID: "col-1"},
			"collection col-1 not found",
		},
		{
			"generic not found",
			&NotFoundError{Path: "statistics"},
			"resource not found: statistics",
		},
		{
			"bad request",
			&BadRequestError{Status: 400, Message: "The request is invalid. - a, b"},
			"bad request: The request is invalid. - a, b",
		},
		{
			"request",
			&RequestError{Status: 503, Message: "failed to get video", Body: "busy"},
			"failed to get video (status 503)",
		},
		{
			"local file",
			&LocalFileError{Path: "/tmp/x.mp4", Err: inner},
			"cannot read local file /tmp/x.mp4: connection refused",
		},
		{
			"validation",
			&ValidationError{Field: "codec", Message: "9 is not a known output codec"},
			"invalid codec: 9 is not a known output codec",
		},
		{
			"upload",
			&UploadError{VideoGUID: "abc", Err: inner},
			"upload failed for created video abc: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrapping(t *testing.T) {
	inner := fmt.Errorf("root cause")

	wrappers := []error{
		&TransportError{Err: inner},
		&LocalFileError{Path: "/x", Err: inner},
		&UploadError{VideoGUID: "abc", Err: inner},
	}
	for _, wrapper := range wrappers {
		if !errors.Is(wrapper, inner) {
			t.Errorf("%T does not unwrap to the inner error", wrapper)
		}
	}
}

func TestUploadErrorWrapsTypedErrors(t *testing.T) {
	err := &UploadError{
		VideoGUID: "abc",
		Err:       &RequestError{Status: 500, Message: "failed to upload video content"},
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatal("errors.As cannot reach the wrapped RequestError")
	}
	if reqErr.Status != 500 {
		t.Errorf("Status = %d, want 500", reqErr.Status)
	}
	if !strings.Contains(err.Error(), "abc") {
		t.Errorf("Error() = %q, want the orphaned guid in it", err.Error())
	}
}
