package bunny

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestUploadVideoContent(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")
	content := []byte("fake video bytes")

	result, err := client.UploadVideoContent(context.Background(), guid, bytes.NewReader(content), &UploadVideoContentOptions{
		EnabledResolutions: "240p,720p",
	})
	if err != nil {
		t.Fatalf("UploadVideoContent: %v", err)
	}
	if result.(map[string]any)["success"] != true {
		t.Errorf("success = %v, want true", result.(map[string]any)["success"])
	}

	if got := api.UploadedBytes(guid); !bytes.Equal(got, content) {
		t.Errorf("uploaded bytes = %q, want %q", got, content)
	}
	last := api.LastRequest()
	if last.Method != http.MethodPut {
		t.Errorf("method = %s, want PUT", last.Method)
	}
	if got := last.Header.Get("Content-Type"); got != "application/octet-stream" {
		t.Errorf("Content-Type = %q, want application/octet-stream", got)
	}
	if got := last.Query.Get("enabledResolutions"); got != "240p,720p" {
		t.Errorf("enabledResolutions = %q", got)
	}
}

func TestUploadVideo(t *testing.T) {
	api, client := newTestAPI(t)
	path := writeTempFile(t, "clip.mp4", "mp4 payload")

	videoID, result, err := client.UploadVideo(context.Background(), path, "Launch Clip", nil)
	if err != nil {
		t.Fatalf("UploadVideo: %v", err)
	}
	if videoID == "" {
		t.Fatal("no video id returned")
	}
	if result.(map[string]any)["success"] != true {
		t.Errorf("success = %v, want true", result.(map[string]any)["success"])
	}

	if got := api.Video(videoID)["title"]; got != "Launch Clip" {
		t.Errorf("stored title = %v, want Launch Clip", got)
	}
	if got := api.UploadedBytes(videoID); string(got) != "mp4 payload" {
		t.Errorf("uploaded bytes = %q", got)
	}

	requests := api.Requests()
	if len(requests) != 2 {
		t.Fatalf("recorded %d requests, want create then upload", len(requests))
	}
	if requests[0].Method != http.MethodPost || !strings.HasSuffix(requests[0].Path, "/videos") {
		t.Errorf("first request = %s %s, want POST /videos", requests[0].Method, requests[0].Path)
	}
	if requests[1].Method != http.MethodPut || !strings.HasSuffix(requests[1].Path, "/videos/"+videoID) {
		t.Errorf("second request = %s %s, want PUT /videos/%s", requests[1].Method, requests[1].Path, videoID)
	}
}

func TestUploadVideoDefaultsTitleToFileName(t *testing.T) {
	api, client := newTestAPI(t)
	path := writeTempFile(t, "holiday.mp4", "bytes")

	videoID, _, err := client.UploadVideo(context.Background(), path, "", nil)
	if err != nil {
		t.Fatalf("UploadVideo: %v", err)
	}
	if got := api.Video(videoID)["title"]; got != "holiday.mp4" {
		t.Errorf("stored title = %v, want holiday.mp4", got)
	}
}

func TestUploadVideoMissingFile(t *testing.T) {
	api, client := newTestAPI(t)

	_, _, err := client.UploadVideo(context.Background(), "/does/not/exist.mp4", "X", nil)
	var fileErr *LocalFileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("got %T (%v), want *LocalFileError", err, err)
	}
	if fileErr.Path != "/does/not/exist.mp4" {
		t.Errorf("Path = %q", fileErr.Path)
	}
	if len(api.Requests()) != 0 {
		t.Error("a request was issued although the file does not exist")
	}
}

func TestUploadVideoLeavesRecordOnUploadFailure(t *testing.T) {
	api, client := newTestAPI(t)
	api.FailUploads(http.StatusInternalServerError)
	path := writeTempFile(t, "clip.mp4", "bytes")

	videoID, _, err := client.UploadVideo(context.Background(), path, "Clip", nil)

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("got %T (%v), want *UploadError", err, err)
	}
	if uploadErr.VideoGUID == "" {
		t.Fatal("UploadError carries no video guid")
	}
	if videoID != uploadErr.VideoGUID {
		t.Errorf("returned id %q differs from UploadError guid %q", videoID, uploadErr.VideoGUID)
	}

	// The created record is left behind for the caller to retry or
	// delete.
	if api.Video(uploadErr.VideoGUID) == nil {
		t.Error("created record is gone")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("UploadError should wrap the API failure, got %v", err)
	}
	if reqErr.Status != http.StatusInternalServerError {
		t.Errorf("wrapped status = %d, want 500", reqErr.Status)
	}
}

func TestUploadVideoPassesOptions(t *testing.T) {
	api, client := newTestAPI(t)
	collectionID := api.SeedCollection("Holidays")
	path := writeTempFile(t, "clip.mp4", "bytes")
	api.ResetRequests()

	videoID, _, err := client.UploadVideo(context.Background(), path, "Clip", &UploadVideoOptions{
		CollectionID:       collectionID,
		ThumbnailTime:      intPtr(2500),
		EnabledResolutions: "720p",
	})
	if err != nil {
		t.Fatalf("UploadVideo: %v", err)
	}

	if got := api.Video(videoID)["collectionId"]; got != collectionID {
		t.Errorf("stored collectionId = %v, want %s", got, collectionID)
	}
	requests := api.Requests()
	if got := requests[1].Query.Get("enabledResolutions"); got != "720p" {
		t.Errorf("enabledResolutions = %q, want 720p", got)
	}
}
