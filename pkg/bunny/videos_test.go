package bunny

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestListVideosQuery(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		opts *ListVideosOptions
		want string
	}{
		{
			name: "nil options use paging defaults",
			opts: nil,
			want: "itemsPerPage=100&page=1",
		},
		{
			name: "search with explicit page",
			opts: &ListVideosOptions{Search: "cats", Page: 2},
			want: "itemsPerPage=100&page=2&search=cats",
		},
		{
			name: "all filters",
			opts: &ListVideosOptions{
				Search:       "dogs",
				Collection:   "col-1",
				OrderBy:      "title",
				Page:         3,
				ItemsPerPage: 25,
			},
			want: "collection=col-1&itemsPerPage=25&orderBy=title&page=3&search=dogs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api, client := newTestAPI(t)

			if _, err := client.ListVideos(ctx, tt.opts); err != nil {
				t.Fatalf("ListVideos: %v", err)
			}

			last := api.LastRequest()
			if last.Method != http.MethodGet {
				t.Errorf("method = %s, want GET", last.Method)
			}
			if got := last.Query.Encode(); got != tt.want {
				t.Errorf("query = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestListVideosFiltersByTitle(t *testing.T) {
	api, client := newTestAPI(t)
	api.SeedVideo("Cats compilation")
	api.SeedVideo("Dog tricks")
	api.SeedVideo("More cats")

	result, err := client.ListVideos(context.Background(), &ListVideosOptions{Search: "cats"})
	if err != nil {
		t.Fatalf("ListVideos: %v", err)
	}

	page, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result is %T, want map[string]any", result)
	}
	if page["totalItems"] != float64(2) {
		t.Errorf("totalItems = %v, want 2", page["totalItems"])
	}
}

func TestGetVideo(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("My Video")

	result, err := client.GetVideo(context.Background(), guid)
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}

	video, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result is %T, want map[string]any", result)
	}
	if video["guid"] != guid {
		t.Errorf("guid = %v, want %s", video["guid"], guid)
	}
	if video["title"] != "My Video" {
		t.Errorf("title = %v, want My Video", video["title"])
	}
}

func TestGetVideoNotFound(t *testing.T) {
	_, client := newTestAPI(t)

	_, err := client.GetVideo(context.Background(), "abc123")
	var notFound *VideoNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("got %T (%v), want *VideoNotFoundError", err, err)
	}
	if notFound.ID != "abc123" {
		t.Errorf("ID = %q, want abc123", notFound.ID)
	}
}

func TestCreateVideo(t *testing.T) {
	api, client := newTestAPI(t)

	result, err := client.CreateVideo(context.Background(), "Launch Video", &CreateVideoOptions{
		CollectionID:  "col-1",
		ThumbnailTime: intPtr(5000),
	})
	if err != nil {
		t.Fatalf("CreateVideo: %v", err)
	}

	video, _ := result.(map[string]any)
	if video["guid"] == "" || video["guid"] == nil {
		t.Error("created video carries no guid")
	}

	last := api.LastRequest()
	if last.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", last.Method)
	}
	var body map[string]any
	if err := json.Unmarshal(last.Body, &body); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	want := map[string]any{
		"title":         "Launch Video",
		"collectionId":  "col-1",
		"thumbnailTime": float64(5000),
	}
	if len(body) != len(want) {
		t.Errorf("body has %d keys, want %d: %v", len(body), len(want), body)
	}
	for key, value := range want {
		if body[key] != value {
			t.Errorf("body[%s] = %v, want %v", key, body[key], value)
		}
	}
}

func TestCreateVideoOmitsUnsetOptions(t *testing.T) {
	api, client := newTestAPI(t)

	if _, err := client.CreateVideo(context.Background(), "Bare", nil); err != nil {
		t.Fatalf("CreateVideo: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(api.LastRequest().Body, &body); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if len(body) != 1 || body["title"] != "Bare" {
		t.Errorf("body = %v, want only the title", body)
	}
}

func TestUpdateVideo(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Old Title")

	result, err := client.UpdateVideo(context.Background(), guid, map[string]any{"title": "New Title"})
	if err != nil {
		t.Fatalf("UpdateVideo: %v", err)
	}

	envelope, _ := result.(map[string]any)
	if envelope["success"] != true {
		t.Errorf("success = %v, want true", envelope["success"])
	}
	if got := api.Video(guid)["title"]; got != "New Title" {
		t.Errorf("stored title = %v, want New Title", got)
	}
}

func TestDeleteVideo(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Doomed")

	if _, err := client.DeleteVideo(context.Background(), guid); err != nil {
		t.Fatalf("DeleteVideo: %v", err)
	}
	if api.Video(guid) != nil {
		t.Error("video still stored after delete")
	}

	_, err := client.DeleteVideo(context.Background(), guid)
	var notFound *VideoNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("second delete: got %T (%v), want *VideoNotFoundError", err, err)
	}
}

func TestSetThumbnail(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")

	if _, err := client.SetThumbnail(context.Background(), guid, "https://cdn.example.com/thumb.jpg"); err != nil {
		t.Fatalf("SetThumbnail: %v", err)
	}

	last := api.LastRequest()
	if got := last.Query.Get("thumbnailUrl"); got != "https://cdn.example.com/thumb.jpg" {
		t.Errorf("thumbnailUrl = %q", got)
	}
	if got := api.Video(guid)["thumbnailUrl"]; got != "https://cdn.example.com/thumb.jpg" {
		t.Errorf("stored thumbnailUrl = %v", got)
	}
}

func TestGetVideoPlayData(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")

	t.Run("without token", func(t *testing.T) {
		if _, err := client.GetVideoPlayData(context.Background(), guid, nil); err != nil {
			t.Fatalf("GetVideoPlayData: %v", err)
		}
		if got := api.LastRequest().Query.Encode(); got != "" {
			t.Errorf("query = %q, want empty", got)
		}
	})

	t.Run("with token", func(t *testing.T) {
		_, err := client.GetVideoPlayData(context.Background(), guid, &PlayDataOptions{
			Token:   "tok",
			Expires: 1767225600,
		})
		if err != nil {
			t.Fatalf("GetVideoPlayData: %v", err)
		}
		if got := api.LastRequest().Query.Encode(); got != "expires=1767225600&token=tok" {
			t.Errorf("query = %q", got)
		}
	})
}

func TestGetVideoHeatmapPath(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")

	result, err := client.GetVideoHeatmap(context.Background(), guid)
	if err != nil {
		t.Fatalf("GetVideoHeatmap: %v", err)
	}
	if _, ok := result.(map[string]any)["heatmap"]; !ok {
		t.Error("response carries no heatmap key")
	}
	wantPath := "/library/" + testLibraryID + "/videos/" + guid + "/heatmap"
	if got := api.LastRequest().Path; got != wantPath {
		t.Errorf("path = %q, want %q", got, wantPath)
	}
}

func TestGetStatistics(t *testing.T) {
	api, client := newTestAPI(t)

	_, err := client.GetStatistics(context.Background(), &StatisticsOptions{
		VideoID:  "vid-1",
		DateFrom: "2026-08-01",
		DateTo:   "2026-08-21",
		Hourly:   boolPtr(true),
		Filters:  map[string]string{"country": "AT"},
	})
	if err != nil {
		t.Fatalf("GetStatistics: %v", err)
	}

	last := api.LastRequest()
	wantPath := "/library/" + testLibraryID + "/statistics"
	if last.Path != wantPath {
		t.Errorf("path = %q, want %q", last.Path, wantPath)
	}
	want := "country=AT&dateFrom=2026-08-01&dateTo=2026-08-21&hourly=true&videoId=vid-1"
	if got := last.Query.Encode(); got != want {
		t.Errorf("query = %q, want %q", got, want)
	}
}

func TestReencodeVideo(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")

	result, err := client.ReencodeVideo(context.Background(), guid)
	if err != nil {
		t.Fatalf("ReencodeVideo: %v", err)
	}
	if got := result.(map[string]any)["status"]; got != float64(3) {
		t.Errorf("status = %v, want 3", got)
	}
}

func TestAddOutputCodec(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")

	if _, err := client.AddOutputCodec(context.Background(), guid, CodecHEVC); err != nil {
		t.Fatalf("AddOutputCodec: %v", err)
	}

	last := api.LastRequest()
	if last.Method != http.MethodPut {
		t.Errorf("method = %s, want PUT", last.Method)
	}
	wantPath := "/library/" + testLibraryID + "/videos/" + guid + "/outputs/2"
	if last.Path != wantPath {
		t.Errorf("path = %q, want %q", last.Path, wantPath)
	}
}

func TestAddOutputCodecRejectsUnknown(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")
	api.ResetRequests()

	_, err := client.AddOutputCodec(context.Background(), guid, OutputCodec(9))
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("got %T (%v), want *ValidationError", err, err)
	}
	if validation.Field != "codec" {
		t.Errorf("Field = %q, want codec", validation.Field)
	}
	if len(api.Requests()) != 0 {
		t.Error("a request was issued for an invalid codec")
	}
}

func TestOutputCodecString(t *testing.T) {
	tests := []struct {
		codec OutputCodec
		want  string
	}{
		{CodecX264, "x264"},
		{CodecVP9, "vp9"},
		{CodecHEVC, "hevc"},
		{CodecAV1, "av1"},
		{OutputCodec(9), "OutputCodec(9)"},
	}
	for _, tt := range tests {
		if got := tt.codec.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.codec), got, tt.want)
		}
	}
}

func TestRepackageVideo(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")

	tests := []struct {
		keep bool
		want string
	}{
		{true, "true"},
		{false, "false"},
	}
	for _, tt := range tests {
		if _, err := client.RepackageVideo(context.Background(), guid, tt.keep); err != nil {
			t.Fatalf("RepackageVideo: %v", err)
		}
		if got := api.LastRequest().Query.Get("keepOriginalFiles"); got != tt.want {
			t.Errorf("keepOriginalFiles = %q, want the literal %q", got, tt.want)
		}
	}
}

func TestFetchVideo(t *testing.T) {
	api, client := newTestAPI(t)

	result, err := client.FetchVideo(context.Background(), "https://example.com/source.mp4", &FetchVideoOptions{
		Title:         "Fetched",
		Headers:       map[string]string{"Authorization": "Bearer tok"},
		CollectionID:  "col-1",
		ThumbnailTime: intPtr(1000),
	})
	if err != nil {
		t.Fatalf("FetchVideo: %v", err)
	}
	if result.(map[string]any)["success"] != true {
		t.Errorf("success = %v, want true", result.(map[string]any)["success"])
	}

	last := api.LastRequest()
	wantPath := "/library/" + testLibraryID + "/videos/fetch"
	if last.Path != wantPath {
		t.Errorf("path = %q, want %q", last.Path, wantPath)
	}
	if got := last.Query.Encode(); got != "collectionId=col-1&thumbnailTime=1000" {
		t.Errorf("query = %q", got)
	}

	var body map[string]any
	if err := json.Unmarshal(last.Body, &body); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	if body["url"] != "https://example.com/source.mp4" {
		t.Errorf("body url = %v", body["url"])
	}
	if body["title"] != "Fetched" {
		t.Errorf("body title = %v", body["title"])
	}
	headers, _ := body["headers"].(map[string]any)
	if headers["Authorization"] != "Bearer tok" {
		t.Errorf("body headers = %v", body["headers"])
	}
}

func TestTranscribeVideo(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")

	t.Run("defaults", func(t *testing.T) {
		if _, err := client.TranscribeVideo(context.Background(), guid, "en", nil); err != nil {
			t.Fatalf("TranscribeVideo: %v", err)
		}
		last := api.LastRequest()
		if got := last.Query.Encode(); got != "force=false&language=en" {
			t.Errorf("query = %q, want force=false&language=en", got)
		}
		if string(last.Body) != "{}" {
			t.Errorf("body = %q, want an empty object", last.Body)
		}
	})

	t.Run("full options", func(t *testing.T) {
		_, err := client.TranscribeVideo(context.Background(), guid, "de", &TranscribeOptions{
			Force:               true,
			TargetLanguages:     []string{"en", "fr"},
			GenerateTitles:      boolPtr(true),
			GenerateDescription: boolPtr(false),
			SourceLanguage:      "de",
		})
		if err != nil {
			t.Fatalf("TranscribeVideo: %v", err)
		}
		last := api.LastRequest()
		if got := last.Query.Encode(); got != "force=true&language=de" {
			t.Errorf("query = %q, want force=true&language=de", got)
		}
		var body map[string]any
		if err := json.Unmarshal(last.Body, &body); err != nil {
			t.Fatalf("request body is not JSON: %v", err)
		}
		if body["generateTitles"] != true || body["generateDescription"] != false {
			t.Errorf("generate flags = %v / %v", body["generateTitles"], body["generateDescription"])
		}
		if body["sourceLanguage"] != "de" {
			t.Errorf("sourceLanguage = %v", body["sourceLanguage"])
		}
		languages, _ := body["targetLanguages"].([]any)
		if len(languages) != 2 {
			t.Errorf("targetLanguages = %v", body["targetLanguages"])
		}
	})
}

func TestGetVideoResolutions(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")

	result, err := client.GetVideoResolutions(context.Background(), guid)
	if err != nil {
		t.Fatalf("GetVideoResolutions: %v", err)
	}
	data, _ := result.(map[string]any)["data"].(map[string]any)
	if data["videoId"] != guid {
		t.Errorf("data.videoId = %v, want %s", data["videoId"], guid)
	}
}

func TestCleanupResolutions(t *testing.T) {
	api, client := newTestAPI(t)
	guid := api.SeedVideo("Video")

	t.Run("defaults send all four flags as false", func(t *testing.T) {
		if _, err := client.CleanupResolutions(context.Background(), guid, nil); err != nil {
			t.Fatalf("CleanupResolutions: %v", err)
		}
		want := "deleteMp4Files=false&deleteNonConfiguredResolutions=false&deleteOriginal=false&dryRun=false"
		if got := api.LastRequest().Query.Encode(); got != want {
			t.Errorf("query = %q, want %q", got, want)
		}
	})

	t.Run("dry run previews deletions", func(t *testing.T) {
		result, err := client.CleanupResolutions(context.Background(), guid, &CleanupResolutionsOptions{
			ResolutionsToDelete: "240p,360p",
			DeleteOriginal:      true,
			DryRun:              true,
		})
		if err != nil {
			t.Fatalf("CleanupResolutions: %v", err)
		}
		query := api.LastRequest().Query
		if got := query.Get("resolutionsToDelete"); got != "240p,360p" {
			t.Errorf("resolutionsToDelete = %q", got)
		}
		if got := query.Get("deleteOriginal"); got != "true" {
			t.Errorf("deleteOriginal = %q, want true", got)
		}
		data, _ := result.(map[string]any)["data"].(map[string]any)
		preview, _ := data["resolutionsToBeDeleted"].([]any)
		if len(preview) != 2 {
			t.Errorf("resolutionsToBeDeleted = %v", data["resolutionsToBeDeleted"])
		}
	})
}
