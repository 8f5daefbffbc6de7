package bunnytest

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

func (s *Server) listVideosHandler(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	itemsPerPage := queryInt(r, "itemsPerPage", 100)
	search := strings.ToLower(r.URL.Query().Get("search"))
	collection := r.URL.Query().Get("collection")

	s.mu.RLock()
	var matches []map[string]any
	for _, guid := range s.videoOrder {
		video, ok := s.videos[guid]
		if !ok {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(video["title"].(string)), search) {
			continue
		}
		if collection != "" && video["collectionId"] != collection {
			continue
		}
		matches = append(matches, copyRecord(video))
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"totalItems":   len(matches),
		"currentPage":  page,
		"itemsPerPage": itemsPerPage,
		"items":        paginate(matches, page, itemsPerPage),
	})
}

func (s *Server) createVideoHandler(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)
	title, _ := body["title"].(string)
	if title == "" {
		writeBadRequest(w, "The request is invalid.", "The Title field is required.")
		return
	}
	collectionID, _ := body["collectionId"].(string)

	s.mu.Lock()
	video := s.newVideoLocked(title, collectionID)
	if thumbnailTime, ok := body["thumbnailTime"]; ok {
		video["thumbnailTime"] = thumbnailTime
	}
	response := copyRecord(video)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) getVideoHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	video, ok := s.videos[mux.Vars(r)["videoId"]]
	var response map[string]any
	if ok {
		response = copyRecord(video)
	}
	s.mu.RUnlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// updatable lists the video keys a POST may change.
var updatable = map[string]bool{
	"title":         true,
	"collectionId":  true,
	"thumbnailTime": true,
	"chapters":      true,
	"moments":       true,
	"metaTags":      true,
}

func (s *Server) updateVideoHandler(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)

	s.mu.Lock()
	video, ok := s.videos[mux.Vars(r)["videoId"]]
	if ok {
		for key, value := range body {
			if updatable[key] {
				video[key] = value
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, okEnvelope())
}

func (s *Server) uploadVideoHandler(w http.ResponseWriter, r *http.Request) {
	content, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	failStatus := s.uploadFailStatus
	video, ok := s.videos[mux.Vars(r)["videoId"]]
	if ok && failStatus == 0 {
		s.uploads[video["guid"].(string)] = content
		video["status"] = 4
		video["length"] = len(content)
		if enabled := r.URL.Query().Get("enabledResolutions"); enabled != "" {
			video["enabledResolutions"] = enabled
		}
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	if failStatus != 0 {
		writeJSON(w, failStatus, map[string]any{
			"success":    false,
			"message":    "Internal Server Error",
			"statusCode": failStatus,
		})
		return
	}
	writeJSON(w, http.StatusOK, okEnvelope())
}

func (s *Server) deleteVideoHandler(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["videoId"]

	s.mu.Lock()
	_, ok := s.videos[guid]
	if ok {
		delete(s.videos, guid)
		delete(s.uploads, guid)
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, okEnvelope())
}

func (s *Server) setThumbnailHandler(w http.ResponseWriter, r *http.Request) {
	thumbnailURL := r.URL.Query().Get("thumbnailUrl")
	if thumbnailURL == "" {
		writeBadRequest(w, "The request is invalid.", "The ThumbnailUrl field is required.")
		return
	}

	s.mu.Lock()
	video, ok := s.videos[mux.Vars(r)["videoId"]]
	if ok {
		video["thumbnailUrl"] = thumbnailURL
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, okEnvelope())
}

func (s *Server) heatmapHandler(w http.ResponseWriter, r *http.Request) {
	if !s.videoExists(mux.Vars(r)["videoId"]) {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"heatmap": []any{0.0, 0.4, 0.9, 0.7, 0.2},
	})
}

func (s *Server) playDataHandler(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["videoId"]
	if !s.videoExists(guid) {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"videoPlaylistUrl": "https://iframe.mediadelivery.net/" + guid + "/playlist.m3u8",
		"thumbnailUrl":     "https://iframe.mediadelivery.net/" + guid + "/thumbnail.jpg",
		"fallbackUrl":      "https://iframe.mediadelivery.net/" + guid + "/play_720p.mp4",
		"captionsPath":     "https://iframe.mediadelivery.net/" + guid + "/captions",
	})
}

func (s *Server) reencodeHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	video, ok := s.videos[mux.Vars(r)["videoId"]]
	var response map[string]any
	if ok {
		video["status"] = 3
		response = copyRecord(video)
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

var codecNames = map[string]string{
	"0": "x264",
	"1": "vp9",
	"2": "hevc",
	"3": "av1",
}

func (s *Server) addOutputHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	codec, known := codecNames[vars["codecId"]]
	if !known {
		writeBadRequest(w, "The request is invalid.", "Unknown output codec.")
		return
	}

	s.mu.Lock()
	video, ok := s.videos[vars["videoId"]]
	var response map[string]any
	if ok {
		outputs, _ := video["outputCodecs"].(string)
		if !strings.Contains(outputs, codec) {
			video["outputCodecs"] = strings.Trim(outputs+","+codec, ",")
		}
		response = copyRecord(video)
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) repackageHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	video, ok := s.videos[mux.Vars(r)["videoId"]]
	var response map[string]any
	if ok {
		response = copyRecord(video)
	}
	s.mu.RUnlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) fetchVideoHandler(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)
	srcURL, _ := body["url"].(string)
	if srcURL == "" {
		writeBadRequest(w, "The request is invalid.", "The Url field is required.")
		return
	}
	title, _ := body["title"].(string)
	if title == "" {
		title = srcURL
	}

	s.mu.Lock()
	video := s.newVideoLocked(title, r.URL.Query().Get("collectionId"))
	guid := video["guid"].(string)
	s.mu.Unlock()

	response := okEnvelope()
	response["id"] = guid
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) addCaptionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	body := decodeBody(r)
	if file, _ := body["captionsFile"].(string); file == "" {
		writeBadRequest(w, "The request is invalid.", "The CaptionsFile field is required.")
		return
	}

	s.mu.Lock()
	video, ok := s.videos[vars["videoId"]]
	if ok {
		captions, _ := video["captions"].([]any)
		video["captions"] = append(captions, map[string]any{
			"srclang": vars["srclang"],
			"label":   body["label"],
		})
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, okEnvelope())
}

func (s *Server) deleteCaptionHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	s.mu.Lock()
	video, ok := s.videos[vars["videoId"]]
	found := false
	if ok {
		captions, _ := video["captions"].([]any)
		kept := make([]any, 0, len(captions))
		for _, entry := range captions {
			caption, _ := entry.(map[string]any)
			if caption != nil && caption["srclang"] == vars["srclang"] {
				found = true
				continue
			}
			kept = append(kept, entry)
		}
		video["captions"] = kept
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Video not found.")
		return
	}
	if !found {
		writeBadRequest(w, "Failed deleting the caption.")
		return
	}
	writeJSON(w, http.StatusOK, okEnvelope())
}

func (s *Server) transcribeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("language") == "" {
		writeBadRequest(w, "The request is invalid.", "The Language field is required.")
		return
	}
	if !s.videoExists(mux.Vars(r)["videoId"]) {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, okEnvelope())
}

func (s *Server) resolutionsHandler(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["videoId"]
	if !s.videoExists(guid) {
		writeNotFound(w, "Video not found.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "OK",
		"statusCode": 200,
		"data": map[string]any{
			"videoId":              guid,
			"availableResolutions": []any{"360p", "720p"},
			"configuredResolutions": []any{
				"360p", "720p", "1080p",
			},
			"hasOriginal": true,
		},
	})
}

func (s *Server) cleanupResolutionsHandler(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["videoId"]
	if !s.videoExists(guid) {
		writeNotFound(w, "Video not found.")
		return
	}

	toDelete := []any{}
	for _, name := range strings.Split(r.URL.Query().Get("resolutionsToDelete"), ",") {
		if name != "" {
			toDelete = append(toDelete, name)
		}
	}
	key := "resolutionsDeleted"
	if r.URL.Query().Get("dryRun") == "true" {
		key = "resolutionsToBeDeleted"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"message":    "OK",
		"statusCode": 200,
		"data":       map[string]any{key: toDelete},
	})
}

func (s *Server) videoExists(guid string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.videos[guid]
	return ok
}

func queryInt(r *http.Request, key string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func paginate(items []map[string]any, page, itemsPerPage int) []map[string]any {
	start := (page - 1) * itemsPerPage
	if start >= len(items) {
		return []map[string]any{}
	}
	end := start + itemsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
