// Package bunnytest provides an in-memory double of the Bunny Stream
// API for tests. It speaks the same routes, status codes and body
// shapes as the real service, keeps its state behind a mutex and
// records every request it serves so tests can assert on the wire
// format.
package bunnytest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Request is one recorded API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Server is a fake Stream API bound to one library. Point a client at
// URL() and drive it; inspect state with the accessor methods.
type Server struct {
	LibraryID string
	AccessKey string

	mu          sync.RWMutex
	videos      map[string]map[string]any
	videoOrder  []string
	collections map[string]map[string]any
	collOrder   []string
	uploads     map[string][]byte
	requests    []Request

	// uploadFailStatus forces PUT video content to fail.
	uploadFailStatus int

	httpServer *httptest.Server
}

// New starts a fake Stream API for the given library. Callers must
// Close it.
func New(libraryID, accessKey string) *Server {
	s := &Server{
		LibraryID:   libraryID,
		AccessKey:   accessKey,
		videos:      make(map[string]map[string]any),
		collections: make(map[string]map[string]any),
		uploads:     make(map[string][]byte),
	}

	router := mux.NewRouter()
	library := router.PathPrefix("/library/{libraryId}").Subrouter()
	library.Use(s.recordMiddleware)
	library.Use(s.authMiddleware)

	library.HandleFunc("/videos", s.listVideosHandler).Methods(http.MethodGet)
	library.HandleFunc("/videos", s.createVideoHandler).Methods(http.MethodPost)
	library.HandleFunc("/videos/fetch", s.fetchVideoHandler).Methods(http.MethodPost)
	library.HandleFunc("/videos/{videoId}", s.getVideoHandler).Methods(http.MethodGet)
	library.HandleFunc("/videos/{videoId}", s.updateVideoHandler).Methods(http.MethodPost)
	library.HandleFunc("/videos/{videoId}", s.uploadVideoHandler).Methods(http.MethodPut)
	library.HandleFunc("/videos/{videoId}", s.deleteVideoHandler).Methods(http.MethodDelete)
	library.HandleFunc("/videos/{videoId}/thumbnail", s.setThumbnailHandler).Methods(http.MethodPost)
	library.HandleFunc("/videos/{videoId}/heatmap", s.heatmapHandler).Methods(http.MethodGet)
	library.HandleFunc("/videos/{videoId}/play", s.playDataHandler).Methods(http.MethodGet)
	library.HandleFunc("/videos/{videoId}/reencode", s.reencodeHandler).Methods(http.MethodPost)
	library.HandleFunc("/videos/{videoId}/outputs/{codecId}", s.addOutputHandler).Methods(http.MethodPut)
	library.HandleFunc("/videos/{videoId}/repackage", s.repackageHandler).Methods(http.MethodGet)
	library.HandleFunc("/videos/{videoId}/captions/{srclang}", s.addCaptionHandler).Methods(http.MethodPost)
	library.HandleFunc("/videos/{videoId}/captions/{srclang}", s.deleteCaptionHandler).Methods(http.MethodDelete)
	library.HandleFunc("/videos/{videoId}/transcribe", s.transcribeHandler).Methods(http.MethodPost)
	library.HandleFunc("/videos/{videoId}/resolutions", s.resolutionsHandler).Methods(http.MethodGet)
	library.HandleFunc("/videos/{videoId}/resolutions/cleanup", s.cleanupResolutionsHandler).Methods(http.MethodPost)
	library.HandleFunc("/statistics", s.statisticsHandler).Methods(http.MethodGet)
	library.HandleFunc("/collections", s.listCollectionsHandler).Methods(http.MethodGet)
	library.HandleFunc("/collections", s.createCollectionHandler).Methods(http.MethodPost)
	library.HandleFunc("/collections/{collectionId}", s.getCollectionHandler).Methods(http.MethodGet)
	library.HandleFunc("/collections/{collectionId}", s.updateCollectionHandler).Methods(http.MethodPost)
	library.HandleFunc("/collections/{collectionId}", s.deleteCollectionHandler).Methods(http.MethodDelete)

	s.httpServer = httptest.NewServer(router)
	return s
}

// URL returns the base URL of the fake API, to be used as the client's
// endpoint.
func (s *Server) URL() string {
	return s.httpServer.URL
}

func (s *Server) Close() {
	s.httpServer.Close()
}

func (s *Server) recordMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("AccessKey") != s.AccessKey {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"message": "Authorization has been denied for this request.",
			})
			return
		}
		if mux.Vars(r)["libraryId"] != s.LibraryID {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"message": "Library not found.",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Requests returns a copy of every call recorded so far.
func (s *Server) Requests() []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent recorded call, or nil.
func (s *Server) LastRequest() *Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.requests) == 0 {
		return nil
	}
	last := s.requests[len(s.requests)-1]
	return &last
}

// ResetRequests clears the recording without touching stored state.
func (s *Server) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// SeedVideo stores a video record directly and returns its GUID.
func (s *Server) SeedVideo(title string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	video := s.newVideoLocked(title, "")
	return video["guid"].(string)
}

// SeedCollection stores a collection directly and returns its GUID.
func (s *Server) SeedCollection(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	collection := s.newCollectionLocked(name)
	return collection["guid"].(string)
}

// Video returns a copy of the stored record, or nil when unknown.
func (s *Server) Video(guid string) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	video, ok := s.videos[guid]
	if !ok {
		return nil
	}
	return copyRecord(video)
}

// Collection returns a copy of the stored record, or nil when unknown.
func (s *Server) Collection(guid string) map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	collection, ok := s.collections[guid]
	if !ok {
		return nil
	}
	return copyRecord(collection)
}

// SetVideoStatus overrides the encoding status of a stored video.
func (s *Server) SetVideoStatus(guid string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if video, ok := s.videos[guid]; ok {
		video["status"] = status
	}
}

// UploadedBytes returns the content uploaded for a video, or nil.
func (s *Server) UploadedBytes(guid string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uploads[guid]
}

// FailUploads makes every following PUT of video content answer with
// the given status. Zero restores normal behavior.
func (s *Server) FailUploads(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploadFailStatus = status
}

func (s *Server) newVideoLocked(title, collectionID string) map[string]any {
	guid := uuid.NewString()
	video := map[string]any{
		"videoLibraryId":       s.LibraryID,
		"guid":                 guid,
		"title":                title,
		"dateUploaded":         time.Now().UTC().Format(time.RFC3339),
		"views":                0,
		"isPublic":             false,
		"length":               0,
		"status":               0,
		"collectionId":         collectionID,
		"thumbnailFileName":    "thumbnail.jpg",
		"availableResolutions": "360p,720p",
		"outputCodecs":         "x264",
		"captions":             []any{},
		"chapters":             []any{},
		"moments":              []any{},
		"metaTags":             []any{},
	}
	s.videos[guid] = video
	s.videoOrder = append(s.videoOrder, guid)
	return video
}

func (s *Server) newCollectionLocked(name string) map[string]any {
	guid := uuid.NewString()
	collection := map[string]any{
		"videoLibraryId":  s.LibraryID,
		"guid":            guid,
		"name":            name,
		"videoCount":      0,
		"totalSize":       0,
		"previewVideoIds": "",
	}
	s.collections[guid] = collection
	s.collOrder = append(s.collOrder, guid)
	return collection
}

func copyRecord(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))
	for k, v := range record {
		out[k] = v
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// okEnvelope is the success shape the real API wraps mutations in.
func okEnvelope() map[string]any {
	return map[string]any{
		"success":    true,
		"message":    "OK",
		"statusCode": 200,
	}
}

func writeBadRequest(w http.ResponseWriter, message string, errorList ...string) {
	entries := make([]any, 0, len(errorList))
	for _, e := range errorList {
		entries = append(entries, e)
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"success":    false,
		"message":    message,
		"statusCode": 400,
		"data":       map[string]any{"errorList": entries},
	})
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"message": message,
	})
}

func decodeBody(r *http.Request) map[string]any {
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)
	return body
}
