package bunnytest

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

func (s *Server) listCollectionsHandler(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	itemsPerPage := queryInt(r, "itemsPerPage", 100)
	search := strings.ToLower(r.URL.Query().Get("search"))
	includeThumbnails := r.URL.Query().Get("includeThumbnails") == "true"

	s.mu.RLock()
	var matches []map[string]any
	for _, guid := range s.collOrder {
		collection, ok := s.collections[guid]
		if !ok {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(collection["name"].(string)), search) {
			continue
		}
		entry := copyRecord(collection)
		if includeThumbnails {
			entry["previewImageUrls"] = []any{}
		}
		matches = append(matches, entry)
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"totalItems":   len(matches),
		"currentPage":  page,
		"itemsPerPage": itemsPerPage,
		"items":        paginate(matches, page, itemsPerPage),
	})
}

func (s *Server) createCollectionHandler(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)
	name, _ := body["name"].(string)
	if name == "" {
		writeBadRequest(w, "The request is invalid.", "The Name field is required.")
		return
	}

	s.mu.Lock()
	collection := s.newCollectionLocked(name)
	response := copyRecord(collection)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) getCollectionHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	collection, ok := s.collections[mux.Vars(r)["collectionId"]]
	var response map[string]any
	if ok {
		response = copyRecord(collection)
	}
	s.mu.RUnlock()

	if !ok {
		writeNotFound(w, "Collection not found.")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) updateCollectionHandler(w http.ResponseWriter, r *http.Request) {
	body := decodeBody(r)

	s.mu.Lock()
	collection, ok := s.collections[mux.Vars(r)["collectionId"]]
	if ok {
		if name, _ := body["name"].(string); name != "" {
			collection["name"] = name
		}
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Collection not found.")
		return
	}
	writeJSON(w, http.StatusOK, okEnvelope())
}

func (s *Server) deleteCollectionHandler(w http.ResponseWriter, r *http.Request) {
	guid := mux.Vars(r)["collectionId"]

	s.mu.Lock()
	_, ok := s.collections[guid]
	if ok {
		delete(s.collections, guid)
		// Videos keep existing, they just fall out of the collection.
		for _, video := range s.videos {
			if video["collectionId"] == guid {
				video["collectionId"] = ""
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		writeNotFound(w, "Collection not found.")
		return
	}
	writeJSON(w, http.StatusOK, okEnvelope())
}

func (s *Server) statisticsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"viewsChart":        map[string]any{},
		"watchTimeChart":    map[string]any{},
		"countryViewCounts": map[string]any{},
		"countryWatchTime":  map[string]any{},
		"engagementScore":   0,
	})
}
