package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// maxValueBytes bounds a single setting; the song catalog is the largest
// value the UI ever sends back.
const maxValueBytes = 1 << 20

func (s *Server) mountSettings(r chi.Router) {
	r.Get("/settings", s.handleListSettings)
	r.Post("/settings/reset", s.handleReset)
	r.Get("/settings/{key}", s.handleGetSetting)
	r.Put("/settings/{key}", s.handleSetSetting)
}

type settingBody struct {
	Key   string `json:"key,omitempty"`
	Value string `json:"value"`
}

func (s *Server) handleListSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.settings.All(), http.StatusOK)
}

func (s *Server) handleGetSetting(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	writeJSON(w, settingBody{Key: key, Value: s.settings.Get(key)}, http.StatusOK)
}

func (s *Server) handleSetSetting(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(chi.URLParam(r, "key"))
	if key == "" {
		writeError(w, "missing key", http.StatusBadRequest)
		return
	}
	var body settingBody
	dec := json.NewDecoder(io.LimitReader(r.Body, maxValueBytes))
	if err := dec.Decode(&body); err != nil {
		writeError(w, "body must be {\"value\": \"...\"}", http.StatusBadRequest)
		return
	}
	// Persistence failures are the store's business; the UI only needs to
	// know the value took.
	s.settings.Set(key, body.Value)
	w.WriteHeader(http.StatusNoContent)
}

// handleReset normally never answers: the process exits once the file is
// cleared.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if err := s.settings.ResetAndExit(); err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]bool{"reset": true}, http.StatusOK)
}
