// Package httpapi is the bridge the embedded web UI talks to: it reads and
// writes settings and listens for UI events.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"gitea.knapp/jacoknapp/launcher/internal/notify"
	"gitea.knapp/jacoknapp/launcher/internal/settings"
)

type Server struct {
	settings *settings.Store
	events   *notify.Dispatcher
	log      logrus.FieldLogger
	chi      *chi.Mux
}

func NewServer(store *settings.Store, events *notify.Dispatcher, log logrus.FieldLogger) *Server {
	return &Server{settings: store, events: events, log: log, chi: chi.NewRouter()}
}

func (s *Server) Router() http.Handler {
	r := s.chi
	r.Use(middleware.RequestID, middleware.RealIP, s.requestLogger, middleware.Recoverer)
	r.Use(s.localOnly, s.securityHeaders)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })

	r.Route("/api", func(rt chi.Router) {
		s.mountSettings(rt)
		s.mountEvents(rt)
	})
	return r
}

func writeJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, map[string]string{"error": msg}, code)
}
