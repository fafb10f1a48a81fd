package http

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/gorilla/mux"

	"github.com/donmikel/mediarelay/applications/server"
)

// NewRouter builds the full HTTP surface. It is exported separately from
// NewHTTPServer so a platform-managed entrypoint can mount the handler
// without a local listener.
func NewRouter(svc server.UploadService, logger log.Logger) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/", IndexHandler()).Methods(http.MethodGet)
	r.HandleFunc("/api/health", HealthHandler()).Methods(http.MethodGet)
	r.HandleFunc("/api/upload", UploadHandler(svc, logger)).Methods(http.MethodPost)
	r.HandleFunc("/api/file-info", FileInfoHandler(svc, logger)).Methods(http.MethodPost)
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(notFoundHandler)

	// Middleware wraps the router itself so the 404 handler is covered too.
	var h http.Handler = r
	h = RequestLogger(logger)(h)
	h = RequestID(h)
	h = Recover(logger)(h)

	return h
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "Endpoint not found")
}
