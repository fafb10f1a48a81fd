package http

import (
	"io"
	"net/http"
	"time"
)

type healthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:    "ok",
			Message:   "Media relay is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

const landingPage = `<!DOCTYPE html>
<html>
<head><title>Media Relay</title></head>
<body>
<h1>Media Relay</h1>
<p>Forwards media uploads to the CDN and returns the public URL.</p>
<ul>
<li>POST /api/upload &mdash; multipart field <code>file</code>, returns the public URL</li>
<li>POST /api/file-info &mdash; multipart field <code>file</code>, returns derived metadata</li>
<li>GET /api/health &mdash; liveness probe</li>
</ul>
</body>
</html>
`

func IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, landingPage)
	}
}
