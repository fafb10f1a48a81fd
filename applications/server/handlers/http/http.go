package http

import (
	"net/http"

	"github.com/go-kit/log"

	"github.com/donmikel/mediarelay/applications/server"
	"github.com/donmikel/mediarelay/applications/server/config"
)

func NewHTTPServer(conf config.Api, svc server.UploadService, logger log.Logger) *http.Server {
	mux := NewRouter(svc, logger)
	return &http.Server{
		Addr:    conf.HTTPAddr,
		Handler: mux,
	}
}
