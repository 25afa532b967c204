package server

import (
	"net/http"
	"time"

	"github.com/ory/graceful"
)

type GracefulConfig struct {
	Handler http.Handler
	Port    string
}

// New arma el http.Server con los timeouts de la API
func New(cfg GracefulConfig) *http.Server {
	return &http.Server{
		Handler:           cfg.Handler,
		Addr:              ":" + cfg.Port,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
		MaxHeaderBytes:    1 << 20,
	}
}

// Graceful atiende hasta recibir SIGINT/SIGTERM y luego espera a las
// peticiones en curso.
func Graceful(cfg GracefulConfig) error {
	srv := New(cfg)
	return graceful.Graceful(srv.ListenAndServe, srv.Shutdown)
}
