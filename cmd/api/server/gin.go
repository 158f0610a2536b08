package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupGinServer wraps the router in an http.Server with sane timeouts.
func SetupGinServer(handler http.Handler, addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// ConfigureGinMode switches gin to release mode outside development.
func ConfigureGinMode(env string) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
}
