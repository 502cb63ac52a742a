package api

import (
	"net/http"

	"uploadhub/internal/api/handlers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter configures the main router.
// Unknown paths and methods fall back to the plain-text 404 so the surface
// stays limited to the registered endpoints.
func SetupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", handlers.Index).Methods("GET")
	r.HandleFunc("/upload", h.UploadFiles).Methods("POST")

	// Operational endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.NotFound)

	r.Use(RequestIDMiddleware)
	r.Use(AccessLogMiddleware)

	return r
}
