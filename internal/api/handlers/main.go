package handlers

import (
	"uploadhub/internal/config"
	"uploadhub/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	// --- Depend on interfaces, not concrete structs ---
	Upload services.UploadService
	Info   services.InfoService

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(upload services.UploadService, info services.InfoService, cfg *config.Config) *Handlers {
	return &Handlers{
		Upload: upload,
		Info:   info,
		Cfg:    cfg,
	}
}
