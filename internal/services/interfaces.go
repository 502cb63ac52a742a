package services

import (
	"context"
	"mime/multipart"

	"uploadhub/internal/models"
)

// Auditor defines the interface for recording security-relevant events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "upload.save", "upload.reject")
	// resource: what was affected (a destination path)
	// details: structured metadata about the event
	Log(ctx context.Context, action string, resource string, details map[string]interface{})
}

// StorageService defines the interface for interacting with the save directory.
type StorageService interface {
	// Save runs the full create/write/chmod/chown sequence for one file.
	// Each step must fully succeed before the next begins.
	Save(ctx context.Context, path string, data []byte) error
	// Remove deletes a (possibly partially written) file, tolerating absence.
	Remove(path string) error
	// Stats walks the save directory and returns aggregate totals.
	Stats() (models.StorageStats, error)
	SaveDir() string
}

// UploadService defines the interface for the upload orchestrator.
type UploadService interface {
	// ProcessUpload drains the multipart reader and saves every part that
	// carries a filename. It returns the saved destination paths in decode
	// order together with the HTTP status the handler should answer with.
	ProcessUpload(ctx context.Context, mr *multipart.Reader) ([]string, int, error)
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}
