package models

import "time"

// Info describes the running service for the /api/info endpoint.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
	SaveDir     string    `json:"save_dir"`
	FilesStored int64     `json:"files_stored"`
	BytesStored int64     `json:"bytes_stored"`
}

// StorageStats holds aggregate numbers about the save directory.
type StorageStats struct {
	Files int64
	Bytes int64
}

// UploadResponse is the success body of POST /upload. SavedFiles lists the
// destination paths in the order the parts appeared in the request.
type UploadResponse struct {
	SavedFiles []string `json:"saved_files"`
}
