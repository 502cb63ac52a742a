package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Upload metrics
	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uploadhub_uploads_total",
		Help: "Total number of upload requests that completed successfully",
	})

	UploadErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "uploadhub_upload_errors_total",
		Help: "Upload failures by pipeline stage",
	}, []string{"stage"})

	FilesSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uploadhub_files_saved_total",
		Help: "Total number of files written to the save directory",
	})

	UploadBytesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "uploadhub_upload_bytes_total",
		Help: "Total bytes written to the save directory",
	})
)
