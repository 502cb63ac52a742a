package handlers

import (
	"net/http"

	"uploadhub/internal/logging"
	"uploadhub/internal/models"
)

// UploadFiles handles POST /upload. The body must be multipart/form-data;
// every part carrying a filename is saved to the configured directory.
// Success answers 200 with the ordered list of saved paths. A malformed
// stream or a request without file parts answers 400, any save-side failure
// answers 500; both error responses have empty bodies.
func (h *Handlers) UploadFiles(w http.ResponseWriter, r *http.Request) {
	mr, err := r.MultipartReader()
	if err != nil {
		// Wrong or missing content type, no boundary, body already consumed.
		logging.Log.Warnf("Rejected upload: %v", err)
		respondWithStatus(w, http.StatusBadRequest)
		return
	}

	saved, status, err := h.Upload.ProcessUpload(r.Context(), mr)
	if err != nil {
		if status >= http.StatusInternalServerError {
			logging.Log.Errorf("Upload failed: %v", err)
		} else {
			logging.Log.Warnf("Rejected upload: %v", err)
		}
		respondWithStatus(w, status)
		return
	}

	respondWithJSON(w, status, models.UploadResponse{SavedFiles: saved})
}
