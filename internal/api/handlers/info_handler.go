package handlers

import (
	"net/http"
)

// GetInfo handles GET /api/info and reports service metadata together with
// save-directory totals.
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Info.GetInfo())
}
