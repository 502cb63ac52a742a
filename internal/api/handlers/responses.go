package handlers

import (
	"encoding/json"
	"net/http"
)

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithStatus sends a bare status code. The upload contract keeps
// error bodies empty so no failure detail leaks to the client.
func respondWithStatus(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}
