package utils

import (
	"encoding/json"
	"net/http"
)

// ResponseJSON writes payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusOK, payload)
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusBadRequest, payload)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusNotFound, payload)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, payload any) {
	ResponseJSON(w, http.StatusInternalServerError, payload)
}
