package api

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes data as the response body with the given status
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ErrorJSON writes {"error": message} with the given status. Provider and
// validation failures keep status 200; only unhandled faults use 500.
func ErrorJSON(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Error: message})
}
