package middlewares

import (
	"encoding/json"
	"net/http"
)

// errorBody is the JSON envelope written by middlewares that short-circuit a request
type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteError writes an error envelope with the given status code and message
func WriteError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Status: "error", Message: message})
}
