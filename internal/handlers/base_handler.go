package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Envelope status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// MessageServerError is returned for every unexpected failure; details are only logged
const MessageServerError = "Terjadi kesalahan pada server"

// Response is the JSON envelope of every API response
type Response struct {
	Status  string              `json:"status"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Data    any                 `json:"data,omitempty"`
}

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondSuccess sends a success envelope; message and data may be empty
func (h *BaseHandler) RespondSuccess(w http.ResponseWriter, message string, data any) {
	h.RespondJSON(w, http.StatusOK, Response{Status: StatusSuccess, Message: message, Data: data})
}

// RespondError sends an error envelope
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, Response{Status: StatusError, Message: message})
}

// RespondFieldErrors sends an error envelope with per-field messages
func (h *BaseHandler) RespondFieldErrors(w http.ResponseWriter, status int, message string, fields map[string][]string) {
	h.RespondJSON(w, status, Response{Status: StatusError, Message: message, Errors: fields})
}

// RespondServerError logs err and sends the generic 500 envelope
func (h *BaseHandler) RespondServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.Logger.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	h.RespondError(w, http.StatusInternalServerError, MessageServerError)
}
