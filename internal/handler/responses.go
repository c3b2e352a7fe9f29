package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// User-facing error messages
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgSlotNotFound       = "No crop data stored for that save slot"
	ErrMsgSlotRequired       = "Save slot is required"
	ErrMsgCorruptSaveData    = "Stored crop data could not be decoded"
	ErrMsgListingUnsupported = "The configured store cannot list save slots"
	ErrMsgInvalidLimit       = "limit must be a positive integer"
	ErrMsgInvalidSince       = "since must be an RFC 3339 timestamp"
)

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
