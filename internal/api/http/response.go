package httpapi

import (
	"encoding/json"
	"net/http"
	"time"
)

// envelope is the uniform response body: success responses carry data,
// failures carry an error string. Timestamps are ISO-8601.
type envelope struct {
	Success   bool        `json:"success"`
	Status    int         `json:"status"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Path      string      `json:"path,omitempty"`
	Method    string      `json:"method,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, envelope{
		Success:   true,
		Status:    status,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{
		Success:   false,
		Status:    status,
		Error:     message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
