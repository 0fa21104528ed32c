package api

import (
	"encoding/json"
	"net/http"
)

// Client-facing error strings. Storage failures are always reported as
// errDatabase; raw driver text never reaches the client.
const (
	errDatabase = "Database error"
	errInternal = "Internal server error"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, map[string]string{"error": msg}, status)
}
