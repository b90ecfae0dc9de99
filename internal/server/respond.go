package server

import (
	"encoding/json"
	"net/http"

	"github.com/finadvisor/finadvisor/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error kind to an HTTP status and emits the short
// human-readable reason. The cause chain stays in the logs.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, common.HTTPStatus(err), map[string]string{"error": common.MessageOf(err)})
}
