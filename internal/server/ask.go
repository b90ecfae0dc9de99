package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/finadvisor/finadvisor/internal/common"
)

// handleAsk serves POST /ask: one free-form financial planning query, one
// plain-text reply. No conversation state is kept.
func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserQuery string `json:"user_query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, common.NewError(common.KindValidation, "invalid JSON body", err))
		return
	}
	if strings.TrimSpace(body.UserQuery) == "" {
		writeError(w, common.Errorf(common.KindValidation, "no query provided"))
		return
	}

	reply, err := s.adviser.Advise(r.Context(), body.UserQuery)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": reply})
}
