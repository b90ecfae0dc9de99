package server

import (
	"encoding/json"
	"net/http"

	"github.com/finadvisor/finadvisor/internal/common"
	"github.com/finadvisor/finadvisor/internal/recommend"
)

// handleRecommend serves POST /get_investment_options.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var wire recommend.WireRequest
	if err := json.NewDecoder(r.Body).Decode(&wire); err != nil {
		writeError(w, common.NewError(common.KindValidation, "invalid JSON body", err))
		return
	}

	req, err := recommend.ParseRequest(wire)
	if err != nil {
		writeError(w, err)
		return
	}

	names := s.engine.Recommend(req)
	s.logger.Debug("recommend.ok", "age", req.Age, "horizon", string(req.Horizon), "matches", len(names))
	writeJSON(w, http.StatusOK, map[string][]string{"recommended_investments": names})
}
