package api

import (
	"log"
	"net/http"

	"github.com/langcode/langcode/internal/langtag"
)

// handleLookup resolves the q query parameter.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}
	simple := r.URL.Query().Get("simple") == "true"

	res, err := langtag.Resolve(q)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if s.recording {
		if _, err := s.historyMgr.Record(r.Context(), res, simple); err != nil {
			log.Printf("failed to record lookup: %v", err)
		}
	}

	if simple {
		writeJSON(w, http.StatusOK, map[string]string{
			"tag":    res.Tag,
			"result": res.SimpleLine(),
		})
		return
	}
	writeJSON(w, http.StatusOK, res)
}
