package api

import (
	"net/http"
	"strconv"

	"github.com/langcode/langcode/pkg/types"
)

// handleListHistory returns recorded lookups, most recent first.
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	entries, err := s.historyMgr.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []*types.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// handleGetHistory returns a single history entry by ID or prefix.
func (s *Server) handleGetHistory(w http.ResponseWriter, r *http.Request) {
	entry, err := s.historyMgr.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entry == nil {
		writeError(w, http.StatusNotFound, "history entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// handleDeleteHistory deletes a single history entry.
func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.historyMgr.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleClearHistory deletes all history entries.
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	n, err := s.historyMgr.Clear(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"removed": n})
}
