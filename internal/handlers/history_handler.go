// File: internal/handlers/history_handler.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/medassist-ai/medassist/internal/services/analysis"
)

type HistoryHandler struct {
	Service *analysis.Service
}

func NewHistoryHandler(service *analysis.Service) *HistoryHandler {
	return &HistoryHandler{Service: service}
}

// GetHistory handles GET /api/history/{sessionId}. Unknown sessions
// return an empty history, not an error.
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if sessionID == "" {
		writeError(w, "A session id is required", http.StatusBadRequest)
		return
	}

	entries, err := h.Service.History(r.Context(), sessionID, h.Service.HistoryLimit())
	if err != nil {
		writeError(w, "Could not retrieve history", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"sessionId": sessionID,
		"count":     len(entries),
		"history":   entries,
	})
}
