// File: internal/handlers/health_handler.go
package handlers

import (
	"net/http"

	"github.com/medassist-ai/medassist/internal/locale"
	"github.com/medassist-ai/medassist/internal/services/analysis"
)

type HealthHandler struct {
	Service        *analysis.Service
	HistoryBackend string
	Model          string
}

func NewHealthHandler(service *analysis.Service, historyBackend, model string) *HealthHandler {
	return &HealthHandler{Service: service, HistoryBackend: historyBackend, Model: model}
}

// Health handles GET /api/health: service and capability metadata, no
// side effects.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	mode := "ai"
	if !h.Service.HasProvider() {
		mode = "fallback-only"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"service": "medassist",
		"capabilities": map[string]interface{}{
			"mode":           mode,
			"model":          h.Model,
			"languages":      locale.Supported(),
			"historyBackend": h.HistoryBackend,
			"imageAnalysis":  h.Service.HasProvider(),
		},
	})
}
