// File: internal/handlers/voice_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medassist-ai/medassist/internal/locale"
	"github.com/medassist-ai/medassist/internal/services/analysis"
)

type VoiceHandler struct {
	Service *analysis.Service
}

func NewVoiceHandler(service *analysis.Service) *VoiceHandler {
	return &VoiceHandler{Service: service}
}

// OptimizeVoice handles POST /api/voice. The operation never fails the
// request; internal errors echo the input text.
func (h *VoiceHandler) OptimizeVoice(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	speech := h.Service.OptimizeSpeech(r.Context(), req.Text, req.Language)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"optimizedText": speech.OptimizedText,
		"voiceLanguage": speech.VoiceLocale,
		"language":      speech.Language,
	})
}

// TestVoice handles GET /api/test-voice, a static capability probe.
func (h *VoiceHandler) TestVoice(w http.ResponseWriter, r *http.Request) {
	bundle := locale.Get(r.URL.Query().Get("language"))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":       true,
		"language":      bundle.Code,
		"voiceLanguage": bundle.VoiceLocale,
		"available":     true,
		"sampleText":    bundle.DegradedNote,
	})
}
