// File: internal/handlers/analysis_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/medassist-ai/medassist/internal/domain"
	"github.com/medassist-ai/medassist/internal/locale"
	"github.com/medassist-ai/medassist/internal/services"
	"github.com/medassist-ai/medassist/internal/services/analysis"
)

type AnalysisHandler struct {
	Service *analysis.Service
	Logger  services.Logger
}

func NewAnalysisHandler(service *analysis.Service, logger services.Logger) *AnalysisHandler {
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &AnalysisHandler{Service: service, Logger: logger}
}

// Analyze handles POST /api/analyze.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.Service.Analyze(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, req.Symptoms, req.Language)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"sessionId": outcome.SessionID,
		"analysis":  outcome.Result,
		"model":     outcome.Model,
		"path":      outcome.Path,
		"language":  outcome.Language,
	})
}

// AnalyzeImage handles POST /api/analyze-image (multipart).
func (h *AnalysisHandler) AnalyzeImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Service.MaxImageBytes())
	if err := r.ParseMultipartForm(h.Service.MaxImageBytes()); err != nil {
		writeError(w, "Invalid or oversized multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, "An image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		writeError(w, "Could not read image file", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(imageData)
	}

	req := domain.AnalysisRequest{
		Symptoms:  r.FormValue("symptoms"),
		Language:  r.FormValue("language"),
		SessionID: r.FormValue("sessionId"),
	}

	outcome, err := h.Service.AnalyzeImage(r.Context(), req, imageData, mimeType)
	if err != nil {
		h.respondServiceError(w, err, req.Symptoms, req.Language)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"sessionId": outcome.SessionID,
		"analysis":  outcome.Result,
		"model":     outcome.Model,
		"path":      outcome.Path,
		"language":  outcome.Language,
	})
}

// CheckDrugs handles POST /api/drugs.
func (h *AnalysisHandler) CheckDrugs(w http.ResponseWriter, r *http.Request) {
	var req domain.DrugCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.Service.CheckDrugs(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err, "", req.Language)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"analysis": outcome.Result,
		"model":    outcome.Model,
		"path":     outcome.Path,
		"language": outcome.Language,
	})
}

// GetHealthInfo handles POST /api/health-info.
func (h *AnalysisHandler) GetHealthInfo(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic    string `json:"topic"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	info, err := h.Service.GetHealthInfo(r.Context(), req.Topic, req.Language)
	if err != nil {
		h.respondServiceError(w, err, "", req.Language)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"info":     info.Markdown,
		"infoHTML": info.HTML,
		"model":    info.Model,
		"language": info.Language,
	})
}

// respondServiceError maps validation errors to 400; anything else
// becomes a generic fallback result with a success envelope, never an
// error status.
func (h *AnalysisHandler) respondServiceError(w http.ResponseWriter, err error, symptoms, lang string) {
	var validationErr *analysis.ValidationError
	if errors.As(err, &validationErr) {
		writeError(w, validationErr.Message, http.StatusBadRequest)
		return
	}

	h.Logger.Error("unexpected orchestration failure, serving generic fallback", "error", err.Error())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"analysis": analysis.Fallback(symptoms, lang),
		"model":    analysis.FallbackModelID,
		"path":     analysis.PathFallback,
		"language": locale.Get(lang).Code,
	})
}
