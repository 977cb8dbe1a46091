// File: internal/services/analysis/service.go
package analysis

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"

	"github.com/medassist-ai/medassist/internal/domain"
	"github.com/medassist-ai/medassist/internal/locale"
	"github.com/medassist-ai/medassist/internal/services"
	"github.com/medassist-ai/medassist/internal/services/ai"
	"github.com/medassist-ai/medassist/internal/services/prompt"
	"github.com/medassist-ai/medassist/internal/services/session"
)

// Paths a result can come from, reported to clients as metadata.
const (
	PathAI          = "ai"
	PathTextOnly    = "ai-text-only"
	PathFallback    = "fallback"
	FallbackModelID = "static-fallback"
)

// Outcome bundles an analysis result with its provenance metadata.
type Outcome struct {
	Result    domain.AnalysisResult
	Model     string
	Path      string
	SessionID string
	Language  string
}

// HealthInfo is a rendered health-topic explanation.
type HealthInfo struct {
	Markdown string
	HTML     string
	Model    string
	Language string
}

// Speech is the speech-optimization output.
type Speech struct {
	OptimizedText string
	VoiceLocale   string
	Language      string
}

// Service orchestrates prompt building, the model gateway, response
// normalization, and history recording. A nil provider means no
// credential is configured; every path then short-circuits to the
// static fallback without touching the gateway.
type Service struct {
	provider   ai.CompletionProvider
	builder    *prompt.Builder
	normalizer *Normalizer
	store      session.Store
	logger     services.Logger
	config     *Config
	modelName  string
	markdown   goldmark.Markdown
}

func NewService(provider ai.CompletionProvider, store session.Store, modelName string, config *Config, logger services.Logger) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	if modelName == "" {
		modelName = FallbackModelID
	}

	return &Service{
		provider:   provider,
		builder:    prompt.NewBuilder(),
		normalizer: NewNormalizer(logger),
		store:      store,
		logger:     logger,
		config:     config,
		modelName:  modelName,
		markdown:   goldmark.New(),
	}, nil
}

// HasProvider reports whether a gateway credential is configured.
func (s *Service) HasProvider() bool { return s.provider != nil }

// HistoryLimit is the history-fetch cap exposed to handlers.
func (s *Service) HistoryLimit() int { return s.config.HistoryLimit }

// MaxImageBytes bounds uploads, exposed to handlers.
func (s *Service) MaxImageBytes() int64 { return s.config.MaxImageBytes }

// Analyze runs the full symptom-analysis flow for one request.
func (s *Service) Analyze(ctx context.Context, req domain.AnalysisRequest) (*Outcome, error) {
	symptoms := strings.TrimSpace(req.Symptoms)
	if len(symptoms) < s.config.MinSymptomLength {
		return nil, NewValidationError("symptoms",
			fmt.Sprintf("symptom description must be at least %d characters", s.config.MinSymptomLength))
	}

	lang := locale.Get(req.Language).Code
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	outcome := &Outcome{SessionID: sessionID, Language: lang}

	if s.provider == nil {
		outcome.Result = Fallback(symptoms, lang)
		outcome.Model = FallbackModelID
		outcome.Path = PathFallback
	} else {
		fields := prompt.Fields{
			"symptoms": symptoms,
			"age":      req.Age,
			"gender":   req.Gender,
			"duration": req.Duration,
			"history":  s.sessionContext(ctx, sessionID),
		}
		promptText, err := s.builder.Build(prompt.KindSymptomAnalysis, fields, lang)
		if err != nil {
			return nil, err
		}

		raw, err := s.provider.GetCompletion(ctx, promptText)
		if err != nil {
			s.logger.Warn("completion failed, serving fallback analysis", "error", err.Error())
			outcome.Result = Fallback(symptoms, lang)
			outcome.Model = FallbackModelID
			outcome.Path = PathFallback
		} else {
			outcome.Result = s.normalizer.Normalize(raw, lang)
			outcome.Model = s.modelName
			outcome.Path = PathAI
		}
	}

	s.record(ctx, sessionID, req, lang, outcome.Result)
	return outcome, nil
}

// AnalyzeImage analyzes an uploaded image plus optional symptom text.
// Vision failure degrades to text-only analysis, then to the static
// fallback.
func (s *Service) AnalyzeImage(ctx context.Context, req domain.AnalysisRequest, imageData []byte, mimeType string) (*Outcome, error) {
	if len(imageData) == 0 {
		return nil, NewValidationError("image", "an image file is required")
	}

	symptoms := strings.TrimSpace(req.Symptoms)
	lang := locale.Get(req.Language).Code
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	outcome := &Outcome{SessionID: sessionID, Language: lang}

	if s.provider != nil {
		fields := prompt.Fields{"symptoms": symptoms}
		promptText, err := s.builder.Build(prompt.KindImageAnalysis, fields, lang)
		if err != nil {
			return nil, err
		}

		raw, visionErr := s.provider.GetVisionCompletion(ctx, promptText, imageData, mimeType)
		if visionErr == nil {
			outcome.Result = s.normalizer.Normalize(raw, lang)
			outcome.Model = s.modelName
			outcome.Path = PathAI
			s.record(ctx, sessionID, req, lang, outcome.Result)
			return outcome, nil
		}
		s.logger.Warn("vision completion failed, degrading to text-only analysis", "error", visionErr.Error())

		if len(symptoms) >= s.config.MinSymptomLength {
			textReq := req
			textReq.SessionID = sessionID
			textOutcome, err := s.Analyze(ctx, textReq)
			if err == nil {
				textOutcome.Path = PathTextOnly
				return textOutcome, nil
			}
		}
	}

	outcome.Result = Fallback(symptoms, lang)
	outcome.Model = FallbackModelID
	outcome.Path = PathFallback
	s.record(ctx, sessionID, req, lang, outcome.Result)
	return outcome, nil
}

// CheckDrugs analyzes interactions between the listed medicines.
func (s *Service) CheckDrugs(ctx context.Context, req domain.DrugCheckRequest) (*Outcome, error) {
	medicines := make([]string, 0, len(req.Medicines))
	for _, m := range req.Medicines {
		if trimmed := strings.TrimSpace(m); trimmed != "" {
			medicines = append(medicines, trimmed)
		}
	}
	if len(medicines) == 0 {
		return nil, NewValidationError("medicines", "at least one medicine is required")
	}

	lang := locale.Get(req.Language).Code
	outcome := &Outcome{Language: lang}

	if s.provider == nil {
		outcome.Result = Fallback("", lang)
		outcome.Model = FallbackModelID
		outcome.Path = PathFallback
		return outcome, nil
	}

	fields := prompt.Fields{
		"medicines":  strings.Join(medicines, ", "),
		"conditions": req.Conditions,
		"allergies":  req.Allergies,
	}
	promptText, err := s.builder.Build(prompt.KindDrugInteraction, fields, lang)
	if err != nil {
		return nil, err
	}

	raw, err := s.provider.GetCompletion(ctx, promptText)
	if err != nil {
		s.logger.Warn("drug check completion failed, serving fallback", "error", err.Error())
		outcome.Result = Fallback("", lang)
		outcome.Model = FallbackModelID
		outcome.Path = PathFallback
		return outcome, nil
	}

	outcome.Result = s.normalizer.Normalize(raw, lang)
	outcome.Model = s.modelName
	outcome.Path = PathAI
	return outcome, nil
}

// GetHealthInfo answers a free-text health topic in Markdown plus
// rendered HTML.
func (s *Service) GetHealthInfo(ctx context.Context, topic, langCode string) (*HealthInfo, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, NewValidationError("topic", "a topic is required")
	}

	bundle := locale.Get(langCode)
	info := &HealthInfo{Language: bundle.Code}

	if s.provider == nil {
		info.Markdown = bundle.DegradedNote
		info.Model = FallbackModelID
	} else {
		promptText, err := s.builder.Build(prompt.KindHealthInfo, prompt.Fields{"topic": topic}, bundle.Code)
		if err != nil {
			return nil, err
		}
		raw, err := s.provider.GetCompletion(ctx, promptText)
		if err != nil {
			s.logger.Warn("health info completion failed, serving degraded note", "error", err.Error())
			info.Markdown = bundle.DegradedNote
			info.Model = FallbackModelID
		} else {
			info.Markdown = raw
			info.Model = s.modelName
		}
	}

	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(info.Markdown), &buf); err == nil {
		info.HTML = buf.String()
	}
	return info, nil
}

// OptimizeSpeech rewrites text for text-to-speech playback. Any
// internal failure echoes the input; this operation never errors.
func (s *Service) OptimizeSpeech(ctx context.Context, text, langCode string) *Speech {
	bundle := locale.Get(langCode)
	out := &Speech{
		OptimizedText: text,
		VoiceLocale:   bundle.VoiceLocale,
		Language:      bundle.Code,
	}

	if s.provider == nil || strings.TrimSpace(text) == "" {
		return out
	}

	promptText, err := s.builder.Build(prompt.KindSpeechOptimization, prompt.Fields{"text": text}, bundle.Code)
	if err != nil {
		return out
	}

	raw, err := s.provider.GetCompletion(ctx, promptText)
	if err != nil || strings.TrimSpace(raw) == "" {
		s.logger.Warn("speech optimization failed, echoing input")
		return out
	}

	out.OptimizedText = strings.TrimSpace(raw)
	return out
}

// History returns the last n interactions for a session.
func (s *Service) History(ctx context.Context, sessionID string, n int) ([]domain.HistoryEntry, error) {
	if n <= 0 || n > s.config.HistoryLimit {
		n = s.config.HistoryLimit
	}
	return s.store.Recent(ctx, sessionID, n)
}

// record appends an interaction to the session store. Store failures
// are logged, never surfaced; history is best-effort bookkeeping.
func (s *Service) record(ctx context.Context, sessionID string, req domain.AnalysisRequest, lang string, result domain.AnalysisResult) {
	entry := domain.HistoryEntry{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Symptoms:  strings.TrimSpace(req.Symptoms),
		Age:       req.Age,
		Gender:    req.Gender,
		Duration:  req.Duration,
		Language:  lang,
		Result:    result,
		CreatedAt: time.Now(),
	}
	if err := s.store.Append(ctx, sessionID, entry); err != nil {
		s.logger.Error("failed to append history entry", "session_id", sessionID, "error", err.Error())
	}
}

// sessionContext summarizes the most recent session entries into the
// conversational-context line of the next prompt.
func (s *Service) sessionContext(ctx context.Context, sessionID string) string {
	entries, err := s.store.Recent(ctx, sessionID, s.config.ContextEntries)
	if err != nil || len(entries) == 0 {
		return ""
	}

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("%q (severity %s)", entry.Symptoms, entry.Result.Severity))
	}
	return strings.Join(parts, "; ")
}
