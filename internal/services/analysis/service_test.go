package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medassist-ai/medassist/internal/domain"
	"github.com/medassist-ai/medassist/internal/services"
	"github.com/medassist-ai/medassist/internal/services/ai"
	"github.com/medassist-ai/medassist/internal/services/session"
)

// stubProvider scripts gateway replies and counts calls.
type stubProvider struct {
	completion  string
	completeErr error
	vision      string
	visionErr   error

	completionCalls int
	visionCalls     int
}

func (s *stubProvider) GetCompletion(ctx context.Context, prompt string) (string, error) {
	s.completionCalls++
	return s.completion, s.completeErr
}

func (s *stubProvider) GetVisionCompletion(ctx context.Context, prompt string, imageData []byte, mimeType string) (string, error) {
	s.visionCalls++
	return s.vision, s.visionErr
}

func newTestService(t *testing.T, provider *stubProvider) *Service {
	t.Helper()
	var p ai.CompletionProvider
	if provider != nil {
		p = provider
	}
	svc, err := NewService(p, session.NewMemoryStore(0), "test-model", DefaultConfig(), &services.NoOpLogger{})
	require.NoError(t, err)
	return svc
}

func TestAnalyzeTooShortSymptomsSkipsGateway(t *testing.T) {
	provider := &stubProvider{completion: "{}"}
	svc := newTestService(t, provider)

	_, err := svc.Analyze(context.Background(), domain.AnalysisRequest{Symptoms: "hi"})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "symptoms", validationErr.Field)
	assert.Zero(t, provider.completionCalls)
}

func TestAnalyzeNoProviderServesFallback(t *testing.T) {
	svc := newTestService(t, nil)

	outcome, err := svc.Analyze(context.Background(), domain.AnalysisRequest{
		Symptoms: "severe chest pain radiating to the arm",
	})
	require.NoError(t, err)

	assert.Equal(t, PathFallback, outcome.Path)
	assert.Equal(t, FallbackModelID, outcome.Model)
	assert.Equal(t, "Emergency", outcome.Result.Severity)
	assert.True(t, outcome.Result.RequiresImmediateCare)
	assert.NotEmpty(t, outcome.SessionID)
}

func TestAnalyzeNormalizesModelOutput(t *testing.T) {
	provider := &stubProvider{
		completion: `{"possibleConditions": ["Sinusitis"], "severity": "Low", "recommendations": ["Rest"], "requiresImmediateCare": false, "whenToSeeDoctor": "After a week.", "selfCareTips": ["Steam inhalation"]}`,
	}
	svc := newTestService(t, provider)

	outcome, err := svc.Analyze(context.Background(), domain.AnalysisRequest{
		Symptoms: "stuffy nose and facial pressure",
		Language: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, PathAI, outcome.Path)
	assert.Equal(t, "test-model", outcome.Model)
	assert.Equal(t, []string{"Sinusitis"}, outcome.Result.PossibleConditions)
	assert.Equal(t, 1, provider.completionCalls)
}

func TestAnalyzeGatewayErrorFallsBack(t *testing.T) {
	provider := &stubProvider{completeErr: errors.New("network down")}
	svc := newTestService(t, provider)

	outcome, err := svc.Analyze(context.Background(), domain.AnalysisRequest{
		Symptoms: "fever and cough for two days",
	})
	require.NoError(t, err)

	assert.Equal(t, PathFallback, outcome.Path)
	assert.Equal(t, "Low", outcome.Result.Severity)
	assert.NotEmpty(t, outcome.Result.Note)
}

func TestAnalyzeAppendsHistoryMostRecentFirst(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	first, err := svc.Analyze(ctx, domain.AnalysisRequest{Symptoms: "mild headache"})
	require.NoError(t, err)

	_, err = svc.Analyze(ctx, domain.AnalysisRequest{
		Symptoms:  "fever and cough",
		SessionID: first.SessionID,
	})
	require.NoError(t, err)

	entries, err := svc.History(ctx, first.SessionID, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "fever and cough", entries[0].Symptoms)
	assert.Equal(t, "mild headache", entries[1].Symptoms)
}

func TestAnalyzeImageDegradesToTextOnly(t *testing.T) {
	provider := &stubProvider{
		visionErr:  errors.New("vision model unavailable"),
		completion: `{"possibleConditions": ["Contact dermatitis"], "severity": "Low"}`,
	}
	svc := newTestService(t, provider)

	outcome, err := svc.AnalyzeImage(context.Background(), domain.AnalysisRequest{
		Symptoms: "itchy red rash on forearm",
	}, []byte("fake-image-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, PathTextOnly, outcome.Path)
	assert.Equal(t, []string{"Contact dermatitis"}, outcome.Result.PossibleConditions)
	assert.Equal(t, 1, provider.visionCalls)
	assert.Equal(t, 1, provider.completionCalls)
}

func TestAnalyzeImageDoubleFailureServesFallback(t *testing.T) {
	provider := &stubProvider{
		visionErr:   errors.New("vision model unavailable"),
		completeErr: errors.New("network down"),
	}
	svc := newTestService(t, provider)

	outcome, err := svc.AnalyzeImage(context.Background(), domain.AnalysisRequest{
		Symptoms: "itchy red rash on forearm",
	}, []byte("fake-image-bytes"), "image/png")
	require.NoError(t, err)

	assert.Equal(t, PathFallback, outcome.Path)
	assert.NotEmpty(t, outcome.Result.Note)
}

func TestAnalyzeImageRequiresImage(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.AnalyzeImage(context.Background(), domain.AnalysisRequest{Symptoms: "rash"}, nil, "")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCheckDrugsRequiresMedicines(t *testing.T) {
	provider := &stubProvider{completion: "{}"}
	svc := newTestService(t, provider)

	_, err := svc.CheckDrugs(context.Background(), domain.DrugCheckRequest{Medicines: []string{"  "}})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Zero(t, provider.completionCalls)
}

func TestOptimizeSpeechEchoesOnFailure(t *testing.T) {
	provider := &stubProvider{completeErr: errors.New("network down")}
	svc := newTestService(t, provider)

	speech := svc.OptimizeSpeech(context.Background(), "Take 2 tablets b.i.d.", "es")

	assert.Equal(t, "Take 2 tablets b.i.d.", speech.OptimizedText)
	assert.Equal(t, "es-ES", speech.VoiceLocale)
}

func TestGetHealthInfoRendersHTML(t *testing.T) {
	provider := &stubProvider{completion: "# Hydration\n\nDrink **water** regularly."}
	svc := newTestService(t, provider)

	info, err := svc.GetHealthInfo(context.Background(), "hydration", "en")
	require.NoError(t, err)

	assert.Contains(t, info.Markdown, "Hydration")
	assert.Contains(t, info.HTML, "<h1")
	assert.Contains(t, info.HTML, "<strong>water</strong>")
}

func TestGetHealthInfoNoProviderServesDegradedNote(t *testing.T) {
	svc := newTestService(t, nil)

	info, err := svc.GetHealthInfo(context.Background(), "hydration", "en")
	require.NoError(t, err)

	assert.Equal(t, FallbackModelID, info.Model)
	assert.NotEmpty(t, info.Markdown)
}
