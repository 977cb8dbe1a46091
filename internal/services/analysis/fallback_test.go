package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medassist-ai/medassist/internal/locale"
)

func TestFallbackChestPain(t *testing.T) {
	result := Fallback("severe chest pain radiating to my left arm", "en")

	assert.Equal(t, "Emergency", result.Severity)
	assert.True(t, result.RequiresImmediateCare)
	assert.Contains(t, result.WhenToSeeDoctor, "cardiac")
	assert.NotEmpty(t, result.Note)
}

func TestFallbackHeadacheVision(t *testing.T) {
	result := Fallback("bad headache with blurry vision", "en")

	assert.Equal(t, "Medium", result.Severity)
	assert.Contains(t, result.PossibleConditions[0], "Migraine")
}

func TestFallbackFeverCough(t *testing.T) {
	result := Fallback("I have a fever and a dry cough", "en")

	assert.Equal(t, "Low", result.Severity)
	assert.Contains(t, result.PossibleConditions, "Viral infection")
}

func TestFallbackGeneric(t *testing.T) {
	result := Fallback("my elbow itches", "en")

	assert.Equal(t, "Medium", result.Severity)
	assert.False(t, result.RequiresImmediateCare)
}

func TestFallbackFirstRuleWins(t *testing.T) {
	// Chest pain outranks fever+cough when both match.
	result := Fallback("chest pain with fever and cough", "en")

	assert.Equal(t, "Emergency", result.Severity)
}

func TestFallbackLocalized(t *testing.T) {
	for _, lang := range locale.Supported() {
		bundle := locale.Get(lang)
		result := Fallback("severe chest pain", lang)

		assert.Equal(t, bundle.Severities.Emergency, result.Severity, "language %s", lang)
		assert.True(t, result.RequiresImmediateCare, "language %s", lang)
		assert.Equal(t, bundle.DegradedNote, result.Note, "language %s", lang)
	}
}

func TestFallbackUnknownLanguageUsesEnglish(t *testing.T) {
	result := Fallback("fever and cough", "xx")

	assert.Equal(t, "Low", result.Severity)
	assert.Contains(t, result.PossibleConditions, "Viral infection")
}
