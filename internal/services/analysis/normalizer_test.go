package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medassist-ai/medassist/internal/locale"
	"github.com/medassist-ai/medassist/internal/services"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(&services.NoOpLogger{})
}

func TestNormalizeValidJSON(t *testing.T) {
	raw := `Here is my assessment:
` + "```json" + `
{"possibleConditions": ["Tension headache"], "severity": "Low", "recommendations": ["Rest in a quiet room"], "requiresImmediateCare": false, "whenToSeeDoctor": "If it lasts more than a week.", "selfCareTips": ["Drink water"]}
` + "```"

	result := newTestNormalizer().Normalize(raw, "en")

	assert.Equal(t, []string{"Tension headache"}, result.PossibleConditions)
	assert.Equal(t, "Low", result.Severity)
	assert.Equal(t, []string{"Rest in a quiet room"}, result.Recommendations)
	assert.False(t, result.RequiresImmediateCare)
	assert.Equal(t, "If it lasts more than a week.", result.WhenToSeeDoctor)
}

func TestNormalizeRepairsSloppyJSON(t *testing.T) {
	raw := `{"severity": "High", possibleConditions: ["Flu", "Cold",], "recommendations": ["See a doctor"]}`

	result := newTestNormalizer().Normalize(raw, "en")

	assert.Equal(t, "High", result.Severity)
	assert.Equal(t, []string{"Flu", "Cold"}, result.PossibleConditions)
	assert.Equal(t, []string{"See a doctor"}, result.Recommendations)
}

func TestNormalizeClampsUnknownSeverity(t *testing.T) {
	raw := `{"severity": "Catastrophic", "possibleConditions": ["X"]}`

	result := newTestNormalizer().Normalize(raw, "en")

	assert.Equal(t, "Medium", result.Severity)
}

func TestNormalizeClampsForeignSeverityTerm(t *testing.T) {
	// A Spanish severity term is out-of-enum for an English request.
	raw := `{"severity": "Emergencia"}`

	result := newTestNormalizer().Normalize(raw, "en")

	assert.Equal(t, "Medium", result.Severity)
}

func TestNormalizeCoercesNonListFields(t *testing.T) {
	raw := `{"possibleConditions": "just a string", "recommendations": 42, "severity": "Low"}`

	result := newTestNormalizer().Normalize(raw, "en")

	bundle := locale.Get("en")
	assert.Equal(t, bundle.Defaults.PossibleConditions, result.PossibleConditions)
	assert.Equal(t, bundle.Defaults.Recommendations, result.Recommendations)
	assert.Equal(t, "Low", result.Severity)
}

func TestNormalizeHeuristicSentences(t *testing.T) {
	raw := `This could be a mild viral infection. You should rest and stay home. Seek medical attention if the fever rises.`

	result := newTestNormalizer().Normalize(raw, "en")

	assert.Contains(t, result.PossibleConditions[0], "could be")
	assert.Contains(t, result.Recommendations[0], "should")
	assert.Contains(t, result.WhenToSeeDoctor, "Seek medical")
}

func TestNormalizeHeuristicSeverityOrdering(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"emergency keyword", "Call 911 right away, this is an emergency.", "Emergency"},
		{"urgent keyword", "This needs urgent attention.", "Emergency"},
		{"serious keyword", "This looks serious but stable.", "High"},
		// "high" wins over "moderate" because ranks are checked in order.
		{"high before medium", "There is a high chance of a moderate infection.", "High"},
		{"high as substring", "This is a highly unlikely complication.", "High"},
		{"moderate keyword", "A moderate reaction is expected.", "Medium"},
		{"no keyword", "Nothing remarkable found here.", "Low"},
	}

	n := newTestNormalizer()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := n.Normalize(tc.raw, "en")
			assert.Equal(t, tc.want, result.Severity)
		})
	}
}

func TestNormalizeEmergencySignsSetImmediateCare(t *testing.T) {
	raw := "The patient reports difficulty breathing after exercise."

	result := newTestNormalizer().Normalize(raw, "en")

	assert.True(t, result.RequiresImmediateCare)
}

func TestNormalizeTotality(t *testing.T) {
	inputs := []string{
		"",
		"complete nonsense with no structure at all",
		"{broken json",
		"{{{}}}",
		"```json\nnot even close\n```",
		`{"severity": null, "recommendations": null}`,
	}

	n := newTestNormalizer()
	for _, lang := range locale.Supported() {
		bundle := locale.Get(lang)
		for _, raw := range inputs {
			result := n.Normalize(raw, lang)

			require.True(t, bundle.Severities.Contains(result.Severity),
				"severity %q not in %s enum for input %q", result.Severity, lang, raw)
			require.NotEmpty(t, result.PossibleConditions)
			require.NotEmpty(t, result.Recommendations)
			require.NotEmpty(t, result.SelfCareTips)
			require.NotEmpty(t, result.WhenToSeeDoctor)
		}
	}
}

func TestRepairJSONCanCorruptApostrophes(t *testing.T) {
	// The quote coercion is blind; apostrophes inside values break the
	// repaired document. The normalizer must still degrade cleanly.
	raw := `{"whenToSeeDoctor": "if it doesn't improve"}`
	repaired := repairJSON(raw)
	assert.NotEqual(t, raw, repaired)

	result := newTestNormalizer().Normalize(`{'note': 'it doesn't improve'`, "en")
	assert.True(t, locale.Get("en").Severities.Contains(result.Severity))
}
