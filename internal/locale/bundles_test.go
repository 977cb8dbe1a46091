package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryLanguageHasCompleteBundle(t *testing.T) {
	for _, code := range Supported() {
		bundle := Get(code)
		require.NotNil(t, bundle, "language %s", code)
		assert.Equal(t, code, bundle.Code)

		terms := bundle.Severities.Terms()
		require.Len(t, terms, 4)
		seen := map[string]bool{}
		for _, term := range terms {
			require.NotEmpty(t, term, "language %s", code)
			assert.False(t, seen[term], "duplicate severity term %q in %s", term, code)
			seen[term] = true
		}

		// Defaults must already be schema-valid.
		assert.True(t, bundle.Severities.Contains(bundle.Defaults.Severity))
		assert.Equal(t, bundle.Severities.Medium, bundle.Defaults.Severity)
		assert.NotEmpty(t, bundle.Defaults.PossibleConditions)
		assert.NotEmpty(t, bundle.Defaults.Recommendations)
		assert.NotEmpty(t, bundle.Defaults.SelfCareTips)
		assert.NotEmpty(t, bundle.DegradedNote)
		assert.NotEmpty(t, bundle.VoiceLocale)
		assert.NotEmpty(t, bundle.EmergencySigns)
	}
}

func TestEveryBundleHasAllFallbackRules(t *testing.T) {
	rules := []string{RuleChestPain, RuleHeadacheVision, RuleFeverCough, RuleGeneric}

	for _, code := range Supported() {
		bundle := Get(code)
		for _, rule := range rules {
			result, ok := bundle.Fallbacks[rule]
			require.True(t, ok, "language %s missing rule %s", code, rule)
			assert.True(t, bundle.Severities.Contains(result.Severity),
				"language %s rule %s has out-of-enum severity %q", code, rule, result.Severity)
		}

		assert.Equal(t, bundle.Severities.Emergency, bundle.Fallbacks[RuleChestPain].Severity)
		assert.Equal(t, bundle.Severities.Low, bundle.Fallbacks[RuleFeverCough].Severity)
	}
}

func TestGetUnknownCodeFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "en", Get("zz").Code)
	assert.Equal(t, "en", Get("").Code)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("hi"))
	assert.False(t, IsSupported("de"))
}
