// File: internal/services/analysis/fallback.go
package analysis

import (
	"strings"

	"github.com/medassist-ai/medassist/internal/domain"
	"github.com/medassist-ai/medassist/internal/locale"
)

// fallbackRule matches literal substrings of the symptom text against
// a pre-localized result bundle. First matching rule wins.
type fallbackRule struct {
	name     string
	contains []string
}

// The rule table is deliberately literal keyword matching, not
// diagnosis. Wording lives in the locale bundles.
var fallbackRules = []fallbackRule{
	{name: locale.RuleChestPain, contains: []string{"chest", "pain"}},
	{name: locale.RuleHeadacheVision, contains: []string{"headache", "vision"}},
	{name: locale.RuleFeverCough, contains: []string{"fever", "cough"}},
}

// chestQualifiers escalate chest pain to immediate care.
var chestQualifiers = []string{"severe", "radiating", "crushing", "pressure"}

// Fallback synthesizes a canned result for the given symptom text when
// the external model is unavailable or unusable. The result always
// carries the language's degraded-mode note.
func Fallback(symptoms, lang string) domain.AnalysisResult {
	bundle := locale.Get(lang)
	lower := strings.ToLower(symptoms)

	name := locale.RuleGeneric
	for _, rule := range fallbackRules {
		if containsAll(lower, rule.contains) {
			name = rule.name
			break
		}
	}

	result, ok := bundle.Fallbacks[name]
	if !ok {
		result = bundle.Defaults
	}

	if name == locale.RuleChestPain && containsAny(lower, chestQualifiers) {
		result.RequiresImmediateCare = true
	}

	result.Note = bundle.DegradedNote
	return result
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
