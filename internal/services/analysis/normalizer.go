// File: internal/services/analysis/normalizer.go
package analysis

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/medassist-ai/medassist/internal/domain"
	"github.com/medassist-ai/medassist/internal/locale"
	"github.com/medassist-ai/medassist/internal/services"
)

// Normalizer turns raw model output into a schema-valid AnalysisResult.
// It degrades through strict JSON extraction, heuristic keyword
// extraction, and a final validation pass; it never returns an error.
type Normalizer struct {
	logger services.Logger
}

func NewNormalizer(logger services.Logger) *Normalizer {
	if logger == nil {
		logger = &services.NoOpLogger{}
	}
	return &Normalizer{logger: logger}
}

// Normalize produces a complete AnalysisResult for the given language
// from arbitrary model output.
func (n *Normalizer) Normalize(raw, lang string) domain.AnalysisResult {
	bundle := locale.Get(lang)

	if candidate, ok := extractJSON(raw); ok {
		return n.validate(candidate, bundle)
	}

	n.logger.Warn("no parseable JSON in model output, using heuristic extraction",
		"output_length", len(raw))
	return n.validate(n.heuristicExtract(raw, bundle), bundle)
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*")

// extractJSON locates the outermost {...} span of the raw text and
// attempts a strict parse, with one repair pass on failure.
func extractJSON(raw string) (map[string]interface{}, bool) {
	cleaned := codeFenceRe.ReplaceAllString(raw, "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	span := cleaned[start : end+1]

	var candidate map[string]interface{}
	if err := json.Unmarshal([]byte(span), &candidate); err == nil {
		return candidate, true
	}

	repaired := repairJSON(span)
	if err := json.Unmarshal([]byte(repaired), &candidate); err == nil {
		return candidate, true
	}

	return nil, false
}

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)([a-zA-Z_][a-zA-Z0-9_]*)\s*:`)
)

// repairJSON applies blind text substitutions for the most common
// model output defects. The substitutions are heuristic and can
// corrupt string values containing apostrophes; callers must treat the
// result as a best-effort second parse attempt only.
func repairJSON(s string) string {
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = strings.ReplaceAll(s, "'", `"`)
	return s
}

// fieldKeywords associates each sentence-extracted field with the
// keyword set that selects its sentences.
var fieldKeywords = map[string][]string{
	"possibleConditions": {"may be", "could be", "likely", "possible", "suggests"},
	"recommendations":    {"immediately", "right now", "should", "recommend", "advise"},
	"selfCareTips":       {"rest", "drink", "hydrate", "avoid", "apply", "at home"},
	"whenToSeeDoctor":    {"see a doctor", "seek medical", "medical attention", "consult"},
}

// severityKeywords is checked in order; the first matching rank wins.
// The overlap-prone ordering ("high" before "medium") is intentional
// behavior parity with the modeled heuristic.
var severityKeywords = []struct {
	rank     int
	keywords []string
}{
	{3, []string{"emergency", "911", "urgent"}},
	{2, []string{"high", "serious"}},
	{1, []string{"medium", "moderate"}},
}

var sentenceSplitRe = regexp.MustCompile(`[.!?\n]+`)

// heuristicExtract builds a candidate result from free text by keyword
// matching per field, independent severity keyword matching, and
// literal emergency-sign phrase matching.
func (n *Normalizer) heuristicExtract(raw string, bundle *locale.Bundle) map[string]interface{} {
	lower := strings.ToLower(raw)
	sentences := sentenceSplitRe.Split(raw, -1)

	candidate := make(map[string]interface{})

	for field, keywords := range fieldKeywords {
		var picked []string
		for _, sentence := range sentences {
			trimmed := strings.TrimSpace(sentence)
			if trimmed == "" {
				continue
			}
			ls := strings.ToLower(trimmed)
			for _, kw := range keywords {
				if strings.Contains(ls, kw) {
					picked = append(picked, trimmed)
					break
				}
			}
			if len(picked) == 3 {
				break
			}
		}
		if len(picked) == 0 {
			continue
		}
		if field == "whenToSeeDoctor" {
			candidate[field] = picked[0]
		} else {
			candidate[field] = toInterfaceSlice(picked)
		}
	}

	rank := 0
	for _, sk := range severityKeywords {
		matched := false
		for _, kw := range sk.keywords {
			if strings.Contains(lower, kw) {
				rank = sk.rank
				matched = true
				break
			}
		}
		if matched {
			break
		}
	}
	candidate["severity"] = bundle.Severities.Terms()[rank]

	for _, sign := range bundle.EmergencySigns {
		if strings.Contains(lower, sign) {
			candidate["requiresImmediateCare"] = true
			break
		}
	}
	if rank == 3 {
		candidate["requiresImmediateCare"] = true
	}

	return candidate
}

// validate is the final pass applied to every candidate regardless of
// which tier produced it: merge over the language defaults, coerce
// list-typed fields, and clamp severity to the language enum.
func (n *Normalizer) validate(candidate map[string]interface{}, bundle *locale.Bundle) domain.AnalysisResult {
	result := bundle.Defaults

	if v, ok := stringSlice(candidate["possibleConditions"]); ok {
		result.PossibleConditions = v
	}
	if v, ok := stringSlice(candidate["recommendations"]); ok {
		result.Recommendations = v
	}
	if v, ok := stringSlice(candidate["selfCareTips"]); ok {
		result.SelfCareTips = v
	}
	if v, ok := candidate["whenToSeeDoctor"].(string); ok && strings.TrimSpace(v) != "" {
		result.WhenToSeeDoctor = v
	}
	if v, ok := candidate["note"].(string); ok && strings.TrimSpace(v) != "" {
		result.Note = v
	}
	if v, ok := candidate["requiresImmediateCare"].(bool); ok {
		result.RequiresImmediateCare = v
	}

	if v, ok := candidate["severity"].(string); ok && bundle.Severities.Contains(strings.TrimSpace(v)) {
		result.Severity = strings.TrimSpace(v)
	} else {
		result.Severity = bundle.Severities.Medium
	}

	return result
}

// stringSlice coerces a decoded JSON value into a non-empty []string.
// Anything that is not a sequence of strings reports false so the
// caller keeps the default sequence.
func stringSlice(v interface{}) ([]string, bool) {
	switch items := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out, len(out) > 0
	case []string:
		return items, len(items) > 0
	default:
		return nil, false
	}
}

func toInterfaceSlice(items []string) []interface{} {
	out := make([]interface{}, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}
