// Package prompt builds language-specific task prompts for the model
// gateway. Each task kind has per-language templates with English as
// the universal fallback.
package prompt

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/medassist-ai/medassist/internal/locale"
)

// Kind selects one of the closed set of task templates.
type Kind string

const (
	KindSymptomAnalysis    Kind = "symptom-analysis"
	KindImageAnalysis      Kind = "image-analysis"
	KindDrugInteraction    Kind = "drug-interaction"
	KindHealthInfo         Kind = "health-info"
	KindSpeechOptimization Kind = "speech-optimization"
)

// Fields holds the caller-supplied scalar values interpolated into a
// template. Missing fields drop their template line.
type Fields map[string]string

var placeholderRe = regexp.MustCompile(`\{([a-z_]+)\}`)

// Builder renders prompts from the template tables.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the template for kind in the requested language,
// falling back to English when the language has no template for that
// kind. Unknown kinds are the only error; language degradation never
// fails.
func (b *Builder) Build(kind Kind, fields Fields, lang string) (string, error) {
	byLang, ok := templates[kind]
	if !ok {
		return "", fmt.Errorf("unknown prompt kind %q", kind)
	}

	bundle := locale.Get(lang)
	tmpl, ok := byLang[bundle.Code]
	if !ok {
		tmpl = byLang[locale.DefaultLanguage]
	}

	merged := make(Fields, len(fields)+2)
	for k, v := range fields {
		merged[k] = strings.TrimSpace(v)
	}
	merged["severity_terms"] = strings.Join(bundle.Severities.Terms(), ", ")
	merged["language_name"] = languageName(bundle.Code)

	return render(tmpl, merged), nil
}

// render substitutes placeholders line by line. A line containing a
// placeholder with no value is dropped whole, so the output never
// carries residual placeholders or dangling labels.
func render(tmpl string, fields Fields) string {
	lines := strings.Split(tmpl, "\n")
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		keep := true
		rendered := placeholderRe.ReplaceAllStringFunc(line, func(m string) string {
			name := placeholderRe.FindStringSubmatch(m)[1]
			v, ok := fields[name]
			if !ok || v == "" {
				keep = false
				return ""
			}
			return v
		})
		if keep {
			out = append(out, rendered)
		}
	}

	return strings.Join(out, "\n")
}

func languageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return languageNames[locale.DefaultLanguage]
}
