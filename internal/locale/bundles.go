// Package locale holds the per-language localization bundles: severity
// enums, default analysis results, and pre-written fallback wording.
// Bundles are plain data loaded once at init; unknown language codes
// always resolve to the English bundle.
package locale

import "github.com/medassist-ai/medassist/internal/domain"

// DefaultLanguage is the universal fallback for unknown codes.
const DefaultLanguage = "en"

// Severities is the closed four-value severity enum for one language,
// ordered from least to most urgent.
type Severities struct {
	Low       string
	Medium    string
	High      string
	Emergency string
}

// Terms returns the enum members in rank order.
func (s Severities) Terms() []string {
	return []string{s.Low, s.Medium, s.High, s.Emergency}
}

// Contains reports whether v is a member of the enum.
func (s Severities) Contains(v string) bool {
	return v == s.Low || v == s.Medium || v == s.High || v == s.Emergency
}

// Bundle is the full localization record for one language.
type Bundle struct {
	Code        string
	VoiceLocale string
	Severities  Severities

	// Defaults is merged under every normalized result so no field is
	// ever missing.
	Defaults domain.AnalysisResult

	// Fallbacks holds the canned results for the static-fallback rule
	// table, keyed by rule name.
	Fallbacks map[string]domain.AnalysisResult

	// DegradedNote is attached to results produced without the model.
	DegradedNote string

	// EmergencySigns are literal phrases matched against model output
	// during heuristic extraction.
	EmergencySigns []string
}

var bundles = map[string]*Bundle{
	"en": englishBundle,
	"es": spanishBundle,
	"hi": hindiBundle,
	"fr": frenchBundle,
}

// Get returns the bundle for code, or the English bundle when the code
// is unknown or empty. It never fails.
func Get(code string) *Bundle {
	if b, ok := bundles[code]; ok {
		return b
	}
	return bundles[DefaultLanguage]
}

// Supported returns the supported language codes.
func Supported() []string {
	return []string{"en", "es", "hi", "fr"}
}

// IsSupported reports whether code has its own bundle.
func IsSupported(code string) bool {
	_, ok := bundles[code]
	return ok
}

// Rule names for the static-fallback table. The matching logic lives in
// the analysis package; only the wording lives here.
const (
	RuleChestPain      = "chest_pain"
	RuleHeadacheVision = "headache_vision"
	RuleFeverCough     = "fever_cough"
	RuleGeneric        = "generic"
)

var englishBundle = &Bundle{
	Code:        "en",
	VoiceLocale: "en-US",
	Severities:  Severities{Low: "Low", Medium: "Medium", High: "High", Emergency: "Emergency"},
	Defaults: domain.AnalysisResult{
		PossibleConditions:    []string{"Unable to determine specific conditions"},
		Severity:              "Medium",
		Recommendations:       []string{"Consult a healthcare provider for a proper evaluation"},
		RequiresImmediateCare: false,
		WhenToSeeDoctor:       "If symptoms persist or worsen, see a doctor promptly.",
		SelfCareTips:          []string{"Rest and stay hydrated", "Monitor your symptoms"},
	},
	Fallbacks: map[string]domain.AnalysisResult{
		RuleChestPain: {
			PossibleConditions:    []string{"Cardiac-related condition", "Angina", "Musculoskeletal chest pain"},
			Severity:              "Emergency",
			Recommendations:       []string{"Seek emergency medical care immediately", "Do not drive yourself to the hospital"},
			RequiresImmediateCare: true,
			WhenToSeeDoctor:       "Chest pain requires immediate cardiac evaluation. Call emergency services now.",
			SelfCareTips:          []string{"Stop all activity and sit down", "Loosen tight clothing"},
		},
		RuleHeadacheVision: {
			PossibleConditions:    []string{"Migraine with aura", "Tension headache", "Eye strain"},
			Severity:              "Medium",
			Recommendations:       []string{"Rest in a dark, quiet room", "See a doctor if vision changes persist"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "See a doctor if the headache is sudden and severe, or if vision loss continues.",
			SelfCareTips:          []string{"Avoid bright screens", "Apply a cold compress", "Stay hydrated"},
		},
		RuleFeverCough: {
			PossibleConditions:    []string{"Viral infection", "Common cold", "Flu"},
			Severity:              "Low",
			Recommendations:       []string{"Rest and drink plenty of fluids", "Use fever-reducing medication as directed"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "See a doctor if the fever lasts more than 3 days or breathing becomes difficult.",
			SelfCareTips:          []string{"Get plenty of sleep", "Use a humidifier", "Drink warm fluids"},
		},
		RuleGeneric: {
			PossibleConditions:    []string{"Unable to determine specific conditions"},
			Severity:              "Medium",
			Recommendations:       []string{"Consult a healthcare provider for a proper evaluation"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "If symptoms persist or worsen, see a doctor promptly.",
			SelfCareTips:          []string{"Rest and stay hydrated", "Monitor your symptoms"},
		},
	},
	DegradedNote:   "AI analysis is currently unavailable. This is general guidance only; consult a healthcare professional.",
	EmergencySigns: []string{"difficulty breathing", "chest pain", "loss of consciousness", "severe bleeding", "sudden weakness"},
}

var spanishBundle = &Bundle{
	Code:        "es",
	VoiceLocale: "es-ES",
	Severities:  Severities{Low: "Baja", Medium: "Media", High: "Alta", Emergency: "Emergencia"},
	Defaults: domain.AnalysisResult{
		PossibleConditions:    []string{"No se pudieron determinar condiciones específicas"},
		Severity:              "Media",
		Recommendations:       []string{"Consulte a un profesional de salud para una evaluación adecuada"},
		RequiresImmediateCare: false,
		WhenToSeeDoctor:       "Si los síntomas persisten o empeoran, acuda al médico pronto.",
		SelfCareTips:          []string{"Descanse y manténgase hidratado", "Vigile sus síntomas"},
	},
	Fallbacks: map[string]domain.AnalysisResult{
		RuleChestPain: {
			PossibleConditions:    []string{"Afección cardíaca", "Angina", "Dolor torácico musculoesquelético"},
			Severity:              "Emergencia",
			Recommendations:       []string{"Busque atención médica de emergencia de inmediato", "No conduzca usted mismo al hospital"},
			RequiresImmediateCare: true,
			WhenToSeeDoctor:       "El dolor de pecho requiere evaluación cardíaca inmediata. Llame a emergencias ahora.",
			SelfCareTips:          []string{"Detenga toda actividad y siéntese", "Afloje la ropa ajustada"},
		},
		RuleHeadacheVision: {
			PossibleConditions:    []string{"Migraña con aura", "Cefalea tensional", "Fatiga visual"},
			Severity:              "Media",
			Recommendations:       []string{"Descanse en una habitación oscura y silenciosa", "Acuda al médico si los cambios de visión persisten"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "Acuda al médico si el dolor de cabeza es repentino e intenso, o si la pérdida de visión continúa.",
			SelfCareTips:          []string{"Evite pantallas brillantes", "Aplique una compresa fría", "Manténgase hidratado"},
		},
		RuleFeverCough: {
			PossibleConditions:    []string{"Infección viral", "Resfriado común", "Gripe"},
			Severity:              "Baja",
			Recommendations:       []string{"Descanse y beba muchos líquidos", "Use antipiréticos según indicación"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "Acuda al médico si la fiebre dura más de 3 días o si respirar se vuelve difícil.",
			SelfCareTips:          []string{"Duerma lo suficiente", "Use un humidificador", "Beba líquidos tibios"},
		},
		RuleGeneric: {
			PossibleConditions:    []string{"No se pudieron determinar condiciones específicas"},
			Severity:              "Media",
			Recommendations:       []string{"Consulte a un profesional de salud para una evaluación adecuada"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "Si los síntomas persisten o empeoran, acuda al médico pronto.",
			SelfCareTips:          []string{"Descanse y manténgase hidratado", "Vigile sus síntomas"},
		},
	},
	DegradedNote:   "El análisis con IA no está disponible en este momento. Esta es una orientación general; consulte a un profesional de salud.",
	EmergencySigns: []string{"dificultad para respirar", "dolor de pecho", "pérdida de conciencia", "sangrado severo", "debilidad repentina"},
}

var hindiBundle = &Bundle{
	Code:        "hi",
	VoiceLocale: "hi-IN",
	Severities:  Severities{Low: "कम", Medium: "मध्यम", High: "उच्च", Emergency: "आपातकाल"},
	Defaults: domain.AnalysisResult{
		PossibleConditions:    []string{"विशिष्ट स्थितियां निर्धारित नहीं की जा सकीं"},
		Severity:              "मध्यम",
		Recommendations:       []string{"उचित जांच के लिए स्वास्थ्य विशेषज्ञ से परामर्श करें"},
		RequiresImmediateCare: false,
		WhenToSeeDoctor:       "यदि लक्षण बने रहें या बिगड़ें, तो शीघ्र डॉक्टर से मिलें।",
		SelfCareTips:          []string{"आराम करें और पानी पीते रहें", "अपने लक्षणों पर नज़र रखें"},
	},
	Fallbacks: map[string]domain.AnalysisResult{
		RuleChestPain: {
			PossibleConditions:    []string{"हृदय संबंधी स्थिति", "एनजाइना", "मांसपेशियों का सीने का दर्द"},
			Severity:              "आपातकाल",
			Recommendations:       []string{"तुरंत आपातकालीन चिकित्सा सहायता लें", "स्वयं गाड़ी चलाकर अस्पताल न जाएं"},
			RequiresImmediateCare: true,
			WhenToSeeDoctor:       "सीने के दर्द के लिए तुरंत हृदय जांच आवश्यक है। अभी आपातकालीन सेवा को बुलाएं।",
			SelfCareTips:          []string{"सभी गतिविधियां रोककर बैठ जाएं", "तंग कपड़े ढीले करें"},
		},
		RuleHeadacheVision: {
			PossibleConditions:    []string{"ऑरा के साथ माइग्रेन", "तनाव सिरदर्द", "आंखों का तनाव"},
			Severity:              "मध्यम",
			Recommendations:       []string{"अंधेरे, शांत कमरे में आराम करें", "दृष्टि में बदलाव बने रहने पर डॉक्टर से मिलें"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "यदि सिरदर्द अचानक और तेज हो, या दृष्टि हानि जारी रहे, तो डॉक्टर से मिलें।",
			SelfCareTips:          []string{"तेज रोशनी वाली स्क्रीन से बचें", "ठंडी पट्टी लगाएं", "पानी पीते रहें"},
		},
		RuleFeverCough: {
			PossibleConditions:    []string{"वायरल संक्रमण", "सामान्य जुकाम", "फ्लू"},
			Severity:              "कम",
			Recommendations:       []string{"आराम करें और खूब तरल पदार्थ लें", "निर्देशानुसार बुखार की दवा लें"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "यदि बुखार 3 दिन से अधिक रहे या सांस लेने में कठिनाई हो, तो डॉक्टर से मिलें।",
			SelfCareTips:          []string{"पर्याप्त नींद लें", "ह्यूमिडिफायर का उपयोग करें", "गर्म तरल पदार्थ पिएं"},
		},
		RuleGeneric: {
			PossibleConditions:    []string{"विशिष्ट स्थितियां निर्धारित नहीं की जा सकीं"},
			Severity:              "मध्यम",
			Recommendations:       []string{"उचित जांच के लिए स्वास्थ्य विशेषज्ञ से परामर्श करें"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "यदि लक्षण बने रहें या बिगड़ें, तो शीघ्र डॉक्टर से मिलें।",
			SelfCareTips:          []string{"आराम करें और पानी पीते रहें", "अपने लक्षणों पर नज़र रखें"},
		},
	},
	DegradedNote:   "एआई विश्लेषण अभी उपलब्ध नहीं है। यह केवल सामान्य मार्गदर्शन है; स्वास्थ्य विशेषज्ञ से परामर्श करें।",
	EmergencySigns: []string{"सांस लेने में कठिनाई", "सीने में दर्द", "बेहोशी", "गंभीर रक्तस्राव", "अचानक कमजोरी"},
}

var frenchBundle = &Bundle{
	Code:        "fr",
	VoiceLocale: "fr-FR",
	Severities:  Severities{Low: "Faible", Medium: "Moyenne", High: "Élevée", Emergency: "Urgence"},
	Defaults: domain.AnalysisResult{
		PossibleConditions:    []string{"Impossible de déterminer des conditions spécifiques"},
		Severity:              "Moyenne",
		Recommendations:       []string{"Consultez un professionnel de santé pour une évaluation appropriée"},
		RequiresImmediateCare: false,
		WhenToSeeDoctor:       "Si les symptômes persistent ou s'aggravent, consultez rapidement un médecin.",
		SelfCareTips:          []string{"Reposez-vous et restez hydraté", "Surveillez vos symptômes"},
	},
	Fallbacks: map[string]domain.AnalysisResult{
		RuleChestPain: {
			PossibleConditions:    []string{"Affection cardiaque", "Angine de poitrine", "Douleur thoracique musculosquelettique"},
			Severity:              "Urgence",
			Recommendations:       []string{"Consultez les urgences immédiatement", "Ne conduisez pas vous-même à l'hôpital"},
			RequiresImmediateCare: true,
			WhenToSeeDoctor:       "Une douleur thoracique nécessite une évaluation cardiaque immédiate. Appelez les urgences maintenant.",
			SelfCareTips:          []string{"Arrêtez toute activité et asseyez-vous", "Desserrez les vêtements serrés"},
		},
		RuleHeadacheVision: {
			PossibleConditions:    []string{"Migraine avec aura", "Céphalée de tension", "Fatigue oculaire"},
			Severity:              "Moyenne",
			Recommendations:       []string{"Reposez-vous dans une pièce sombre et calme", "Consultez un médecin si les troubles visuels persistent"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "Consultez un médecin si le mal de tête est soudain et intense, ou si la perte de vision continue.",
			SelfCareTips:          []string{"Évitez les écrans lumineux", "Appliquez une compresse froide", "Restez hydraté"},
		},
		RuleFeverCough: {
			PossibleConditions:    []string{"Infection virale", "Rhume", "Grippe"},
			Severity:              "Faible",
			Recommendations:       []string{"Reposez-vous et buvez beaucoup de liquides", "Utilisez un antipyrétique selon les indications"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "Consultez un médecin si la fièvre dure plus de 3 jours ou si la respiration devient difficile.",
			SelfCareTips:          []string{"Dormez suffisamment", "Utilisez un humidificateur", "Buvez des liquides chauds"},
		},
		RuleGeneric: {
			PossibleConditions:    []string{"Impossible de déterminer des conditions spécifiques"},
			Severity:              "Moyenne",
			Recommendations:       []string{"Consultez un professionnel de santé pour une évaluation appropriée"},
			RequiresImmediateCare: false,
			WhenToSeeDoctor:       "Si les symptômes persistent ou s'aggravent, consultez rapidement un médecin.",
			SelfCareTips:          []string{"Reposez-vous et restez hydraté", "Surveillez vos symptômes"},
		},
	},
	DegradedNote:   "L'analyse par IA est momentanément indisponible. Ceci est un conseil général ; consultez un professionnel de santé.",
	EmergencySigns: []string{"difficulté à respirer", "douleur thoracique", "perte de connaissance", "saignement important", "faiblesse soudaine"},
}
