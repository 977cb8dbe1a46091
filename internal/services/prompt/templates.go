package prompt

// Task templates, keyed by kind then language code. Placeholders use
// {name} syntax; a line whose placeholder has no value is dropped
// whole, so emitted prompts never contain residual placeholders.
// Languages without a template for a kind fall back to English; the
// {language_name} line keeps replies in the requested language either
// way.

const analysisJSONShape = `{"possibleConditions": ["..."], "severity": "...", "recommendations": ["..."], "requiresImmediateCare": true, "whenToSeeDoctor": "...", "selfCareTips": ["..."]}`

var templates = map[Kind]map[string]string{
	KindSymptomAnalysis: {
		"en": `You are a careful medical triage assistant.
A patient reports the following symptoms: {symptoms}
Patient age: {age}
Patient gender: {gender}
Symptom duration: {duration}
Earlier interactions in this session: {history}
Assess the likely conditions, the severity, and what the patient should do.
Severity must be exactly one of: {severity_terms}.
Respond in {language_name}.
Return ONLY a JSON object with this exact shape and no other text:
` + analysisJSONShape,
		"es": `Eres un asistente médico de triaje cuidadoso.
Un paciente presenta los siguientes síntomas: {symptoms}
Edad del paciente: {age}
Género del paciente: {gender}
Duración de los síntomas: {duration}
Interacciones anteriores en esta sesión: {history}
Evalúa las condiciones probables, la gravedad y qué debe hacer el paciente.
La gravedad debe ser exactamente una de: {severity_terms}.
Responde en {language_name}.
Devuelve ÚNICAMENTE un objeto JSON con esta forma exacta y ningún otro texto:
` + analysisJSONShape,
		"hi": `आप एक सावधान चिकित्सा ट्राइएज सहायक हैं।
रोगी निम्नलिखित लक्षण बताता है: {symptoms}
रोगी की आयु: {age}
रोगी का लिंग: {gender}
लक्षणों की अवधि: {duration}
इस सत्र की पिछली बातचीत: {history}
संभावित स्थितियों, गंभीरता और रोगी को क्या करना चाहिए, इसका आकलन करें।
गंभीरता इनमें से ठीक एक होनी चाहिए: {severity_terms}।
{language_name} में उत्तर दें।
केवल इस सटीक आकार का JSON ऑब्जेक्ट लौटाएं, कोई अन्य पाठ नहीं:
` + analysisJSONShape,
		"fr": `Vous êtes un assistant de triage médical prudent.
Un patient signale les symptômes suivants : {symptoms}
Âge du patient : {age}
Genre du patient : {gender}
Durée des symptômes : {duration}
Interactions précédentes dans cette session : {history}
Évaluez les affections probables, la gravité et ce que le patient doit faire.
La gravité doit être exactement l'une de : {severity_terms}.
Répondez en {language_name}.
Retournez UNIQUEMENT un objet JSON avec cette forme exacte et aucun autre texte :
` + analysisJSONShape,
	},

	KindImageAnalysis: {
		"en": `You are a careful medical triage assistant examining a patient-supplied photo.
The patient additionally reports: {symptoms}
Describe what the image shows and assess likely conditions and severity.
Severity must be exactly one of: {severity_terms}.
Respond in {language_name}.
Return ONLY a JSON object with this exact shape and no other text:
` + analysisJSONShape,
		"es": `Eres un asistente médico de triaje cuidadoso examinando una foto proporcionada por el paciente.
El paciente además informa: {symptoms}
Describe lo que muestra la imagen y evalúa las condiciones probables y la gravedad.
La gravedad debe ser exactamente una de: {severity_terms}.
Responde en {language_name}.
Devuelve ÚNICAMENTE un objeto JSON con esta forma exacta y ningún otro texto:
` + analysisJSONShape,
	},

	KindDrugInteraction: {
		"en": `You are a clinical pharmacology assistant.
Check for interactions between these medicines: {medicines}
Existing conditions: {conditions}
Known allergies: {allergies}
Assess interaction risks and what the patient should do.
Severity must be exactly one of: {severity_terms}.
Respond in {language_name}.
Return ONLY a JSON object with this exact shape and no other text:
` + analysisJSONShape,
		"es": `Eres un asistente de farmacología clínica.
Comprueba las interacciones entre estos medicamentos: {medicines}
Condiciones existentes: {conditions}
Alergias conocidas: {allergies}
Evalúa los riesgos de interacción y qué debe hacer el paciente.
La gravedad debe ser exactamente una de: {severity_terms}.
Responde en {language_name}.
Devuelve ÚNICAMENTE un objeto JSON con esta forma exacta y ningún otro texto:
` + analysisJSONShape,
	},

	KindHealthInfo: {
		"en": `You are a health educator writing for the general public.
Explain the following health topic in clear, simple terms: {topic}
Cover what it is, common causes, prevention, and when to seek care.
Respond in {language_name} using Markdown with short sections.`,
	},

	KindSpeechOptimization: {
		"en": `Rewrite the following text so a text-to-speech engine reads it naturally.
Expand abbreviations, spell out numbers where natural, and remove markup.
Text: {text}
Respond in {language_name}. Return ONLY the rewritten text.`,
	},
}

// languageNames maps supported codes to the name used in the
// {language_name} placeholder.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"hi": "Hindi",
	"fr": "French",
}
