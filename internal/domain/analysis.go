package domain

// AnalysisRequest carries the user-entered symptom description plus
// optional context fields. Built once from the request body and not
// mutated afterwards.
type AnalysisRequest struct {
	Symptoms  string `json:"symptoms"`
	Age       string `json:"age,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Language  string `json:"language,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// AnalysisResult is the fixed shape every analysis path must produce.
// Severity is always a member of the active language's severity enum.
type AnalysisResult struct {
	PossibleConditions    []string `json:"possibleConditions"`
	Severity              string   `json:"severity"`
	Recommendations       []string `json:"recommendations"`
	RequiresImmediateCare bool     `json:"requiresImmediateCare"`
	WhenToSeeDoctor       string   `json:"whenToSeeDoctor"`
	SelfCareTips          []string `json:"selfCareTips"`
	Note                  string   `json:"note,omitempty"`
}

// DrugCheckRequest asks for interactions between the listed medicines,
// optionally narrowed by existing conditions and allergies.
type DrugCheckRequest struct {
	Medicines  []string `json:"medicines"`
	Conditions string   `json:"conditions,omitempty"`
	Allergies  string   `json:"allergies,omitempty"`
	Language   string   `json:"language,omitempty"`
}
