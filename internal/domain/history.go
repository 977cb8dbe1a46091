package domain

import "time"

// HistoryEntry is one past interaction within a session. Entries are
// append-only; nothing mutates them after they are stored.
type HistoryEntry struct {
	ID        string         `json:"id"`
	SessionID string         `json:"sessionId"`
	Symptoms  string         `json:"symptoms"`
	Age       string         `json:"age,omitempty"`
	Gender    string         `json:"gender,omitempty"`
	Duration  string         `json:"duration,omitempty"`
	Language  string         `json:"language"`
	Result    AnalysisResult `json:"result"`
	CreatedAt time.Time      `json:"createdAt"`
}
