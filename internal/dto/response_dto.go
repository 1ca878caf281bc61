package dto

import "time"

// TaskResponse mirrors the stored Task row. Note carries the "Mocked (...)"
// marker when the task came from the offline fallback rather than the model.
type TaskResponse struct {
	ID        uint      `json:"id"`
	Teil      int       `json:"teil"`
	Topic     string    `json:"topic"`
	Prompt    string    `json:"prompt"`
	TaskText  string    `json:"taskText"`
	CreatedAt time.Time `json:"createdAt"`
	Note      string    `json:"_note,omitempty"`
}

// AttemptResponse is the stored attempt with evaluation and scores parsed
// back into structured form.
type AttemptResponse struct {
	ID         uint         `json:"id"`
	TaskID     uint         `json:"taskId"`
	Task       TaskResponse `json:"task"`
	UserAnswer string       `json:"userAnswer"`
	Evaluation Evaluation   `json:"evaluation"`
	Scores     ScoreMap     `json:"scores"`
	CreatedAt  time.Time    `json:"createdAt"`
}

// HistoryItem is one attempt in the history listing. Evaluation and Scores
// are re-parsed from their serialized form; a row that fails to parse yields
// an empty object rather than an error.
type HistoryItem struct {
	ID         uint           `json:"id"`
	TaskID     uint           `json:"taskId"`
	Task       TaskResponse   `json:"task"`
	UserAnswer string         `json:"userAnswer"`
	Evaluation map[string]any `json:"evaluation"`
	Scores     map[string]any `json:"scores"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type ClearHistoryResponse struct {
	OK bool `json:"ok"`
}

// LexResponse wraps the mode-shaped payload. Data is a string for chat mode
// and one of the typed lex payloads for every JSON mode.
type LexResponse struct {
	Data any    `json:"data"`
	Note string `json:"_note,omitempty"`
}

// LexHistoryItem is one stored lookup with the result re-parsed for display.
// ResultObj is null when the stored payload does not parse.
type LexHistoryItem struct {
	ID        uint      `json:"id"`
	Mode      string    `json:"mode"`
	Text      string    `json:"text"`
	Result    string    `json:"result"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"createdAt"`
	ResultObj any       `json:"resultObj"`
}

type LexHistoryResponse struct {
	Items []LexHistoryItem `json:"items"`
}

type ClearLexHistoryResponse struct {
	OK      bool  `json:"ok"`
	Deleted int64 `json:"deleted"`
}

// ModelInfo is one allow-listed model id with its display label.
type ModelInfo struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
