package dto

// GenerateTaskRequest asks for a new writing task. Teil is validated in the
// service (must be 1 or 2); Topic and Model are optional.
type GenerateTaskRequest struct {
	Teil  int    `json:"teil"`
	Topic string `json:"topic"`
	Model string `json:"model"`
}

// EvaluateRequest submits a user answer for an existing task.
type EvaluateRequest struct {
	TaskID     uint   `json:"taskId" binding:"required"`
	UserAnswer string `json:"userAnswer" binding:"required"`
	Model      string `json:"model"`
}

// LexRequest is one dictionary/grammar lookup. An empty mode defaults to
// "chat"; an unknown mode is answered with the "unknown mode" placeholder
// rather than rejected.
type LexRequest struct {
	Mode  string `json:"mode"`
	Text  string `json:"text"`
	Model string `json:"model"`
}
