package dto

import (
	"encoding/json"
	"math"
)

// Criteria named by the A2 examiner rubric, in the order used for the
// overall mean.
var ScoreCriteria = []string{"Inhalt", "Grammatik", "Wortschatz", "Form"}

// ScoreMap keeps only numeric criterion values when unmarshaling, so a
// model that emits "Grammatik": "gut" loses that entry instead of sinking
// the whole evaluation.
type ScoreMap map[string]float64

func (m *ScoreMap) UnmarshalJSON(b []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(ScoreMap, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok {
			out[k] = f
		}
	}
	*m = out
	return nil
}

// Mistake is one flagged error in the user's text.
type Mistake struct {
	Text    string `json:"text"`
	Explain string `json:"explain"`
	Fix     string `json:"fix"`
}

// GlossaryEntry is a suggested German word with its English translation.
type GlossaryEntry struct {
	De string `json:"de"`
	En string `json:"en"`
}

// Evaluation is the structured result the examiner model returns for one
// attempt. The field set is an external contract: the UI renders each field
// by name.
type Evaluation struct {
	Scores        ScoreMap        `json:"scores"`
	Overall       *float64        `json:"overall"`
	Corrected     string          `json:"corrected"`
	Mistakes      []Mistake       `json:"mistakes"`
	SuggestionsA2 []string        `json:"suggestionsA2"`
	SuggestionsB1 []string        `json:"suggestionsB1"`
	Glossary      []GlossaryEntry `json:"glossary"`
	Feedback      string          `json:"feedback"`
}

// EnsureOverall fills in the overall score when the model omitted it: the
// rounded mean of the named criteria that are present, or 0 when none are.
func (e *Evaluation) EnsureOverall() {
	if e.Overall != nil {
		return
	}
	var sum float64
	var n int
	for _, name := range ScoreCriteria {
		if v, ok := e.Scores[name]; ok {
			sum += v
			n++
		}
	}
	overall := 0.0
	if n > 0 {
		overall = math.Round(sum / float64(n))
	}
	e.Overall = &overall
}
