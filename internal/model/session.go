package model

import "time"

// AnswerSet holds the committed selections for the three core questions.
// Read-only once the session is complete.
type AnswerSet struct {
	Symptom  string `json:"symptom"`
	Duration string `json:"duration"`
	Severity string `json:"severity"`
}

// SurveySession is the per-client survey flow state. Forward-only: the
// index never decreases and a complete session never leaves that state.
type SurveySession struct {
	ID       string         `json:"id"`
	Index    int            `json:"index"`
	Pending  string         `json:"pending,omitempty"`
	Answers  AnswerSet      `json:"answers"`
	Extra    map[int]string `json:"extra,omitempty"` // auxiliary answers keyed by question ID, recorded but unused
	Complete bool           `json:"complete"`
	// Result is set exactly once when the advisory (or fallback) resolves;
	// re-requesting the result re-renders this instead of re-calling the model.
	Result    *AdvisoryResult `json:"result,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
