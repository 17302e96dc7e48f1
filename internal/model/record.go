package model

import "time"

// SurveyRecord is the persisted outcome of one completed survey: the
// answers plus the triage level and summary. Written once, never updated.
type SurveyRecord struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	Symptom   string      `json:"symptom" bson:"symptom"`
	Duration  string      `json:"duration" bson:"duration"`
	Severity  string      `json:"severity" bson:"severity"`
	Level     TriageLevel `json:"level" bson:"level"`
	Summary   string      `json:"aiAdvice" bson:"aiAdvice"`
	CreatedAt time.Time   `json:"createdAt" bson:"createdAt"`
}
