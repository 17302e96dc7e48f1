package model

// TriageLevel is the risk grade returned by the advisory model
type TriageLevel string

const (
	LevelEmergency TriageLevel = "응급" // call 119 territory
	LevelCaution   TriageLevel = "주의"
	LevelStable    TriageLevel = "안정"
)

// AdvisoryResult is the structured triage recommendation for a completed
// survey. It is produced whole, either by the advisory model or by the
// local fallback - never partially populated.
type AdvisoryResult struct {
	Level   TriageLevel `json:"level" bson:"level"`
	Summary string      `json:"summary" bson:"summary"`
	Action  []string    `json:"action" bson:"action"`
	Warning string      `json:"warning" bson:"warning"`
	Call    bool        `json:"call" bson:"call"` // whether dialing 119 is recommended
}

// RiskView is the presentation-only projection of an AdvisoryResult:
// gauge score, label, card color and the merged display action list.
type RiskView struct {
	Score   float64  `json:"score"`
	Label   string   `json:"label"`
	Color   string   `json:"color"`
	Actions []string `json:"actions"`
}

// TriageReport is the full result payload for a completed session
type TriageReport struct {
	SessionID string          `json:"sessionId"`
	Answers   AnswerSet       `json:"answers"`
	Result    *AdvisoryResult `json:"result"`
	Risk      RiskView        `json:"risk"`
}
