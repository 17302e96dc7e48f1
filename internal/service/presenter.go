package service

import "remedyai/internal/model"

// Fixed safety actions merged into every displayed action list
var supplementaryActions = []string{
	"증상이 급격히 악화되면 즉시 119 또는 응급실로 이동하세요",
	"가능하면 주변 사람에게 현재 상태를 공유하고 혼자 있지 마세요",
}

const maxDisplayedActions = 5

// BuildRiskView maps a triage result to its presentation: gauge score,
// risk label, card color and the merged display action list. Total over
// all level values - anything unrecognized lands on the stable branch.
func BuildRiskView(result *model.AdvisoryResult) model.RiskView {
	view := model.RiskView{Score: 0.30, Label: "낮음", Color: "#2E7D32"}
	switch result.Level {
	case model.LevelEmergency:
		view.Score, view.Label, view.Color = 0.90, "높음", "#B71C1C"
	case model.LevelCaution:
		view.Score, view.Label, view.Color = 0.60, "중간", "#F57C00"
	}
	view.Actions = mergeActions(result.Action)
	return view
}

// mergeActions appends the fixed supplements, de-duplicates preserving
// order and caps the list for display. The underlying result keeps the
// full list for persistence.
func mergeActions(actions []string) []string {
	merged := make([]string, 0, len(actions)+len(supplementaryActions))
	seen := make(map[string]bool)
	for _, a := range actions {
		if !seen[a] {
			seen[a] = true
			merged = append(merged, a)
		}
	}
	for _, a := range supplementaryActions {
		if !seen[a] {
			seen[a] = true
			merged = append(merged, a)
		}
	}
	if len(merged) > maxDisplayedActions {
		merged = merged[:maxDisplayedActions]
	}
	return merged
}
