package service

import "remedyai/internal/model"

// severityCritical is the maximum-intensity option of the severity question
const severityCritical = "매우 심함"

// FallbackAdvisory synthesizes a deterministic triage result from severity
// alone, used whenever the advisory call does not succeed. Maximum severity
// maps to an emergency with the 119 flag set; everything else to caution.
// The texts are fixed conservative safety instructions.
func FallbackAdvisory(severity string) *model.AdvisoryResult {
	level := model.LevelCaution
	call := false
	if severity == severityCritical {
		level = model.LevelEmergency
		call = true
	}

	return &model.AdvisoryResult{
		Level:   level,
		Summary: "증상 정보를 바탕으로 즉각적인 대응이 필요합니다.",
		Action: []string{
			"즉시 안전한 장소에서 안정을 취하세요",
			"혼자 있지 말고 주변 사람에게 상황을 알리세요",
			"증상이 악화되면 지체 없이 119 또는 응급실로 이동하세요",
		},
		Warning: "혼자 판단하여 치료를 미루거나 이동을 지연하지 마세요.",
		Call:    call,
	}
}
