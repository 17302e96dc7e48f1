package catalog

import "remedyai/internal/model"

// The fixed question sequence: three core questions (symptom, duration,
// severity) followed by two auxiliary risk-signal questions. Defined once
// at process start and never mutated, so concurrent reads are safe.
var questions = []model.Question{
	{ID: 1, Text: "어디가 불편하신가요?", Options: []string{"두통", "복통", "호흡곤란", "출혈"}},
	{ID: 2, Text: "증상이 얼마나 지속됐나요?", Options: []string{"1시간 미만", "1~3시간", "하루 이상"}},
	{ID: 3, Text: "통증의 강도는 어떤가요?", Options: []string{"약함", "중간", "매우 심함"}},
	{ID: 4, Text: "의식이 흐려지거나 어지러움을 느낀 적이 있나요?", Options: []string{"없음", "조금 있음", "자주 있음"}},
	{ID: 5, Text: "증상이 갑자기 시작되었나요?", Options: []string{"아니요", "예"}},
}

// Count returns the number of questions in the catalog
func Count() int {
	return len(questions)
}

// Question returns the question at index, or nil if out of range
func Question(index int) *model.Question {
	if index < 0 || index >= len(questions) {
		return nil
	}
	q := questions[index]
	return &q
}

// Questions returns a copy of the full catalog
func Questions() []model.Question {
	out := make([]model.Question, len(questions))
	copy(out, questions)
	return out
}
