package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remedyai/internal/model"
)

func completedSession(t *testing.T, sessions *memSessionCache, symptom, duration, severity string) *model.SurveySession {
	t.Helper()
	session := &model.SurveySession{
		ID:       "s_test",
		Index:    4,
		Answers:  model.AnswerSet{Symptom: symptom, Duration: duration, Severity: severity},
		Complete: true,
	}
	require.NoError(t, sessions.Set(context.Background(), session))
	return session
}

func waitForRecord(t *testing.T, records *memRecordRepo) *model.SurveyRecord {
	t.Helper()
	select {
	case rec := <-records.Inserted:
		return rec
	case <-time.After(2 * time.Second):
		t.Fatal("survey record was never persisted")
		return nil
	}
}

func TestGetResultFallbackOnTransportFailure(t *testing.T) {
	sessions := newMemSessionCache()
	records := newMemRecordRepo()
	advisor := &stubAdvisor{fn: func(_, _, _ string) (*model.AdvisoryResult, error) {
		return nil, errors.New("dial tcp: connection refused")
	}}
	notifier := &stubNotifier{}

	svc := NewResultService(sessions, records, advisor)
	svc.SetNotifier(notifier)
	completedSession(t, sessions, "복통", "하루 이상", "매우 심함")

	report, err := svc.GetResult(context.Background(), "s_test")
	require.NoError(t, err)
	require.NotNil(t, report.Result)

	assert.Equal(t, model.LevelEmergency, report.Result.Level)
	assert.True(t, report.Result.Call)
	assert.Equal(t, 0.90, report.Risk.Score)
	assert.Equal(t, "높음", report.Risk.Label)
	assert.NotEmpty(t, report.Risk.Actions)
	assert.LessOrEqual(t, len(report.Risk.Actions), 5)

	// Persisted after presentation, with the fallback outcome
	rec := waitForRecord(t, records)
	assert.Equal(t, "복통", rec.Symptom)
	assert.Equal(t, "하루 이상", rec.Duration)
	assert.Equal(t, "매우 심함", rec.Severity)
	assert.Equal(t, model.LevelEmergency, rec.Level)
	assert.Equal(t, report.Result.Summary, rec.Summary)

	assert.Equal(t, 1, notifier.count())
}

func TestGetResultUsesAdvisorOutcome(t *testing.T) {
	sessions := newMemSessionCache()
	records := newMemRecordRepo()
	advisor := &stubAdvisor{fn: func(_, _, _ string) (*model.AdvisoryResult, error) {
		return &model.AdvisoryResult{
			Level:   model.LevelCaution,
			Summary: "경과 관찰이 필요합니다.",
			Action:  []string{"수분 섭취"},
			Warning: "무리하지 마세요.",
		}, nil
	}}

	svc := NewResultService(sessions, records, advisor)
	completedSession(t, sessions, "두통", "1~3시간", "중간")

	report, err := svc.GetResult(context.Background(), "s_test")
	require.NoError(t, err)
	assert.Equal(t, model.LevelCaution, report.Result.Level)
	assert.Equal(t, 0.60, report.Risk.Score)
	assert.Equal(t, "중간", report.Risk.Label)

	rec := waitForRecord(t, records)
	assert.Equal(t, model.LevelCaution, rec.Level)
}

func TestGetResultResolvesAdvisoryExactlyOnce(t *testing.T) {
	sessions := newMemSessionCache()
	records := newMemRecordRepo()
	advisor := &stubAdvisor{fn: func(_, _, severity string) (*model.AdvisoryResult, error) {
		return nil, errors.New("unreachable")
	}}

	svc := NewResultService(sessions, records, advisor)
	completedSession(t, sessions, "출혈", "1시간 미만", "약함")

	first, err := svc.GetResult(context.Background(), "s_test")
	require.NoError(t, err)
	second, err := svc.GetResult(context.Background(), "s_test")
	require.NoError(t, err)

	// Re-rendering the same inputs does not re-trigger the call
	assert.Equal(t, 1, advisor.callCount())
	assert.Equal(t, first.Result, second.Result)

	// And persists only once
	waitForRecord(t, records)
	select {
	case <-records.Inserted:
		t.Fatal("record persisted twice")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestGetResultRequiresCompleteSession(t *testing.T) {
	sessions := newMemSessionCache()
	svc := NewResultService(sessions, newMemRecordRepo(), &stubAdvisor{fn: func(_, _, _ string) (*model.AdvisoryResult, error) {
		t.Fatal("advisor must not be called for an open session")
		return nil, nil
	}})

	open := &model.SurveySession{ID: "s_open", Index: 2}
	require.NoError(t, sessions.Set(context.Background(), open))

	_, err := svc.GetResult(context.Background(), "s_open")
	assert.ErrorIs(t, err, ErrSessionOpen)

	_, err = svc.GetResult(context.Background(), "s_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
