package service

import (
	"context"
	"log"
	"time"

	"remedyai/internal/cache"
	"remedyai/internal/model"
	"remedyai/internal/repository"
)

// Advisor requests a triage recommendation for a completed answer set
type Advisor interface {
	RequestAdvisory(ctx context.Context, symptom, duration, severity string) (*model.AdvisoryResult, error)
}

// Notifier pushes a ready result to a client waiting on the session.
// Pushing to a listener that is already gone must be a no-op.
type Notifier interface {
	ResultReady(sessionID string, report *model.TriageReport)
}

// ResultService resolves the triage result for completed sessions: one
// advisory attempt per session, fallback on failure, persistence only
// after a result exists. Advisory failures never surface to the caller.
type ResultService struct {
	sessions cache.SessionCache
	records  repository.RecordRepo
	advisor  Advisor
	notifier Notifier
}

// NewResultService creates a new result service
func NewResultService(sessions cache.SessionCache, records repository.RecordRepo, advisor Advisor) *ResultService {
	return &ResultService{
		sessions: sessions,
		records:  records,
		advisor:  advisor,
	}
}

// SetNotifier sets the notifier for result-ready events (wsHub implements Notifier)
func (s *ResultService) SetNotifier(n Notifier) {
	s.notifier = n
}

// GetResult returns the triage report for a complete session. The first
// call resolves the advisory (or its fallback) and stores the result on
// the session; later calls re-render the stored result without another
// model call.
func (s *ResultService) GetResult(ctx context.Context, sessionID string) (*model.TriageReport, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if !session.Complete {
		return nil, ErrSessionOpen
	}

	if session.Result != nil {
		return s.buildReport(session), nil
	}

	result, err := s.advisor.RequestAdvisory(ctx, session.Answers.Symptom, session.Answers.Duration, session.Answers.Severity)
	if err != nil {
		// Degraded but never empty: the fallback stands in for the model
		log.Printf("advisory call failed for %s, using fallback: %v", session.ID, err)
		result = FallbackAdvisory(session.Answers.Severity)
	}

	session.Result = result
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}

	report := s.buildReport(session)

	// Persist after the result is presentable. The write races with
	// rendering and its outcome is discarded.
	go s.persist(session)

	if s.notifier != nil {
		s.notifier.ResultReady(session.ID, report)
	}
	return report, nil
}

func (s *ResultService) buildReport(session *model.SurveySession) *model.TriageReport {
	return &model.TriageReport{
		SessionID: session.ID,
		Answers:   session.Answers,
		Result:    session.Result,
		Risk:      BuildRiskView(session.Result),
	}
}

func (s *ResultService) persist(session *model.SurveySession) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	record := &model.SurveyRecord{
		Symptom:  session.Answers.Symptom,
		Duration: session.Answers.Duration,
		Severity: session.Answers.Severity,
		Level:    session.Result.Level,
		Summary:  session.Result.Summary,
	}
	if err := s.records.Insert(ctx, record); err != nil {
		log.Printf("failed to persist survey record for %s: %v", session.ID, err)
	}
}
