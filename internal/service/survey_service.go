package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"remedyai/internal/cache"
	"remedyai/internal/catalog"
	"remedyai/internal/model"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionComplete = errors.New("survey already complete")
	ErrSessionOpen     = errors.New("survey not complete yet")
	ErrInvalidOption   = errors.New("option is not offered by the current question")
)

// SurveyService drives the forward-only question flow. Each session walks
// the catalog one question at a time; the first three committed answers
// become symptom, duration and severity, later ones are recorded as
// auxiliary risk signals. A complete session never leaves that state.
type SurveyService struct {
	sessions cache.SessionCache
}

// NewSurveyService creates a new survey service
func NewSurveyService(sessions cache.SessionCache) *SurveyService {
	return &SurveyService{sessions: sessions}
}

// StartSession creates a session positioned at the first question
func (s *SurveyService) StartSession(ctx context.Context) (*model.SurveySession, error) {
	session := &model.SurveySession{
		ID:        "s_" + uuid.New().String()[:8],
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// GetSession loads a session by ID
func (s *SurveyService) GetSession(ctx context.Context, id string) (*model.SurveySession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CurrentQuestion returns the question the session is waiting on,
// or nil once the session is complete
func (s *SurveyService) CurrentQuestion(session *model.SurveySession) *model.Question {
	if session.Complete {
		return nil
	}
	return catalog.Question(session.Index)
}

// SelectOption records option as the pending selection for the current
// question, overwriting any prior pick. The option must be one the
// current question offers.
func (s *SurveyService) SelectOption(ctx context.Context, id, option string) (*model.SurveySession, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Complete {
		return nil, ErrSessionComplete
	}

	q := catalog.Question(session.Index)
	if q == nil || !q.HasOption(option) {
		return nil, ErrInvalidOption
	}

	session.Pending = option
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// Advance commits the pending selection and moves to the next question,
// or marks the session complete on the last one. Without a pending
// selection this is a no-op, not an error: the flow stays where it is.
func (s *SurveyService) Advance(ctx context.Context, id string) (*model.SurveySession, error) {
	session, err := s.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Complete {
		return nil, ErrSessionComplete
	}
	if session.Pending == "" {
		return session, nil
	}

	switch session.Index {
	case 0:
		session.Answers.Symptom = session.Pending
	case 1:
		session.Answers.Duration = session.Pending
	case 2:
		session.Answers.Severity = session.Pending
	default:
		// Auxiliary risk-signal questions: recorded, currently unused
		if session.Extra == nil {
			session.Extra = make(map[int]string)
		}
		session.Extra[catalog.Question(session.Index).ID] = session.Pending
	}

	if session.Index == catalog.Count()-1 {
		session.Complete = true
	} else {
		session.Index++
	}
	session.Pending = ""

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}
