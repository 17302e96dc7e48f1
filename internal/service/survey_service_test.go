package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remedyai/internal/catalog"
)

func TestSurveyFlowCompletes(t *testing.T) {
	ctx := context.Background()
	svc := NewSurveyService(newMemSessionCache())

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)
	require.False(t, session.Complete)
	require.Equal(t, 0, session.Index)

	picks := []string{"복통", "하루 이상", "매우 심함", "조금 있음", "예"}
	for i, pick := range picks {
		q := svc.CurrentQuestion(session)
		require.NotNil(t, q, "question %d", i)
		require.True(t, q.HasOption(pick))

		session, err = svc.SelectOption(ctx, session.ID, pick)
		require.NoError(t, err)
		require.Equal(t, pick, session.Pending)

		session, err = svc.Advance(ctx, session.ID)
		require.NoError(t, err)
		require.Empty(t, session.Pending)
	}

	require.True(t, session.Complete)
	assert.Nil(t, svc.CurrentQuestion(session))

	// First three selections land in the answer set verbatim
	assert.Equal(t, "복통", session.Answers.Symptom)
	assert.Equal(t, "하루 이상", session.Answers.Duration)
	assert.Equal(t, "매우 심함", session.Answers.Severity)

	// Auxiliary answers are recorded but kept out of the core set
	assert.Equal(t, "조금 있음", session.Extra[4])
	assert.Equal(t, "예", session.Extra[5])

	// Complete is terminal
	_, err = svc.Advance(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionComplete)
	_, err = svc.SelectOption(ctx, session.ID, "복통")
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestAdvanceWithoutSelectionIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := NewSurveyService(newMemSessionCache())

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	after, err := svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.Index)
	assert.False(t, after.Complete)
}

func TestSelectOptionRejectsUnknownOption(t *testing.T) {
	ctx := context.Background()
	svc := NewSurveyService(newMemSessionCache())

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectOption(ctx, session.ID, "골절")
	assert.ErrorIs(t, err, ErrInvalidOption)
}

func TestSelectOptionOverwritesPending(t *testing.T) {
	ctx := context.Background()
	svc := NewSurveyService(newMemSessionCache())

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	_, err = svc.SelectOption(ctx, session.ID, "두통")
	require.NoError(t, err)
	session, err = svc.SelectOption(ctx, session.ID, "출혈")
	require.NoError(t, err)
	assert.Equal(t, "출혈", session.Pending)

	session, err = svc.Advance(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "출혈", session.Answers.Symptom)
}

func TestGetSessionNotFound(t *testing.T) {
	svc := NewSurveyService(newMemSessionCache())

	_, err := svc.GetSession(context.Background(), "s_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCatalogDrivesProgress(t *testing.T) {
	ctx := context.Background()
	svc := NewSurveyService(newMemSessionCache())

	session, err := svc.StartSession(ctx)
	require.NoError(t, err)

	for i := 0; i < catalog.Count()-1; i++ {
		q := svc.CurrentQuestion(session)
		require.NotNil(t, q)

		_, err = svc.SelectOption(ctx, session.ID, q.Options[0])
		require.NoError(t, err)
		session, err = svc.Advance(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, i+1, session.Index)
	}
}
