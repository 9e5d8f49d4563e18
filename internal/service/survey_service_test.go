package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveymon/internal/model"
)

func TestSurveyCreateValidatesOptions(t *testing.T) {
	svc := NewSurveyService(newFakeSurveyRepo())

	_, err := svc.Create(context.Background(), &model.Survey{
		Title: "bad",
		Questions: []model.Question{
			{ID: "q1", Type: model.QuestionTypeRadio}, // no options
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires options")
}

func TestSurveyCreateAndGet(t *testing.T) {
	svc := NewSurveyService(newFakeSurveyRepo())

	id, err := svc.Create(context.Background(), &model.Survey{
		Title: "ok",
		Questions: []model.Question{
			{ID: "q1", Type: model.QuestionTypeText},
			{ID: "q2", Type: model.QuestionTypeSelect, Options: []string{"A", "B"}},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	survey, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "ok", survey.Title)
}

func TestSurveySetStatus(t *testing.T) {
	repo := newFakeSurveyRepo(&model.Survey{ID: "s1", Status: "draft"})
	svc := NewSurveyService(repo)

	require.NoError(t, svc.SetStatus(context.Background(), "s1", "active"))
	assert.Equal(t, "active", repo.surveys["s1"].Status)
}

func TestSurveySetStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeSurveyRepo(&model.Survey{ID: "s1", Status: "draft"})
	svc := NewSurveyService(repo)

	err := svc.SetStatus(context.Background(), "s1", "archived")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown survey status")
	assert.Equal(t, "draft", repo.surveys["s1"].Status)
}

func TestSurveySetStatusNotFound(t *testing.T) {
	svc := NewSurveyService(newFakeSurveyRepo())

	err := svc.SetStatus(context.Background(), "missing", "active")
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestSurveyGetByIDNotFound(t *testing.T) {
	svc := NewSurveyService(newFakeSurveyRepo())

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}
