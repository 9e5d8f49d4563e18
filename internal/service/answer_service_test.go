package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"surveymon/internal/model"
)

func testSurvey() *model.Survey {
	return &model.Survey{
		ID:      "s1",
		AdminID: "admin_1",
		Title:   "CS survey",
		Questions: []model.Question{
			{ID: "q1", Type: model.QuestionTypeText, OrderIndex: 0},
			{ID: "q2", Type: model.QuestionTypeRating, Options: []string{"1", "2", "3"}, OrderIndex: 1},
		},
	}
}

func TestAnswerSubmit(t *testing.T) {
	surveyRepo := newFakeSurveyRepo(testSurvey())
	answerRepo := &fakeAnswerRepo{}
	respondentRepo := newFakeRespondentRepo()
	snapshots := newFakeSnapshotCache()
	svc := NewAnswerService(surveyRepo, answerRepo, respondentRepo, snapshots, zap.NewNop())

	answer := &model.Answer{
		SurveyID:     "s1",
		QuestionID:   "q1",
		RespondentID: "r1",
		Value:        "hello",
	}
	respondent := &model.Respondent{Gender: "female", CreatedAt: time.Now()}

	err := svc.Submit(context.Background(), answer, respondent)
	require.NoError(t, err)

	require.Len(t, answerRepo.answers, 1)
	assert.False(t, answerRepo.answers[0].AnsweredAt.IsZero())
	assert.Equal(t, "r1", respondent.ID)
	assert.Contains(t, respondentRepo.respondents, "r1")
	assert.Equal(t, []string{"s1"}, snapshots.invalidated)
}

func TestAnswerSubmitReplacesPrevious(t *testing.T) {
	surveyRepo := newFakeSurveyRepo(testSurvey())
	answerRepo := &fakeAnswerRepo{}
	svc := NewAnswerService(surveyRepo, answerRepo, newFakeRespondentRepo(), newFakeSnapshotCache(), zap.NewNop())

	first := &model.Answer{SurveyID: "s1", QuestionID: "q1", RespondentID: "r1", Value: "first"}
	second := &model.Answer{SurveyID: "s1", QuestionID: "q1", RespondentID: "r1", Value: "second"}

	require.NoError(t, svc.Submit(context.Background(), first, nil))
	require.NoError(t, svc.Submit(context.Background(), second, nil))

	require.Len(t, answerRepo.answers, 1)
	assert.Equal(t, "second", answerRepo.answers[0].Value)
}

func TestAnswerSubmitUnknownSurvey(t *testing.T) {
	svc := NewAnswerService(newFakeSurveyRepo(), &fakeAnswerRepo{}, newFakeRespondentRepo(), newFakeSnapshotCache(), zap.NewNop())

	err := svc.Submit(context.Background(), &model.Answer{SurveyID: "missing", QuestionID: "q1", RespondentID: "r1"}, nil)
	assert.ErrorIs(t, err, ErrSurveyNotFound)
}

func TestAnswerSubmitUnknownQuestion(t *testing.T) {
	svc := NewAnswerService(newFakeSurveyRepo(testSurvey()), &fakeAnswerRepo{}, newFakeRespondentRepo(), newFakeSnapshotCache(), zap.NewNop())

	err := svc.Submit(context.Background(), &model.Answer{SurveyID: "s1", QuestionID: "nope", RespondentID: "r1"}, nil)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
