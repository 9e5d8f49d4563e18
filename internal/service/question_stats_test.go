package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"surveymon/internal/model"
)

func TestBuildQuestionAnalyticsRating(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Text: "Rate us", Type: model.QuestionTypeRating, Options: []string{"1", "2", "3", "4", "5"}},
	}
	answers := []model.Answer{
		{QuestionID: "q1", RespondentID: "r1", Value: "1"},
		{QuestionID: "q1", RespondentID: "r2", Value: "3"},
		{QuestionID: "q1", RespondentID: "r3", Value: "5"},
		{QuestionID: "q1", RespondentID: "r4", Value: "5"},
		{QuestionID: "q1", RespondentID: "r5", Value: "5"},
	}

	summaries := buildQuestionAnalytics(questions, answers, 5, zap.NewNop())
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, 5, s.ResponseCount)
	assert.Equal(t, 100.0, s.ResponseRate)
	require.NotNil(t, s.AverageRating)
	assert.InDelta(t, 3.8, *s.AverageRating, 1e-9)
	assert.Equal(t, map[string]int{"1": 1, "3": 1, "5": 3}, s.RatingDistribution)
	assert.Equal(t, "5", s.MostCommonAnswer)
}

func TestBuildQuestionAnalyticsCheckbox(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Type: model.QuestionTypeCheckbox, Options: []string{"A", "B", "C"}},
	}
	answers := []model.Answer{
		{QuestionID: "q1", RespondentID: "r1", Value: `["A","B"]`},
		{QuestionID: "q1", RespondentID: "r2", Value: `["B","C"]`},
	}

	summaries := buildQuestionAnalytics(questions, answers, 2, zap.NewNop())
	require.Len(t, summaries, 1)

	assert.Equal(t, map[string]int{"A": 1, "B": 2, "C": 1}, summaries[0].AnswerDistribution)
	assert.Equal(t, "B", summaries[0].MostCommonAnswer)
	assert.Equal(t, 2, summaries[0].ResponseCount)
}

func TestBuildQuestionAnalyticsMalformedCheckboxDropped(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Type: model.QuestionTypeCheckbox, Options: []string{"A"}},
	}
	answers := []model.Answer{
		{QuestionID: "q1", RespondentID: "r1", Value: `["A"]`},
		{QuestionID: "q1", RespondentID: "r2", Value: `not json`},
	}

	summaries := buildQuestionAnalytics(questions, answers, 2, zap.NewNop())
	require.Len(t, summaries, 1)

	// Malformed answer is out of the distribution but still a response.
	assert.Equal(t, map[string]int{"A": 1}, summaries[0].AnswerDistribution)
	assert.Equal(t, 2, summaries[0].ResponseCount)
}

func TestBuildQuestionAnalyticsNonNumericRatingDropped(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Type: model.QuestionTypeRating, Options: []string{"1", "2", "3"}},
	}
	answers := []model.Answer{
		{QuestionID: "q1", RespondentID: "r1", Value: "2"},
		{QuestionID: "q1", RespondentID: "r2", Value: "great"},
	}

	summaries := buildQuestionAnalytics(questions, answers, 2, zap.NewNop())
	require.NotNil(t, summaries[0].AverageRating)
	assert.Equal(t, 2.0, *summaries[0].AverageRating)
	assert.Equal(t, map[string]int{"2": 1}, summaries[0].RatingDistribution)
}

func TestBuildQuestionAnalyticsNilAverageWhenNoParsableRatings(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Type: model.QuestionTypeRating, Options: []string{"1"}},
	}
	answers := []model.Answer{
		{QuestionID: "q1", RespondentID: "r1", Value: "n/a"},
	}

	summaries := buildQuestionAnalytics(questions, answers, 1, zap.NewNop())
	assert.Nil(t, summaries[0].AverageRating)
}

func TestDistributionMostCommonTieBreak(t *testing.T) {
	d := newDistribution()
	d.add("B")
	d.add("A")
	d.add("A")
	d.add("B")

	// B was seen first, so the tie goes to B.
	assert.Equal(t, "B", d.mostCommon())
}

func TestBuildQuestionAnalyticsKeepsSurveyOrder(t *testing.T) {
	questions := []model.Question{
		{ID: "q1", Type: model.QuestionTypeText, OrderIndex: 0},
		{ID: "q2", Type: model.QuestionTypeRadio, Options: []string{"A"}, OrderIndex: 1},
	}
	answers := []model.Answer{
		{QuestionID: "q2", RespondentID: "r1", Value: "A"},
	}

	summaries := buildQuestionAnalytics(questions, answers, 1, zap.NewNop())
	require.Len(t, summaries, 2)
	assert.Equal(t, "q1", summaries[0].QuestionID)
	assert.Equal(t, 0, summaries[0].ResponseCount)
	assert.Equal(t, 0.0, summaries[0].ResponseRate)
	assert.Equal(t, "q2", summaries[1].QuestionID)
	assert.Equal(t, 100.0, summaries[1].ResponseRate)
}
