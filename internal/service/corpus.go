package service

import (
	"errors"
	"sort"

	"surveymon/internal/model"
)

var (
	ErrSurveyNotFound   = errors.New("survey not found")
	ErrSnapshotNotFound = errors.New("analytics snapshot not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// SurveyCorpus is the point-in-time input to an analytics computation: one
// survey's question, answer and respondent sets. The analyzers only read it.
type SurveyCorpus struct {
	Survey      *model.Survey
	Questions   []model.Question // Sorted by OrderIndex
	Answers     []model.Answer
	Respondents []model.Respondent
}

// QuestionByID returns the corpus question with the given id, or nil.
func (c *SurveyCorpus) QuestionByID(id string) *model.Question {
	for i := range c.Questions {
		if c.Questions[i].ID == id {
			return &c.Questions[i]
		}
	}
	return nil
}

// DistinctRespondentIDs returns the ids of respondents with at least one
// answer, in first-answer order.
func (c *SurveyCorpus) DistinctRespondentIDs() []string {
	seen := make(map[string]bool, len(c.Answers))
	ids := make([]string, 0, len(c.Answers))
	for _, a := range c.Answers {
		if !seen[a.RespondentID] {
			seen[a.RespondentID] = true
			ids = append(ids, a.RespondentID)
		}
	}
	return ids
}

// sortQuestions returns the questions ordered by OrderIndex without mutating
// the input slice.
func sortQuestions(questions []model.Question) []model.Question {
	sorted := make([]model.Question, len(questions))
	copy(sorted, questions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderIndex < sorted[j].OrderIndex
	})
	return sorted
}
