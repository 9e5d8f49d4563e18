package service

import (
	"time"

	"github.com/montanaflynn/stats"

	"surveymon/internal/model"
)

// analyzeCompletion computes the completion rate (percent of respondents who
// answered every question) and the mean completion duration in minutes.
//
// A respondent is complete only when their answered-question count equals the
// survey's question count; partial completion never counts. Duration is the
// span between a respondent's earliest and latest answer, so a single-answer
// respondent contributes a valid duration of zero.
func analyzeCompletion(questions []model.Question, answers []model.Answer) (rate float64, avgMinutes float64) {
	if len(questions) == 0 || len(answers) == 0 {
		return 0, 0
	}

	type span struct {
		answered    map[string]bool
		first, last time.Time
	}
	byRespondent := make(map[string]*span)
	for _, a := range answers {
		s, ok := byRespondent[a.RespondentID]
		if !ok {
			s = &span{answered: make(map[string]bool), first: a.AnsweredAt, last: a.AnsweredAt}
			byRespondent[a.RespondentID] = s
		}
		s.answered[a.QuestionID] = true
		if a.AnsweredAt.Before(s.first) {
			s.first = a.AnsweredAt
		}
		if a.AnsweredAt.After(s.last) {
			s.last = a.AnsweredAt
		}
	}

	complete := 0
	durations := make([]float64, 0, len(byRespondent))
	for _, s := range byRespondent {
		if len(s.answered) == len(questions) {
			complete++
		}
		durations = append(durations, s.last.Sub(s.first).Minutes())
	}

	rate = 100 * float64(complete) / float64(len(byRespondent))
	avgMinutes, _ = stats.Mean(durations)
	return rate, avgMinutes
}
