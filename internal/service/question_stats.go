package service

import (
	"strconv"

	"github.com/montanaflynn/stats"
	"go.uber.org/zap"

	"surveymon/internal/model"
)

// distribution counts answer values while remembering first-encountered
// order, so ties for the most common answer break deterministically.
type distribution struct {
	counts map[string]int
	order  []string
}

func newDistribution() *distribution {
	return &distribution{counts: make(map[string]int)}
}

func (d *distribution) add(value string) {
	if _, ok := d.counts[value]; !ok {
		d.order = append(d.order, value)
	}
	d.counts[value]++
}

// mostCommon returns the first-encountered value with the maximum count.
func (d *distribution) mostCommon() string {
	best := ""
	max := 0
	for _, v := range d.order {
		if d.counts[v] > max {
			best = v
			max = d.counts[v]
		}
	}
	return best
}

// buildQuestionAnalytics computes a summary for every question in survey
// order: response count and rate for all types, answer distributions for
// closed-form types, and numeric rating stats for rating questions.
//
// Malformed values (unparseable rating numbers, invalid checkbox JSON) are
// dropped from the affected aggregate and logged, never fatal.
func buildQuestionAnalytics(questions []model.Question, answers []model.Answer, totalRespondents int, log *zap.Logger) []model.QuestionSummary {
	byQuestion := make(map[string][]model.Answer)
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	summaries := make([]model.QuestionSummary, 0, len(questions))
	for _, q := range questions {
		qAnswers := byQuestion[q.ID]
		summary := model.QuestionSummary{
			QuestionID:    q.ID,
			QuestionText:  q.Text,
			QuestionType:  q.Type,
			ResponseCount: len(qAnswers),
		}
		if totalRespondents > 0 {
			summary.ResponseRate = 100 * float64(len(qAnswers)) / float64(totalRespondents)
		}

		if q.Type.IsClosedForm() {
			dist := newDistribution()
			for _, a := range qAnswers {
				if q.Type == model.QuestionTypeCheckbox {
					decoded := model.DecodeValue(q.Type, a.Value)
					if decoded.Kind != model.ValueChoices {
						log.Debug("dropping malformed checkbox answer",
							zap.String("questionId", q.ID), zap.String("respondentId", a.RespondentID))
						continue
					}
					// Every selected option counts independently.
					for _, choice := range decoded.Choices {
						dist.add(choice)
					}
					continue
				}
				dist.add(a.Value)
			}
			summary.AnswerDistribution = dist.counts
			summary.MostCommonAnswer = dist.mostCommon()
		}

		if q.Type == model.QuestionTypeRating {
			summary.AverageRating, summary.RatingDistribution = ratingStats(q, qAnswers, log)
		}

		summaries = append(summaries, summary)
	}
	return summaries
}

// ratingStats parses every non-empty rating answer as a float; values that do
// not parse are excluded. AverageRating is nil when nothing parsed.
func ratingStats(q model.Question, answers []model.Answer, log *zap.Logger) (*float64, map[string]int) {
	dist := make(map[string]int)
	var values []float64
	for _, a := range answers {
		if a.Value == "" {
			continue
		}
		decoded := model.DecodeValue(q.Type, a.Value)
		if decoded.Kind != model.ValueNumber {
			log.Debug("dropping non-numeric rating answer",
				zap.String("questionId", q.ID), zap.String("value", a.Value))
			continue
		}
		values = append(values, decoded.Number)
		dist[strconv.FormatFloat(decoded.Number, 'f', -1, 64)]++
	}
	if len(values) == 0 {
		return nil, dist
	}
	mean, _ := stats.Mean(values)
	return &mean, dist
}
