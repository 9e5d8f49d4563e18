package service

import (
	"unicode/utf8"

	"github.com/montanaflynn/stats"

	"surveymon/internal/model"
)

// scoreQuality blends three factors into one 0-100 quality score: the
// completion rate, the mean character length of free-text answers, and the
// per-question answer consistency of single-valued closed questions.
//
// The length factor is deliberately left in raw character units rather than
// normalized, matching the reference scoring; the blended result is clamped
// to the contract range afterwards.
func scoreQuality(questions []model.Question, answers []model.Answer, completionRate float64) float64 {
	typeByID := make(map[string]model.QuestionType, len(questions))
	for _, q := range questions {
		typeByID[q.ID] = q.Type
	}

	// Mean rune length of non-empty free-text answers. Empty answers are
	// excluded from the average, not counted as zero.
	var lengths []float64
	for _, a := range answers {
		if t, ok := typeByID[a.QuestionID]; ok && t.IsFreeText() && a.Value != "" {
			lengths = append(lengths, float64(utf8.RuneCountInString(a.Value)))
		}
	}
	avgLength, _ := stats.Mean(lengths)

	consistency := responseConsistency(questions, answers)

	score := (completionRate + avgLength + consistency) / 3
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// responseConsistency averages, over every radio/select/rating question, the
// share of answers held by that question's most frequent answer (as a
// percentage). Surveys without such questions score 0.
func responseConsistency(questions []model.Question, answers []model.Answer) float64 {
	byQuestion := make(map[string][]string)
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a.Value)
	}

	var perQuestion []float64
	for _, q := range questions {
		switch q.Type {
		case model.QuestionTypeRadio, model.QuestionTypeSelect, model.QuestionTypeRating:
		default:
			continue
		}
		values := byQuestion[q.ID]
		if len(values) == 0 {
			continue
		}
		counts := make(map[string]int)
		max := 0
		for _, v := range values {
			counts[v]++
			if counts[v] > max {
				max = counts[v]
			}
		}
		perQuestion = append(perQuestion, 100*float64(max)/float64(len(values)))
	}

	mean, _ := stats.Mean(perQuestion)
	return mean
}
