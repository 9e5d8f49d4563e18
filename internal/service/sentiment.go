package service

import (
	"strings"

	"surveymon/internal/config"
	"surveymon/internal/model"
)

// Sentiment labels
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// classifySentiment labels one free-text response by comparing raw substring
// counts of the positive and negative keyword lists. Equal counts, including
// zero hits, classify neutral.
func classifySentiment(text string, cfg *config.AnalyticsConfig) string {
	positive := countKeywords(text, cfg.PositiveKeywords)
	negative := countKeywords(text, cfg.NegativeKeywords)
	switch {
	case positive > negative:
		return SentimentPositive
	case negative > positive:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func countKeywords(text string, keywords []string) int {
	total := 0
	for _, kw := range keywords {
		total += strings.Count(text, kw)
	}
	return total
}

// analyzeSentiment classifies every non-empty free-text answer independently
// and returns the aggregate counts. Empty answers are not text responses.
func analyzeSentiment(questions []model.Question, answers []model.Answer, cfg *config.AnalyticsConfig) model.SentimentCounts {
	freeText := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.Type.IsFreeText() {
			freeText[q.ID] = true
		}
	}

	var counts model.SentimentCounts
	for _, a := range answers {
		if !freeText[a.QuestionID] || a.Value == "" {
			continue
		}
		counts.TotalTextResponses++
		switch classifySentiment(a.Value, cfg) {
		case SentimentPositive:
			counts.Positive++
		case SentimentNegative:
			counts.Negative++
		default:
			counts.Neutral++
		}
	}
	return counts
}
