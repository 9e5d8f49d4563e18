package service

import (
	"sort"

	"surveymon/internal/model"
)

const trendDateLayout = "2006-01-02"

// buildTrend buckets every answer by its UTC calendar date and derives the
// cumulative running total in ascending date order. Counts are per answer,
// not per distinct respondent.
func buildTrend(answers []model.Answer) model.TrendData {
	daily := make(map[string]int)
	for _, a := range answers {
		daily[a.AnsweredAt.UTC().Format(trendDateLayout)]++
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	cumulative := make(map[string]int, len(daily))
	running := 0
	for _, d := range dates {
		running += daily[d]
		cumulative[d] = running
	}

	return model.TrendData{DailyResponses: daily, CumulativeResponses: cumulative}
}
