package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"sort"
	"strconv"
	"strings"

	"surveymon/internal/repository"
)

// ReportService renders a stored snapshot plus its insight history into
// export formats for the admin dashboard.
type ReportService struct {
	analyticsRepo repository.AnalyticsRepo
}

// NewReportService creates a new report service
func NewReportService(analyticsRepo repository.AnalyticsRepo) *ReportService {
	return &ReportService{analyticsRepo: analyticsRepo}
}

// ExportCSV renders the stored snapshot and insights for a survey as CSV.
// Returns ErrSnapshotNotFound when analytics have never been generated.
func (s *ReportService) ExportCSV(ctx context.Context, surveyID string) ([]byte, error) {
	snapshot, err := s.analyticsRepo.GetSnapshot(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}
	insights, err := s.analyticsRepo.ListInsights(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	_ = w.Write([]string{"section", "key", "value"})
	_ = w.Write([]string{"summary", "survey_id", snapshot.SurveyID})
	_ = w.Write([]string{"summary", "total_responses", strconv.Itoa(snapshot.TotalResponses)})
	_ = w.Write([]string{"summary", "completion_rate", ftoa(snapshot.CompletionRate)})
	_ = w.Write([]string{"summary", "average_completion_minutes", ftoa(snapshot.AverageCompletionMinutes)})
	_ = w.Write([]string{"summary", "response_quality_score", ftoa(snapshot.ResponseQualityScore)})
	_ = w.Write([]string{"summary", "generated_at", snapshot.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z")})

	writeCountSection(w, "gender", snapshot.DemographicBreakdown.Gender)
	writeCountSection(w, "age_group", snapshot.DemographicBreakdown.AgeGroup)
	writeCountSection(w, "registration_recency", snapshot.DemographicBreakdown.RegistrationRecency)

	_ = w.Write([]string{"sentiment", "positive", strconv.Itoa(snapshot.SentimentAnalysis.Positive)})
	_ = w.Write([]string{"sentiment", "negative", strconv.Itoa(snapshot.SentimentAnalysis.Negative)})
	_ = w.Write([]string{"sentiment", "neutral", strconv.Itoa(snapshot.SentimentAnalysis.Neutral)})
	_ = w.Write([]string{"sentiment", "total_text_responses", strconv.Itoa(snapshot.SentimentAnalysis.TotalTextResponses)})

	for _, q := range snapshot.QuestionAnalytics {
		_ = w.Write([]string{"question", q.QuestionID, q.QuestionText})
		_ = w.Write([]string{"question_responses", q.QuestionID, strconv.Itoa(q.ResponseCount)})
		_ = w.Write([]string{"question_response_rate", q.QuestionID, ftoa(q.ResponseRate)})
		if q.MostCommonAnswer != "" {
			_ = w.Write([]string{"question_most_common", q.QuestionID, q.MostCommonAnswer})
		}
		if q.AverageRating != nil {
			_ = w.Write([]string{"question_average_rating", q.QuestionID, ftoa(*q.AverageRating)})
		}
	}

	writeCountSection(w, "daily_responses", snapshot.TrendData.DailyResponses)

	for _, insight := range insights {
		_ = w.Write([]string{"insight", string(insight.Type), insight.Description})
		_ = w.Write([]string{"insight_confidence", string(insight.Type), ftoa(insight.ConfidenceScore)})
		_ = w.Write([]string{"insight_recommendations", string(insight.Type), strings.Join(insight.Recommendations, "; ")})
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// writeCountSection emits one row per key in sorted order for stable output.
func writeCountSection(w *csv.Writer, section string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_ = w.Write([]string{section, k, strconv.Itoa(counts[k])})
	}
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
