package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"surveymon/internal/config"
	"surveymon/internal/model"
	"surveymon/internal/repository"
)

// Confidence scores are fixed per insight type.
const (
	confidenceCompletionRate  = 85
	confidenceResponseQuality = 80
	confidenceSentiment       = 70
	confidenceDemographicBias = 75
)

// Recommendation lists are fixed per insight type, not configurable.
var (
	completionRecommendations = []string{
		"Reduce the number of questions to 10 or fewer",
		"Increase the completion reward points by 20%",
		"Keep the expected completion time under 5 minutes",
	}
	qualityRecommendations = []string{
		"Clarify the wording of ambiguous questions",
		"Review answer options so every choice is unambiguous",
		"Reconsider which questions are marked as required",
	}
	sentimentRecommendations = []string{
		"Analyze negative responses in detail",
		"Identify concrete areas for improvement",
		"Collect follow-up feedback from users",
	}
	demographicRecommendations = []string{
		"Promote the survey through different channels",
		"Adjust incentives to attract a broader audience",
		"Reconsider the target demographic",
	}
)

// InsightService evaluates fixed threshold rules against a snapshot and
// persists the resulting insight records (append-only).
type InsightService struct {
	analyticsRepo repository.AnalyticsRepo
	broadcaster   Broadcaster
	cfg           *config.AnalyticsConfig
	log           *zap.Logger
}

// NewInsightService creates a new insight service
func NewInsightService(analyticsRepo repository.AnalyticsRepo, cfg *config.AnalyticsConfig, log *zap.Logger) *InsightService {
	return &InsightService{
		analyticsRepo: analyticsRepo,
		cfg:           cfg,
		log:           log,
	}
}

// SetBroadcaster injects the dashboard broadcaster (avoids import cycle)
func (s *InsightService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// ComputeInsights evaluates every rule independently against a snapshot and
// returns the insights that fired, possibly none. A survey with zero
// respondents yields no insights at all: with no data there is nothing to
// recommend, so the low-completion rule is suppressed rather than firing on
// the defined-as-zero rate.
func (s *InsightService) ComputeInsights(snapshot *model.AnalyticsSnapshot, surveyID string) []model.Insight {
	var insights []model.Insight
	if snapshot.TotalResponses == 0 {
		return insights
	}

	if snapshot.CompletionRate < s.cfg.LowCompletionRate {
		insights = append(insights, model.Insight{
			SurveyID: surveyID,
			Type:     model.InsightCompletionRate,
			Title:    "Low completion rate",
			Description: fmt.Sprintf("Completion rate is %.1f%%, below the %.0f%% target. Respondents are abandoning the survey before the end.",
				snapshot.CompletionRate, s.cfg.LowCompletionRate),
			ConfidenceScore: confidenceCompletionRate,
			DataPoints: map[string]float64{
				"completion_rate": snapshot.CompletionRate,
			},
			Recommendations: completionRecommendations,
			GeneratedByAI:   true,
		})
	}

	if snapshot.ResponseQualityScore < s.cfg.LowQualityScore {
		insights = append(insights, model.Insight{
			SurveyID: surveyID,
			Type:     model.InsightResponseQuality,
			Title:    "Low response quality",
			Description: fmt.Sprintf("Response quality score is %.1f, below the %.0f threshold. Answers are short or inconsistent.",
				snapshot.ResponseQualityScore, s.cfg.LowQualityScore),
			ConfidenceScore: confidenceResponseQuality,
			DataPoints: map[string]float64{
				"response_quality_score": snapshot.ResponseQualityScore,
			},
			Recommendations: qualityRecommendations,
			GeneratedByAI:   true,
		})
	}

	if insight := s.sentimentInsight(snapshot, surveyID); insight != nil {
		insights = append(insights, *insight)
	}
	if insight := s.demographicInsight(snapshot, surveyID); insight != nil {
		insights = append(insights, *insight)
	}

	return insights
}

func (s *InsightService) sentimentInsight(snapshot *model.AnalyticsSnapshot, surveyID string) *model.Insight {
	sa := snapshot.SentimentAnalysis
	if sa.TotalTextResponses == 0 {
		return nil
	}
	total := float64(sa.TotalTextResponses)
	negativeRatio := float64(sa.Negative) / total
	if negativeRatio <= s.cfg.NegativeSentimentRatio {
		return nil
	}

	return &model.Insight{
		SurveyID: surveyID,
		Type:     model.InsightSentiment,
		Title:    "High negative sentiment",
		Description: fmt.Sprintf("%.1f%% of free-text responses are negative, above the %.0f%% threshold.",
			100*negativeRatio, 100*s.cfg.NegativeSentimentRatio),
		ConfidenceScore: confidenceSentiment,
		DataPoints: map[string]float64{
			"positive_pct": 100 * float64(sa.Positive) / total,
			"negative_pct": 100 * negativeRatio,
			"neutral_pct":  100 * float64(sa.Neutral) / total,
		},
		Recommendations: sentimentRecommendations,
		GeneratedByAI:   true,
	}
}

// demographicInsight fires for the first gender bucket, in sorted-key order,
// whose share of known-gender respondents exceeds the dominance threshold.
// At most one demographic insight is emitted per snapshot.
func (s *InsightService) demographicInsight(snapshot *model.AnalyticsSnapshot, surveyID string) *model.Insight {
	genders := snapshot.DemographicBreakdown.Gender
	total := 0
	keys := make([]string, 0, len(genders))
	for gender, count := range genders {
		if gender == model.GenderUnknown {
			continue
		}
		total += count
		keys = append(keys, gender)
	}
	if total == 0 {
		return nil
	}
	sort.Strings(keys)

	for _, gender := range keys {
		share := float64(genders[gender]) / float64(total)
		if share <= s.cfg.GenderDominanceShare {
			continue
		}
		return &model.Insight{
			SurveyID: surveyID,
			Type:     model.InsightDemographicBias,
			Title:    "Skewed respondent demographics",
			Description: fmt.Sprintf("%.1f%% of respondents with a known gender are %s, above the %.0f%% dominance threshold.",
				100*share, gender, 100*s.cfg.GenderDominanceShare),
			ConfidenceScore: confidenceDemographicBias,
			DataPoints: map[string]float64{
				"dominant_share": 100 * share,
				"dominant_count": float64(genders[gender]),
				"gendered_total": float64(total),
			},
			Recommendations: demographicRecommendations,
			GeneratedByAI:   true,
		}
	}
	return nil
}

// Generate evaluates the rules against a freshly computed snapshot, persists
// any insights that fired and notifies subscribed dashboards.
func (s *InsightService) Generate(ctx context.Context, snapshot *model.AnalyticsSnapshot) ([]model.Insight, error) {
	insights := s.ComputeInsights(snapshot, snapshot.SurveyID)
	now := time.Now()
	for i := range insights {
		insights[i].ID = uuid.New().String()
		insights[i].CreatedAt = now
	}

	if len(insights) > 0 {
		if err := s.analyticsRepo.InsertInsights(ctx, insights); err != nil {
			return nil, err
		}
		if s.broadcaster != nil {
			s.broadcaster.BroadcastToAdmins(snapshot.SurveyID, "insights_generated", insights)
		}
	}

	s.log.Info("insights evaluated",
		zap.String("surveyId", snapshot.SurveyID),
		zap.Int("fired", len(insights)))

	return insights, nil
}

// ListBySurvey returns the stored insight history for a survey, newest first.
func (s *InsightService) ListBySurvey(ctx context.Context, surveyID string) ([]model.Insight, error) {
	return s.analyticsRepo.ListInsights(ctx, surveyID)
}
