package model

import "time"

// InsightType identifies which threshold rule produced an insight
type InsightType string

const (
	InsightCompletionRate  InsightType = "completion_rate"
	InsightResponseQuality InsightType = "response_quality"
	InsightSentiment       InsightType = "sentiment_analysis"
	InsightDemographicBias InsightType = "demographic_bias"
)

// Insight is a heuristic, threshold-triggered recommendation derived from a
// snapshot. Insights are append-only; regeneration creates new records.
type Insight struct {
	ID              string             `json:"id" bson:"_id,omitempty"`
	SurveyID        string             `json:"surveyId" bson:"surveyId"`
	Type            InsightType        `json:"type" bson:"type"`
	Title           string             `json:"title" bson:"title"`
	Description     string             `json:"description" bson:"description"`
	ConfidenceScore float64            `json:"confidenceScore" bson:"confidenceScore"`
	DataPoints      map[string]float64 `json:"dataPoints" bson:"dataPoints"` // Metrics that triggered the rule
	Recommendations []string           `json:"recommendations" bson:"recommendations"`
	GeneratedByAI   bool               `json:"generatedByAi" bson:"generatedByAi"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}
