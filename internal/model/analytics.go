package model

import "time"

// QuestionSummary is the per-question slice of a snapshot, ordered by the
// survey's question order.
type QuestionSummary struct {
	QuestionID    string       `json:"questionId" bson:"questionId"`
	QuestionText  string       `json:"questionText" bson:"questionText"`
	QuestionType  QuestionType `json:"questionType" bson:"questionType"`
	ResponseCount int          `json:"responseCount" bson:"responseCount"`
	ResponseRate  float64      `json:"responseRate" bson:"responseRate"` // % of survey respondents

	// Closed-form types only
	AnswerDistribution map[string]int `json:"answerDistribution,omitempty" bson:"answerDistribution,omitempty"`
	MostCommonAnswer   string         `json:"mostCommonAnswer,omitempty" bson:"mostCommonAnswer,omitempty"`

	// Rating questions only; AverageRating is nil when no answer parsed
	AverageRating      *float64       `json:"averageRating,omitempty" bson:"averageRating,omitempty"`
	RatingDistribution map[string]int `json:"ratingDistribution,omitempty" bson:"ratingDistribution,omitempty"`
}

// DemographicBreakdown groups the survey's distinct respondents three
// independent ways. Keys absent from the data are absent from the maps,
// except the explicit unknown buckets.
type DemographicBreakdown struct {
	Gender              map[string]int `json:"gender" bson:"gender"`
	AgeGroup            map[string]int `json:"ageGroup" bson:"ageGroup"`
	RegistrationRecency map[string]int `json:"registrationRecency" bson:"registrationRecency"`
}

// SentimentCounts aggregates keyword-heuristic classification of every
// non-empty free-text answer.
type SentimentCounts struct {
	Positive           int `json:"positive" bson:"positive"`
	Negative           int `json:"negative" bson:"negative"`
	Neutral            int `json:"neutral" bson:"neutral"`
	TotalTextResponses int `json:"totalTextResponses" bson:"totalTextResponses"`
}

// TrendData buckets answers by UTC calendar date. CumulativeResponses carries
// the running total up to and including each date present in DailyResponses.
type TrendData struct {
	DailyResponses      map[string]int `json:"dailyResponses" bson:"dailyResponses"`
	CumulativeResponses map[string]int `json:"cumulativeResponses" bson:"cumulativeResponses"`
}

// AnalyticsSnapshot is the complete computed analytics result for one survey
// at one point in time. Regeneration replaces the stored document wholesale.
type AnalyticsSnapshot struct {
	SurveyID                 string               `json:"surveyId" bson:"surveyId"`
	TotalResponses           int                  `json:"totalResponses" bson:"totalResponses"`
	CompletionRate           float64              `json:"completionRate" bson:"completionRate"`
	AverageCompletionMinutes float64              `json:"averageCompletionMinutes" bson:"averageCompletionMinutes"`
	ResponseQualityScore     float64              `json:"responseQualityScore" bson:"responseQualityScore"`
	DemographicBreakdown     DemographicBreakdown `json:"demographicBreakdown" bson:"demographicBreakdown"`
	QuestionAnalytics        []QuestionSummary    `json:"questionAnalytics" bson:"questionAnalytics"`
	SentimentAnalysis        SentimentCounts      `json:"sentimentAnalysis" bson:"sentimentAnalysis"`
	TrendData                TrendData            `json:"trendData" bson:"trendData"`
	GeneratedAt              time.Time            `json:"generatedAt" bson:"generatedAt"`
}
