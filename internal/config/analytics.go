package config

// AgeBucket assigns an age strictly below Max to Label. Buckets are evaluated
// in order, left-closed; ages past the last bucket fall into the overflow label.
type AgeBucket struct {
	Max   int    `json:"max"`
	Label string `json:"label"`
}

// RecencyBucket assigns a whole-month account age strictly below MaxMonths to
// Label.
type RecencyBucket struct {
	MaxMonths int    `json:"maxMonths"`
	Label     string `json:"label"`
}

// AnalyticsConfig holds the fixed thresholds and lookup tables driving the
// analytics and insight computations. Injected so tests can override them;
// not configurable per survey.
type AnalyticsConfig struct {
	// Insight thresholds
	LowCompletionRate      float64 `json:"lowCompletionRate"`      // completion_rate insight fires below this
	LowQualityScore        float64 `json:"lowQualityScore"`        // response_quality insight fires below this
	NegativeSentimentRatio float64 `json:"negativeSentimentRatio"` // sentiment_analysis insight fires above this
	GenderDominanceShare   float64 `json:"genderDominanceShare"`   // demographic_bias insight fires above this

	// Sentiment keyword lists. Stored as conjugation stems so inflected
	// Japanese forms still match (使いやすくて counts for 使いやす).
	PositiveKeywords []string `json:"positiveKeywords"`
	NegativeKeywords []string `json:"negativeKeywords"`

	// Demographic bucket tables
	AgeBuckets       []AgeBucket     `json:"ageBuckets"`
	AgeOverflowLabel string          `json:"ageOverflowLabel"`
	AgeUnknownLabel  string          `json:"ageUnknownLabel"`
	RecencyBuckets   []RecencyBucket `json:"recencyBuckets"`
	RecencyOverflow  string          `json:"recencyOverflow"`
}

// DefaultAnalyticsConfig returns the reference thresholds and lookup tables.
func DefaultAnalyticsConfig() *AnalyticsConfig {
	return &AnalyticsConfig{
		LowCompletionRate:      70.0,
		LowQualityScore:        60.0,
		NegativeSentimentRatio: 0.30,
		GenderDominanceShare:   0.70,

		PositiveKeywords: []string{"良い", "満足", "素晴らしい", "便利", "使いやす", "おすすめ", "気に入り", "最高"},
		NegativeKeywords: []string{"悪い", "不満", "不便", "使いにく", "問題", "困る", "最悪", "嫌い"},

		AgeBuckets: []AgeBucket{
			{Max: 20, Label: "under_20"},
			{Max: 30, Label: "20s"},
			{Max: 40, Label: "30s"},
			{Max: 50, Label: "40s"},
			{Max: 60, Label: "50s"},
		},
		AgeOverflowLabel: "over_60",
		AgeUnknownLabel:  "unknown",

		RecencyBuckets: []RecencyBucket{
			{MaxMonths: 1, Label: "last_month"},
			{MaxMonths: 3, Label: "last_3_months"},
			{MaxMonths: 6, Label: "last_6_months"},
			{MaxMonths: 12, Label: "last_year"},
		},
		RecencyOverflow: "over_year",
	}
}
