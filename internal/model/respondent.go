package model

import "time"

// Gender values are stored as free literals; anything empty counts as unknown.
const GenderUnknown = "unknown"

// Respondent is a user who has submitted at least one answer to a survey.
// The analytics core only reads it for demographic bucketing.
type Respondent struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	Gender    string     `json:"gender,omitempty" bson:"gender,omitempty"`
	BirthDate *time.Time `json:"birthDate,omitempty" bson:"birthDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"` // Account registration time
}
