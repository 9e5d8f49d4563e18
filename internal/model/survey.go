package model

import "time"

// QuestionType defines the type of question
type QuestionType string

const (
	QuestionTypeText     QuestionType = "text"     // Short free text
	QuestionTypeTextarea QuestionType = "textarea" // Long free text
	QuestionTypeRadio    QuestionType = "radio"    // Single choice
	QuestionTypeCheckbox QuestionType = "checkbox" // Multiple choice, value stored as a JSON array
	QuestionTypeSelect   QuestionType = "select"   // Single choice from a dropdown
	QuestionTypeRating   QuestionType = "rating"   // Numeric rating
	QuestionTypeDate     QuestionType = "date"     // Date string
	QuestionTypeNumber   QuestionType = "number"   // Numeric answer
)

// IsFreeText reports whether answers to this type are free-form text.
func (t QuestionType) IsFreeText() bool {
	return t == QuestionTypeText || t == QuestionTypeTextarea
}

// IsClosedForm reports whether this type has a fixed, enumerable option set.
func (t QuestionType) IsClosedForm() bool {
	switch t {
	case QuestionTypeRadio, QuestionTypeCheckbox, QuestionTypeSelect, QuestionTypeRating:
		return true
	}
	return false
}

// Question is a question template embedded in a survey
type Question struct {
	ID         string       `json:"id" bson:"id"`
	Text       string       `json:"text" bson:"text"`
	Type       QuestionType `json:"type" bson:"type"`
	Options    []string     `json:"options,omitempty" bson:"options,omitempty"` // Closed-form types only
	IsRequired bool         `json:"isRequired" bson:"isRequired"`
	OrderIndex int          `json:"orderIndex" bson:"orderIndex"`
}

// Survey is a persistent survey created by an admin
type Survey struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	AdminID     string     `json:"adminId" bson:"adminId"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Points      int        `json:"points" bson:"points"` // Awarded on completion
	Status      string     `json:"status" bson:"status"` // "draft", "active", "closed"
	Questions   []Question `json:"questions" bson:"questions"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updatedAt"`
}
