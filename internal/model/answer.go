package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// Answer is one respondent's answer to one question. At most one answer
// exists per (question, respondent) pair; absence means "not answered".
type Answer struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	SurveyID     string    `json:"surveyId" bson:"surveyId"`
	QuestionID   string    `json:"questionId" bson:"questionId"`
	RespondentID string    `json:"respondentId" bson:"respondentId"`
	Value        string    `json:"value" bson:"value"` // Raw: text, numeric string, or JSON array
	AnsweredAt   time.Time `json:"answeredAt" bson:"answeredAt"`
}

// ValueKind tags the decoded form of an answer value
type ValueKind int

const (
	ValueText    ValueKind = iota // Free text, dates, single selections
	ValueChoices                  // Decoded checkbox selections
	ValueNumber                   // Parsed rating/number
	ValueInvalid                  // Malformed for the declared question type
)

// AnswerValue is an answer decoded against its question's declared type,
// so consumers never re-parse the raw string.
type AnswerValue struct {
	Kind    ValueKind
	Text    string
	Choices []string
	Number  float64
}

// DecodeValue interprets a raw stored value according to the question type.
// Malformed numeric or JSON values decode to ValueInvalid rather than failing;
// the analytics pass drops them from the affected aggregate.
func DecodeValue(t QuestionType, raw string) AnswerValue {
	switch t {
	case QuestionTypeCheckbox:
		var choices []string
		if err := json.Unmarshal([]byte(raw), &choices); err != nil {
			return AnswerValue{Kind: ValueInvalid, Text: raw}
		}
		return AnswerValue{Kind: ValueChoices, Choices: choices}
	case QuestionTypeRating, QuestionTypeNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return AnswerValue{Kind: ValueInvalid, Text: raw}
		}
		return AnswerValue{Kind: ValueNumber, Number: n, Text: raw}
	default:
		return AnswerValue{Kind: ValueText, Text: raw}
	}
}
