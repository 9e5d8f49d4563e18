package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeValueCheckbox(t *testing.T) {
	v := DecodeValue(QuestionTypeCheckbox, `["optionA","optionB"]`)
	require.Equal(t, ValueChoices, v.Kind)
	assert.Equal(t, []string{"optionA", "optionB"}, v.Choices)
}

func TestDecodeValueCheckboxMalformed(t *testing.T) {
	v := DecodeValue(QuestionTypeCheckbox, "not json")
	assert.Equal(t, ValueInvalid, v.Kind)
	assert.Equal(t, "not json", v.Text)
}

func TestDecodeValueRating(t *testing.T) {
	v := DecodeValue(QuestionTypeRating, "4.5")
	require.Equal(t, ValueNumber, v.Kind)
	assert.Equal(t, 4.5, v.Number)

	v = DecodeValue(QuestionTypeRating, "five")
	assert.Equal(t, ValueInvalid, v.Kind)
}

func TestDecodeValueText(t *testing.T) {
	v := DecodeValue(QuestionTypeText, "とても良い")
	require.Equal(t, ValueText, v.Kind)
	assert.Equal(t, "とても良い", v.Text)
}

func TestQuestionTypePredicates(t *testing.T) {
	assert.True(t, QuestionTypeText.IsFreeText())
	assert.True(t, QuestionTypeTextarea.IsFreeText())
	assert.False(t, QuestionTypeRadio.IsFreeText())

	assert.True(t, QuestionTypeRadio.IsClosedForm())
	assert.True(t, QuestionTypeCheckbox.IsClosedForm())
	assert.True(t, QuestionTypeSelect.IsClosedForm())
	assert.True(t, QuestionTypeRating.IsClosedForm())
	assert.False(t, QuestionTypeText.IsClosedForm())
	assert.False(t, QuestionTypeDate.IsClosedForm())
}
