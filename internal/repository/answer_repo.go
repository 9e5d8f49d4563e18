package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surveymon/internal/model"
)

// AnswerRepo handles MongoDB operations for answers
type AnswerRepo interface {
	// Upsert stores an answer, replacing any previous answer by the same
	// respondent to the same question.
	Upsert(ctx context.Context, answer *model.Answer) error
	GetBySurveyID(ctx context.Context, surveyID string) ([]model.Answer, error)
	GetByRespondentID(ctx context.Context, surveyID, respondentID string) ([]model.Answer, error)
	DeleteBySurveyID(ctx context.Context, surveyID string) error
}

type answerRepo struct {
	collection *mongo.Collection
}

// NewAnswerRepo creates a new answer repository
func NewAnswerRepo(db *mongo.Database) AnswerRepo {
	return &answerRepo{
		collection: db.Collection("answers"),
	}
}

func (r *answerRepo) Upsert(ctx context.Context, answer *model.Answer) error {
	filter := bson.M{
		"surveyId":     answer.SurveyID,
		"questionId":   answer.QuestionID,
		"respondentId": answer.RespondentID,
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, filter, answer, opts)
	return err
}

func (r *answerRepo) GetBySurveyID(ctx context.Context, surveyID string) ([]model.Answer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": surveyID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []model.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepo) GetByRespondentID(ctx context.Context, surveyID, respondentID string) ([]model.Answer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"surveyId": surveyID, "respondentId": respondentID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var answers []model.Answer
	if err := cursor.All(ctx, &answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepo) DeleteBySurveyID(ctx context.Context, surveyID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"surveyId": surveyID})
	return err
}
