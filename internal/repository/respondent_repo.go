package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surveymon/internal/model"
)

// RespondentRepo handles MongoDB operations for respondents
type RespondentRepo interface {
	Upsert(ctx context.Context, respondent *model.Respondent) error
	GetByID(ctx context.Context, id string) (*model.Respondent, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Respondent, error)
}

type respondentRepo struct {
	collection *mongo.Collection
}

// NewRespondentRepo creates a new respondent repository
func NewRespondentRepo(db *mongo.Database) RespondentRepo {
	return &respondentRepo{
		collection: db.Collection("respondents"),
	}
}

func (r *respondentRepo) Upsert(ctx context.Context, respondent *model.Respondent) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": respondent.ID}, respondent, opts)
	return err
}

func (r *respondentRepo) GetByID(ctx context.Context, id string) (*model.Respondent, error) {
	var respondent model.Respondent
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&respondent)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &respondent, nil
}

func (r *respondentRepo) GetByIDs(ctx context.Context, ids []string) ([]model.Respondent, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var respondents []model.Respondent
	if err := cursor.All(ctx, &respondents); err != nil {
		return nil, err
	}
	return respondents, nil
}
