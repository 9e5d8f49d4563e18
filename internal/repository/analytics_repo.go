package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"surveymon/internal/model"
)

// AnalyticsRepo handles MongoDB operations for snapshots and insights.
// Snapshots are upserted (one per survey, last writer wins); insights are
// append-only.
type AnalyticsRepo interface {
	UpsertSnapshot(ctx context.Context, snapshot *model.AnalyticsSnapshot) error
	GetSnapshot(ctx context.Context, surveyID string) (*model.AnalyticsSnapshot, error)
	InsertInsights(ctx context.Context, insights []model.Insight) error
	ListInsights(ctx context.Context, surveyID string) ([]model.Insight, error)
}

type analyticsRepo struct {
	snapshots *mongo.Collection
	insights  *mongo.Collection
}

// NewAnalyticsRepo creates a new analytics repository
func NewAnalyticsRepo(db *mongo.Database) AnalyticsRepo {
	return &analyticsRepo{
		snapshots: db.Collection("analytics_snapshots"),
		insights:  db.Collection("insights"),
	}
}

func (r *analyticsRepo) UpsertSnapshot(ctx context.Context, snapshot *model.AnalyticsSnapshot) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.snapshots.ReplaceOne(ctx, bson.M{"surveyId": snapshot.SurveyID}, snapshot, opts)
	return err
}

func (r *analyticsRepo) GetSnapshot(ctx context.Context, surveyID string) (*model.AnalyticsSnapshot, error) {
	var snapshot model.AnalyticsSnapshot
	err := r.snapshots.FindOne(ctx, bson.M{"surveyId": surveyID}).Decode(&snapshot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *analyticsRepo) InsertInsights(ctx context.Context, insights []model.Insight) error {
	if len(insights) == 0 {
		return nil
	}
	docs := make([]interface{}, len(insights))
	for i := range insights {
		docs[i] = insights[i]
	}
	_, err := r.insights.InsertMany(ctx, docs)
	return err
}

func (r *analyticsRepo) ListInsights(ctx context.Context, surveyID string) ([]model.Insight, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.insights.Find(ctx, bson.M{"surveyId": surveyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var insights []model.Insight
	if err := cursor.All(ctx, &insights); err != nil {
		return nil, err
	}
	return insights, nil
}
