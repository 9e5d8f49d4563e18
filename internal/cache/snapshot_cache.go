package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"surveymon/internal/model"
)

// SnapshotCache handles Redis caching of analytics snapshots
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, surveyID string) (*model.AnalyticsSnapshot, error)
	SetSnapshot(ctx context.Context, snapshot *model.AnalyticsSnapshot) error
	Invalidate(ctx context.Context, surveyID string) error
}

type snapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotCache creates a new snapshot cache
func NewSnapshotCache(client *redis.Client) SnapshotCache {
	return &snapshotCache{
		client: client,
		ttl:    1 * time.Hour,
	}
}

func (c *snapshotCache) snapshotKey(surveyID string) string {
	return fmt.Sprintf("survey:%s:analytics", surveyID)
}

func (c *snapshotCache) GetSnapshot(ctx context.Context, surveyID string) (*model.AnalyticsSnapshot, error) {
	data, err := c.client.Get(ctx, c.snapshotKey(surveyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snapshot model.AnalyticsSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *snapshotCache) SetSnapshot(ctx context.Context, snapshot *model.AnalyticsSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.snapshotKey(snapshot.SurveyID), data, c.ttl).Err()
}

func (c *snapshotCache) Invalidate(ctx context.Context, surveyID string) error {
	return c.client.Del(ctx, c.snapshotKey(surveyID)).Err()
}
