package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"orgassess/internal/model"
)

// ResultCache keeps recently scored assessments in Redis
type ResultCache interface {
	Get(ctx context.Context, id string) (*model.Assessment, error)
	Set(ctx context.Context, assessment *model.Assessment) error
}

type resultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a new result cache
func NewResultCache(client *redis.Client, ttl time.Duration) ResultCache {
	return &resultCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *resultCache) key(id string) string {
	return fmt.Sprintf("assessment:%s", id)
}

func (c *resultCache) Get(ctx context.Context, id string) (*model.Assessment, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var assessment model.Assessment
	if err := json.Unmarshal([]byte(data), &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (c *resultCache) Set(ctx context.Context, assessment *model.Assessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(assessment.ID), data, c.ttl).Err()
}
