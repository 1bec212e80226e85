package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// BenchmarkCache keeps composite scores per organization type in a Redis ZSET
type BenchmarkCache interface {
	Record(ctx context.Context, organizationType, assessmentID string, score int) error
	// Rank returns how many peers scored strictly lower and the peer total.
	Rank(ctx context.Context, organizationType string, score int) (below int64, total int64, err error)
}

type benchmarkCache struct {
	client *redis.Client
}

// NewBenchmarkCache creates a new benchmark cache
func NewBenchmarkCache(client *redis.Client) BenchmarkCache {
	return &benchmarkCache{
		client: client,
	}
}

func (c *benchmarkCache) key(organizationType string) string {
	return fmt.Sprintf("benchmark:%s", organizationType)
}

func (c *benchmarkCache) Record(ctx context.Context, organizationType, assessmentID string, score int) error {
	return c.client.ZAdd(ctx, c.key(organizationType), redis.Z{
		Score:  float64(score),
		Member: assessmentID,
	}).Err()
}

func (c *benchmarkCache) Rank(ctx context.Context, organizationType string, score int) (int64, int64, error) {
	key := c.key(organizationType)

	pipe := c.client.Pipeline()
	below := pipe.ZCount(ctx, key, "-inf", "("+strconv.Itoa(score))
	total := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, err
	}
	return below.Val(), total.Val(), nil
}
