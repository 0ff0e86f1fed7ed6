package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/digital-house/community-service/internal/domain"
)

const (
	activeGenerationKey = "help_requests:active:gen"
	activePageKeyFormat = "help_requests:active:v%d:%d:%d"
)

// HelpRequestCache stores pages of the active help request board.
type HelpRequestCache interface {
	// GetActive returns a cached page, whether it was present and the generation it was looked up under.
	GetActive(ctx context.Context, limit, offset int) ([]domain.HelpRequest, int64, bool, error)
	// SetActive stores a page under gen, which must be the generation returned by the GetActive
	// call that preceded the database read. A write in between leaves the page unreachable.
	SetActive(ctx context.Context, gen int64, limit, offset int, items []domain.HelpRequest) error
	// InvalidateActive drops every cached page.
	InvalidateActive(ctx context.Context) error
}

// RedisHelpRequestCache keys pages by a generation counter. Invalidation is a single INCR,
// after which older pages are unreachable and expire on their TTL.
type RedisHelpRequestCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHelpRequestCache returns a Redis-backed cache, or a no-op cache when client is nil or ttl is zero.
func NewHelpRequestCache(client *redis.Client, ttl time.Duration) HelpRequestCache {
	if client == nil || ttl <= 0 {
		return noopCache{}
	}
	return &RedisHelpRequestCache{client: client, ttl: ttl}
}

func (c *RedisHelpRequestCache) GetActive(ctx context.Context, limit, offset int) ([]domain.HelpRequest, int64, bool, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return nil, 0, false, err
	}
	val, err := c.client.Get(ctx, pageKey(gen, limit, offset)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, false, nil
		}
		return nil, gen, false, fmt.Errorf("get active page from cache: %w", err)
	}
	var items []domain.HelpRequest
	if err := json.Unmarshal(val, &items); err != nil {
		return nil, gen, false, fmt.Errorf("unmarshal active page: %w", err)
	}
	return items, gen, true, nil
}

func (c *RedisHelpRequestCache) SetActive(ctx context.Context, gen int64, limit, offset int, items []domain.HelpRequest) error {
	val, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal active page: %w", err)
	}
	if err := c.client.Set(ctx, pageKey(gen, limit, offset), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("set active page in cache: %w", err)
	}
	return nil
}

func (c *RedisHelpRequestCache) InvalidateActive(ctx context.Context) error {
	if err := c.client.Incr(ctx, activeGenerationKey).Err(); err != nil {
		return fmt.Errorf("invalidate active pages: %w", err)
	}
	return nil
}

func (c *RedisHelpRequestCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, activeGenerationKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("read cache generation: %w", err)
	}
	return gen, nil
}

func pageKey(gen int64, limit, offset int) string {
	return fmt.Sprintf(activePageKeyFormat, gen, limit, offset)
}

type noopCache struct{}

func (noopCache) GetActive(context.Context, int, int) ([]domain.HelpRequest, int64, bool, error) {
	return nil, 0, false, nil
}

func (noopCache) SetActive(context.Context, int64, int, int, []domain.HelpRequest) error { return nil }

func (noopCache) InvalidateActive(context.Context) error { return nil }
