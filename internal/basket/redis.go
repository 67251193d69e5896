package basket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Bambyboi/skinet/internal/domain"
)

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:  client,
		baseTTL: 30 * 24 * time.Hour,
	}
}

// RedisStore owns basket persistence. Baskets are session-scoped, so the key
// carries a TTL; jitter spreads expiry of baskets created in bursts.
type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r *RedisStore) Get(ctx context.Context, basketID string) (*domain.Basket, error) {
	key := basketKey(basketID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrBasketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var b domain.Basket
	if err2 := json.Unmarshal(data, &b); err2 != nil {
		return nil, fmt.Errorf("unmarshal basket failed: %w", err2)
	}

	return &b, nil
}

func (r *RedisStore) Set(ctx context.Context, basket *domain.Basket) error {
	// An upsert with no items is a deletion: the basket lifecycle ends when
	// the last item is removed.
	if len(basket.Items) == 0 {
		return r.Delete(ctx, basket.ID)
	}

	key := basketKey(basket.ID)
	jsonBasket, err := json.Marshal(basket)
	if err != nil {
		return fmt.Errorf("marshal basket failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(60)) * time.Minute
	ttl := r.baseTTL + jitter
	if errSet := r.client.Set(ctx, key, jsonBasket, ttl).Err(); errSet != nil {
		return fmt.Errorf("redis set failed: %w", errSet)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, basketID string) error {
	key := basketKey(basketID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func basketKey(basketID string) string {
	return fmt.Sprintf("basket:%s", basketID)
}
