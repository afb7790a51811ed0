package quotestore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a shared Redis instance, for deployments with
// more than one API replica. GETDEL gives the same pop-once guarantee the
// in-memory store gets from its mutex.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func key(userID int64) string {
	return fmt.Sprintf("pending_quote:%d", userID)
}

func (s *Redis) Put(ctx context.Context, userID int64, q PendingQuote) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(userID), raw, s.ttl).Err()
}

func (s *Redis) Pop(ctx context.Context, userID int64) (*PendingQuote, error) {
	raw, err := s.client.GetDel(ctx, key(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var q PendingQuote
	if err := json.Unmarshal(raw, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *Redis) Clear(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, key(userID)).Err()
}
