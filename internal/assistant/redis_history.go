package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisHistory keeps each session's conversation in a Redis list.
type RedisHistory struct {
	client redis.Cmdable
	prefix string
	limit  int
	ttl    time.Duration
}

func NewRedisHistory(client redis.Cmdable, limit int, ttl time.Duration) *RedisHistory {
	return &RedisHistory{client: client, prefix: "grandstay:chat:", limit: limit, ttl: ttl}
}

func (h *RedisHistory) key(session string) string {
	return h.prefix + session
}

func (h *RedisHistory) Append(ctx context.Context, session string, turns ...Turn) error {
	if len(turns) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(turns))
	for _, t := range turns {
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("encode turn: %w", err)
		}
		values = append(values, raw)
	}

	key := h.key(session)
	pipe := h.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	if h.limit > 0 {
		pipe.LTrim(ctx, key, int64(-h.limit), -1)
	}
	if h.ttl > 0 {
		pipe.Expire(ctx, key, h.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append chat history: %w", err)
	}
	return nil
}

func (h *RedisHistory) Load(ctx context.Context, session string) ([]Turn, error) {
	raw, err := h.client.LRange(ctx, h.key(session), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load chat history: %w", err)
	}
	turns := make([]Turn, 0, len(raw))
	for _, r := range raw {
		var t Turn
		if err := json.Unmarshal([]byte(r), &t); err != nil {
			return nil, fmt.Errorf("decode turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (h *RedisHistory) Reset(ctx context.Context, session string) error {
	if err := h.client.Del(ctx, h.key(session)).Err(); err != nil {
		return fmt.Errorf("reset chat history: %w", err)
	}
	return nil
}
