package sequence

import (
	"context"
	"fmt"
	"guytogo/internal/usecase/interfaces"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultDecisionKey = "guytogo:decision_seq"

// RedisSequencer hands out decision numbers with INCR, so every API replica
// shares one ordering.
type RedisSequencer struct {
	client redis.Cmdable
	key    string
}

var _ interfaces.IDecisionSequencer = (*RedisSequencer)(nil)

func NewRedisSequencerFromURL(redisURL, key string) (*RedisSequencer, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Printf("[Redis/Sequence] Connected to %s", opts.Addr)

	return NewRedisSequencer(client, key), nil
}

func NewRedisSequencer(client redis.Cmdable, key string) *RedisSequencer {
	if key == "" {
		key = DefaultDecisionKey
	}
	return &RedisSequencer{client: client, key: key}
}

func (s *RedisSequencer) Next(ctx context.Context) (int64, error) {
	n, err := s.client.Incr(ctx, s.key).Result()
	if err != nil {
		log.Printf("[sequence][redis] incr failed key=%s err=%v", s.key, err)
		return 0, err
	}
	return n, nil
}
