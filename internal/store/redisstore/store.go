package redisstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const dashboardKey = "admin:dashboard"

// Store caches small JSON blobs in redis. All getters return (nil, nil) on a
// cache miss.
type Store struct {
	client *redis.Client
}

func New(addr, password string, db int) *Store {
	return &Store{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) GetDashboard(ctx context.Context) ([]byte, error) {
	b, err := s.client.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (s *Store) SetDashboard(ctx context.Context, payload []byte, ttl time.Duration) error {
	return s.client.Set(ctx, dashboardKey, payload, ttl).Err()
}
