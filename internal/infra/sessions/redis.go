package sessions

import (
	"context"
	"errors"
	"time"

	"voltgate/internal/domain"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore backs sessions with redis. Tokens are plain keys with a TTL;
// expiry needs no sweeper and revocation is a DEL.
func NewRedisStore(addr, password string, db int) (*redisStore, error) {
	if addr == "" {
		return nil, errors.New("redis addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisStore{client: client}, nil
}

func redisKey(scope domain.SessionScope, token string) string {
	return "vg:sess:" + string(scope) + ":" + token
}

func (s *redisStore) Put(ctx context.Context, scope domain.SessionScope, token, subjectID string, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.New("session ttl must be positive")
	}
	return s.client.Set(ctx, redisKey(scope, token), subjectID, ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, scope domain.SessionScope, token string) (string, error) {
	subject, err := s.client.Get(ctx, redisKey(scope, token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return subject, nil
}

func (s *redisStore) Delete(ctx context.Context, scope domain.SessionScope, token string) error {
	return s.client.Del(ctx, redisKey(scope, token)).Err()
}
