// Package intents stores one-time payment intents in Redis. An intent is
// written once with a TTL and removed atomically on consumption, so a token
// can never authorize two submissions.
package intents

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"storefront-api/internal/domain/payment"
	"storefront-api/internal/pkg/errs"
)

var (
	ErrIntentExists   = errs.New("payment intent already issued")
	ErrIntentNotFound = errs.New("payment intent not found or expired")
)

const keyPrefix = "payment-intent:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Issue writes the intent under its ID. SETNX guards against an ID collision
// ever overwriting a live intent.
func (s *RedisStore) Issue(ctx context.Context, intent *payment.Intent) error {
	data, err := json.Marshal(intent)
	if err != nil {
		return errs.Wrap(err, "failed to encode payment intent")
	}

	ok, err := s.client.SetNX(ctx, keyPrefix+intent.ID.String(), data, s.ttl).Result()
	if err != nil {
		return errs.Wrap(err, "failed to store payment intent")
	}
	if !ok {
		return ErrIntentExists
	}
	return nil
}

// Consume atomically fetches and deletes the intent. A second consumer, or a
// consumer arriving after the TTL, gets ErrIntentNotFound.
func (s *RedisStore) Consume(ctx context.Context, id uuid.UUID) (*payment.Intent, error) {
	data, err := s.client.GetDel(ctx, keyPrefix+id.String()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrIntentNotFound
		}
		return nil, errs.Wrap(err, "failed to consume payment intent")
	}

	var intent payment.Intent
	if err := json.Unmarshal([]byte(data), &intent); err != nil {
		return nil, errs.Wrap(err, "failed to decode payment intent")
	}
	return &intent, nil
}

func Connect(ctx context.Context, addr, password string, dbNum int) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbNum,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() { _ = client.Close() }
	return client, cleanup, nil
}
