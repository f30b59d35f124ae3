package ledger

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"github.com/tripsmith/trip-cli/internal/model"
)

const redisKeyPrefix = "trip:candidates:"

// RedisLedger keeps ranked result sets in Redis, one JSON value per session
// key. Overwrites are atomic, which covers the single-writer contract.
type RedisLedger struct {
	client *redis.Client
}

// NewRedis creates a RedisLedger around an existing client.
func NewRedis(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

// OpenRedis dials Redis and verifies the connection.
func OpenRedis(ctx context.Context, addr, password string, db int) (*RedisLedger, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, eris.Wrapf(err, "ledger: redis ping %s", addr)
	}
	return &RedisLedger{client: client}, nil
}

func (l *RedisLedger) Record(ctx context.Context, sessionID string, candidates []model.CandidateItinerary) error {
	payload, err := json.Marshal(candidates)
	if err != nil {
		return eris.Wrap(err, "ledger: marshal candidates")
	}
	if err := l.client.Set(ctx, redisKeyPrefix+sessionID, payload, 0).Err(); err != nil {
		return eris.Wrapf(err, "ledger: redis record session %s", sessionID)
	}
	return nil
}

func (l *RedisLedger) Get(ctx context.Context, sessionID string) ([]model.CandidateItinerary, error) {
	payload, err := l.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoCandidates
	}
	if err != nil {
		return nil, eris.Wrapf(err, "ledger: redis get session %s", sessionID)
	}

	var candidates []model.CandidateItinerary
	if err := json.Unmarshal(payload, &candidates); err != nil {
		return nil, eris.Wrapf(err, "ledger: unmarshal candidates for session %s", sessionID)
	}
	if candidates == nil {
		candidates = []model.CandidateItinerary{}
	}
	return candidates, nil
}

func (l *RedisLedger) Close() error {
	return l.client.Close()
}
