package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"agrioptimize.backend/internal/domain/entities"
	"agrioptimize.backend/pkg/redis"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const historyKeyPrefix = "assistant:history:"

// RedisConversationStore keeps each user's recent exchanges in Redis. The
// whole history shares one TTL; any append resets it, so an idle
// conversation expires as a unit.
type RedisConversationStore struct {
	ttl   time.Duration
	limit int
}

// NewRedisConversationStore creates a conversation store. limit is the
// maximum number of exchanges (user turn + model turn) retained per user.
func NewRedisConversationStore(ttl time.Duration, limit int) *RedisConversationStore {
	return &RedisConversationStore{ttl: ttl, limit: limit}
}

// History returns the stored turns for userID, oldest first
func (s *RedisConversationStore) History(ctx context.Context, userID uuid.UUID) ([]entities.ConversationTurn, error) {
	raw, err := redis.Get(ctx, historyKeyPrefix+userID.String())
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var turns []entities.ConversationTurn
	if err := json.Unmarshal([]byte(raw), &turns); err != nil {
		return nil, err
	}
	return turns, nil
}

// Append adds turns to the user's history, trims it to the retention limit
// and resets the TTL.
func (s *RedisConversationStore) Append(ctx context.Context, userID uuid.UUID, turns ...entities.ConversationTurn) error {
	existing, err := s.History(ctx, userID)
	if err != nil {
		return err
	}

	combined := append(existing, turns...)
	if max := s.limit * 2; max > 0 && len(combined) > max {
		combined = combined[len(combined)-max:]
	}

	data, err := json.Marshal(combined)
	if err != nil {
		return err
	}
	return redis.Set(ctx, historyKeyPrefix+userID.String(), data, s.ttl)
}

// Clear drops the user's history
func (s *RedisConversationStore) Clear(ctx context.Context, userID uuid.UUID) error {
	return redis.Del(ctx, historyKeyPrefix+userID.String())
}
