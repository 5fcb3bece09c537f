package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bc99/gaming-platform/internal/logger"
)

// SessionRepository stores session records in Redis, keyed by session id.
// A record maps the opaque session id to a user id and expires after the
// configured TTL (30 days in production).
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save creates a session record with the repository TTL.
func (r *SessionRepository) Save(ctx context.Context, sessionID string, userID int64) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, strconv.FormatInt(userID, 10), r.ttl).Err()

	logger.Log.Infow("session save", "key", key, "user_id", userID, "error", err)
	return err
}

// GetUserID resolves a session id to a user id. A missing or expired
// session returns found=false without an error.
func (r *SessionRepository) GetUserID(ctx context.Context, sessionID string) (int64, bool, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		logger.Log.Errorw("session lookup failed", "key", key, "error", err)
		return 0, false, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		logger.Log.Errorw("corrupt session record", "key", key, "value", val, "error", err)
		return 0, false, err
	}

	return userID, true, nil
}

// Delete removes a session record. Deleting an absent session is not an
// error, which makes logout idempotent.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete", "key", key, "error", err)
	return err
}
