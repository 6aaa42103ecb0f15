package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type SessionStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionStore(rdb *redis.Client, cfg config.Config) *SessionStore {
	return &SessionStore{rdb: rdb, ttl: cfg.Session.TTL}
}

func sessionKey(clientID uuid.UUID) string { return fmt.Sprintf("rideshare_user:%s", clientID) }

// Load returns nil, nil when no session is stored. Undecodable records are removed and treated as absent.
func (s *SessionStore) Load(ctx context.Context, clientID uuid.UUID) (*session.Session, error) {
	b, err := s.rdb.Get(ctx, sessionKey(clientID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load session", err, infra.KindCacheFailure)
	}

	var sess session.Session
	if err := json.Unmarshal(b, &sess); err != nil || !sess.Valid() {
		slog.Warn("Discarding corrupt session record", "client_id", clientID, "error", err)
		if delErr := s.rdb.Del(ctx, sessionKey(clientID)).Err(); delErr != nil {
			return nil, infra.WrapRepoErr("failed to clear corrupt session", delErr, infra.KindCacheFailure)
		}
		return nil, nil
	}
	return &sess, nil
}

func (s *SessionStore) Save(ctx context.Context, clientID uuid.UUID, sess session.Session) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return infra.WrapRepoErr("failed to encode session", err, infra.KindCacheFailure)
	}
	if err := s.rdb.Set(ctx, sessionKey(clientID), b, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save session", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context, clientID uuid.UUID) error {
	if err := s.rdb.Del(ctx, sessionKey(clientID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to clear session", err, infra.KindCacheFailure)
	}
	return nil
}
