package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"carseat-rental/internal/domain/wizard"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseLock deletes the lock only if it still holds our token.
var releaseLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type DraftStore struct {
	rdb     *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

func NewDraftStore(rdb *redis.Client, cfg config.Config) *DraftStore {
	return &DraftStore{
		rdb:     rdb,
		ttl:     cfg.Session.DraftTTL,
		lockTTL: cfg.Session.DraftLockTTL,
	}
}

func draftKey(clientID, draftID uuid.UUID) string {
	return fmt.Sprintf("rideshare_draft:%s:%s", clientID, draftID)
}

func lockKey(draftID uuid.UUID) string { return fmt.Sprintf("rideshare_draft_lock:%s", draftID) }

func (s *DraftStore) Load(ctx context.Context, clientID, draftID uuid.UUID) (*wizard.Snapshot, error) {
	b, err := s.rdb.Get(ctx, draftKey(clientID, draftID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, usecase.ErrDraftNotFound
		}
		return nil, infra.WrapRepoErr("failed to load draft", err, infra.KindCacheFailure)
	}

	var snap wizard.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		slog.Warn("Discarding corrupt draft record", "draft_id", draftID, "error", err)
		_ = s.rdb.Del(ctx, draftKey(clientID, draftID)).Err()
		return nil, usecase.ErrDraftNotFound
	}
	return &snap, nil
}

// Save overwrites the snapshot and restarts its expiry.
func (s *DraftStore) Save(ctx context.Context, clientID uuid.UUID, snap wizard.Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return infra.WrapRepoErr("failed to encode draft", err, infra.KindCacheFailure)
	}
	if err := s.rdb.Set(ctx, draftKey(clientID, snap.ID), b, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save draft", err, infra.KindCacheFailure)
	}
	return nil
}

// Lock takes the per-draft lock or fails fast with ErrDraftBusy. The lock expires on its own if never released.
func (s *DraftStore) Lock(ctx context.Context, draftID uuid.UUID) (func(), error) {
	token := uuid.NewString()
	ok, err := s.rdb.SetNX(ctx, lockKey(draftID), token, s.lockTTL).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to acquire draft lock", err, infra.KindCacheFailure)
	}
	if !ok {
		return nil, usecase.ErrDraftBusy
	}

	return func() {
		if err := releaseLock.Run(context.WithoutCancel(ctx), s.rdb, []string{lockKey(draftID)}, token).Err(); err != nil {
			slog.Warn("Failed to release draft lock", "draft_id", draftID, "error", err)
		}
	}, nil
}
