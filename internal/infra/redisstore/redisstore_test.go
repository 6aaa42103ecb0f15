//go:build unit

package redisstore_test

import (
	"context"
	"testing"
	"time"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/domain/session"
	"carseat-rental/internal/domain/wizard"
	"carseat-rental/internal/infra/redisstore"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RedisStoreTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	rdb      *redis.Client
	cfg      config.Config
	sessions *redisstore.SessionStore
	drafts   *redisstore.DraftStore
	ctx      context.Context
}

func (s *RedisStoreTestSuite) SetupTest() {
	s.mr = miniredis.RunT(s.T())
	s.rdb = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})
	s.cfg = config.NewTestConfig()
	s.sessions = redisstore.NewSessionStore(s.rdb, s.cfg)
	s.drafts = redisstore.NewDraftStore(s.rdb, s.cfg)
	s.ctx = context.Background()
}

func (s *RedisStoreTestSuite) TearDownTest() {
	_ = s.rdb.Close()
}

func TestRedisStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisStoreTestSuite))
}

// =============================================================================
// SessionStore
// =============================================================================

func (s *RedisStoreTestSuite) TestSessionRoundTrip() {
	clientID := uuid.New()
	signedAt := time.Date(2024, 8, 1, 10, 0, 0, 0, time.UTC)
	want := session.Session{
		UserID:       uuid.New(),
		Email:        "taylor@example.com",
		FirstName:    "Taylor",
		LastName:     "Rivera",
		Phone:        "(555) 123-4567",
		WaiverSigned: true,
		WaiverDate:   &signedAt,
		IssuedAt:     signedAt,
	}

	require.NoError(s.T(), s.sessions.Save(s.ctx, clientID, want))

	got, err := s.sessions.Load(s.ctx, clientID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), got)
	if diff := cmp.Diff(want, *got); diff != "" {
		s.T().Errorf("session mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(s.T(), s.cfg.Session.TTL, s.mr.TTL("rideshare_user:"+clientID.String()))
}

func (s *RedisStoreTestSuite) TestSessionAbsent() {
	got, err := s.sessions.Load(s.ctx, uuid.New())
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)
}

func (s *RedisStoreTestSuite) TestSessionLastWriteWins() {
	clientID := uuid.New()
	first := session.Session{UserID: uuid.New(), Email: "first@example.com"}
	second := session.Session{UserID: uuid.New(), Email: "second@example.com"}

	require.NoError(s.T(), s.sessions.Save(s.ctx, clientID, first))
	require.NoError(s.T(), s.sessions.Save(s.ctx, clientID, second))

	got, err := s.sessions.Load(s.ctx, clientID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "second@example.com", got.Email)
}

func (s *RedisStoreTestSuite) TestSessionCorruptRecordIsClearedAndAbsent() {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{not-json"},
		{name: "wrong shape", raw: `{"id":42}`},
		{name: "missing identity", raw: `{"first_name":"Taylor"}`},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			clientID := uuid.New()
			key := "rideshare_user:" + clientID.String()
			require.NoError(s.T(), s.mr.Set(key, tt.raw))

			got, err := s.sessions.Load(s.ctx, clientID)
			require.NoError(s.T(), err)
			assert.Nil(s.T(), got)
			assert.False(s.T(), s.mr.Exists(key))
		})
	}
}

func (s *RedisStoreTestSuite) TestSessionClear() {
	clientID := uuid.New()
	require.NoError(s.T(), s.sessions.Save(s.ctx, clientID, session.Session{UserID: uuid.New(), Email: "a@b.co"}))

	require.NoError(s.T(), s.sessions.Clear(s.ctx, clientID))

	got, err := s.sessions.Load(s.ctx, clientID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got)

	// clearing twice is fine
	require.NoError(s.T(), s.sessions.Clear(s.ctx, clientID))
}

// =============================================================================
// DraftStore
// =============================================================================

func (s *RedisStoreTestSuite) TestDraftRoundTrip() {
	clientID := uuid.New()
	want := wizard.Snapshot{
		ID:    uuid.New(),
		State: wizard.StateReview,
		Draft: booking.Draft{
			LocationID: 1,
			ItemTypeID: catalog.ItemWaybPico,
			PickupDate: calendar.MustParse("2024-08-15"),
			ReturnDate: calendar.MustParse("2024-08-18"),
			Contact:    booking.ContactInfo{FirstName: "Taylor"},
		},
		LastError: &wizard.Failure{Reason: "submission timed out", Retryable: true},
	}

	require.NoError(s.T(), s.drafts.Save(s.ctx, clientID, want))

	got, err := s.drafts.Load(s.ctx, clientID, want.ID)
	require.NoError(s.T(), err)
	if diff := cmp.Diff(want, *got); diff != "" {
		s.T().Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
}

func (s *RedisStoreTestSuite) TestDraftIsScopedToClient() {
	snap := wizard.Snapshot{ID: uuid.New(), State: wizard.StateTripDetails}
	require.NoError(s.T(), s.drafts.Save(s.ctx, uuid.New(), snap))

	_, err := s.drafts.Load(s.ctx, uuid.New(), snap.ID)
	assert.ErrorIs(s.T(), err, usecase.ErrDraftNotFound)
}

func (s *RedisStoreTestSuite) TestDraftExpires() {
	clientID := uuid.New()
	snap := wizard.Snapshot{ID: uuid.New(), State: wizard.StateTripDetails}
	require.NoError(s.T(), s.drafts.Save(s.ctx, clientID, snap))

	s.mr.FastForward(s.cfg.Session.DraftTTL + time.Second)

	_, err := s.drafts.Load(s.ctx, clientID, snap.ID)
	assert.ErrorIs(s.T(), err, usecase.ErrDraftNotFound)
}

func (s *RedisStoreTestSuite) TestDraftLockIsExclusive() {
	draftID := uuid.New()

	unlock, err := s.drafts.Lock(s.ctx, draftID)
	require.NoError(s.T(), err)

	_, err = s.drafts.Lock(s.ctx, draftID)
	assert.ErrorIs(s.T(), err, usecase.ErrDraftBusy)

	// other drafts are unaffected
	unlockOther, err := s.drafts.Lock(s.ctx, uuid.New())
	require.NoError(s.T(), err)
	unlockOther()

	unlock()

	unlock2, err := s.drafts.Lock(s.ctx, draftID)
	require.NoError(s.T(), err)
	unlock2()
}

func (s *RedisStoreTestSuite) TestDraftLockExpiresAndStaleUnlockKeepsNewHolder() {
	draftID := uuid.New()

	staleUnlock, err := s.drafts.Lock(s.ctx, draftID)
	require.NoError(s.T(), err)

	s.mr.FastForward(s.cfg.Session.DraftLockTTL + time.Second)

	unlock, err := s.drafts.Lock(s.ctx, draftID)
	require.NoError(s.T(), err)

	staleUnlock()

	_, err = s.drafts.Lock(s.ctx, draftID)
	assert.ErrorIs(s.T(), err, usecase.ErrDraftBusy)
	unlock()
}
