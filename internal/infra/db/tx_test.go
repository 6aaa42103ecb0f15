//go:build unit

package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "wrapped deadlock", err: fmt.Errorf("insert booking: %w", &pgconn.PgError{Code: "40P01"}), want: true},
		{name: "lock not available", err: &pgconn.PgError{Code: "55P03"}, want: true},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "plain error", err: errors.New("plain"), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryable(tt.err))
		})
	}
}

func TestBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 4 {
		got := backoff(attempt, base)
		floor := base << attempt
		assert.GreaterOrEqual(t, got, floor)
		assert.LessOrEqual(t, got, floor+floor/5)
	}
}

func TestRoomFor(t *testing.T) {
	assert.True(t, roomFor(context.Background(), time.Hour), "no deadline always leaves room")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.False(t, roomFor(ctx, time.Second))
	assert.True(t, roomFor(ctx, time.Millisecond))
}
