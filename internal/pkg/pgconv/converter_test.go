//go:build unit

package pgconv

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimePtr(t *testing.T) {
	assert.Nil(t, TimePtrFromPgtype(pgtype.Timestamptz{}))
	assert.False(t, TimePtrToPgtype(nil).Valid)

	at := time.Date(2024, 8, 2, 12, 0, 0, 0, time.UTC)
	got := TimePtrFromPgtype(TimePtrToPgtype(&at))
	require.NotNil(t, got)
	assert.Equal(t, at, *got)
}

func TestDateToPgtype(t *testing.T) {
	pst := time.FixedZone("PST", -8*3600)

	tests := []struct {
		name string
		in   time.Time
		want pgtype.Date
	}{
		{name: "zero is null", in: time.Time{}, want: pgtype.Date{}},
		{name: "drops time of day", in: time.Date(2024, 8, 10, 15, 4, 5, 0, time.UTC), want: pgtype.Date{Time: time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC), Valid: true}},
		{name: "reads the day in UTC", in: time.Date(2024, 8, 10, 20, 0, 0, 0, pst), want: pgtype.Date{Time: time.Date(2024, 8, 11, 0, 0, 0, 0, time.UTC), Valid: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateToPgtype(tt.in))
		})
	}

	assert.True(t, DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.True(t, IsNoRows(fmt.Errorf("wrapped: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(assert.AnError))
	assert.False(t, IsNoRows(nil))
}
