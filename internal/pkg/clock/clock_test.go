//go:build unit

package clock_test

import (
	"testing"
	"time"

	"carseat-rental/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestToday(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "utc afternoon",
			now:  time.Date(2024, 8, 5, 15, 30, 0, 0, time.UTC),
			want: time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "late evening west of utc is already tomorrow",
			now:  time.Date(2024, 8, 5, 20, 0, 0, 0, time.FixedZone("PDT", -7*3600)),
			want: time.Date(2024, 8, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exact midnight",
			now:  time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clock.Today(clock.NewMockClock(tt.now))
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestMockClock(t *testing.T) {
	start := time.Date(2024, 8, 5, 10, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	c.Add(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
