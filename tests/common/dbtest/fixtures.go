//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestPassword matches the bcrypt hash stored by CreateTestUser.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, first_name, last_name, phone)
		VALUES ($1, $2, $3, 'Taylor', 'Rivera', '(555) 123-4567') ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CountBookings(t *testing.T, db DBLike, userID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM bookings WHERE user_id = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

// InsertActiveBooking stores an active booking straight into the table, bypassing the wizard.
func InsertActiveBooking(t *testing.T, db DBLike, userID uuid.UUID, locationID int, itemType string, pickup, ret time.Time) string {
	t.Helper()

	id := "RSB-TEST-" + strings.ToUpper(uuid.NewString()[:8])
	days := int(ret.Sub(pickup).Hours() / 24)
	_, err := db.Exec(context.Background(), `INSERT INTO bookings (
			id, draft_id, user_id, status, location_id, item_type_id, pickup_date, return_date,
			contact_first_name, contact_last_name, contact_email, contact_phone,
			days, daily_rate_cents, subtotal_cents, cleaning_fee_cents, total_cents, pickup_code)
		VALUES ($1, $2, $3, 'active', $4, $5, $6, $7, 'Taylor', 'Rivera', 'fixture@example.com', '(555) 123-4567',
			$8, 1495, $9, 995, $10, 'FIX001')`,
		id, uuid.New(), userID, locationID, itemType, pickup, ret,
		days, int64(days)*1495, int64(days)*1495+995)
	require.NoError(t, err)
	return id
}

// resetTables lists every table referencing users, so TRUNCATE needs no CASCADE.
var resetTables = []string{"bookings", "users"}

// ResetDB empties every table the service writes to.
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.Exec(ctx, "TRUNCATE "+strings.Join(resetTables, ", ")); err != nil {
		return fmt.Errorf("reset tables %v: %w", resetTables, err)
	}
	return nil
}
