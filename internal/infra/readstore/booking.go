package readstore

import (
	"context"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/infra/converter"
	"carseat-rental/internal/infra/db"
	"carseat-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(conn db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: conn}
}

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+converter.BookingColumns+`
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	out := []*booking.Booking{}
	for rows.Next() {
		row, err := converter.ScanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		b, err := converter.BookingFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return out, nil
}

// FindForUser reports bookings owned by someone else as not found.
func (r *BookingReadStore) FindForUser(ctx context.Context, userID uuid.UUID, id string) (*booking.Booking, error) {
	row, err := converter.ScanBooking(r.db.QueryRow(ctx, `
		SELECT `+converter.BookingColumns+`
		FROM bookings
		WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	b, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err)
	}
	return b, nil
}
