package repository

import (
	"context"
	"fmt"

	"carseat-rental/internal/domain/booking"
	"carseat-rental/internal/domain/calendar"
	"carseat-rental/internal/domain/catalog"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/infra/converter"
	"carseat-rental/internal/infra/db"
	"carseat-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(conn db.DBTX) *BookingRepository {
	return &BookingRepository{db: conn}
}

// Insert stores b. draftID is unique so a draft can produce at most one booking.
func (r *BookingRepository) Insert(ctx context.Context, tx db.DBTX, draftID uuid.UUID, b *booking.Booking) error {
	row := converter.BookingToRow(b)
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (
			id, draft_id, user_id, status, location_id, item_type_id, pickup_date, return_date,
			special_request, contact_first_name, contact_last_name, contact_email, contact_phone,
			days, daily_rate_cents, subtotal_cents, cleaning_fee_cents, total_cents,
			pickup_code, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`,
		row.ID, draftID, row.UserID, row.Status, row.LocationID, row.ItemTypeID, row.PickupDate, row.ReturnDate,
		row.SpecialRequest, row.ContactFirstName, row.ContactLastName, row.ContactEmail, row.ContactPhone,
		row.Days, row.DailyRateCents, row.SubtotalCents, row.CleaningFeeCents, row.TotalCents,
		row.PickupCode, row.CreatedAt, row.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByDraftID(ctx context.Context, tx db.DBTX, draftID uuid.UUID) (*booking.Booking, error) {
	return findOne(ctx, tx, `SELECT `+converter.BookingColumns+` FROM bookings WHERE draft_id = $1`, draftID)
}

// LockInventory serializes bookings of one item type at one location until the transaction ends.
func (r *BookingRepository) LockInventory(ctx context.Context, tx db.DBTX, locationID int, itemType catalog.ItemTypeID) error {
	key := fmt.Sprintf("inventory:%d:%s", locationID, itemType)
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key); err != nil {
		return infra.WrapRepoErr("failed to lock inventory", err)
	}
	return nil
}

// CountOverlapping counts active bookings holding a seat on any day of [pickup, ret).
func (r *BookingRepository) CountOverlapping(
	ctx context.Context,
	tx db.DBTX,
	locationID int,
	itemType catalog.ItemTypeID,
	pickup, ret calendar.Date,
) (int, error) {
	var n int
	err := tx.QueryRow(ctx, `
		SELECT count(*)
		FROM bookings
		WHERE status = 'active'
		  AND location_id = $1
		  AND item_type_id = $2
		  AND pickup_date < $4
		  AND return_date > $3`,
		int32(locationID), itemType.String(), pgconv.DateToPgtype(pickup.Time()), pgconv.DateToPgtype(ret.Time()),
	).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping bookings", err)
	}
	return n, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4`,
		b.ID(), b.Status().String(), b.UpdatedAt(), from.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found in expected status", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) CompleteDue(ctx context.Context, today calendar.Date) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = 'completed', updated_at = now()
		WHERE status = 'active' AND return_date < $1`,
		pgconv.DateToPgtype(today.Time()),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to complete due bookings", err)
	}
	return tag.RowsAffected(), nil
}

func findOne(ctx context.Context, conn db.DBTX, query string, args ...any) (*booking.Booking, error) {
	row, err := converter.ScanBooking(conn.QueryRow(ctx, query, args...))
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
