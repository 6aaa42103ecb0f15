package repository

import (
	"context"
	"time"

	"carseat-rental/internal/domain/user"
	"carseat-rental/internal/infra"
	"carseat-rental/internal/infra/db"
	"carseat-rental/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, password_hash, first_name, last_name, phone,
	waiver_signed, waiver_signed_at, created_at, updated_at`

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(conn db.DBTX) *UserRepository {
	return &UserRepository{db: conn}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.FirstName(), u.LastName(), u.Phone(),
		u.Waiver().Signed(), pgconv.TimePtrToPgtype(u.Waiver().SignedAt()), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email.Value())
	u, err := scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateWaiver(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET waiver_signed = $2, waiver_signed_at = $3, updated_at = $4
		WHERE id = $1`,
		u.ID(), u.Waiver().Signed(), pgconv.TimePtrToPgtype(u.Waiver().SignedAt()), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update waiver", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanUser(row pgx.Row) (*user.User, error) {
	var (
		id                              uuid.UUID
		email, hash, first, last, phone string
		waiverSigned                    bool
		waiverSignedAt                  pgtype.Timestamptz
		createdAt, updatedAt            time.Time
	)
	if err := row.Scan(&id, &email, &hash, &first, &last, &phone, &waiverSigned, &waiverSignedAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, err
	}

	waiver := user.UnsignedWaiver()
	if signedAt := pgconv.TimePtrFromPgtype(waiverSignedAt); waiverSigned && signedAt != nil {
		waiver = user.SignedWaiver(*signedAt)
	}

	return user.ReconstructUser(id, addr, hash, first, last, phone, waiver, createdAt, updatedAt), nil
}
