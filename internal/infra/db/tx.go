package db

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"carseat-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrTxBegin      = errs.New("begin transaction")
	ErrTxCommit     = errs.New("commit transaction")
	ErrTxExhausted  = errs.New("transaction kept conflicting")
	retryablePgCode = map[string]bool{
		"40001": true, // serialization_failure
		"40P01": true, // deadlock_detected
		"55P03": true, // lock_not_available
	}
)

// TxRunner runs booking writes in a read-committed transaction. Conflicts
// between concurrent submissions are retried with jittered exponential backoff
// as long as the caller's deadline leaves room for another attempt.
type TxRunner struct {
	pool     *pgxpool.Pool
	attempts int
	base     time.Duration
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool, attempts: 4, base: 100 * time.Millisecond}
}

func (r *TxRunner) Within(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	var err error
	for attempt := range r.attempts {
		if err = r.once(ctx, fn); err == nil || !retryable(err) {
			return err
		}

		wait := backoff(attempt, r.base)
		if !roomFor(ctx, wait) || attempt == r.attempts-1 {
			break
		}
		slog.Warn("Retrying conflicting transaction", "attempt", attempt+1, "wait", wait, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	slog.Error("Transaction gave up after conflicts", "attempts", r.attempts, "error", err)
	return errs.Mark(err, ErrTxExhausted)
}

// once keeps begin/rollback in its own frame so retries do not stack defers.
func (r *TxRunner) once(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, ErrTxBegin)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("Rollback failed", "error", rbErr)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTxCommit)
	}
	return nil
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && retryablePgCode[pgErr.Code]
}

// backoff is base * 2^attempt plus up to 20% jitter.
func backoff(attempt int, base time.Duration) time.Duration {
	wait := base << attempt
	return wait + time.Duration(rand.Int64N(int64(wait/5)+1))
}

func roomFor(ctx context.Context, wait time.Duration) bool {
	deadline, ok := ctx.Deadline()
	return !ok || time.Until(deadline) > wait
}
