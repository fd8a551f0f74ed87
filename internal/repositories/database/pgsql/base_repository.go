package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes the store reports for conflicts worth retrying.
const (
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
	sqlStateLockNotAvailable     = "55P03"
	sqlStateUniqueViolation      = "23505"
)

const retryBackoff = 15 * time.Millisecond

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// UnitOfWorkOption configures a PgxUnitOfWork.
type UnitOfWorkOption func(*PgxUnitOfWork)

// WithMaxRetries sets how many times a conflicting transaction is re-run.
func WithMaxRetries(n int) UnitOfWorkOption {
	return func(u *PgxUnitOfWork) {
		if n >= 0 {
			u.maxRetries = n
		}
	}
}

// WithLockTimeout bounds how long a statement waits for a row lock.
func WithLockTimeout(d time.Duration) UnitOfWorkOption {
	return func(u *PgxUnitOfWork) {
		u.lockTimeout = d
	}
}

// WithRetryObserver registers a callback invoked with the SQLSTATE of every retried conflict.
func WithRetryObserver(fn func(sqlState string)) UnitOfWorkOption {
	return func(u *PgxUnitOfWork) {
		u.onRetry = fn
	}
}

// PgxUnitOfWork runs a TxFunc in one transaction, re-running it when Postgres
// reports a serialization failure, a deadlock or a lock timeout.
type PgxUnitOfWork struct {
	BaseRepository
	maxRetries  int
	lockTimeout time.Duration
	onRetry     func(sqlState string)
}

var _ portsrepo.UnitOfWork = (*PgxUnitOfWork)(nil)

func newPgxUnitOfWork(pool *pgxpool.Pool, opts ...UnitOfWorkOption) *PgxUnitOfWork {
	u := &PgxUnitOfWork{
		BaseRepository: BaseRepository{Pool: pool},
		maxRetries:     3,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// WithinTx implements portsrepo.UnitOfWork.
func (u *PgxUnitOfWork) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	var lastErr error
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := u.runOnce(ctx, fn)
		if err == nil {
			return nil
		}

		sqlState, retryable := retryableState(err)
		if !retryable {
			return translatePgError(err)
		}
		lastErr = err
		if u.onRetry != nil {
			u.onRetry(sqlState)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * retryBackoff):
		}
	}
	return apperrors.NewConflictError("transaction aborted after repeated conflicts", lastErr)
}

func (u *PgxUnitOfWork) runOnce(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := u.Begin(ctx)
	if err != nil {
		return err
	}
	defer u.Rollback(ctx, tx) // no-op once committed

	if u.lockTimeout > 0 {
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())); err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return u.Commit(ctx, tx)
}

func retryableState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	switch pgErr.Code {
	case sqlStateSerializationFailure, sqlStateDeadlockDetected, sqlStateLockNotAvailable:
		return pgErr.Code, true
	}
	return "", false
}

// translatePgError maps constraint violations that escaped a repository onto
// application errors. Anything else is returned unchanged.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlStateUniqueViolation {
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != sqlStateUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
