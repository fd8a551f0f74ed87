package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxFunc is the body of a unit of work. It may be invoked more than once when
// the store reports a retryable conflict, so it must not keep state between calls.
type TxFunc func(ctx context.Context, tx pgx.Tx) error

// UnitOfWork runs fn inside a single database transaction: either every write
// in fn commits or none does.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}
