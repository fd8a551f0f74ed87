package repositories

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SequenceRepository persists one counter row per (category, year).
type SequenceRepository interface {
	// LockCounterInTx creates the counter row when missing, locks it and returns
	// the last code issued in the scope ("" when none was issued yet).
	LockCounterInTx(ctx context.Context, tx pgx.Tx, scope domain.SequenceScope) (string, error)

	// AdvanceCounterInTx records value/code as the last issued in the scope.
	AdvanceCounterInTx(ctx context.Context, tx pgx.Tx, scope domain.SequenceScope, value int64, code string) error
}
