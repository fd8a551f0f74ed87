package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxSequenceRepository keeps one row per (category, year) in sequence_counters.
// The row lock taken by LockCounterInTx serializes issuance within a scope.
type PgxSequenceRepository struct {
	BaseRepository
}

func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

func (r *PgxSequenceRepository) LockCounterInTx(ctx context.Context, tx pgx.Tx, scope domain.SequenceScope) (string, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO sequence_counters (category, year, last_value, last_code)
		VALUES ($1, $2, 0, '')
		ON CONFLICT (category, year) DO NOTHING`,
		scope.Category, scope.Year,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create counter %s: %w", scope, err)
	}

	var lastCode string
	err = tx.QueryRow(ctx,
		`SELECT last_code FROM sequence_counters WHERE category = $1 AND year = $2 FOR UPDATE`,
		scope.Category, scope.Year,
	).Scan(&lastCode)
	if err != nil {
		return "", fmt.Errorf("failed to lock counter %s: %w", scope, err)
	}
	return lastCode, nil
}

func (r *PgxSequenceRepository) AdvanceCounterInTx(ctx context.Context, tx pgx.Tx, scope domain.SequenceScope, value int64, code string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE sequence_counters
		SET last_value = $3, last_code = $4, updated_at = now()
		WHERE category = $1 AND year = $2`,
		scope.Category, scope.Year, value, code,
	)
	if err != nil {
		return fmt.Errorf("failed to advance counter %s: %w", scope, err)
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("counter %s vanished while locked", scope)
	}
	return nil
}
