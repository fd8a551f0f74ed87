package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/inventory_ledger_app/internal/models"
	"github.com/SscSPs/inventory_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const adjustmentColumns = `adjustment_id, adjustment_number, item_id, adjustment_type, delta, reason,
	balance_before, balance_after, status, prepared_by, approved_by, approved_at, rejected_by,
	rejected_at, rejection_reason, ledger_entry_id, source_count_id,
	created_at, created_by, last_updated_at, last_updated_by`

const (
	constraintAdjustmentNumber      = "adjustments_adjustment_number_key"
	constraintAdjustmentSourceCount = "adjustments_open_source_count_idx"
)

type PgxAdjustmentRepository struct {
	BaseRepository
}

func newPgxAdjustmentRepository(pool *pgxpool.Pool) portsrepo.AdjustmentRepositoryFacade {
	return &PgxAdjustmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdjustmentRepositoryFacade = (*PgxAdjustmentRepository)(nil)

func scanAdjustment(row rowScanner) (*domain.AdjustmentCase, error) {
	var m models.Adjustment
	err := row.Scan(
		&m.AdjustmentID,
		&m.AdjustmentNumber,
		&m.ItemID,
		&m.AdjustmentType,
		&m.Delta,
		&m.Reason,
		&m.BalanceBefore,
		&m.BalanceAfter,
		&m.Status,
		&m.PreparedBy,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectedBy,
		&m.RejectedAt,
		&m.RejectionReason,
		&m.LedgerEntryID,
		&m.SourceCountID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	adj := mapping.ToDomainAdjustment(m)
	return &adj, nil
}

func findAdjustment(ctx context.Context, q querier, adjustmentID string, forUpdate bool) (*domain.AdjustmentCase, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments WHERE adjustment_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	adj, err := scanAdjustment(q.QueryRow(ctx, query, adjustmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("adjustment " + adjustmentID)
		}
		return nil, fmt.Errorf("failed to query adjustment %s: %w", adjustmentID, err)
	}
	return adj, nil
}

// FindAdjustmentByID retrieves an adjustment by its ID.
func (r *PgxAdjustmentRepository) FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.AdjustmentCase, error) {
	return findAdjustment(ctx, r.Pool, adjustmentID, false)
}

// FindAdjustmentByIDForUpdate locks the adjustment row until the transaction ends.
func (r *PgxAdjustmentRepository) FindAdjustmentByIDForUpdate(ctx context.Context, tx pgx.Tx, adjustmentID string) (*domain.AdjustmentCase, error) {
	return findAdjustment(ctx, tx, adjustmentID, true)
}

// ListAdjustments retrieves a page of adjustments, newest first.
func (r *PgxAdjustmentRepository) ListAdjustments(ctx context.Context, filter domain.AdjustmentFilter) ([]domain.AdjustmentCase, error) {
	var (
		conds []string
		args  []any
	)
	if filter.ItemID != "" {
		args = append(args, filter.ItemID)
		conds = append(conds, fmt.Sprintf("item_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	query := `SELECT ` + adjustmentColumns + ` FROM adjustments`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC, adjustment_number DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	adjustments := []domain.AdjustmentCase{}
	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adjustment row: %w", err)
		}
		adjustments = append(adjustments, *adj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating adjustment rows: %w", err)
	}
	return adjustments, nil
}

// SaveAdjustmentInTx inserts a new pending adjustment.
func (r *PgxAdjustmentRepository) SaveAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.AdjustmentCase) error {
	m := mapping.ToModelAdjustment(adjustment)
	query := `INSERT INTO adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := tx.Exec(ctx, query,
		m.AdjustmentID,
		m.AdjustmentNumber,
		m.ItemID,
		m.AdjustmentType,
		m.Delta,
		m.Reason,
		m.BalanceBefore,
		m.BalanceAfter,
		m.Status,
		m.PreparedBy,
		m.ApprovedBy,
		m.ApprovedAt,
		m.RejectedBy,
		m.RejectedAt,
		m.RejectionReason,
		m.LedgerEntryID,
		m.SourceCountID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err, constraintAdjustmentSourceCount):
			return fmt.Errorf("%w: an open adjustment already exists for this count", apperrors.ErrDuplicate)
		case isUniqueViolation(err, constraintAdjustmentNumber):
			return fmt.Errorf("%w: adjustment number %s already exists", apperrors.ErrDuplicate, m.AdjustmentNumber)
		}
		return fmt.Errorf("failed to save adjustment %s: %w", m.AdjustmentID, err)
	}
	return nil
}

// UpdateAdjustmentInTx writes every mutable column. Number, item and preparer never change.
func (r *PgxAdjustmentRepository) UpdateAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.AdjustmentCase) error {
	m := mapping.ToModelAdjustment(adjustment)
	query := `
		UPDATE adjustments
		SET adjustment_type = $2, delta = $3, reason = $4, balance_before = $5, balance_after = $6,
		    status = $7, approved_by = $8, approved_at = $9, rejected_by = $10, rejected_at = $11,
		    rejection_reason = $12, ledger_entry_id = $13, last_updated_at = $14, last_updated_by = $15
		WHERE adjustment_id = $1`
	tag, err := tx.Exec(ctx, query,
		m.AdjustmentID,
		m.AdjustmentType,
		m.Delta,
		m.Reason,
		m.BalanceBefore,
		m.BalanceAfter,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.RejectedBy,
		m.RejectedAt,
		m.RejectionReason,
		m.LedgerEntryID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update adjustment %s: %w", m.AdjustmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("adjustment " + m.AdjustmentID)
	}
	return nil
}

// DeleteAdjustmentInTx removes a pending adjustment.
func (r *PgxAdjustmentRepository) DeleteAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustmentID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM adjustments WHERE adjustment_id = $1 AND status = $2`,
		adjustmentID, string(domain.AdjustmentPending))
	if err != nil {
		return fmt.Errorf("failed to delete adjustment %s: %w", adjustmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("pending adjustment " + adjustmentID)
	}
	return nil
}

// OpenAdjustmentExistsForCountInTx reports whether a non-rejected adjustment references countID.
func (r *PgxAdjustmentRepository) OpenAdjustmentExistsForCountInTx(ctx context.Context, tx pgx.Tx, countID string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM adjustments WHERE source_count_id = $1 AND status <> $2)`,
		countID, string(domain.AdjustmentRejected),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check adjustments of count %s: %w", countID, err)
	}
	return exists, nil
}
