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

const countColumns = `count_id, count_number, item_id, count_date, system_quantity, actual_quantity,
	variance, variance_type, counted_by, verified_by, verified_at, status, remarks,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxPhysicalCountRepository struct {
	BaseRepository
}

func newPgxPhysicalCountRepository(pool *pgxpool.Pool) portsrepo.PhysicalCountRepositoryFacade {
	return &PgxPhysicalCountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PhysicalCountRepositoryFacade = (*PgxPhysicalCountRepository)(nil)

func scanCount(row rowScanner) (*domain.PhysicalCount, error) {
	var m models.PhysicalCount
	err := row.Scan(
		&m.CountID,
		&m.CountNumber,
		&m.ItemID,
		&m.CountDate,
		&m.SystemQuantity,
		&m.ActualQuantity,
		&m.Variance,
		&m.VarianceType,
		&m.CountedBy,
		&m.VerifiedBy,
		&m.VerifiedAt,
		&m.Status,
		&m.Remarks,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	c := mapping.ToDomainCount(m)
	return &c, nil
}

func findCount(ctx context.Context, q querier, countID string, forUpdate bool) (*domain.PhysicalCount, error) {
	query := `SELECT ` + countColumns + ` FROM physical_counts WHERE count_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	c, err := scanCount(q.QueryRow(ctx, query, countID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("physical count " + countID)
		}
		return nil, fmt.Errorf("failed to query physical count %s: %w", countID, err)
	}
	return c, nil
}

func (r *PgxPhysicalCountRepository) FindCountByID(ctx context.Context, countID string) (*domain.PhysicalCount, error) {
	return findCount(ctx, r.Pool, countID, false)
}

func (r *PgxPhysicalCountRepository) FindCountByIDForUpdate(ctx context.Context, tx pgx.Tx, countID string) (*domain.PhysicalCount, error) {
	return findCount(ctx, tx, countID, true)
}

// ListCounts retrieves a page of counts, newest first.
func (r *PgxPhysicalCountRepository) ListCounts(ctx context.Context, filter domain.CountFilter) ([]domain.PhysicalCount, error) {
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
	query := `SELECT ` + countColumns + ` FROM physical_counts`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY count_date DESC, count_number DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list physical counts: %w", err)
	}
	defer rows.Close()

	counts := []domain.PhysicalCount{}
	for rows.Next() {
		c, err := scanCount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan physical count row: %w", err)
		}
		counts = append(counts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating physical count rows: %w", err)
	}
	return counts, nil
}

func (r *PgxPhysicalCountRepository) SaveCountInTx(ctx context.Context, tx pgx.Tx, count domain.PhysicalCount) error {
	m := mapping.ToModelCount(count)
	query := `INSERT INTO physical_counts (` + countColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := tx.Exec(ctx, query,
		m.CountID,
		m.CountNumber,
		m.ItemID,
		m.CountDate,
		m.SystemQuantity,
		m.ActualQuantity,
		m.Variance,
		m.VarianceType,
		m.CountedBy,
		m.VerifiedBy,
		m.VerifiedAt,
		m.Status,
		m.Remarks,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: physical count %s already exists", apperrors.ErrDuplicate, m.CountNumber)
		}
		return fmt.Errorf("failed to save physical count %s: %w", m.CountID, err)
	}
	return nil
}

// UpdateCountInTx stores the verification columns. Quantities are immutable.
func (r *PgxPhysicalCountRepository) UpdateCountInTx(ctx context.Context, tx pgx.Tx, count domain.PhysicalCount) error {
	m := mapping.ToModelCount(count)
	tag, err := tx.Exec(ctx, `
		UPDATE physical_counts
		SET status = $2, verified_by = $3, verified_at = $4, remarks = $5, last_updated_at = $6, last_updated_by = $7
		WHERE count_id = $1`,
		m.CountID, m.Status, m.VerifiedBy, m.VerifiedAt, m.Remarks, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update physical count %s: %w", m.CountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("physical count " + m.CountID)
	}
	return nil
}
