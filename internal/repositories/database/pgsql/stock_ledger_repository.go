package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/inventory_ledger_app/internal/models"
	"github.com/SscSPs/inventory_ledger_app/internal/utils/mapping"
	"github.com/SscSPs/inventory_ledger_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const stockCardColumns = `entry_id, item_id, entry_no, transaction_date, transaction_type, quantity_in,
	quantity_out, unit_cost, balance, reference_number, processed_by, remarks, created_at`

const constraintStockCardEntryNo = "stock_cards_item_id_entry_no_key"

type PgxStockLedgerRepository struct {
	BaseRepository
}

func newPgxStockLedgerRepository(pool *pgxpool.Pool) portsrepo.StockLedgerRepositoryFacade {
	return &PgxStockLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StockLedgerRepositoryFacade = (*PgxStockLedgerRepository)(nil)

func scanStockCard(row rowScanner) (*domain.StockCard, error) {
	var m models.StockCard
	err := row.Scan(
		&m.EntryID,
		&m.ItemID,
		&m.EntryNo,
		&m.TransactionDate,
		&m.TransactionType,
		&m.QuantityIn,
		&m.QuantityOut,
		&m.UnitCost,
		&m.Balance,
		&m.ReferenceNumber,
		&m.ProcessedBy,
		&m.Remarks,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry := mapping.ToDomainStockCard(m)
	return &entry, nil
}

func collectStockCards(rows pgx.Rows) ([]domain.StockCard, error) {
	defer rows.Close()
	entries := []domain.StockCard{}
	for rows.Next() {
		entry, err := scanStockCard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock card row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock card rows: %w", err)
	}
	return entries, nil
}

// FindCurrentBalance returns the balance on the latest entry, 0 for an empty card.
func (r *PgxStockLedgerRepository) FindCurrentBalance(ctx context.Context, itemID string) (int64, error) {
	query := `
		SELECT COALESCE((
			SELECT s.balance FROM stock_cards s
			WHERE s.item_id = i.item_id
			ORDER BY s.entry_no DESC
			LIMIT 1
		), 0)
		FROM inventory_items i
		WHERE i.item_id = $1`
	var balance int64
	if err := r.Pool.QueryRow(ctx, query, itemID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError("item " + itemID)
		}
		return 0, fmt.Errorf("failed to query balance of item %s: %w", itemID, err)
	}
	return balance, nil
}

// FindBalanceAsOf returns the balance on the latest entry created at or before asOf.
func (r *PgxStockLedgerRepository) FindBalanceAsOf(ctx context.Context, itemID string, asOf time.Time) (int64, error) {
	query := `
		SELECT COALESCE((
			SELECT s.balance FROM stock_cards s
			WHERE s.item_id = i.item_id AND s.created_at <= $2
			ORDER BY s.entry_no DESC
			LIMIT 1
		), 0)
		FROM inventory_items i
		WHERE i.item_id = $1`
	var balance int64
	if err := r.Pool.QueryRow(ctx, query, itemID, asOf).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFoundError("item " + itemID)
		}
		return 0, fmt.Errorf("failed to query balance of item %s as of %s: %w", itemID, asOf.Format(time.RFC3339), err)
	}
	return balance, nil
}

// ListEntries returns entries newest first. The token is a cursor on entry_no.
func (r *PgxStockLedgerRepository) ListEntries(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.StockCard, *string, error) {
	args := []any{itemID}
	query := `SELECT ` + stockCardColumns + ` FROM stock_cards WHERE item_id = $1`
	if nextToken != nil && *nextToken != "" {
		before, err := pagination.DecodeEntryToken(*nextToken, itemID)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, before)
		query += ` AND entry_no < $2`
	}
	// Fetch one extra row to learn whether another page exists.
	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY entry_no DESC LIMIT $%d`, len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list stock card of item %s: %w", itemID, err)
	}
	entries, err := collectStockCards(rows)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		token := pagination.EncodeEntryToken(itemID, entries[len(entries)-1].EntryNo)
		next = &token
	}
	return entries, next, nil
}

// ListAllEntries returns the whole stock card in entry order.
func (r *PgxStockLedgerRepository) ListAllEntries(ctx context.Context, itemID string) ([]domain.StockCard, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+stockCardColumns+` FROM stock_cards WHERE item_id = $1 ORDER BY entry_no`, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to read stock card of item %s: %w", itemID, err)
	}
	return collectStockCards(rows)
}

// FindLatestEntryInTx returns nil when the card is empty.
func (r *PgxStockLedgerRepository) FindLatestEntryInTx(ctx context.Context, tx pgx.Tx, itemID string) (*domain.StockCard, error) {
	entry, err := scanStockCard(tx.QueryRow(ctx,
		`SELECT `+stockCardColumns+` FROM stock_cards WHERE item_id = $1 ORDER BY entry_no DESC LIMIT 1`, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read latest entry of item %s: %w", itemID, err)
	}
	return entry, nil
}

// InsertEntryInTx appends one entry.
func (r *PgxStockLedgerRepository) InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.StockCard) error {
	m := mapping.ToModelStockCard(entry)
	query := `INSERT INTO stock_cards (` + stockCardColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := tx.Exec(ctx, query,
		m.EntryID,
		m.ItemID,
		m.EntryNo,
		m.TransactionDate,
		m.TransactionType,
		m.QuantityIn,
		m.QuantityOut,
		m.UnitCost,
		m.Balance,
		m.ReferenceNumber,
		m.ProcessedBy,
		m.Remarks,
		m.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, constraintStockCardEntryNo) {
			return apperrors.NewConflictError(fmt.Sprintf("entry %d of item %s was written concurrently", m.EntryNo, m.ItemID), err)
		}
		return fmt.Errorf("failed to append entry to item %s: %w", m.ItemID, err)
	}
	return nil
}
