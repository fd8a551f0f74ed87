package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// StockLedgerReader defines read operations for stock card entries
type StockLedgerReader interface {
	// FindCurrentBalance returns the balance of the latest committed entry, 0 when none.
	// It returns ErrNotFound when the item does not exist.
	FindCurrentBalance(ctx context.Context, itemID string) (int64, error)

	// FindBalanceAsOf returns the balance of the latest entry created at or before asOf.
	FindBalanceAsOf(ctx context.Context, itemID string, asOf time.Time) (int64, error)

	// ListEntries retrieves a page of entries, newest first, using token-based pagination.
	ListEntries(ctx context.Context, itemID string, limit int, nextToken *string) ([]domain.StockCard, *string, error)

	// ListAllEntries retrieves the full stock card in entry order.
	ListAllEntries(ctx context.Context, itemID string) ([]domain.StockCard, error)
}

// StockLedgerWriter defines append operations. Entries are never updated or deleted.
type StockLedgerWriter interface {
	// FindLatestEntryInTx returns the latest entry of an item, or nil when the card is empty.
	// Callers must hold the item row lock.
	FindLatestEntryInTx(ctx context.Context, tx pgx.Tx, itemID string) (*domain.StockCard, error)

	// InsertEntryInTx appends an entry.
	InsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.StockCard) error
}

// StockLedgerRepositoryFacade combines all stock ledger repository interfaces
type StockLedgerRepositoryFacade interface {
	StockLedgerReader
	StockLedgerWriter
}
