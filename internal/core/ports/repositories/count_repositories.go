package repositories

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PhysicalCountReader defines read operations for physical counts
type PhysicalCountReader interface {
	FindCountByID(ctx context.Context, countID string) (*domain.PhysicalCount, error)
	ListCounts(ctx context.Context, filter domain.CountFilter) ([]domain.PhysicalCount, error)
}

// PhysicalCountWriter defines write operations for physical counts
type PhysicalCountWriter interface {
	SaveCountInTx(ctx context.Context, tx pgx.Tx, count domain.PhysicalCount) error

	// FindCountByIDForUpdate selects the count and locks its row.
	FindCountByIDForUpdate(ctx context.Context, tx pgx.Tx, countID string) (*domain.PhysicalCount, error)

	UpdateCountInTx(ctx context.Context, tx pgx.Tx, count domain.PhysicalCount) error
}

// PhysicalCountRepositoryFacade combines all physical count repository interfaces
type PhysicalCountRepositoryFacade interface {
	PhysicalCountReader
	PhysicalCountWriter
}
