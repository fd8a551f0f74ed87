package repositories

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AdjustmentReader defines read operations for adjustment cases
type AdjustmentReader interface {
	// FindAdjustmentByID retrieves an adjustment by its unique identifier.
	FindAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.AdjustmentCase, error)

	// ListAdjustments retrieves a page of adjustments, newest first.
	ListAdjustments(ctx context.Context, filter domain.AdjustmentFilter) ([]domain.AdjustmentCase, error)
}

// AdjustmentWriter defines write operations for adjustment cases
type AdjustmentWriter interface {
	SaveAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.AdjustmentCase) error

	// FindAdjustmentByIDForUpdate selects the adjustment and locks its row.
	FindAdjustmentByIDForUpdate(ctx context.Context, tx pgx.Tx, adjustmentID string) (*domain.AdjustmentCase, error)

	// UpdateAdjustmentInTx writes every mutable column of the adjustment.
	UpdateAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustment domain.AdjustmentCase) error

	DeleteAdjustmentInTx(ctx context.Context, tx pgx.Tx, adjustmentID string) error

	// OpenAdjustmentExistsForCountInTx reports whether a pending or approved
	// adjustment was already filed from the given physical count.
	OpenAdjustmentExistsForCountInTx(ctx context.Context, tx pgx.Tx, countID string) (bool, error)
}

// AdjustmentRepositoryFacade combines all adjustment repository interfaces
type AdjustmentRepositoryFacade interface {
	AdjustmentReader
	AdjustmentWriter
}
