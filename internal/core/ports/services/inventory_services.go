package services

import (
	"context"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/SscSPs/inventory_ledger_app/internal/dto"
	"github.com/jackc/pgx/v5"
)

// SequenceSvc issues human-readable codes scoped by (category, year).
type SequenceSvc interface {
	// Next issues one code in its own unit of work.
	Next(ctx context.Context, category string, year int, userID string) (string, error)

	// NextInTx issues one code inside the caller's unit of work, so the code
	// is only consumed if the caller commits.
	NextInTx(ctx context.Context, tx pgx.Tx, category string, year int) (string, error)

	// ReserveInTx raises the counter of code's scope to at least code, so a
	// code assigned by hand is never issued again.
	ReserveInTx(ctx context.Context, tx pgx.Tx, code string) error
}

// StockLedgerReaderSvc defines read operations on an item's stock card
type StockLedgerReaderSvc interface {
	// CurrentBalance returns the balance of the most recently committed entry, 0 when none.
	CurrentBalance(ctx context.Context, itemID string) (int64, error)

	// BalanceAsOf returns the balance of the latest entry created at or before asOf.
	BalanceAsOf(ctx context.Context, itemID string, asOf time.Time) (int64, error)

	// ListStockCard retrieves a page of entries, newest first.
	ListStockCard(ctx context.Context, itemID string, params dto.ListStockCardParams) (*dto.ListStockCardResponse, error)

	// VerifyLedger re-walks the stored balances of one item.
	VerifyLedger(ctx context.Context, itemID string) (*domain.LedgerAudit, error)
}

// StockLedgerWriterSvc defines append operations on the stock ledger
type StockLedgerWriterSvc interface {
	// RecordMovement appends a Receipt, Issue or Donation in its own unit of work.
	RecordMovement(ctx context.Context, itemID string, req dto.RecordMovementRequest, userID string) (*domain.StockCard, error)

	// AppendInTx locks the item and appends m inside the caller's unit of work.
	AppendInTx(ctx context.Context, tx pgx.Tx, m domain.Movement) (*domain.StockCard, error)
}

// StockLedgerSvcFacade combines all stock ledger service interfaces
type StockLedgerSvcFacade interface {
	StockLedgerReaderSvc
	StockLedgerWriterSvc
}

// LedgerAuditor verifies the stored balance chain of every item.
type LedgerAuditor interface {
	AuditAll(ctx context.Context) ([]domain.LedgerAudit, error)
}

// AdjustmentReaderSvc defines read operations for adjustment cases
type AdjustmentReaderSvc interface {
	GetAdjustmentByID(ctx context.Context, adjustmentID string) (*domain.AdjustmentCase, error)
	ListAdjustments(ctx context.Context, params dto.ListAdjustmentsParams) ([]domain.AdjustmentCase, error)
}

// AdjustmentWriterSvc defines the adjustment workflow transitions
type AdjustmentWriterSvc interface {
	// ProposeAdjustment files a Pending case and snapshots the balance the preparer saw.
	ProposeAdjustment(ctx context.Context, req dto.ProposeAdjustmentRequest, preparerID string) (*domain.AdjustmentCase, error)

	// ProposeFromCount files a Pending case whose delta is a verified count's variance.
	ProposeFromCount(ctx context.Context, countID string, preparerID string) (*domain.AdjustmentCase, error)

	// UpdateAdjustment edits a Pending case.
	UpdateAdjustment(ctx context.Context, adjustmentID string, req dto.UpdateAdjustmentRequest, userID string) (*domain.AdjustmentCase, error)

	// DeleteAdjustment removes a Pending case.
	DeleteAdjustment(ctx context.Context, adjustmentID string, userID string) error

	// ApproveAdjustment writes exactly one Adjustment entry and closes the case.
	ApproveAdjustment(ctx context.Context, adjustmentID string, approverID string) (*domain.AdjustmentCase, error)

	// RejectAdjustment closes the case without touching the ledger.
	RejectAdjustment(ctx context.Context, adjustmentID string, reason string, userID string) (*domain.AdjustmentCase, error)
}

// AdjustmentSvcFacade combines all adjustment service interfaces
type AdjustmentSvcFacade interface {
	AdjustmentReaderSvc
	AdjustmentWriterSvc
}

// PhysicalCountSvcFacade defines physical count reconciliation operations
type PhysicalCountSvcFacade interface {
	// SubmitCount snapshots the ledger balance and records the variance.
	SubmitCount(ctx context.Context, req dto.SubmitCountRequest, counterID string) (*domain.PhysicalCount, error)

	// VerifyCount marks a submitted count verified. The ledger is untouched.
	VerifyCount(ctx context.Context, countID string, verifierID string) (*domain.PhysicalCount, error)

	GetCountByID(ctx context.Context, countID string) (*domain.PhysicalCount, error)
	ListCounts(ctx context.Context, params dto.ListCountsParams) ([]domain.PhysicalCount, error)
}

// AssetTaggingSvcFacade defines classification and tagging operations
type AssetTaggingSvcFacade interface {
	// Classify maps a line item description onto a category.
	Classify(description string) string

	// RequiresTagging reports whether a category is tracked as a durable asset.
	RequiresTagging(category string) bool

	// MaterializeDelivery creates an item from a received delivery line and
	// records its initial Receipt.
	MaterializeDelivery(ctx context.Context, line domain.DeliveryLine, userID string) (*domain.InventoryItem, error)

	// AssignTag stores serial and property numbers, issuing a property number when needed.
	AssignTag(ctx context.Context, itemID string, serialNumber, propertyNumber *string, userID string) (*domain.InventoryItem, error)
}

// ItemReaderSvc defines read operations for the item catalog
type ItemReaderSvc interface {
	GetItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)
	ListItems(ctx context.Context, params dto.ListItemsParams) ([]domain.InventoryItem, error)
}

// ItemWriterSvc defines write operations for the item catalog
type ItemWriterSvc interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest, userID string) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, itemID string, req dto.UpdateItemRequest, userID string) (*domain.InventoryItem, error)
}

// ItemSvcFacade combines all item service interfaces
type ItemSvcFacade interface {
	ItemReaderSvc
	ItemWriterSvc
}

// EventPublisher receives committed ledger events.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent)
}
