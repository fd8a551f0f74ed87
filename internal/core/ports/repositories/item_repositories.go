package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ItemReader defines read operations for inventory items
type ItemReader interface {
	// FindItemByID retrieves an item by its unique identifier.
	FindItemByID(ctx context.Context, itemID string) (*domain.InventoryItem, error)

	// ListItems retrieves a page of items.
	ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.InventoryItem, error)

	// ListItemIDs returns every item id, oldest first.
	ListItemIDs(ctx context.Context) ([]string, error)
}

// ItemWriter defines write operations for inventory items
type ItemWriter interface {
	// SaveItemInTx persists a new item.
	SaveItemInTx(ctx context.Context, tx pgx.Tx, item domain.InventoryItem) error

	// UpdateItem updates catalog attributes. Codes, tags and quantities are not touched.
	UpdateItem(ctx context.Context, item domain.InventoryItem) error
}

// ItemTransactionSupport defines operations that run inside a unit of work
type ItemTransactionSupport interface {
	// FindItemByIDForUpdate selects the item and locks its row until the transaction ends.
	FindItemByIDForUpdate(ctx context.Context, tx pgx.Tx, itemID string) (*domain.InventoryItem, error)

	// PropertyNumberTakenInTx reports whether another item already carries propertyNumber.
	PropertyNumberTakenInTx(ctx context.Context, tx pgx.Tx, propertyNumber string, exceptItemID string) (bool, error)

	// UpdateItemTagInTx stores the serial and property numbers of an item.
	UpdateItemTagInTx(ctx context.Context, tx pgx.Tx, itemID string, serialNumber, propertyNumber *string, userID string, now time.Time) error
}

// ItemRepositoryFacade combines all item-related repository interfaces
type ItemRepositoryFacade interface {
	ItemReader
	ItemWriter
	ItemTransactionSupport
}
